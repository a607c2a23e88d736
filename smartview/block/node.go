package block

// Child is one named entry of a Node, either a Leaf or a nested *Node.
type Child struct {
	Name string
	Elem Element
}

// Node is a labeled, ordered group of fields and sub-nodes. Children keep
// the order they were added in, which is the order they appear in the buffer.
// Nodes are filled during one parse and not modified afterwards.
type Node struct {
	name     string
	children []Child
	err      error
}

// NewNode returns an empty node labeled name.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's label.
func (n *Node) Name() string { return n.name }

// Add appends e under name and returns n. Nil elements are ignored.
func (n *Node) Add(name string, e Element) *Node {
	if e == nil {
		return n
	}
	if sub, ok := e.(*Node); ok && sub == nil {
		return n
	}
	n.children = append(n.children, Child{Name: name, Elem: e})
	return n
}

// AddNode appends a new empty child node and returns it.
func (n *Node) AddNode(name string) *Node {
	sub := NewNode(name)
	n.children = append(n.children, Child{Name: name, Elem: sub})
	return sub
}

// Children returns the children in parse order.
func (n *Node) Children() []Child { return n.children }

// Child returns the first child named name.
func (n *Node) Child(name string) (Element, bool) {
	for _, c := range n.children {
		if c.Name == name {
			return c.Elem, true
		}
	}
	return nil, false
}

// Lookup follows a path of child names from n.
func (n *Node) Lookup(path ...string) (Element, bool) {
	var cur Element = n
	for _, name := range path {
		node, ok := cur.(*Node)
		if !ok {
			return nil, false
		}
		if cur, ok = node.Child(name); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Range returns the union of the ranges of all present descendants.
// A node with nothing decoded returns the zero Range.
func (n *Node) Range() Range {
	var r Range
	seen := false
	for _, c := range n.children {
		cr, ok := elementRange(c.Elem)
		if !ok {
			continue
		}
		if !seen {
			r, seen = cr, true
			continue
		}
		r = r.union(cr)
	}
	return r
}

func elementRange(e Element) (Range, bool) {
	switch v := e.(type) {
	case *Node:
		if !v.hasPresent() {
			return Range{}, false
		}
		return v.Range(), true
	case Leaf:
		return v.Range(), v.Present()
	default:
		return e.Range(), true
	}
}

func (n *Node) hasPresent() bool {
	for _, c := range n.children {
		switch v := c.Elem.(type) {
		case *Node:
			if v.hasPresent() {
				return true
			}
		case Leaf:
			if v.Present() {
				return true
			}
		}
	}
	return false
}

// Err returns the decode error that stopped this node's walk, if any.
func (n *Node) Err() error { return n.err }

// SetErr records err on the node. The first error wins.
func (n *Node) SetErr(err error) {
	if n.err == nil {
		n.err = err
	}
}
