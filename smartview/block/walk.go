package block

// WalkFunc is called for every element below the root, depth-first in parse
// order. depth is 1 for the root's direct children.
type WalkFunc func(depth int, name string, e Element) error

// Walk visits the tree under n. Returning an error stops the walk.
func Walk(n *Node, fn WalkFunc) error {
	return walk(n, 1, fn)
}

func walk(n *Node, depth int, fn WalkFunc) error {
	for _, c := range n.children {
		if err := fn(depth, c.Name, c.Elem); err != nil {
			return err
		}
		if sub, ok := c.Elem.(*Node); ok {
			if err := walk(sub, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaves returns every present leaf under n in parse order.
func Leaves(n *Node) []Leaf {
	var out []Leaf
	_ = Walk(n, func(_ int, _ string, e Element) error {
		if l, ok := e.(Leaf); ok && l.Present() {
			out = append(out, l)
		}
		return nil
	})
	return out
}

// Stats summarizes a parse tree.
type Stats struct {
	Nodes     int
	Fields    int
	Missing   int
	Coverage  Range
	Truncated int
	Malformed int
	Unknown   int
}

// Errors returns how many nodes recorded an error.
func (s Stats) Errors() int { return s.Truncated + s.Malformed + s.Unknown }

// Summarize counts the nodes, decoded and missing fields, and recorded
// errors under root (root included).
func Summarize(root *Node) Stats {
	s := Stats{Nodes: 1, Coverage: root.Range()}
	count := func(err error) {
		switch Classify(err) {
		case KindTruncated:
			s.Truncated++
		case KindMalformedLength:
			s.Malformed++
		case KindUnknownSchema:
			s.Unknown++
		}
	}
	count(root.Err())
	_ = Walk(root, func(_ int, _ string, e Element) error {
		switch v := e.(type) {
		case *Node:
			s.Nodes++
			count(v.Err())
		case Leaf:
			if v.Present() {
				s.Fields++
			} else {
				s.Missing++
			}
		}
		return nil
	})
	return s
}
