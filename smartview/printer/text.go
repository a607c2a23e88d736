package printer

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/propkit/smartview/block"
)

// printText writes one line per block and field:
//
//	SID [0,12)
//	  Revision [0,1): 0x01
//	  SubAuthorities
//	    SubAuthority[0]: <missing>
//	  ! truncated: truncated at offset 8: need 4 bytes, have 2
func (p *Printer) printText(root *block.Node) error {
	w := bufio.NewWriter(p.writer)
	p.writeNodeText(w, root.Name(), root, 0)
	return w.Flush()
}

func (p *Printer) writeNodeText(w *bufio.Writer, name string, n *block.Node, depth int) {
	indent := strings.Repeat(p.indent(), depth)
	fmt.Fprintf(w, "%s%s%s\n", indent, name, p.rangeText(n))
	for _, c := range n.Children() {
		switch e := c.Elem.(type) {
		case *block.Node:
			p.writeNodeText(w, c.Name, e, depth+1)
		case block.Leaf:
			p.writeLeafText(w, c.Name, e, depth+1)
		}
	}
	if err := n.Err(); err != nil {
		fmt.Fprintf(w, "%s%s! %s: %v\n", indent, p.indent(), errorLabel(err), err)
	}
}

func (p *Printer) writeLeafText(w *bufio.Writer, name string, l block.Leaf, depth int) {
	indent := strings.Repeat(p.indent(), depth)
	if !l.Present() {
		fmt.Fprintf(w, "%s%s: %s\n", indent, name, MissingMarker)
		return
	}
	val := p.formatValue(l)
	if isStringKind(l.Kind()) {
		val = strconv.Quote(val)
	}
	fmt.Fprintf(w, "%s%s%s: %s\n", indent, name, p.rangeText(l), val)
}

func (p *Printer) rangeText(e block.Element) string {
	if !p.opts.ShowOffsets {
		return ""
	}
	if n, ok := e.(*block.Node); ok && len(block.Leaves(n)) == 0 {
		return ""
	}
	r := e.Range()
	return fmt.Sprintf(" [%d,%d)", r.Start, r.End)
}
