package parsers

import (
	"strconv"

	"github.com/joshuapare/propkit/smartview/block"
)

// Parser decodes one binary layout. Implementations are single use.
type Parser interface {
	// Parse walks d, stopping at the first decode error.
	Parse(d *block.Decoder)
	// Blocks returns the tree for whatever Parse decoded.
	Blocks() *block.Node
}

// JunkName labels bytes left over after a successful walk.
const JunkName = "JunkData"

// Run parses d with p and returns the resulting tree. Decode errors are
// recorded on the root; when the walk succeeds but leaves bytes behind they
// are appended as a JunkData field.
func Run(p Parser, d *block.Decoder) *block.Node {
	p.Parse(d)
	root := p.Blocks()
	if err := d.Err(); err != nil {
		root.SetErr(err)
		return root
	}
	if d.Remaining() > 0 {
		root.Add(JunkName, d.Rest())
	}
	return root
}

// indexed formats a list entry label.
func indexed(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
