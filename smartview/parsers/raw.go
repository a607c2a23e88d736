package parsers

import "github.com/joshuapare/propkit/smartview/block"

// Raw renders the whole buffer as one opaque byte field.
type Raw struct {
	Data block.Field[[]byte]
}

func (r *Raw) Parse(d *block.Decoder) {
	r.Data = d.Rest()
}

func (r *Raw) Blocks() *block.Node {
	return block.NewNode("Raw").Add("Data", r.Data)
}
