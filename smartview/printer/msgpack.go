package printer

import (
	"fmt"

	"github.com/joshuapare/propkit/smartview/block"
	"github.com/vmihailenco/msgpack/v5"
)

// printMsgpack writes the same document as printJSON in msgpack encoding.
func (p *Printer) printMsgpack(root *block.Node) error {
	enc := msgpack.NewEncoder(p.writer)
	if err := enc.Encode(p.document(root.Name(), root)); err != nil {
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return nil
}
