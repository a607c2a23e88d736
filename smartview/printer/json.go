package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/propkit/smartview/block"
)

func (p *Printer) printJSON(root *block.Node) error {
	data, err := json.MarshalIndent(p.document(root.Name(), root), "", p.indent())
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
