package printer

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/joshuapare/propkit/smartview/block"
)

func (p *Printer) printXML(root *block.Node) error {
	if _, err := io.WriteString(p.writer, xml.Header); err != nil {
		return err
	}
	data, err := xml.MarshalIndent(p.document(root.Name(), root), "", p.indent())
	if err != nil {
		return fmt.Errorf("marshal xml: %w", err)
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
