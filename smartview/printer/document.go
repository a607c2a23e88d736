package printer

import (
	"encoding/xml"

	"github.com/joshuapare/propkit/smartview/block"
)

// element is the structured form shared by the XML, JSON and msgpack
// renderers. Blocks become <block> elements and leaves <field> elements.
type element struct {
	XMLName  xml.Name  `json:"-" msgpack:"-"`
	Name     string    `xml:"name,attr" json:"name" msgpack:"name"`
	Type     string    `xml:"type,attr" json:"type" msgpack:"type"`
	Offset   *int      `xml:"offset,attr,omitempty" json:"offset,omitempty" msgpack:"offset,omitempty"`
	Size     *int      `xml:"size,attr,omitempty" json:"size,omitempty" msgpack:"size,omitempty"`
	Missing  bool      `xml:"missing,attr,omitempty" json:"missing,omitempty" msgpack:"missing,omitempty"`
	Error    string    `xml:"error,attr,omitempty" json:"error,omitempty" msgpack:"error,omitempty"`
	Detail   string    `xml:"detail,attr,omitempty" json:"detail,omitempty" msgpack:"detail,omitempty"`
	Value    string    `xml:",chardata" json:"value,omitempty" msgpack:"value,omitempty"`
	Children []element `json:"children,omitempty" msgpack:"children,omitempty"`
}

func (p *Printer) document(name string, e block.Element) element {
	el := element{Name: name, Type: typeName(e)}
	switch v := e.(type) {
	case *block.Node:
		el.XMLName.Local = "block"
		if len(block.Leaves(v)) > 0 {
			el.setRange(v.Range())
		}
		for _, c := range v.Children() {
			el.Children = append(el.Children, p.document(c.Name, c.Elem))
		}
		if err := v.Err(); err != nil {
			el.Error = errorLabel(err)
			el.Detail = err.Error()
		}
	case block.Leaf:
		el.XMLName.Local = "field"
		if !v.Present() {
			el.Missing = true
			break
		}
		el.setRange(v.Range())
		el.Value = p.formatValue(v)
	}
	return el
}

func (el *element) setRange(r block.Range) {
	start, size := r.Start, r.Len()
	el.Offset, el.Size = &start, &size
}
