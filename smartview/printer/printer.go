// Package printer renders parse trees as text, XML, JSON or msgpack.
package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview/block"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxValueBytes = 32

	// MissingMarker stands in for fields the walk never reached.
	MissingMarker = "<missing>"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatXML outputs one element per block and field.
	FormatXML Format = "xml"

	// FormatJSON outputs nested objects.
	FormatJSON Format = "json"

	// FormatMsgpack outputs the JSON document msgpack encoded.
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatXML, FormatJSON, FormatMsgpack}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text, xml and json).
	// Default: 2
	IndentSize int

	// Display selects hex or decimal integers.
	// Default: types.DisplayHex
	Display types.DisplayMode

	// ShowOffsets annotates text lines with their [start,end) byte range.
	// XML, JSON and msgpack always carry offset and size.
	// Default: true
	ShowOffsets bool

	// MaxValueBytes limits how many bytes of binary values to display.
	// Longer values are truncated. Set to 0 for no limit.
	// Default: 32
	MaxValueBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		Display:       types.DisplayHex,
		ShowOffsets:   true,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Printer writes parse trees to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	root, _ := smartview.Parse(types.ParserSID, data)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(root)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders root in the configured format.
func (p *Printer) Print(root *block.Node) error {
	if root == nil {
		return errors.New("print: nil tree")
	}
	switch p.opts.Format {
	case FormatXML:
		return p.printXML(root)
	case FormatJSON:
		return p.printJSON(root)
	case FormatMsgpack:
		return p.printMsgpack(root)
	case FormatText:
		return p.printText(root)
	default:
		return p.printText(root)
	}
}

func (p *Printer) indent() string {
	return strings.Repeat(" ", max(p.opts.IndentSize, 0))
}
