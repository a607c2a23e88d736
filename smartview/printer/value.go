package printer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/propkit/internal/format"
	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview/block"
)

// formatValue renders a present leaf's value. Strings come back unquoted.
func (p *Printer) formatValue(l block.Leaf) string {
	dec := p.opts.Display == types.DisplayDecimal
	switch v := l.Interface().(type) {
	case uint8:
		return formatInt(dec, uint64(v), "0x%02X")
	case uint16:
		return formatInt(dec, uint64(v), "0x%04X")
	case uint32:
		return formatInt(dec, uint64(v), "0x%08X")
	case uint64:
		// Only FILETIME fields carry 64-bit values.
		return fmt.Sprintf("%s (%s)", format.FormatFiletime(v), formatInt(dec, v, "0x%016X"))
	case block.GUID:
		return v.String()
	case string:
		return v
	case []byte:
		return p.formatBytes(v)
	case nil:
		return MissingMarker
	default:
		return fmt.Sprint(v)
	}
}

func formatInt(dec bool, v uint64, hexLayout string) string {
	if dec {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf(hexLayout, v)
}

func (p *Printer) formatBytes(data []byte) string {
	limit := p.opts.MaxValueBytes
	if limit <= 0 {
		limit = len(data)
	}
	shown := min(len(data), limit)
	suffix := ""
	if len(data) > shown {
		suffix = fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	if shown == 0 {
		return "<empty>" + suffix
	}
	return strings.ToUpper(hex.EncodeToString(data[:shown])) + suffix
}

// typeName is the type attribute of an element.
func typeName(e block.Element) string {
	if l, ok := e.(block.Leaf); ok {
		return l.Kind().String()
	}
	return "block"
}

// errorLabel names the kind of a recorded decode error.
func errorLabel(err error) string {
	switch block.Classify(err) {
	case block.KindTruncated:
		return "truncated"
	case block.KindMalformedLength:
		return "bad length"
	case block.KindUnknownSchema:
		return "unknown schema"
	default:
		return "error"
	}
}

func isStringKind(k block.Kind) bool {
	return k == block.KindANSI || k == block.KindUnicode
}
