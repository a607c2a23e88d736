// Package format holds the text and time conversions shared by the binary
// property parsers: ANSI (Windows-1252) and UTF-16LE string bodies, and
// FILETIME timestamps.
package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// UTF16ASCIIThreshold is the first code unit that is not 7-bit ASCII.
const UTF16ASCIIThreshold = 0x80

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeANSI decodes narrow-character bytes as Windows-1252.
func DecodeANSI(data []byte) string {
	if isASCII(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return string(decoded)
}

// DecodeUTF16LE decodes wide-character bytes. A trailing odd byte is dropped;
// unpaired surrogates become U+FFFD.
func DecodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	data = data[:len(data)&^1]

	// Fast path: in UTF-16LE, ASCII chars are [byte, 0x00].
	allASCII := true
	for i := 0; i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= UTF16ASCIIThreshold {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	decoded, err := utf16LE.NewDecoder().Bytes(data)
	if err != nil {
		return string(utf8.RuneError)
	}
	return string(decoded)
}

func isASCII(data []byte) bool {
	for _, c := range data {
		if c >= UTF16ASCIIThreshold {
			return false
		}
	}
	return true
}
