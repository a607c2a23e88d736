package block

import (
	"bytes"

	"github.com/joshuapare/propkit/internal/buf"
	"github.com/joshuapare/propkit/internal/format"
)

// Decoder performs typed reads over a Cursor. The first error is kept and
// every later read returns a not-present field without touching the cursor,
// so a parser can write its walk as a straight sequence of reads and inspect
// Err once at the end.
type Decoder struct {
	c   *Cursor
	err error
}

// NewDecoder returns a Decoder over b starting at offset 0.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{c: NewCursor(b)}
}

// Err returns the first error encountered, if any.
func (d *Decoder) Err() error { return d.err }

// OK reports whether no error has been recorded.
func (d *Decoder) OK() bool { return d.err == nil }

// Fail records err unless an earlier error is already held.
func (d *Decoder) Fail(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

// Position returns the absolute offset of the next unread byte.
func (d *Decoder) Position() int { return d.c.Position() }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return d.c.Remaining() }

// Need checks that a declared size of n bytes fits in what remains and
// records ErrMalformedLength when it does not.
func (d *Decoder) Need(n int) bool {
	if d.err != nil {
		return false
	}
	if n < 0 || n > d.c.Remaining() {
		d.Fail(malformed(d.c.Position(), n, d.c.Remaining()))
		return false
	}
	return true
}

// Count validates a decoded element count against the remaining bytes,
// assuming each element needs at least minSize bytes. It returns the count
// to iterate, or 0 after recording ErrMalformedLength.
func (d *Decoder) Count(count Field[uint32], minSize int) int {
	if d.err != nil || !count.present || count.value == 0 {
		return 0
	}
	if minSize < 1 {
		minSize = 1
	}
	n := int(count.value)
	total, ok := buf.Fits(d.c.Remaining(), n, minSize)
	if !ok {
		d.Fail(malformed(d.c.Position(), total, d.c.Remaining()))
		return 0
	}
	return n
}

// Sub carves the next n bytes into a child Decoder whose errors stay local to
// it. A size larger than what remains is recorded here as ErrMalformedLength.
func (d *Decoder) Sub(n int) (*Decoder, bool) {
	if !d.Need(n) {
		return nil, false
	}
	c, err := d.c.Sub(n)
	if err != nil {
		d.Fail(err)
		return nil, false
	}
	return &Decoder{c: c}, true
}

// read consumes n bytes, recording any error.
func (d *Decoder) read(n int) (b []byte, start int, ok bool) {
	if d.err != nil {
		return nil, 0, false
	}
	start = d.c.Position()
	b, err := d.c.Read(n)
	if err != nil {
		d.Fail(err)
		return nil, 0, false
	}
	return b, start, true
}

func fixed[T any](d *Decoder, kind Kind, width int, decode func([]byte) T) Field[T] {
	b, start, ok := d.read(width)
	if !ok {
		return Field[T]{kind: kind}
	}
	return newField(kind, decode(b), start, d.c.Position())
}

// U8 reads one byte.
func (d *Decoder) U8() Field[uint8] {
	return fixed(d, KindUint8, 1, buf.U8)
}

// U16 reads a little-endian uint16.
func (d *Decoder) U16() Field[uint16] {
	return fixed(d, KindUint16, 2, buf.U16LE)
}

// U32 reads a little-endian uint32.
func (d *Decoder) U32() Field[uint32] {
	return fixed(d, KindUint32, 4, buf.U32LE)
}

// FileTime reads a FILETIME (100ns ticks since 1601) as a uint64.
func (d *Decoder) FileTime() Field[uint64] {
	return fixed(d, KindFileTime, 8, buf.U64LE)
}

// GUID reads a 16-byte GUID.
func (d *Decoder) GUID() Field[GUID] {
	return fixed(d, KindGUID, GUIDSize, func(b []byte) GUID { return GUID(b) })
}

// Bytes reads a fixed-width byte array. A short buffer is ErrTruncated.
func (d *Decoder) Bytes(n int) Field[[]byte] {
	return fixed(d, KindBytes, n, bytes.Clone)
}

// Blob reads n bytes whose size came from the buffer itself. A short buffer
// is ErrMalformedLength.
func (d *Decoder) Blob(n int) Field[[]byte] {
	if !d.Need(n) {
		return Field[[]byte]{kind: KindBytes}
	}
	return d.Bytes(n)
}

// Rest consumes everything that remains. An exhausted cursor yields a
// present, empty field.
func (d *Decoder) Rest() Field[[]byte] {
	if d.err != nil {
		return Field[[]byte]{kind: KindBytes}
	}
	return d.Bytes(d.c.Remaining())
}

// ANSI reads n narrow characters whose count came from the buffer.
func (d *Decoder) ANSI(n int) Field[string] {
	return d.counted(KindANSI, n, 1, format.DecodeANSI)
}

// Unicode reads n UTF-16LE code units whose count came from the buffer.
func (d *Decoder) Unicode(n int) Field[string] {
	return d.counted(KindUnicode, n, 2, format.DecodeUTF16LE)
}

func (d *Decoder) counted(kind Kind, units, unitSize int, decode func([]byte) string) Field[string] {
	if d.err != nil {
		return Field[string]{kind: kind}
	}
	size, ok := buf.Fits(d.c.Remaining(), units, unitSize)
	if !ok {
		d.Fail(malformed(d.c.Position(), size, d.c.Remaining()))
		return Field[string]{kind: kind}
	}
	return fixed(d, kind, size, decode)
}

// ANSIZ reads a NUL-terminated narrow string. The terminator is part of the
// field's range but not its value.
func (d *Decoder) ANSIZ() Field[string] {
	return d.terminated(KindANSI, 1, format.DecodeANSI)
}

// UnicodeZ reads a NUL-terminated UTF-16LE string.
func (d *Decoder) UnicodeZ() Field[string] {
	return d.terminated(KindUnicode, 2, format.DecodeUTF16LE)
}

func (d *Decoder) terminated(kind Kind, unitSize int, decode func([]byte) string) Field[string] {
	if d.err != nil {
		return Field[string]{kind: kind}
	}
	rest, _ := d.c.Peek(d.c.Remaining())
	end := -1
	for i := 0; i+unitSize <= len(rest); i += unitSize {
		if isZero(rest[i : i+unitSize]) {
			end = i
			break
		}
	}
	if end < 0 {
		d.Fail(truncated(d.c.Position(), len(rest)+unitSize, len(rest)))
		return Field[string]{kind: kind}
	}
	return fixed(d, kind, end+unitSize, func(b []byte) string { return decode(b[:end]) })
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
