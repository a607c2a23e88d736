package block

import "github.com/joshuapare/propkit/internal/buf"

// Cursor is a forward-only read head over an immutable byte slice.
// Positions are absolute: a Cursor carved out with Sub reports offsets in the
// coordinates of the buffer it came from.
//
// Invariant: 0 <= pos <= len(data). A failed read leaves pos unchanged.
type Cursor struct {
	data []byte
	base int
	pos  int
}

// NewCursor returns a Cursor positioned at offset 0 of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

// Position returns the absolute offset of the next unread byte.
func (c *Cursor) Position() int {
	return c.base + c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Read returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer and must not be modified.
func (c *Cursor) Read(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, malformed(c.Position(), n, c.Remaining())
	}
	b, ok := buf.Slice(c.data, c.pos, n)
	if !ok {
		return nil, truncated(c.Position(), n, c.Remaining())
	}
	return b, nil
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.Read(n)
	return err
}

// Sub carves the next n bytes into an independent Cursor and advances past
// them. The child cannot read beyond those n bytes.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	start := c.Position()
	b, err := c.Read(n)
	if err != nil {
		return nil, err
	}
	return &Cursor{data: b, base: start}, nil
}
