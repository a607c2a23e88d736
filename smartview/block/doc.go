// Package block is the binary interpretation engine behind the smart view
// parsers: a bounds-checked Cursor over an immutable buffer, typed Fields that
// remember the byte range they were decoded from, and Nodes that group fields
// into an ordered, offset-annotated parse tree.
//
// Parsers do not talk to the Cursor directly. They use a Decoder, which keeps
// the first decode error and turns every later read into a no-op that yields a
// not-present field:
//
//	d := block.NewDecoder(buf)
//	count := d.U32()
//	for i := 0; i < d.Count(count, entrySize) && d.OK(); i++ {
//	    ...
//	}
//	if err := d.Err(); err != nil {
//	    // errors.Is(err, block.ErrTruncated) or block.ErrMalformedLength
//	}
//
// Trees are built during a single forward pass and are read-only afterwards.
// A Decoder and the tree it feeds are owned by one goroutine; the input buffer
// is never written and may be shared across concurrent parses.
package block
