package parsers

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/propkit/smartview/block"
	"github.com/stretchr/testify/require"
)

// blob assembles little-endian test buffers.
type blob struct {
	b []byte
}

func (w *blob) u8(v uint8) *blob { w.b = append(w.b, v); return w }

func (w *blob) u16(v uint16) *blob { w.b = binary.LittleEndian.AppendUint16(w.b, v); return w }

func (w *blob) u32(v uint32) *blob { w.b = binary.LittleEndian.AppendUint32(w.b, v); return w }

func (w *blob) u64(v uint64) *blob { w.b = binary.LittleEndian.AppendUint64(w.b, v); return w }

func (w *blob) raw(p ...byte) *blob { w.b = append(w.b, p...); return w }

func (w *blob) guid(g block.GUID) *blob { return w.raw(g[:]...) }

func (w *blob) ansi(s string) *blob { return w.raw([]byte(s)...) }

func (w *blob) wide(s string) *blob {
	for _, u := range utf16.Encode([]rune(s)) {
		w.u16(u)
	}
	return w
}

func (w *blob) bytes() []byte { return w.b }

func parse(p Parser, b []byte) *block.Node {
	return Run(p, block.NewDecoder(b))
}

func leaf(t *testing.T, root *block.Node, path ...string) block.Leaf {
	t.Helper()
	e, ok := root.Lookup(path...)
	require.True(t, ok, "missing element %v", path)
	l, ok := e.(block.Leaf)
	require.True(t, ok, "%v is not a field", path)
	return l
}

func node(t *testing.T, root *block.Node, path ...string) *block.Node {
	t.Helper()
	e, ok := root.Lookup(path...)
	require.True(t, ok, "missing element %v", path)
	n, ok := e.(*block.Node)
	require.True(t, ok, "%v is not a node", path)
	return n
}

// requirePartition checks that the decoded fields tile [0, size) in order
// with no gaps or overlaps.
func requirePartition(t *testing.T, root *block.Node, size int) {
	t.Helper()
	require.NoError(t, root.Err())
	next := 0
	for _, l := range block.Leaves(root) {
		r := l.Range()
		require.Equal(t, next, r.Start, "gap or overlap before %v", r)
		next = r.End
	}
	require.Equal(t, size, next, "tail not covered")
}

// requireTruncationSafe parses every strict prefix of full and checks that
// what was decoded lies inside the prefix and matches the full parse. Only
// the last decoded field may end early (trailing byte runs shrink with the
// buffer).
func requireTruncationSafe(t *testing.T, newParser func() Parser, full []byte) {
	t.Helper()
	want := block.Leaves(parse(newParser(), full))
	for k := 0; k < len(full); k++ {
		var root *block.Node
		require.NotPanics(t, func() { root = parse(newParser(), full[:k]) }, "prefix %d", k)

		got := block.Leaves(root)
		require.LessOrEqual(t, len(got), len(want), "prefix %d", k)
		for i, l := range got {
			require.True(t, block.Range{End: k}.Contains(l.Range()), "prefix %d: %v outside buffer", k, l.Range())
			if i == len(got)-1 {
				require.Equal(t, want[i].Range().Start, l.Range().Start, "prefix %d", k)
				continue
			}
			require.Equal(t, want[i].Range(), l.Range(), "prefix %d field %d", k, i)
			require.Equal(t, want[i].Interface(), l.Interface(), "prefix %d field %d", k, i)
		}
	}
}

// requireExactPrefix checks that parsing full[:k] decodes exactly the fields
// of the full parse that lie inside [0, k).
func requireExactPrefix(t *testing.T, newParser func() Parser, full []byte) {
	t.Helper()
	want := block.Leaves(parse(newParser(), full))
	for k := 0; k < len(full); k++ {
		prefix := block.Range{End: k}
		var inside []block.Range
		for _, l := range want {
			if prefix.Contains(l.Range()) {
				inside = append(inside, l.Range())
			}
		}
		var got []block.Range
		for _, l := range block.Leaves(parse(newParser(), full[:k])) {
			got = append(got, l.Range())
		}
		require.Equal(t, inside, got, "prefix %d", k)
	}
}
