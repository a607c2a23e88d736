package parsers

import (
	"testing"

	"github.com/joshuapare/propkit/smartview/block"
	"github.com/stretchr/testify/require"
)

func TestRun_AppendsJunk(t *testing.T) {
	buf := (&blob{}).u8(1).u8(0).raw(0, 0, 0, 0, 0, 1).raw(0xEE, 0xFF).bytes()
	root := parse(&SID{}, buf)

	requirePartition(t, root, len(buf))
	junk := leaf(t, root, JunkName)
	require.Equal(t, []byte{0xEE, 0xFF}, junk.Interface())
	require.Equal(t, block.Range{Start: 8, End: 10}, junk.Range())
}

func TestRun_NoJunkAfterError(t *testing.T) {
	root := parse(&GlobalObjectID{}, make([]byte, 20))
	require.ErrorIs(t, root.Err(), block.ErrTruncated)
	_, ok := root.Child(JunkName)
	require.False(t, ok)
}

func TestRaw(t *testing.T) {
	r := &Raw{}
	root := parse(r, []byte{1, 2, 3})
	requirePartition(t, root, 3)
	require.Equal(t, "Raw", root.Name())
	require.Len(t, root.Children(), 1)
	require.Equal(t, []byte{1, 2, 3}, r.Data.Get())
}

func TestIndexed(t *testing.T) {
	require.Equal(t, "Entry[0]", indexed("Entry", 0))
	require.Equal(t, "Entry[12]", indexed("Entry", 12))
}
