package parsers

import (
	"testing"

	"github.com/joshuapare/propkit/smartview/block"
	"github.com/stretchr/testify/require"
)

func newSID() Parser { return &SID{} }

func sidSample() []byte {
	// S-1-5-21-1004336348-1177238915-682003330-512
	w := &blob{}
	w.u8(1).u8(5).raw(0, 0, 0, 0, 0, 5)
	w.u32(21).u32(1004336348).u32(1177238915).u32(682003330).u32(512)
	return w.bytes()
}

func TestSID_Parse(t *testing.T) {
	buf := sidSample()
	s := &SID{}
	root := parse(s, buf)
	requirePartition(t, root, len(buf))

	require.Equal(t, "S-1-5-21-1004336348-1177238915-682003330-512", s.String())
	require.Len(t, node(t, root, "SubAuthorities").Children(), 5)
	require.Equal(t, uint32(512), leaf(t, root, "SubAuthorities", "SubAuthority[4]").Interface())
}

func TestSID_CountExceedsBuffer(t *testing.T) {
	buf := sidSample()
	s := &SID{}
	root := parse(s, buf[:len(buf)-2])

	require.ErrorIs(t, root.Err(), block.ErrMalformedLength)
	require.Empty(t, s.SubAuthorities)
	require.Equal(t, "", s.String())
	require.True(t, s.IdentifierAuthority.Present())
}

func TestSID_NoSubAuthorities(t *testing.T) {
	buf := (&blob{}).u8(1).u8(0).raw(0, 0, 0, 0, 0, 1).bytes()
	s := &SID{}
	root := parse(s, buf)
	requirePartition(t, root, len(buf))
	require.Equal(t, "S-1-1", s.String())
}

func TestSID_TruncatedAnywhere(t *testing.T) {
	requireTruncationSafe(t, newSID, sidSample())
}
