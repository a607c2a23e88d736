package parsers

import (
	"testing"

	"github.com/joshuapare/propkit/smartview/block"
	"github.com/stretchr/testify/require"
)

var testStoreProvider = block.GUID{0x38, 0xA1, 0xBB, 0x10, 0x05, 0xE5, 0x10, 0x1A, 0xA1, 0xBB, 0x08, 0x00, 0x2B, 0x2A, 0x56, 0xC2}

func newEntryID() Parser { return &EntryID{} }

func oneOffSample(unicode bool) []byte {
	w := &blob{}
	w.u32(0).guid(OneOffProviderUID).u16(0)
	if unicode {
		w.u16(0x8000 | 0x0190)
		w.wide("Ann Smith").u16(0).wide("SMTP").u16(0).wide("ann@example.com").u16(0)
	} else {
		w.u16(0x0190)
		w.ansi("Ann Smith").u8(0).ansi("SMTP").u8(0).ansi("ann@example.com").u8(0)
	}
	return w.bytes()
}

func TestEntryID_ProviderData(t *testing.T) {
	buf := (&blob{}).u32(0).guid(testStoreProvider).raw(0xDE, 0xAD, 0xBE, 0xEF).bytes()
	e := &EntryID{}
	root := parse(e, buf)
	requirePartition(t, root, len(buf))

	require.False(t, e.OneOff())
	require.Equal(t, testStoreProvider, e.ProviderUID.Get())
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, leaf(t, root, "ProviderData").Interface())
	_, ok := root.Child("DisplayName")
	require.False(t, ok)
}

func TestEntryID_OneOff(t *testing.T) {
	for _, unicode := range []bool{false, true} {
		buf := oneOffSample(unicode)
		e := &EntryID{}
		root := parse(e, buf)
		requirePartition(t, root, len(buf))

		require.True(t, e.OneOff())
		require.Equal(t, "Ann Smith", e.DisplayName.Get())
		require.Equal(t, "SMTP", e.AddressType.Get())
		require.Equal(t, "ann@example.com", e.EmailAddress.Get())
		want := block.KindANSI
		if unicode {
			want = block.KindUnicode
		}
		require.Equal(t, want, e.EmailAddress.Kind())
		require.Equal(t, "ann@example.com", leaf(t, root, "EmailAddress").Interface())
	}
}

func TestEntryID_OneOffMissingTerminator(t *testing.T) {
	buf := oneOffSample(false)
	e := &EntryID{}
	root := parse(e, buf[:len(buf)-1])

	require.ErrorIs(t, root.Err(), block.ErrTruncated)
	require.True(t, e.AddressType.Present())
	require.False(t, e.EmailAddress.Present())
	require.False(t, leaf(t, root, "EmailAddress").Present())
}

func TestEntryID_ShortBuffer(t *testing.T) {
	e := &EntryID{}
	root := parse(e, []byte{1, 2, 3, 4, 5})
	require.ErrorIs(t, root.Err(), block.ErrTruncated)
	require.True(t, e.Flags.Present())
	require.False(t, e.ProviderUID.Present())
	require.Len(t, root.Children(), 2)
}

func TestEntryID_TruncatedAnywhere(t *testing.T) {
	requireTruncationSafe(t, newEntryID, oneOffSample(true))
	requireTruncationSafe(t, newEntryID, (&blob{}).u32(0).guid(testStoreProvider).raw(1, 2, 3).bytes())
	requireExactPrefix(t, newEntryID, oneOffSample(false))
	requireExactPrefix(t, newEntryID, oneOffSample(true))
}
