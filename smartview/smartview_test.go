package smartview

import (
	"encoding/binary"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview/block"
	"github.com/stretchr/testify/require"
)

// treeDiff compares two trees including unexported state.
func treeDiff(a, b *block.Node) string {
	return cmp.Diff(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

func u32s(vs ...uint32) []byte {
	var b []byte
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func fieldByName(t *testing.T, root *block.Node, path ...string) block.Leaf {
	t.Helper()
	e, ok := root.Lookup(path...)
	require.True(t, ok, "missing %v", path)
	l, ok := e.(block.Leaf)
	require.True(t, ok)
	return l
}

func userFieldSingleX() []byte {
	b := u32s(1, 0x0B)
	b = append(b, 1, 0, 'X')         // FieldNameLength, FieldName
	b = append(b, make([]byte, 16)...) // PropSetGuid
	b = append(b, u32s(0, 0, 0, 0, 0)...)
	b = append(b, 0, 0) // wszFormulaLength
	return append(b, u32s(0)...)
}

func TestParse_ScenarioEmptyLists(t *testing.T) {
	root, err := Parse(types.ParserFolderUserFields, u32s(0, 0))
	require.NoError(t, err)
	require.NoError(t, root.Err())
	require.Len(t, block.Leaves(root), 2)

	for _, list := range []string{"FieldDefinitionsA", "FieldDefinitionsW"} {
		e, ok := root.Lookup(list)
		require.True(t, ok)
		require.Empty(t, e.(*block.Node).Children())
	}
}

func TestParse_ScenarioSingleAnsiField(t *testing.T) {
	buf := userFieldSingleX()
	root, err := Parse(types.ParserFolderUserFields, buf)
	require.NoError(t, err)
	require.NoError(t, root.Err())

	require.Equal(t, "X", fieldByName(t, root, "FieldDefinitionsA", "FieldDefinitionA[0]", "FieldName").Interface())
	require.Equal(t, "", fieldByName(t, root, "FieldDefinitionsA", "FieldDefinitionA[0]", "wszFormula").Interface())
	require.Equal(t, uint32(0), fieldByName(t, root, "FolderUserFieldsUnicodeCount").Interface())
	require.Equal(t, block.Range{Start: 0, End: len(buf)}, root.Range())
}

func TestParse_ScenarioTruncatedAfterAnsiCount(t *testing.T) {
	root, err := Parse(types.ParserFolderUserFields, u32s(0))
	require.NoError(t, err)
	require.ErrorIs(t, root.Err(), block.ErrTruncated)

	require.True(t, fieldByName(t, root, "FolderUserFieldsAnsiCount").Present())
	require.False(t, fieldByName(t, root, "FolderUserFieldsUnicodeCount").Present())
	e, _ := root.Lookup("FieldDefinitionsW")
	require.Empty(t, e.(*block.Node).Children())
}

func TestParse_ScenarioUnknownSelector(t *testing.T) {
	root, err := Parse(types.ParserType(9999), []byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.ErrorIs(t, root.Err(), block.ErrUnknownSchema)
	require.Equal(t, block.KindUnknownSchema, block.Classify(root.Err()))

	children := root.Children()
	require.Len(t, children, 1)
	data := children[0].Elem.(block.Leaf)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, data.Interface())
	require.Equal(t, block.Range{Start: 0, End: 3}, data.Range())
}

func TestParse_NoneSelectorFallsBack(t *testing.T) {
	root, err := Parse(types.ParserNone, []byte{})
	require.NoError(t, err)
	require.ErrorIs(t, root.Err(), block.ErrUnknownSchema)
	require.True(t, fieldByName(t, root, "Data").Present())
}

func TestParse_RawSelector(t *testing.T) {
	root, err := Parse(types.ParserRaw, []byte{1})
	require.NoError(t, err)
	require.NoError(t, root.Err())
}

func TestParse_NilBuffer(t *testing.T) {
	root, err := Parse(types.ParserSID, nil)
	require.ErrorIs(t, err, ErrNilBuffer)
	require.Nil(t, root)
}

func TestParse_EmptyBufferNeverErrors(t *testing.T) {
	for _, p := range Parsers() {
		root, err := Parse(p, []byte{})
		require.NoError(t, err, p.String())
		require.NotNil(t, root, p.String())
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := map[types.ParserType][]byte{
		types.ParserFolderUserFields: userFieldSingleX(),
		types.ParserEntryID:          append(u32s(0), make([]byte, 20)...),
		types.ParserSID:              {1, 2, 0, 0, 0, 0, 0, 5, 21, 0, 0, 0},
		types.ParserExtendedFlags:    {1, 4, 0x10, 0, 0, 0, 9, 9},
		types.ParserType(1234):       {1, 2, 3},
	}
	for p, buf := range inputs {
		a, err := Parse(p, buf)
		require.NoError(t, err)
		b, err := Parse(p, buf)
		require.NoError(t, err)
		if diff := treeDiff(a, b); diff != "" {
			t.Fatalf("%s: trees differ (-first +second):\n%s", p, diff)
		}
	}
}

func TestParse_ConcurrentSharedBuffer(t *testing.T) {
	buf := userFieldSingleX()
	want, err := Parse(types.ParserFolderUserFields, buf)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*block.Node, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Parse(types.ParserFolderUserFields, buf)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Empty(t, treeDiff(want, got))
	}
}

func TestParsers(t *testing.T) {
	list := Parsers()
	require.Equal(t, types.ParserRaw, list[0])
	require.Contains(t, list, types.ParserFlatEntryList)
	require.NotContains(t, list, types.ParserNone)
	require.True(t, Supported(types.ParserSID))
	require.False(t, Supported(types.ParserNone))
}
