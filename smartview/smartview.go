package smartview

import (
	"errors"
	"fmt"
	"slices"

	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview/block"
	"github.com/joshuapare/propkit/smartview/parsers"
)

// ErrNilBuffer is returned when Parse is given no buffer at all.
var ErrNilBuffer = errors.New("smartview: nil buffer")

var registry = map[types.ParserType]func() parsers.Parser{
	types.ParserRaw:              func() parsers.Parser { return &parsers.Raw{} },
	types.ParserFolderUserFields: func() parsers.Parser { return &parsers.FolderUserFields{} },
	types.ParserEntryID:          func() parsers.Parser { return &parsers.EntryID{} },
	types.ParserGlobalObjectID:   func() parsers.Parser { return &parsers.GlobalObjectID{} },
	types.ParserSID:              func() parsers.Parser { return &parsers.SID{} },
	types.ParserExtendedFlags:    func() parsers.Parser { return &parsers.ExtendedFlags{} },
	types.ParserFlatEntryList:    func() parsers.Parser { return &parsers.FlatEntryList{} },
}

// Parse interprets b with the parser registered for t. Selectors without a
// parser fall back to a Raw tree carrying block.ErrUnknownSchema.
func Parse(t types.ParserType, b []byte) (*block.Node, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	d := block.NewDecoder(b)
	newParser, ok := registry[t]
	if !ok {
		root := parsers.Run(&parsers.Raw{}, d)
		root.SetErr(fmt.Errorf("%w: no parser for %s", block.ErrUnknownSchema, t))
		return root, nil
	}
	return parsers.Run(newParser(), d), nil
}

// Parsers lists the selectors that have a registered parser, in selector order.
func Parsers() []types.ParserType {
	out := make([]types.ParserType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Supported reports whether t has a registered parser.
func Supported(t types.ParserType) bool {
	_, ok := registry[t]
	return ok
}
