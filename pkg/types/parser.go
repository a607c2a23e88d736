package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ParserType selects the binary layout used to interpret a buffer.
// Values outside the declared set are valid selectors; the engine renders
// them as raw bytes.
type ParserType uint32

const (
	ParserNone ParserType = iota
	ParserRaw
	ParserFolderUserFields
	ParserEntryID
	ParserGlobalObjectID
	ParserSID
	ParserExtendedFlags
	ParserFlatEntryList
)

var parserNames = map[ParserType]string{
	ParserNone:             "None",
	ParserRaw:              "Raw",
	ParserFolderUserFields: "FolderUserFieldStream",
	ParserEntryID:          "EntryId",
	ParserGlobalObjectID:   "GlobalObjectId",
	ParserSID:              "SID",
	ParserExtendedFlags:    "ExtendedFolderFlags",
	ParserFlatEntryList:    "FlatEntryList",
}

// String implements the Stringer interface for ParserType.
func (t ParserType) String() string {
	if name, ok := parserNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Parser(%d)", uint32(t))
}

// ParseParserType accepts a selector name (case-insensitive) or a decimal or
// 0x-prefixed number. Numbers need not name a declared selector.
func ParseParserType(s string) (ParserType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ParserNone, fmt.Errorf("empty parser selector")
	}
	for t, name := range parserNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return ParserNone, fmt.Errorf("unknown parser %q", s)
	}
	return ParserType(n), nil
}

// DisplayMode selects how integers are rendered.
type DisplayMode uint8

const (
	DisplayHex DisplayMode = iota
	DisplayDecimal
)

func (m DisplayMode) String() string {
	if m == DisplayDecimal {
		return "decimal"
	}
	return "hex"
}
