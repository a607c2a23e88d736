package parsers

import "github.com/joshuapare/propkit/smartview/block"

// OneOffProviderUID marks a one-off entry ID: a recipient whose address is
// stored inline rather than in an address book.
var OneOffProviderUID = block.GUID{0x81, 0x2b, 0x1f, 0xa4, 0xbe, 0xa3, 0x10, 0x19, 0x9d, 0x6e, 0x00, 0xdd, 0x01, 0x0f, 0x54, 0x02}

// oneOffUnicode is set in the one-off flags when the strings are UTF-16.
const oneOffUnicode = 0x8000

// EntryID decodes an entry identifier:
//
//	abFlags       u32
//	ProviderUID   GUID
//	ProviderData  rest of buffer
//
// One-off entry IDs replace ProviderData with:
//
//	Version        u16
//	Flags          u16
//	DisplayName    NUL-terminated string
//	AddressType    NUL-terminated string
//	EmailAddress   NUL-terminated string
//
// with wide strings when Flags has 0x8000 set, narrow otherwise.
type EntryID struct {
	Flags       block.Field[uint32]
	ProviderUID block.Field[block.GUID]

	Version      block.Field[uint16]
	OneOffFlags  block.Field[uint16]
	DisplayName  block.Field[string]
	AddressType  block.Field[string]
	EmailAddress block.Field[string]

	ProviderData block.Field[[]byte]

	oneOff bool
}

func (e *EntryID) Parse(d *block.Decoder) {
	e.Flags = d.U32()
	e.ProviderUID = d.GUID()
	if !e.ProviderUID.Present() {
		return
	}
	if e.ProviderUID.Get() != OneOffProviderUID {
		e.ProviderData = d.Rest()
		return
	}

	e.oneOff = true
	e.Version = d.U16()
	e.OneOffFlags = d.U16()
	readString := (*block.Decoder).ANSIZ
	if e.OneOffFlags.Get()&oneOffUnicode != 0 {
		readString = (*block.Decoder).UnicodeZ
	}
	e.DisplayName = readString(d)
	e.AddressType = readString(d)
	e.EmailAddress = readString(d)
}

// OneOff reports whether the entry ID carries an inline address.
func (e *EntryID) OneOff() bool { return e.oneOff }

func (e *EntryID) Blocks() *block.Node {
	root := block.NewNode("EntryId")
	root.Add("abFlags", e.Flags)
	root.Add("ProviderUID", e.ProviderUID)
	switch {
	case e.oneOff:
		root.Add("Version", e.Version)
		root.Add("Flags", e.OneOffFlags)
		root.Add("DisplayName", e.DisplayName)
		root.Add("AddressType", e.AddressType)
		root.Add("EmailAddress", e.EmailAddress)
	case e.ProviderUID.Present():
		root.Add("ProviderData", e.ProviderData)
	}
	return root
}
