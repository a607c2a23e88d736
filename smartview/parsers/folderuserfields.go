package parsers

import "github.com/joshuapare/propkit/smartview/block"

// FolderUserFields decodes a folder user field stream (PidTagUserFields):
//
//	FolderUserFieldsAnsiCount      u32
//	FieldDefinitionA[count]        { FieldType u32, FieldNameLength u16, FieldName char[len], Common }
//	FolderUserFieldsUnicodeCount   u32
//	FieldDefinitionW[count]        { FieldType u32, FieldNameLength u16, FieldName wchar[len], Common }
//
// Common:
//
//	PropSetGuid        GUID
//	fcapm              u32
//	dwString           u32
//	dwBitmap           u32
//	dwDisplay          u32
//	iFmt               u32
//	wszFormulaLength   u16
//	wszFormula         wchar[len]
//
// The flag words in Common are kept as opaque u32 values.
type FolderUserFields struct {
	AnsiCount    block.Field[uint32]
	Ansi         []FolderFieldDefinition
	UnicodeCount block.Field[uint32]
	Unicode      []FolderFieldDefinition
}

// FolderFieldDefinition is one entry of either section; only the width of
// FieldName differs between them.
type FolderFieldDefinition struct {
	FieldType       block.Field[uint32]
	FieldNameLength block.Field[uint16]
	FieldName       block.Field[string]
	Common          FolderFieldDefinitionCommon
}

// FolderFieldDefinitionCommon is the tail shared by ANSI and Unicode entries.
type FolderFieldDefinitionCommon struct {
	PropSetGUID   block.Field[block.GUID]
	Fcapm         block.Field[uint32]
	DwString      block.Field[uint32]
	DwBitmap      block.Field[uint32]
	DwDisplay     block.Field[uint32]
	IFmt          block.Field[uint32]
	FormulaLength block.Field[uint16]
	Formula       block.Field[string]
}

// minFieldDefinitionSize is an entry with an empty name and formula.
const minFieldDefinitionSize = 4 + 2 + block.GUIDSize + 5*4 + 2

type nameReader func(d *block.Decoder, units int) block.Field[string]

func (p *FolderUserFields) Parse(d *block.Decoder) {
	p.AnsiCount = d.U32()
	p.Ansi = parseFieldDefinitions(d, p.AnsiCount, (*block.Decoder).ANSI)
	p.UnicodeCount = d.U32()
	p.Unicode = parseFieldDefinitions(d, p.UnicodeCount, (*block.Decoder).Unicode)
}

func parseFieldDefinitions(d *block.Decoder, count block.Field[uint32], readName nameReader) []FolderFieldDefinition {
	n := d.Count(count, minFieldDefinitionSize)
	defs := make([]FolderFieldDefinition, 0, n)
	for i := 0; i < n && d.OK(); i++ {
		var def FolderFieldDefinition
		def.FieldType = d.U32()
		def.FieldNameLength = d.U16()
		def.FieldName = readName(d, int(def.FieldNameLength.Get()))
		def.Common = parseFieldDefinitionCommon(d)
		defs = append(defs, def)
	}
	return defs
}

func parseFieldDefinitionCommon(d *block.Decoder) FolderFieldDefinitionCommon {
	var c FolderFieldDefinitionCommon
	c.PropSetGUID = d.GUID()
	c.Fcapm = d.U32()
	c.DwString = d.U32()
	c.DwBitmap = d.U32()
	c.DwDisplay = d.U32()
	c.IFmt = d.U32()
	c.FormulaLength = d.U16()
	c.Formula = d.Unicode(int(c.FormulaLength.Get()))
	return c
}

func (p *FolderUserFields) Blocks() *block.Node {
	root := block.NewNode("FolderUserFieldStream")
	root.Add("FolderUserFieldsAnsiCount", p.AnsiCount)
	addFieldDefinitions(root.AddNode("FieldDefinitionsA"), "FieldDefinitionA", p.Ansi)
	root.Add("FolderUserFieldsUnicodeCount", p.UnicodeCount)
	addFieldDefinitions(root.AddNode("FieldDefinitionsW"), "FieldDefinitionW", p.Unicode)
	return root
}

func addFieldDefinitions(list *block.Node, label string, defs []FolderFieldDefinition) {
	for i, def := range defs {
		n := list.AddNode(indexed(label, i))
		n.Add("FieldType", def.FieldType)
		n.Add("FieldNameLength", def.FieldNameLength)
		n.Add("FieldName", def.FieldName)
		c := def.Common
		n.Add("PropSetGuid", c.PropSetGUID)
		n.Add("fcapm", c.Fcapm)
		n.Add("dwString", c.DwString)
		n.Add("dwBitmap", c.DwBitmap)
		n.Add("dwDisplay", c.DwDisplay)
		n.Add("iFmt", c.IFmt)
		n.Add("wszFormulaLength", c.FormulaLength)
		n.Add("wszFormula", c.Formula)
	}
}
