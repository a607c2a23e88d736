package parsers

import "github.com/joshuapare/propkit/smartview/block"

// FlatEntryList decodes a list of entry IDs:
//
//	cEntries   u32
//	cbEntries  u32
//	entries    { cb u32, EntryId[cb], pad to 4 bytes }[cEntries]
//
// Each entry ID is parsed with EntryID inside a window of exactly cb bytes,
// so a broken entry is reported on its own node without stopping the list.
type FlatEntryList struct {
	Count     block.Field[uint32]
	TotalSize block.Field[uint32]
	Entries   []FlatEntry
}

// FlatEntry is one list element.
type FlatEntry struct {
	Size    block.Field[uint32]
	EntryID *block.Node
	Padding block.Field[[]byte]
}

const flatEntryAlign = 4

func (l *FlatEntryList) Parse(d *block.Decoder) {
	l.Count = d.U32()
	l.TotalSize = d.U32()
	n := d.Count(l.Count, 4)
	l.Entries = make([]FlatEntry, 0, n)
	for i := 0; i < n && d.OK(); i++ {
		var e FlatEntry
		e.Size = d.U32()
		if !d.OK() {
			l.Entries = append(l.Entries, e)
			break
		}
		size := int(e.Size.Get())
		if sub, ok := d.Sub(size); ok {
			e.EntryID = Run(&EntryID{}, sub)
		}
		if pad := padding(size); pad > 0 && d.OK() && d.Remaining() > 0 {
			e.Padding = d.Bytes(min(pad, d.Remaining()))
		}
		l.Entries = append(l.Entries, e)
	}
}

func padding(size int) int {
	return (flatEntryAlign - size%flatEntryAlign) % flatEntryAlign
}

func (l *FlatEntryList) Blocks() *block.Node {
	root := block.NewNode("FlatEntryList")
	root.Add("cEntries", l.Count)
	root.Add("cbEntries", l.TotalSize)
	for i, e := range l.Entries {
		n := root.AddNode(indexed("Entry", i))
		n.Add("Size", e.Size)
		n.Add("EntryId", e.EntryID)
		if e.Padding.Present() {
			n.Add("Padding", e.Padding)
		}
	}
	return root
}
