package parsers

import "github.com/joshuapare/propkit/smartview/block"

// Extended folder flag ids with a known payload.
const (
	ExtendedFlagFolderFlags       = 0x01
	ExtendedFlagSearchFolderID    = 0x02
	ExtendedFlagToDoFolderVersion = 0x03
)

// ExtendedFlags decodes PidTagExtendedFolderFlags: a run of
// { Id u8, Cb u8, Data[Cb] } records that fills the buffer.
type ExtendedFlags struct {
	Flags []ExtendedFlag
}

// ExtendedFlag is one record. Exactly one of Value, GUID or Data is decoded,
// depending on Id and Cb.
type ExtendedFlag struct {
	ID    block.Field[uint8]
	Cb    block.Field[uint8]
	Value block.Field[uint32]
	GUID  block.Field[block.GUID]
	Data  block.Field[[]byte]

	payload block.Kind
}

const extendedFlagHeaderSize = 2

func (e *ExtendedFlags) Parse(d *block.Decoder) {
	for d.OK() && d.Remaining() > 0 {
		var f ExtendedFlag
		f.ID = d.U8()
		f.Cb = d.U8()
		if d.OK() {
			f.parsePayload(d)
		}
		e.Flags = append(e.Flags, f)
	}
}

func (f *ExtendedFlag) parsePayload(d *block.Decoder) {
	id, cb := f.ID.Get(), int(f.Cb.Get())
	switch {
	case (id == ExtendedFlagFolderFlags || id == ExtendedFlagToDoFolderVersion) && cb == 4:
		f.payload = block.KindUint32
		if d.Need(cb) {
			f.Value = d.U32()
		}
	case id == ExtendedFlagSearchFolderID && cb == block.GUIDSize:
		f.payload = block.KindGUID
		if d.Need(cb) {
			f.GUID = d.GUID()
		}
	default:
		f.payload = block.KindBytes
		f.Data = d.Blob(cb)
	}
}

func (e *ExtendedFlags) Blocks() *block.Node {
	root := block.NewNode("ExtendedFlags")
	for i, f := range e.Flags {
		n := root.AddNode(indexed("Flag", i))
		n.Add("Id", f.ID)
		n.Add("Cb", f.Cb)
		switch f.payload {
		case block.KindUint32:
			n.Add("Data", f.Value)
		case block.KindGUID:
			n.Add("Data", f.GUID)
		case block.KindBytes:
			n.Add("Data", f.Data)
		}
	}
	return root
}
