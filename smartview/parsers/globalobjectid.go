package parsers

import "github.com/joshuapare/propkit/smartview/block"

// GlobalObjectID decodes a calendar global object ID:
//
//	ByteArrayID    16 bytes
//	YH, YL         u8 (year of the instance, high and low byte)
//	Month, Day     u8
//	CreationTime   FILETIME
//	X              8 bytes (reserved)
//	Size           u32
//	Data           Size bytes
type GlobalObjectID struct {
	ByteArrayID  block.Field[[]byte]
	YH           block.Field[uint8]
	YL           block.Field[uint8]
	Month        block.Field[uint8]
	Day          block.Field[uint8]
	CreationTime block.Field[uint64]
	X            block.Field[[]byte]
	Size         block.Field[uint32]
	Data         block.Field[[]byte]
}

const globalObjectIDArraySize = 16

func (g *GlobalObjectID) Parse(d *block.Decoder) {
	g.ByteArrayID = d.Bytes(globalObjectIDArraySize)
	g.YH = d.U8()
	g.YL = d.U8()
	g.Month = d.U8()
	g.Day = d.U8()
	g.CreationTime = d.FileTime()
	g.X = d.Bytes(8)
	g.Size = d.U32()
	g.Data = d.Blob(int(g.Size.Get()))
}

func (g *GlobalObjectID) Blocks() *block.Node {
	root := block.NewNode("GlobalObjectId")
	root.Add("ByteArrayID", g.ByteArrayID)
	root.Add("YH", g.YH)
	root.Add("YL", g.YL)
	root.Add("Month", g.Month)
	root.Add("Day", g.Day)
	root.Add("CreationTime", g.CreationTime)
	root.Add("X", g.X)
	root.Add("Size", g.Size)
	root.Add("Data", g.Data)
	return root
}
