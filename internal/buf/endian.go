// Package buf holds the overflow-safe arithmetic and little-endian loads the
// block decoder is built on. Each load takes a slice of exactly its width and
// yields zero when handed less, so a short slice never panics.
package buf

import "encoding/binary"

// U8 returns b[0], or 0 for an empty slice.
func U8(b []byte) uint8 {
	if len(b) < 1 {
		return 0
	}
	return b[0]
}

// U16LE reads a little-endian uint16 from b.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. FILETIME values use it too.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// GUIDFields splits a 16-byte GUID into its groups. Data1..Data3 are stored
// little-endian, Data4 byte for byte.
func GUIDFields(b []byte) (data1 uint32, data2, data3 uint16, data4 [8]byte) {
	if len(b) < 16 {
		return 0, 0, 0, data4
	}
	copy(data4[:], b[8:16])
	return U32LE(b[0:4]), U16LE(b[4:6]), U16LE(b[6:8]), data4
}
