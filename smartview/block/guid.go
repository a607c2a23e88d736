package block

import (
	"fmt"

	"github.com/joshuapare/propkit/internal/buf"
)

// GUIDSize is the encoded width of a GUID.
const GUIDSize = 16

// GUID is a Windows GUID in its on-disk byte order: the first three groups
// are little-endian, the last eight bytes are stored as-is.
type GUID [GUIDSize]byte

// String formats g as {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}.
func (g GUID) String() string {
	d1, d2, d3, d4 := buf.GUIDFields(g[:])
	return fmt.Sprintf("{%08X-%04X-%04X-%X-%X}", d1, d2, d3, d4[:2], d4[2:])
}
