package parsers

import (
	"strconv"
	"strings"

	"github.com/joshuapare/propkit/smartview/block"
)

// SID decodes a security identifier:
//
//	Revision              u8
//	SubAuthorityCount     u8
//	IdentifierAuthority   6 bytes, big-endian
//	SubAuthority[count]   u32
type SID struct {
	Revision            block.Field[uint8]
	SubAuthorityCount   block.Field[uint8]
	IdentifierAuthority block.Field[[]byte]
	SubAuthorities      []block.Field[uint32]
}

func (s *SID) Parse(d *block.Decoder) {
	s.Revision = d.U8()
	s.SubAuthorityCount = d.U8()
	s.IdentifierAuthority = d.Bytes(6)

	count := s.SubAuthorityCount
	if !d.OK() || !count.Present() {
		return
	}
	n := int(count.Get())
	if !d.Need(n * 4) {
		return
	}
	s.SubAuthorities = make([]block.Field[uint32], 0, n)
	for i := 0; i < n; i++ {
		s.SubAuthorities = append(s.SubAuthorities, d.U32())
	}
}

// String renders the SID in S-R-I-S-S form, or "" when incomplete.
func (s *SID) String() string {
	auth, err := s.IdentifierAuthority.Value()
	if err != nil || !s.Revision.Present() || len(s.SubAuthorities) != int(s.SubAuthorityCount.Get()) {
		return ""
	}
	var ia uint64
	for _, b := range auth {
		ia = ia<<8 | uint64(b)
	}
	var sb strings.Builder
	sb.WriteString("S-")
	sb.WriteString(strconv.Itoa(int(s.Revision.Get())))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(ia, 10))
	for _, sa := range s.SubAuthorities {
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatUint(uint64(sa.Get()), 10))
	}
	return sb.String()
}

func (s *SID) Blocks() *block.Node {
	root := block.NewNode("SID")
	root.Add("Revision", s.Revision)
	root.Add("SubAuthorityCount", s.SubAuthorityCount)
	root.Add("IdentifierAuthority", s.IdentifierAuthority)
	subs := root.AddNode("SubAuthorities")
	for i, sa := range s.SubAuthorities {
		subs.Add(indexed("SubAuthority", i), sa)
	}
	return root
}
