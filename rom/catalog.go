/*
NAME
  catalog.go

DESCRIPTION
  catalog.go implements the DCS ROM catalog: the
  fixed-offset table in U2 describing each populated chip, followed by
  pointers to the Track Index and Deferred-Indirect Table Index and
  the track count, closed by a zero terminator. The catalog's two
  balancer bytes are chosen so that U2's even- and odd-offset byte
  sums are each zero mod 256.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rom

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ChipEntry is one 6-byte ROM-table row: chip capacity in 4K units,
// the chip-select code written to hardware, and a checksum (by fiat
// zero for U2; for U3+ the actual even/odd byte-sum pair, see
// checksum.go).
type ChipEntry struct {
	Size4K     uint16
	ChipSelect uint8
	Checksum   uint16
}

// chipEntrySize is the byte size of one ROM-table row.
const chipEntrySize = 6

// Catalog is the parsed contents of the fixed-offset catalog block in
// U2.
type Catalog struct {
	Chips           [MaxChips]ChipEntry
	BalancerEven    byte
	BalancerOdd     byte
	TrackIndexPtr   Addr
	DITableIndexPtr Addr
	TrackCount      uint16
}

// catalogFixedSize is the byte size of the catalog block: 8 chip
// entries, a 2-byte zero terminator, 2 balancer bytes, two 3-byte
// pointers, and a 2-byte track count.
const catalogFixedSize = MaxChips*chipEntrySize + 2 + 2 + 3 + 3 + 2

// ReadCatalog parses a Catalog from u2 starting at offset.
func ReadCatalog(u2 []byte, offset int) (*Catalog, error) {
	if offset < 0 || offset+catalogFixedSize > len(u2) {
		return nil, errors.Errorf("rom: catalog at offset %d does not fit in %d-byte image", offset, len(u2))
	}
	c := &Catalog{}
	p := offset
	for i := range c.Chips {
		c.Chips[i] = ChipEntry{
			Size4K:     binary.BigEndian.Uint16(u2[p : p+2]),
			ChipSelect: u2[p+2],
			Checksum:   binary.BigEndian.Uint16(u2[p+3 : p+5]),
		}
		p += chipEntrySize
	}
	// Two-byte zero terminator.
	p += 2
	c.BalancerEven, c.BalancerOdd = u2[p], u2[p+1]
	p += 2
	c.TrackIndexPtr = readAddr24(u2[p : p+3])
	p += 3
	c.DITableIndexPtr = readAddr24(u2[p : p+3])
	p += 3
	c.TrackCount = binary.BigEndian.Uint16(u2[p : p+2])
	return c, nil
}

// WriteCatalog serializes c into u2 at offset, which must already be
// large enough.
func WriteCatalog(u2 []byte, offset int, c *Catalog) error {
	if offset < 0 || offset+catalogFixedSize > len(u2) {
		return errors.Errorf("rom: catalog at offset %d does not fit in %d-byte image", offset, len(u2))
	}
	p := offset
	for _, ch := range c.Chips {
		binary.BigEndian.PutUint16(u2[p:p+2], ch.Size4K)
		u2[p+2] = ch.ChipSelect
		binary.BigEndian.PutUint16(u2[p+3:p+5], ch.Checksum)
		p += chipEntrySize
	}
	u2[p], u2[p+1] = 0, 0
	p += 2
	u2[p], u2[p+1] = c.BalancerEven, c.BalancerOdd
	p += 2
	writeAddr24(u2[p:p+3], c.TrackIndexPtr)
	p += 3
	writeAddr24(u2[p:p+3], c.DITableIndexPtr)
	p += 3
	binary.BigEndian.PutUint16(u2[p:p+2], c.TrackCount)
	return nil
}

func readAddr24(b []byte) Addr {
	return Addr(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
}

func writeAddr24(b []byte, a Addr) {
	b[0] = byte(a >> 16)
	b[1] = byte(a >> 8)
	b[2] = byte(a)
}
