/*
NAME
  ditable.go

DESCRIPTION
  ditable.go implements the Deferred-Indirect Table Index and the
  Deferred-Indirect Tables it points to. Each table is a
  variable-length array of 16-bit track numbers, selected at playback
  time by a runtime variable (opcode 0x05, type 3 tracks). Table
  length is not implied by any sentinel track number (track number 0
  is valid), so each table is stored length-prefixed: a 16-bit entry
  count followed by that many 16-bit track numbers; see DESIGN.md for
  the reasoning.

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

import "github.com/pkg/errors"

// DITableIndex is the array of pointers to Deferred-Indirect Tables.
// An empty slot is NullAddr (0xFFFFFF).
type DITableIndex []Addr

// ReadDITableIndex reads count entries starting at addr.
func ReadDITableIndex(r *ROM, addr Addr, count int) (DITableIndex, error) {
	idx, err := ReadTrackIndex(r, addr, count)
	return DITableIndex(idx), err
}

// DITable is a Deferred-Indirect Table: an ordered list of track
// numbers selectable by a runtime variable.
type DITable []uint16

// ReadDITable reads the length-prefixed table at addr.
func ReadDITable(r *ROM, addr Addr) (DITable, error) {
	n, err := r.Word(addr)
	if err != nil {
		return nil, errors.Wrap(err, "rom: reading DI table length")
	}
	t := make(DITable, n)
	for i := range t {
		w, err := r.Word(addr + 2 + Addr(2*i))
		if err != nil {
			return nil, errors.Wrapf(err, "rom: reading DI table entry %d", i)
		}
		t[i] = w
	}
	return t, nil
}

// EncodedSize returns the byte size of t once length-prefixed.
func (t DITable) EncodedSize() int { return 2 + 2*len(t) }

// Encode serializes t (length-prefixed) into dst, which must be at
// least t.EncodedSize() bytes.
func (t DITable) Encode(dst []byte) {
	dst[0] = byte(len(t) >> 8)
	dst[1] = byte(len(t))
	for i, v := range t {
		dst[2+2*i] = byte(v >> 8)
		dst[2+2*i+1] = byte(v)
	}
}

// Lookup returns t[i], reporting an error if i is out of range
// (invoked by opcode 0x05's type-3 deferred-indirect lookup,
// Catalog[DITableIndex[table]][variable]).
func (t DITable) Lookup(i byte) (uint16, error) {
	if int(i) >= len(t) {
		return 0, errors.Errorf("rom: DI table index %d out of range (len %d)", i, len(t))
	}
	return t[i], nil
}
