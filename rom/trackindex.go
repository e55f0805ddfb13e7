/*
NAME
  trackindex.go

DESCRIPTION
  trackindex.go implements the Track Index and the (type, channel)
  header every track target begins with. A
  track's body is interpreted differently per type: type 1 is a
  byte-code program read directly from ROM by the track interpreter
  (package track); type 2 is a 16-bit deferred command code; type 3 is
  a deferred-indirect selector (variable id << 8 | table id).

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

// Track target types.
const (
	TrackTypeProgram  = 1 // byte-code program.
	TrackTypeDeferred = 2 // 16-bit command code.
	TrackTypeIndirect = 3 // (variable<<8 | table) selector.
)

// TrackIndex is the array of 24-bit pointers, one per track number.
type TrackIndex []Addr

// ReadTrackIndex reads count entries starting at addr.
func ReadTrackIndex(r *ROM, addr Addr, count int) (TrackIndex, error) {
	idx := make(TrackIndex, count)
	for i := 0; i < count; i++ {
		a, err := r.Addr24(addr + Addr(3*i))
		if err != nil {
			return nil, errors.Wrapf(err, "rom: reading track index entry %d", i)
		}
		idx[i] = a
	}
	return idx, nil
}

// WriteTrackIndex serializes idx into dst starting at byte offset off.
func WriteTrackIndex(dst []byte, off int, idx TrackIndex) {
	for i, a := range idx {
		writeAddr24(dst[off+3*i:off+3*i+3], a)
	}
}

// TrackHeader is the (type, channel) pair every track target begins
// with.
type TrackHeader struct {
	Type    byte
	Channel byte
}

// ReadTrackTarget reads the (type, channel) header at a track's
// pointer and returns it along with the address immediately following
// the header (where the type-specific body begins).
func ReadTrackTarget(r *ROM, ptr Addr) (TrackHeader, Addr, error) {
	b, err := r.Bytes(ptr, 2)
	if err != nil {
		return TrackHeader{}, 0, errors.Wrap(err, "rom: reading track target header")
	}
	return TrackHeader{Type: b[0], Channel: b[1]}, ptr + 2, nil
}

// ReadDeferredCommand reads a type-2 track's 16-bit command code.
func ReadDeferredCommand(r *ROM, body Addr) (uint16, error) {
	return r.Word(body)
}

// IndirectSelector is a type-3 track's (variable, table) pair.
type IndirectSelector struct {
	Variable byte
	Table    byte
}

// ReadIndirectSelector reads and decodes a type-3 track's selector
// word as (variable<<8 | table).
func ReadIndirectSelector(r *ROM, body Addr) (IndirectSelector, error) {
	w, err := r.Word(body)
	if err != nil {
		return IndirectSelector{}, err
	}
	return IndirectSelector{Variable: byte(w >> 8), Table: byte(w)}, nil
}
