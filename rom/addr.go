/*
NAME
  addr.go

DESCRIPTION
  addr.go implements the DCS ROM address model: the
  logical 24-bit address space used throughout track indices, stream
  pointers and deferred-indirect tables is split into a chip selector
  and an in-chip offset. Two hardware eras use different selector
  widths: the original 1993-95 DCS boards decode 4 chip-select bits
  from the top of the address (1 MB per chip, 8 chips, U2-U9), while
  the later DCS-95 board uses 3 bits (also 8 chips, but the remaining
  low bits address up to 2 MB per chip in some configurations -- the
  chip-select shift, not the chip capacity, is what differs here).

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rom implements the DCS ROM image data model: the address
// model, catalog, track index, deferred-indirect table index and
// stream header layouts, plus the ROM image builder.
package rom

import (
	"fmt"

	"github.com/pkg/errors"
)

// HWEra selects which chip-select shift a logical address uses.
type HWEra int

const (
	// OriginalDCS is the 1993-95 board: chip-select shift of 20.
	OriginalDCS HWEra = iota
	// DCS95 is the later board: chip-select shift of 21.
	DCS95
)

// chipSelectShift returns the bit position at which the chip selector
// begins for the given hardware era.
func (e HWEra) chipSelectShift() uint {
	if e == DCS95 {
		return 21
	}
	return 20
}

// MaxChips is the maximum number of ROM chip slots (U2..U9).
const MaxChips = 8

// NullAddr is the reserved 24-bit logical address denoting "no
// pointer" (high byte 0xFF).
const NullAddr = 0xFFFFFF

// Addr is a 24-bit logical ROM address.
type Addr uint32

// IsNull reports whether a is the null-pointer sentinel (high byte
// 0xFF).
func (a Addr) IsNull() bool { return (a>>16)&0xFF == 0xFF }

// FromLinear splits a logical address into a (chip, offset) pair for
// the given hardware era. Chip 0 is U2; chip index is (addr >> shift).
func FromLinear(addr Addr, era HWEra) (chip int, offset uint32) {
	shift := era.chipSelectShift()
	chip = int(uint32(addr) >> shift)
	offset = uint32(addr) & (1<<shift - 1)
	return chip, offset
}

// ToLinear is the inverse of FromLinear: it combines a chip index
// (0-based, chip 0 = U2) and an in-chip byte offset into a logical
// address.
func ToLinear(chip int, offset uint32, era HWEra) Addr {
	shift := era.chipSelectShift()
	return Addr(uint32(chip)<<shift | (offset & (1<<shift - 1)))
}

// ChipName returns the conventional ROM designator (U2..U9) for a
// 0-based chip index.
func ChipName(chip int) (string, error) {
	if chip < 0 || chip >= MaxChips {
		return "", errors.Errorf("rom: chip index %d out of range [0,%d)", chip, MaxChips)
	}
	return fmt.Sprintf("U%d", chip+2), nil
}
