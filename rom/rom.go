/*
NAME
  rom.go

DESCRIPTION
  rom.go defines the ROM type: a read-only view over the up-to-8 chip
  images (U2..U9) that a DCS board's address space maps onto, indexed
  uniformly by logical 24-bit Addr regardless of which physical chip
  backs a given address. The decoder and track interpreter never
  mutate ROM bytes; all reads flow
  through this type so the chip/offset split of §4.3 is centralized in
  one place.

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

// ROM is a read-only view over a set of chip images addressed by
// logical 24-bit Addr.
type ROM struct {
	Era   HWEra
	Chips [][]byte // index 0 is U2.
}

// NewROM wraps chip images (index 0 = U2) as a ROM for the given
// hardware era.
func NewROM(era HWEra, chips [][]byte) *ROM {
	return &ROM{Era: era, Chips: chips}
}

// resolve locates the chip image and in-chip offset for addr.
func (r *ROM) resolve(addr Addr) ([]byte, uint32, error) {
	chip, off := FromLinear(addr, r.Era)
	if chip < 0 || chip >= len(r.Chips) {
		return nil, 0, errors.Errorf("rom: address %#x selects chip %d, have %d chips", addr, chip, len(r.Chips))
	}
	img := r.Chips[chip]
	if off >= uint32(len(img)) {
		return nil, 0, errors.Errorf("rom: address %#x offset %#x beyond chip %d size %#x", addr, off, chip, len(img))
	}
	return img, off, nil
}

// Byte reads a single byte at addr.
func (r *ROM) Byte(addr Addr) (byte, error) {
	img, off, err := r.resolve(addr)
	if err != nil {
		return 0, err
	}
	return img[off], nil
}

// Bytes reads n bytes starting at addr. The range must lie entirely
// within one chip.
func (r *ROM) Bytes(addr Addr, n int) ([]byte, error) {
	img, off, err := r.resolve(addr)
	if err != nil {
		return nil, err
	}
	if int(off)+n > len(img) {
		return nil, errors.Errorf("rom: read of %d bytes at %#x overruns chip boundary", n, addr)
	}
	return img[off : int(off)+n], nil
}

// Word reads a big-endian 16-bit value at addr.
func (r *ROM) Word(addr Addr) (uint16, error) {
	b, err := r.Bytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Addr24 reads a 24-bit logical address at addr (big-endian, as every
// pointer field in the ROM layout is stored).
func (r *ROM) Addr24(addr Addr) (Addr, error) {
	b, err := r.Bytes(addr, 3)
	if err != nil {
		return 0, err
	}
	return readAddr24(b), nil
}

// U2 returns the catalog chip image.
func (r *ROM) U2() []byte {
	if len(r.Chips) == 0 {
		return nil
	}
	return r.Chips[0]
}

// ChipTail returns the byte slice of addr's chip image from addr's
// in-chip offset to the end of that chip, for callers (the bit-stream
// reader driving a channel's packed frame data) that read forward
// from a starting address without knowing the length in advance.
// Every stream the builder places fits entirely within one chip, so this is always enough
// bytes to decode the rest of the stream.
func (r *ROM) ChipTail(addr Addr) ([]byte, error) {
	img, off, err := r.resolve(addr)
	if err != nil {
		return nil, err
	}
	return img[off:], nil
}
