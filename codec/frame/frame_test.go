/*
NAME
  frame_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"testing"

	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/bitio"
)

// TestDecodeBandTypeDelta94Terminates checks that decoding an arbitrary
// bit stream stops at a leaf and yields a value in the excess-0x2E
// range.
func TestDecodeBandTypeDelta94Terminates(t *testing.T) {
	// Feed an arbitrary but long enough bit stream and just confirm
	// decoding terminates and returns some excess-0x2E-adjusted value
	// without running off the end of the tree.
	data := []byte{0xAA, 0x55, 0xAA, 0x55}
	r := bitio.NewReader(data, 0)
	got := decodeBandTypeDelta94(r)
	if got < -0x2E || got > 0xD1 {
		t.Errorf("decodeBandTypeDelta94() = %d, out of plausible excess-0x2E range", got)
	}
}

func TestReadHuff93Terminates(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78}
	r := bitio.NewReader(data, 0)
	sub := 2
	got := readHuff93(r, &sub)
	if got < -0x2E || got > 0xD1 {
		t.Errorf("readHuff93() = %d, out of plausible range", got)
	}
}

func TestSampleCodebook94Widths(t *testing.T) {
	for code := 1; code <= 6; code++ {
		cb, width := sampleCodebook94(code)
		if len(cb) != 1<<uint(width) {
			t.Errorf("codebook %d: len=%d, want %d for width %d", code, len(cb), 1<<uint(width), width)
		}
	}
}

func TestPropagateDelta(t *testing.T) {
	buf := make([]uint16, BufLen)
	buf[0] = 100
	buf[1] = 50
	propagateDelta(buf, 40) // previous first sample was 40, new is 50: delta=10
	if buf[1] != 40 {
		t.Errorf("buf[1] = %d, want restored previous first sample 40", buf[1])
	}
	if buf[0] != 110 {
		t.Errorf("buf[0] = %d, want 100+10=110", buf[0])
	}
}

func TestDecompressOS94DoesNotPanicOnZeroStream(t *testing.T) {
	var header [format.NumBands]byte
	for i := range header {
		header[i] = 0x7F // every band marks "no further bands".
	}
	var state StreamState
	buf := make([]uint16, BufLen)
	data := make([]byte, 16)
	r := bitio.NewReader(data, 0)
	DecompressOS94(r, header, &state, 0x8000, buf)
}

func TestDecompressOS93DoesNotPanicOnZeroStream(t *testing.T) {
	var header [format.NumBands]byte
	for i := range header {
		header[i] = 0x7F
	}
	state := NewStreamState93(0)
	buf := make([]uint16, BufLen)
	data := make([]byte, 16)
	r := bitio.NewReader(data, 0)
	DecompressOS93(r, header, &state, 0x8000, buf)
}
