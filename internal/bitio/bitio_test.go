/*
NAME
  bitio_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitio

import "testing"

// TestReaderGet reads 4-, 2-, 4- and 6-bit fields MSB-first from
// source []byte{0x8f, 0xe3}, which is 1000 1111, 1110 0011.
func TestReaderGet(t *testing.T) {
	r := NewReader([]byte{0x8f, 0xe3}, 0)
	cases := []struct {
		n    int
		want uint32
	}{
		{4, 0x8},
		{2, 0x3},
		{4, 0xf},
		{6, 0x23},
	}
	for _, c := range cases {
		if got := r.Get(c.n); got != c.want {
			t.Errorf("Get(%d) = %#x, want %#x", c.n, got, c.want)
		}
	}
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xAB, 0xCD}, 0)
	first := r.Peek(8)
	second := r.Peek(8)
	if first != second || first != 0xAB {
		t.Errorf("Peek not idempotent: %#x then %#x", first, second)
	}
	r.Consume(8)
	if got := r.Get(8); got != 0xCD {
		t.Errorf("Get after consume = %#x, want 0xCD", got)
	}
}

func TestReaderGetSigned(t *testing.T) {
	// 0b1111_1000 as a 5-bit field starting at bit 0: 11111 = -1.
	r := NewReader([]byte{0xF8}, 0)
	if got := r.GetSigned(5); got != -1 {
		t.Errorf("GetSigned(5) = %d, want -1", got)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x8, 4)
	w.WriteBits(0x3, 2)
	w.WriteBits(0xf, 4)
	w.WriteBits(0x23, 6)
	got := w.Close()
	want := []byte{0x8f, 0xe3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Close() = %#v, want %#v", got, want)
	}

	r := NewReader(got, 0)
	if v := r.Get(4); v != 0x8 {
		t.Errorf("round-trip Get(4) = %#x, want 0x8", v)
	}
}

func TestWriterPadsFinalByte(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x1, 1)
	got := w.Close()
	if len(got) != 1 || got[0] != 0x80 {
		t.Errorf("Close() after 1 bit = %#v, want [0x80]", got)
	}
}

func TestReaderPeekPastEndIsZeroPadded(t *testing.T) {
	r := NewReader([]byte{0xFF}, 0)
	got := r.Peek(16)
	if got != 0xFF00 {
		t.Errorf("Peek(16) past end = %#x, want 0xFF00", got)
	}
}
