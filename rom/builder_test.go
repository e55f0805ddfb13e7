/*
NAME
  builder_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rom

import (
	"bytes"
	"testing"
)

// fixedProgram is a Placeable whose body is fixed length but whose
// bytes reference another item's resolved address, for exercising the
// builder's two-pass track compilation.
type fixedProgram struct {
	n      int
	target string
}

func (p fixedProgram) Size() int { return p.n }

func (p fixedProgram) Resolve(addrOf func(id string) (Addr, error)) ([]byte, error) {
	a, err := addrOf(p.target)
	if err != nil {
		return nil, err
	}
	b := make([]byte, p.n)
	b[0], b[1], b[2] = byte(a>>16), byte(a>>8), byte(a)
	return b, nil
}

func newTestBuilder() *Builder {
	return &Builder{
		Era:           OriginalDCS,
		ChipSizes:     [MaxChips]int{0x2000, 0x2000, 0x1000},
		Prototype:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
		CatalogOffset: 16,
	}
}

func TestBuilderPlacesStreamsAndChecksumsU2(t *testing.T) {
	b := newTestBuilder()
	b.Streams = []Stream{
		{ID: "a", Data: bytes.Repeat([]byte{0x11}, 100)},
		{ID: "b", Data: bytes.Repeat([]byte{0x22}, 50)},
	}
	b.Tracks = []TrackTarget{
		{ID: "t0", Header: TrackHeader{Type: TrackTypeDeferred, Channel: 0}, Body: []byte{0x00, 0x01}},
	}

	img, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(img.Chips) != MaxChips {
		t.Fatalf("got %d chip slots, want %d", len(img.Chips), MaxChips)
	}
	if !bytes.Equal(img.Chips[0][:4], b.Prototype) {
		t.Errorf("prototype not copied verbatim: got %x", img.Chips[0][:4])
	}

	rom := NewROM(OriginalDCS, img.Chips)
	cat, err := ReadCatalog(img.Chips[0], b.CatalogOffset)
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	if cat.TrackCount != 1 {
		t.Errorf("TrackCount = %d, want 1", cat.TrackCount)
	}
	idx, err := ReadTrackIndex(rom, cat.TrackIndexPtr, int(cat.TrackCount))
	if err != nil {
		t.Fatalf("ReadTrackIndex: %v", err)
	}
	hdr, body, err := ReadTrackTarget(rom, idx[0])
	if err != nil {
		t.Fatalf("ReadTrackTarget: %v", err)
	}
	if hdr.Type != TrackTypeDeferred {
		t.Errorf("track header type = %d, want %d", hdr.Type, TrackTypeDeferred)
	}
	cmd, err := ReadDeferredCommand(rom, body)
	if err != nil {
		t.Fatalf("ReadDeferredCommand: %v", err)
	}
	if cmd != 1 {
		t.Errorf("deferred command = %d, want 1", cmd)
	}

	even, odd := EvenOddSums(img.Chips[0])
	if even != 0 || odd != 0 {
		t.Errorf("U2 checksum not balanced: even=%d odd=%d, want 0,0", even, odd)
	}
}

func TestBuilderResolvesTwoPassProgram(t *testing.T) {
	b := newTestBuilder()
	b.Streams = []Stream{{ID: "voice", Data: bytes.Repeat([]byte{0x55}, 40)}}
	b.Tracks = []TrackTarget{
		{ID: "prog", Header: TrackHeader{Type: TrackTypeProgram, Channel: 2}, Program: fixedProgram{n: 4, target: "voice"}},
	}

	img, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rom := NewROM(OriginalDCS, img.Chips)
	cat, err := ReadCatalog(img.Chips[0], b.CatalogOffset)
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	idx, err := ReadTrackIndex(rom, cat.TrackIndexPtr, 1)
	if err != nil {
		t.Fatalf("ReadTrackIndex: %v", err)
	}
	_, body, err := ReadTrackTarget(rom, idx[0])
	if err != nil {
		t.Fatalf("ReadTrackTarget: %v", err)
	}
	gotAddr, err := rom.Addr24(body)
	if err != nil {
		t.Fatalf("Addr24: %v", err)
	}
	if gotAddr.IsNull() {
		t.Error("resolved program address is null")
	}
}

func TestBuilderOverflowErrors(t *testing.T) {
	b := newTestBuilder()
	b.Streams = []Stream{{ID: "huge", Data: make([]byte, 0x10000)}}
	if _, err := b.Build(); err == nil {
		t.Error("Build with an oversized stream should fail")
	}
}

func TestBuilderOddAlignment(t *testing.T) {
	b := newTestBuilder()
	b.Streams = []Stream{
		{ID: "even", Data: []byte{1, 2, 3}},
		{ID: "odd", Data: []byte{4, 5, 6}, OddAligned: true},
	}
	img, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_ = img
}
