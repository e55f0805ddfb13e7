/*
NAME
  builder.go

DESCRIPTION
  builder.go implements the ROM image builder: the inverse of the
  read path in rom.go, catalog.go, trackindex.go and ditable.go. It
  lays the catalog, track index and Deferred-Indirect Table Index into
  U2 starting from a caller-supplied prototype image, bin-packs every
  audio stream and track target across the available chips with a
  best-fit-decreasing strategy, and closes out U2's checksum by
  computing the two balancer bytes that zero both its even- and
  odd-offset partial sums.

  Track bodies whose final bytes depend on addresses resolved only
  after every stream has been placed (a byte-code program that
  branches to another track, or references a stream's start address)
  implement Placeable and are compiled in two passes: Size is asked
  before any placement happens, Resolve is asked again once every
  item has a final address.

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
	"sort"

	"github.com/pkg/errors"
)

// Stream is one audio bitstream to place during a build, keyed by the
// ID a track's Placeable body looks up to find its placed address.
type Stream struct {
	ID         string
	Data       []byte
	OddAligned bool // OS93a Type-1 streams are placed at odd offsets.
}

// Placeable is a track body whose final bytes are not known until
// every stream and track target has a placed address. Size must
// return the same value both times it is called; Resolve must return
// exactly that many bytes.
type Placeable interface {
	Size() int
	Resolve(addrOf func(id string) (Addr, error)) ([]byte, error)
}

// TrackTarget is one entry the builder writes into the Track Index, a
// (type, channel) header followed by a type-specific body. Exactly
// one of Body or Program should be set: Body for type-2 (deferred
// command) and type-3 (indirect selector) tracks, whose bytes are
// already final, and Program for type-1 byte-code tracks, compiled in
// two passes.
type TrackTarget struct {
	ID      string
	Header  TrackHeader
	Body    []byte
	Program Placeable
}

func (t *TrackTarget) size() int {
	if t.Program != nil {
		return 2 + t.Program.Size()
	}
	return 2 + len(t.Body)
}

// Builder assembles a ROM image from a prototype U2 header, a set of
// audio streams and a set of track targets.
type Builder struct {
	// Era selects the chip-select shift used to translate offsets
	// into logical addresses.
	Era HWEra
	// ChipSizes gives the byte capacity of each populated chip slot
	// (index 0 is U2); a zero entry means that slot is absent.
	ChipSizes [MaxChips]int
	// Prototype is copied verbatim into the start of U2 before the
	// catalog block; it carries the fixed boot vectors and any
	// bytes the hardware expects ahead of the catalog.
	Prototype []byte
	// CatalogOffset is the byte offset within U2 at which the
	// catalog block begins, immediately after Prototype.
	CatalogOffset int
	Streams       []Stream
	// Tracks is indexed by track number: Tracks[i] is track i.
	Tracks   []TrackTarget
	DITables []DITable
}

// placedItem is one bin-packed blob (a stream or a track target)
// tracked during layout.
type placedItem struct {
	id         string
	size       int
	oddAligned bool
	chip       int
	offset     int
}

type chipState struct {
	capacity int
	offset   int
}

// alignOffset rounds offset up to satisfy the even/odd parity odd
// requires.
func alignOffset(offset int, odd bool) int {
	if (offset%2 == 1) != odd {
		offset++
	}
	return offset
}

// bestFit chooses the chip with the least leftover capacity that can
// still hold size bytes aligned per odd, or -1 if none can.
func bestFit(chips []chipState, size int, odd bool) int {
	best := -1
	bestLeftover := -1
	for i := range chips {
		start := alignOffset(chips[i].offset, odd)
		leftover := chips[i].capacity - start - size
		if leftover < 0 {
			continue
		}
		if best == -1 || leftover < bestLeftover {
			best, bestLeftover = i, leftover
		}
	}
	return best
}

// Image is a built ROM image, one byte slice per chip (index 0 is
// U2), ready to flash or wrap with NewROM.
type Image struct {
	Chips [][]byte
}

// Build assembles a complete ROM image, bin-packing every stream and
// track target across b.ChipSizes with a best-fit-decreasing
// strategy, emitting the catalog, track index and DI Table Index into
// U2, and zeroing U2's checksum with the two balancer bytes.
func (b *Builder) Build() (*Image, error) {
	chips := make([]chipState, MaxChips)
	nChips := 0
	for i, sz := range b.ChipSizes {
		chips[i].capacity = sz
		if sz > 0 {
			nChips++
		}
	}
	if nChips == 0 {
		return nil, errors.New("rom: builder has no populated chips")
	}

	images := make([][]byte, MaxChips)
	for i, sz := range b.ChipSizes {
		if sz > 0 {
			images[i] = make([]byte, sz)
		}
	}

	// U2's prototype and catalog/track-index/DI-index region is laid
	// out first and is never part of the bin-packed pool: it must
	// start at a fixed, known offset for the hardware's reset vector
	// to find it.
	if len(b.Prototype) > b.CatalogOffset {
		return nil, errors.Errorf("rom: prototype (%d bytes) overruns catalog offset %d", len(b.Prototype), b.CatalogOffset)
	}
	if images[0] == nil {
		return nil, errors.New("rom: U2 (chip 0) must be populated")
	}
	copy(images[0], b.Prototype)

	trackIndexOff := b.CatalogOffset + catalogFixedSize
	diIndexOff := trackIndexOff + 3*len(b.Tracks)
	diTablesOff := diIndexOff + 3*len(b.DITables)
	reserved := diTablesOff
	for _, t := range b.DITables {
		reserved += t.EncodedSize()
	}
	if reserved > len(images[0]) {
		return nil, errors.Errorf("rom: catalog/track-index/DI region (%d bytes) overruns U2 (%d bytes)", reserved, len(images[0]))
	}
	chips[0].offset = reserved

	// maxSingle is the largest single item the builder will place: a
	// stream or track body that exceeds the largest chip's capacity
	// less 16 bytes of slack cannot be split across chips, so it
	// fails the build outright rather than silently truncating.
	maxCap := 0
	for _, c := range chips {
		if c.capacity > maxCap {
			maxCap = c.capacity
		}
	}
	maxSingle := maxCap - 16

	// First pass: collect every item to place with its final size.
	// Track-index slots are reserved in placement order below, so
	// Program.Size() must already reflect the program's final length
	// (no further growth once addresses are resolved).
	var items []placedItem
	for _, s := range b.Streams {
		items = append(items, placedItem{id: "stream:" + s.ID, size: len(s.Data), oddAligned: s.OddAligned})
	}
	for _, t := range b.Tracks {
		items = append(items, placedItem{id: "track:" + t.ID, size: t.size()})
	}
	for _, it := range items {
		if it.size > maxSingle {
			return nil, errors.Errorf("rom: item %q (%d bytes) exceeds the largest chip's usable capacity (%d bytes)", it.id, it.size, maxSingle)
		}
	}

	// Best-fit-decreasing: largest items first, each placed in
	// whichever chip leaves the least room to spare.
	sort.SliceStable(items, func(i, j int) bool { return items[i].size > items[j].size })
	addrs := make(map[string]Addr, len(items))
	for i := range items {
		it := &items[i]
		chipIdx := bestFit(chips, it.size, it.oddAligned)
		if chipIdx < 0 {
			return nil, errors.Errorf("rom: no chip (of %d configured) has room for item %q (%d bytes)", nChips, it.id, it.size)
		}
		start := alignOffset(chips[chipIdx].offset, it.oddAligned)
		it.chip, it.offset = chipIdx, start
		chips[chipIdx].offset = start + it.size
		addrs[it.id] = ToLinear(chipIdx, uint32(start), b.Era)
	}

	addrOf := func(id string) (Addr, error) {
		a, ok := addrs["stream:"+id]
		if ok {
			return a, nil
		}
		a, ok = addrs["track:"+id]
		if !ok {
			return 0, errors.Errorf("rom: unresolved reference to id %q", id)
		}
		return a, nil
	}

	// Write every stream now; none of its bytes depend on other
	// addresses.
	byID := make(map[string]placedItem, len(items))
	for _, it := range items {
		byID[it.id] = it
	}
	for _, s := range b.Streams {
		it := byID["stream:"+s.ID]
		copy(images[it.chip][it.offset:], s.Data)
	}

	// Second pass: write every track target, resolving type-1
	// programs now that every address is known.
	trackIndex := make(TrackIndex, len(b.Tracks))
	for i, t := range b.Tracks {
		it := byID["track:"+t.ID]
		trackIndex[i] = ToLinear(it.chip, uint32(it.offset), b.Era)
		dst := images[it.chip][it.offset:]
		dst[0], dst[1] = t.Header.Type, t.Header.Channel
		if t.Program != nil {
			body, err := t.Program.Resolve(addrOf)
			if err != nil {
				return nil, errors.Wrapf(err, "rom: resolving track %q", t.ID)
			}
			if len(body) != t.Program.Size() {
				return nil, errors.Errorf("rom: track %q resolved to %d bytes, reserved %d", t.ID, len(body), t.Program.Size())
			}
			copy(dst[2:], body)
		} else {
			copy(dst[2:], t.Body)
		}
	}
	WriteTrackIndex(images[0], trackIndexOff, trackIndex)

	diTableIndex := make(DITableIndex, len(b.DITables))
	off := diTablesOff
	for i, tbl := range b.DITables {
		diTableIndex[i] = ToLinear(0, uint32(off), b.Era)
		tbl.Encode(images[0][off:])
		off += tbl.EncodedSize()
	}
	for i, a := range diTableIndex {
		writeAddr24(images[0][diIndexOff+3*i:diIndexOff+3*i+3], a)
	}

	// Populate the ROM table: U2's checksum is zero by fiat (its
	// integrity is instead guaranteed by the balancer bytes below);
	// every other chip's checksum is its actual even/odd byte-sum
	// split.
	cat := &Catalog{
		TrackIndexPtr:   ToLinear(0, uint32(trackIndexOff), b.Era),
		DITableIndexPtr: ToLinear(0, uint32(diIndexOff), b.Era),
		TrackCount:      uint16(len(b.Tracks)),
	}
	for i, sz := range b.ChipSizes {
		if sz == 0 {
			continue
		}
		cat.Chips[i].Size4K = uint16(sz / 4096)
		cat.Chips[i].ChipSelect = byte(i)
		if i == 0 {
			cat.Chips[i].Checksum = 0
			continue
		}
		even, odd := EvenOddSums(images[i])
		cat.Chips[i].Checksum = Checksum(even, odd)
	}
	if err := WriteCatalog(images[0], b.CatalogOffset, cat); err != nil {
		return nil, errors.Wrap(err, "rom: writing catalog")
	}

	// Balance U2's own checksum last, once every other byte in it is
	// final: the balancer slot itself reads as zero going into this
	// sum, exactly as EvenOddSums sees it now.
	even, odd := EvenOddSums(images[0])
	balEven, balOdd := BalancerBytes(even, odd)
	cat.BalancerEven, cat.BalancerOdd = balEven, balOdd
	if err := WriteCatalog(images[0], b.CatalogOffset, cat); err != nil {
		return nil, errors.Wrap(err, "rom: writing balanced catalog")
	}

	return &Image{Chips: images}, nil
}
