/*
NAME
  stream.go

DESCRIPTION
  stream.go implements the Stream and Stream Header layouts
  §3: a 16-bit frame count, a 16-byte (or, for an OS93a Type-1
  exception, 1-byte) Stream Header, then the packed bit stream of
  compressed frames. It also implements a check of the packed-bit
  alignment rule; the ROM image builder does not call it and places
  streams with its own even/odd alignment instead.

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
	"github.com/pkg/errors"

	"github.com/ausocean/dcs/format"
)

// HeaderLen is the usual Stream Header size, one byte per band.
const HeaderLen = format.NumBands

// shortHeaderLen is the exceptional 1-byte header used only by OS93a
// Type-1 streams whose first header byte's high bit is set.
const shortHeaderLen = 1

// lastBandMarker is the header-byte value (low 7 bits) marking "no
// further bands".
const lastBandMarker = 0x7F

// BandHeader decodes one Stream Header byte.
type BandHeader struct {
	ScalingCode  byte // low 6 bits: ee ee mm.
	HalfDensity  bool // bit 0x40.
	TypeOrSubBit bool // bit 0x80: meaning depends on band index (see StreamHeader).
	Last         bool // low 7 bits == 0x7F: no further bands.
}

func decodeBandHeader(b byte) BandHeader {
	return BandHeader{
		ScalingCode:  b & 0x3F,
		HalfDensity:  b&0x40 != 0,
		TypeOrSubBit: b&0x80 != 0,
		Last:         b&0x7F == lastBandMarker,
	}
}

// StreamHeader is the parsed 16-byte Stream Header.
type StreamHeader struct {
	Bands    [format.NumBands]BandHeader
	NumBands int // index of the first Last marker, i.e. how many bands are populated.

	// MajorType is Type 0 or Type 1, from bit 0x80 of band 0.
	MajorType int
	// SubType is the 2-bit Type-1 sub-type from bits 0x80 of bands 1
	// and 2 (0 for Type 0 streams).
	SubType int
}

// ParseStreamHeader decodes a 16-byte Stream Header.
func ParseStreamHeader(b []byte) (StreamHeader, error) {
	if len(b) < HeaderLen {
		return StreamHeader{}, errors.Errorf("rom: stream header needs %d bytes, got %d", HeaderLen, len(b))
	}
	var h StreamHeader
	h.NumBands = format.NumBands
	for i := 0; i < format.NumBands; i++ {
		bh := decodeBandHeader(b[i])
		h.Bands[i] = bh
		if bh.Last && h.NumBands == format.NumBands {
			h.NumBands = i
		}
	}
	if h.Bands[0].TypeOrSubBit {
		h.MajorType = 1
	}
	if h.MajorType == 1 {
		sub := 0
		if h.Bands[1].TypeOrSubBit {
			sub |= 1
		}
		if h.Bands[2].TypeOrSubBit {
			sub |= 2
		}
		h.SubType = sub
	}
	return h, nil
}

// EncodeStreamHeader serializes h back into 16 bytes.
func EncodeStreamHeader(h StreamHeader) [HeaderLen]byte {
	var out [HeaderLen]byte
	for i := 0; i < HeaderLen; i++ {
		if i >= h.NumBands {
			out[i] = lastBandMarker
			continue
		}
		bh := h.Bands[i]
		v := bh.ScalingCode & 0x3F
		if bh.HalfDensity {
			v |= 0x40
		}
		out[i] = v
	}
	if h.MajorType == 1 {
		out[0] |= 0x80
		if h.SubType&1 != 0 {
			out[1] |= 0x80
		}
		if h.SubType&2 != 0 {
			out[2] |= 0x80
		}
	}
	return out
}

// IsShortHeader reports whether a stream's first header byte
// indicates the OS93a 1-byte-header exception: high bit of byte 0 is
// set and the OS version is OS93a.
func IsShortHeader(firstByte byte, dialect format.Dialect) bool {
	return dialect == format.Os93a && firstByte&0x80 != 0
}

// Stream is a parsed compressed audio clip: its frame count, header,
// and the ROM address at which its packed bit stream begins.
type Stream struct {
	NumFrames  uint16
	Header     StreamHeader
	BitsStart  Addr // address of the first byte of packed frame data.
	HeaderLen  int  // 16, or 1 for the OS93a short-header exception.
}

// ReadStream parses the frame count and header at addr and returns a
// Stream describing where the packed bit data begins.
func ReadStream(r *ROM, addr Addr, dialect format.Dialect) (*Stream, error) {
	n, err := r.Word(addr)
	if err != nil {
		return nil, errors.Wrap(err, "rom: reading stream frame count")
	}
	headerAddr := addr + 2
	first, err := r.Byte(headerAddr)
	if err != nil {
		return nil, errors.Wrap(err, "rom: reading stream header")
	}
	hlen := HeaderLen
	var hdr StreamHeader
	if IsShortHeader(first, dialect) {
		hlen = shortHeaderLen
		hdr.NumBands = 1
		hdr.Bands[0] = decodeBandHeader(first & 0x7F)
	} else {
		hb, err := r.Bytes(headerAddr, HeaderLen)
		if err != nil {
			return nil, errors.Wrap(err, "rom: reading stream header bytes")
		}
		hdr, err = ParseStreamHeader(hb)
		if err != nil {
			return nil, err
		}
	}
	return &Stream{
		NumFrames: n,
		Header:    hdr,
		BitsStart: headerAddr + Addr(hlen),
		HeaderLen: hlen,
	}, nil
}

// AlignBitsStart reports whether the packed bit section begins on an
// even byte offset, the alignment rule every stream follows. For OS93a
// Type-1 streams, whose 1-byte header makes a 3-byte preamble, this
// means the stream itself starts at an odd offset; dialect and
// majorType do not change the rule.
func AlignBitsStart(bitsStart Addr, dialect format.Dialect, majorType int) bool {
	return uint32(bitsStart)%2 == 0
}
