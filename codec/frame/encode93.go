/*
NAME
  encode93.go

DESCRIPTION
  encode93.go implements CompressOS93, the frame compressor shared by
  OS93a Type-0 and OS93b streams: the inverse of DecompressOS93,
  restricted to streamFormatType 0 (the direct 4-bit band-type-code
  header) with band sub-type fixed at 0 (independent samples). Unlike
  OS94+, OS93's band samples are always raw signed fields -- there is
  no per-sample Huffman codebook to invert -- so the compressor's job
  is choosing each band's scaling-factor code and raw field width, not
  entropy coding.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"github.com/pkg/errors"

	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/bitio"
)

// BandSamples93 is one band's quantized input to CompressOS93. Samples
// must be format.OS93BandSampleCounts[i] raw signed deltas (see
// QuantizeBand94, which CompressOS93 reuses since both dialects share
// the same scaling-factor table), or nil for a silent band.
type BandSamples93 struct {
	ScalingFactorCode byte
	Samples           []int32
}

// rawWidthFor93 returns the narrowest bit width (1-16, OS93's 4-bit
// band-type-code range plus the format's +1 bias) able to represent
// every value in samples as a signed field. Width 1 (type code 0, a
// silent band) is returned only when every sample is zero.
func rawWidthFor93(samples []int32) int {
	maxAbs := int32(0)
	nonZero := false
	for _, d := range samples {
		if d != 0 {
			nonZero = true
		}
		v := d
		if v < 0 {
			v = -v - 1
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	width := 1
	for width < 16 && (int32(1)<<uint(width-1)) <= maxAbs {
		width++
	}
	if width == 1 && nonZero {
		width = 2
	}
	return width
}

// CompressOS93 encodes up to format.NumBands bands of an OS93a-Type-0
// or OS93b frame using the direct header format, always with band
// sub-type 0 (independent samples): every band's values are written
// as plain raw fields, with no accumulation against a running
// predictor. state must have been created by NewStreamState93(0).
func CompressOS93(bands []BandSamples93, state *StreamState) (header [format.NumBands]byte, payload []byte, err error) {
	if len(bands) > format.NumBands {
		return header, nil, errors.Errorf("frame: %d bands exceeds format.NumBands", len(bands))
	}

	w := bitio.NewWriter()
	for i, b := range bands {
		if state.ReuseBandType {
			w.WriteBits(0, 1) // never reuse the previous band's type code.
			state.ReuseBandType = false
		}

		switch state.BandSubType {
		case 0:
			w.WriteBits(0, 1) // no sub-type change.
		case 2:
			// Only reachable on the very first band of a stream
			// started by NewStreamState93(0): seeded to 2 so it
			// can't double as the already-0 sentinel.
			w.WriteBits(1, 1)   // change sub-type.
			w.WriteBits(1, 1)   // subTypeInc[2] == 0.
			state.BandSubType = 0
		default:
			return header, nil, errors.Errorf("frame: band %d: unexpected running sub-type %d; CompressOS93 only supports a stream started by NewStreamState93(0)", i, state.BandSubType)
		}

		var typeCode, width int
		if b.Samples != nil {
			width = rawWidthFor93(b.Samples)
			typeCode = width - 1
		}
		w.WriteBits(uint32(typeCode), 4)

		header[i] = b.ScalingFactorCode & 0x3F

		if typeCode == 0 {
			state.ReuseBandType = true
			continue
		}
		for _, d := range b.Samples {
			w.WriteSigned(d, width)
		}
	}
	if len(bands) < format.NumBands {
		header[len(bands)] = 0x7F
	}
	return header, w.Close(), nil
}
