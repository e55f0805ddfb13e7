/*
NAME
  encode94.go

DESCRIPTION
  encode94.go implements CompressOS94, the frame compressor for
  OS94+ streams: the inverse of DecompressOS94, restricted to the
  direct (frame-format-type 0) header layout, i.e. it never emits the
  Type-1 band-translation tables (xlatBand02/xlatBand35/xlatBand6F).
  Per band it picks the narrowest representation -- skip, one of the
  six fixed Huffman codebooks, or a raw signed field -- that can
  losslessly carry the caller's already-quantized deltas (see
  QuantizeBand94), then differentially Huffman-codes the resulting
  band-type-code sequence against the previous frame's, exactly as
  DecompressOS94 expects to unwind it.

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
	"math"

	"github.com/pkg/errors"

	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/bitio"
)

// bandWeight94 is the psychoacoustic weight QuantizeBand94 uses to
// decide how aggressively a band's low-level signal is treated as
// silence: a band worth fewer bits tolerates a higher noise floor
// before it's worth spending a non-zero band-type code on.
var bandWeight94 = [format.NumBands]int{16, 14, 12, 10, 9, 8, 6, 5, 4, 4, 3, 3, 3, 3, 2, 2}

// silenceFloor94 is the base amplitude (in the same units as
// QuantizeBand94's input) below which the most heavily weighted band
// (weight 16) is still treated as silent; lower-weight bands scale
// this up by 16/weight.
const silenceFloor94 = 24.0

// BandSamples94 is one band's quantized input to CompressOS94: Samples
// must already be the signed deltas the decoder's accumulate step
// expects (see QuantizeBand94), sized format.OS94BandSampleCounts[i],
// or nil to mark the band as definitely silent without running the
// noise-floor check.
type BandSamples94 struct {
	ScalingFactorCode byte
	Samples           []int32
}

// QuantizeBand94 converts a band's target real-valued spectral
// samples into a scaling-factor code and the signed deltas that
// recover them at that scale, or reports the band as silent when its
// peak magnitude falls below weight's noise floor. It does not invert
// accumulate's mixing arithmetic (see forward.go's design note for the
// equivalent reasoning on the decode side); the caller is expected to
// have already divided out the channel's mixing level, so the
// returned deltas reconstruct the band's shape rather than its exact
// mixed sample value.
func QuantizeBand94(amplitudes []float64, weight int) (code byte, deltas []int32, silent bool) {
	maxAbs := 0.0
	for _, a := range amplitudes {
		if v := math.Abs(a); v > maxAbs {
			maxAbs = v
		}
	}
	if weight < 1 {
		weight = 1
	}
	if maxAbs < silenceFloor94*16/float64(weight) {
		return 0, nil, true
	}
	code, scale := scalingFactorCodeFor(maxAbs)
	deltas = make([]int32, len(amplitudes))
	for i, a := range amplitudes {
		v := math.Round(a / scale)
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		deltas[i] = int32(v)
	}
	return code, deltas, false
}

// scalingFactorCodeFor returns the scaling-factor code whose 1.15
// magnitude is the smallest one still able to represent maxAbs inside
// a 16-bit signed delta without clipping, i.e. the finest resolution
// available at this amplitude.
func scalingFactorCodeFor(maxAbs float64) (code byte, scale float64) {
	best := -1.0
	var bestCode byte
	for c := 0; c < 64; c++ {
		raw := format.ScalingFactor(byte(c))
		s := math.Abs(float64(int16(raw))) / 32768
		if s == 0 {
			continue
		}
		if maxAbs > s*32767 {
			continue
		}
		if best < 0 || s < best {
			best, bestCode = s, byte(c)
		}
	}
	if best < 0 {
		// Every code clips at this amplitude; fall back to the
		// coarsest (largest-magnitude) one available.
		for c := 0; c < 64; c++ {
			s := math.Abs(float64(int16(format.ScalingFactor(byte(c))))) / 32768
			if s > best {
				best, bestCode = s, byte(c)
			}
		}
	}
	return bestCode, best
}

// pickBandTypeCode94 chooses the cheapest representation able to
// losslessly carry deltas: the smallest Huffman codebook (1-6) whose
// value range covers every delta, or failing that a raw signed field
// exactly wide enough.
func pickBandTypeCode94(deltas []int32) (typeCode int, enc sampleEncoder94, raw bool, width int) {
	for tc := 1; tc <= 6; tc++ {
		if fitsSampleEncoder94(sampleEncoders94[tc], deltas) {
			return tc, sampleEncoders94[tc], false, 0
		}
	}
	maxAbs := int32(0)
	for _, d := range deltas {
		v := d
		if v < 0 {
			v = -v - 1
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	width = 7
	for (int32(1) << uint(width-1)) <= maxAbs {
		width++
	}
	return width, sampleEncoder94{}, true, width
}

// CompressOS94 encodes up to format.NumBands bands of an OS94+ frame,
// updating state.BandType in place so the next frame's differential
// header encodes correctly against this one. Fewer than NumBands
// entries in bands terminates the header early, exactly as a decoded
// stream's $7F sentinel would.
func CompressOS94(bands []BandSamples94, state *StreamState) (header [format.NumBands]byte, payload []byte, err error) {
	if len(bands) > format.NumBands {
		return header, nil, errors.Errorf("frame: %d bands exceeds format.NumBands", len(bands))
	}

	w := bitio.NewWriter()
	for i, b := range bands {
		var typeCode int
		var enc sampleEncoder94
		var raw bool
		var width int
		if b.Samples == nil {
			typeCode = 0
		} else {
			typeCode, enc, raw, width = pickBandTypeCode94(b.Samples)
		}

		header[i] = b.ScalingFactorCode & 0x3F

		delta := typeCode - state.BandType[i]
		code, ok := headerEncoder94[delta]
		if !ok {
			return header, nil, errors.Errorf("frame: band %d type-code delta %d has no header94 codeword", i, delta)
		}
		code.write(w)
		state.BandType[i] = typeCode

		if typeCode == 0 {
			continue
		}
		if raw {
			for _, d := range b.Samples {
				w.WriteSigned(d, width)
			}
			continue
		}
		writeSamples94(w, enc, b.Samples)
	}
	if len(bands) < format.NumBands {
		header[len(bands)] = 0x7F
	}
	return header, w.Close(), nil
}
