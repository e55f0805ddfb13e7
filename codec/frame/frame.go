/*
NAME
  frame.go

DESCRIPTION
  frame.go decompresses one frame's worth of frequency-domain samples
  from a channel's bit stream. Three dialect-specific
  decompressors share this package: DecompressOS94 (§4.4.1), DecompressOS93
  (§4.4.2, the format shared by OS93a Type-0 and every OS93b stream),
  and DecompressOS93aType1 (§4.4.3, Judge Dredd's unique format). All
  three read from a bitio.Reader positioned at the start of the
  frame's bit-packed data and accumulate scaled, mixed samples into a
  shared frequency-domain buffer, which the codec/rdft package later
  transforms into PCM.

  The accumulation buffer is always sized FrameSize: it holds the 256
  frequency-domain coefficients the RDFT transform consumes directly,
  indexed exactly as codec/rdft expects. Coefficient 0 gets special
  treatment: every decompressor accumulates coefficient 1 onward
  starting from output index 1, then adds to index 0 the saturated
  delta between the new and previous frame's coefficient 1 (a
  smoothing trick applied to the transform's DC component) and
  restores index 1 to the value it held before the call.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame decompresses individual audio frames from a channel's
// packed bit stream into frequency-domain sample buffers, grounded on
// the three dialect-specific decompressors.
package frame

import (
	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/fixed"
)

// BufLen is the size every decompressor expects its output buffer to
// have: one frequency-domain coefficient slot per frame sample.
const BufLen = format.FrameSize

// StreamState holds the per-channel state a decompressor carries
// across frames for one audio stream: the running band-type-code
// buffer used by differential header encodings, and (for OS93) the
// running band sub-type.
type StreamState struct {
	// BandType is the previous frame's decoded band-type code for
	// each of the 16 bands.
	BandType [format.NumBands]int
	// BandSubType is OS93's running band sub-type (0, 1 or 2),
	// persisted across frames.
	BandSubType int
	// ReuseBandType is true when the previous band in the current
	// frame used type code 0 and the next band may reuse it via a
	// single marker bit (OS93 only).
	ReuseBandType bool
}

// NewStreamState93 returns the StreamState a newly started OS93
// stream begins decoding with: BandSubType seeded per stream format
// type 0 or 1, since sub-type 0 is itself a legal
// running value and cannot double as a zero-value sentinel.
func NewStreamState93(streamFormatType int) StreamState {
	var s StreamState
	if streamFormatType == 1 {
		s.BandSubType = 0
	} else {
		s.BandSubType = 2
	}
	return s
}

// propagateDelta implements the delta-propagation step common to
// every decompressor: the saturated delta between the new and previous
// first sample is added (saturating) into the zeroeth buffer sample,
// and the previous first sample is restored at index 1.
func propagateDelta(buf []uint16, prevFirst uint16) {
	delta := fixed.SatAdd16(int16(buf[1]), -int16(prevFirst))
	buf[0] = uint16(fixed.SatAdd16(delta, int16(buf[0])))
	buf[1] = prevFirst
}

// accumulate scales sample by scalingFactor and mixingMultiplier (both
// 1.15) and adds the result into buf[idx], mirroring the AddOutput/
// inline accumulation step repeated by every decompressor.
//
// This mixing step uses a plain truncating multiply-accumulate, not
// the round-to-nearest-even convention in package fixed: the scaled
// sample's low 16 bits (not its rounded high word) seed the
// accumulator's low half before the mixing-multiplier product is
// added, and the result is truncated, not rounded.
func accumulate(buf []uint16, idx int, sample uint16, scalingFactor, mixingMultiplier uint16) {
	scaled := uint16((int64(int16(sample)) * int64(int16(scalingFactor))) & 0xFFFF)
	acc := (int64(int16(buf[idx])) << 16) | int64(scaled)
	acc += int64(int16(scaled)) * int64(int16(mixingMultiplier))
	buf[idx] = uint16((acc >> 16) & 0xFFFF)
}
