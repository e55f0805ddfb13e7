/*
NAME
  format.go

DESCRIPTION
  format.go defines the shared enumerations and constant tables used
  across the codec, mixer, track interpreter and ROM packages: the
  three format dialects, the scaling-factor mantissa table, and the
  per-band sample-count tables. Kept in its own package (rather than
  in "rom" or "frame") so that packages on both sides of the
  ROM/bitstream boundary can share one vocabulary without an import
  cycle. Dialect differences are modeled as a tagged variant rather
  than an inheritance chain, matching the way Go favors flat enums
  over class hierarchies.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package format holds the DCS format dialects and the constant
// tables they share.
package format

// Dialect selects which of the three coexisting bit-stream/transform
// implementations a stream uses.
type Dialect int

const (
	// Os93a is the earliest 1993 dialect; its Type-1 format uses the
	// fixed sample-pair lookup table of §4.4.3 rather than Huffman
	// bit-widths.
	Os93a Dialect = iota
	// Os93b shares OS93's two-level band-subtype/band-type-code
	// scheme (§4.4.2) for both its Type-0 and Type-1 streams.
	Os93b
	// Os94Plus is every OS version from 1994 onward: differential
	// per-band Huffman-coded headers (§4.4.1) and the 1994+ inverse
	// RDFT algorithm (§4.5.1).
	Os94Plus
)

func (d Dialect) String() string {
	switch d {
	case Os93a:
		return "OS93a"
	case Os93b:
		return "OS93b"
	case Os94Plus:
		return "OS94+"
	default:
		return "unknown-dialect"
	}
}

// RDFTAlgorithm selects which of the two mathematically-equivalent
// inverse RDFT implementations a dialect uses.
// 1993 games (Os93a, Os93b) use the 1993 algorithm; OS94+ uses the
// 1994+ algorithm.
type RDFTAlgorithm int

const (
	RDFT1994Plus RDFTAlgorithm = iota
	RDFT1993
)

// Algorithm returns the inverse RDFT variant a dialect requires.
func (d Dialect) Algorithm() RDFTAlgorithm {
	if d == Os94Plus {
		return RDFT1994Plus
	}
	return RDFT1993
}

// OSVersion is the raw firmware version word reported by a ROM
//
// and stamped into the raw-DCS-stream interchange header.
type OSVersion uint16

// Known firmware versions, per the raw-DCS-stream signature
// and the decoder's own version-query response.
const (
	OSVersion9301 OSVersion = 0x9301 // 1993a.
	OSVersion9302 OSVersion = 0x9302 // 1993b.
	OSVersion9400 OSVersion = 0x9400 // 1994 and later.

	// ReportedVersion is the default value the data-port version query
	// (0x55C2/0x55C3) responds with, distinct from the OSVersion that
	// selects the bit-stream dialect: it identifies the *decoder*
	// firmware release (1.06), not the *stream's* encoding era.
	ReportedVersion uint16 = 0x0106
)

// Dialect maps a raw firmware version word to the bit-stream/transform
// dialect it requires.
func (v OSVersion) Dialect() Dialect {
	switch v {
	case OSVersion9301:
		return Os93a
	case OSVersion9302:
		return Os93b
	default:
		return Os94Plus
	}
}

// NumBands is the number of frequency bands in every dialect.
const NumBands = 16

// FrameSize is the number of frequency-domain samples per frame
// (before the inverse transform).
const FrameSize = 256

// SamplesPerFrame is the number of PCM output samples per frame.
const SamplesPerFrame = 240

// OverlapSize is the number of samples carried between frames by the
// inverse transform's overlap-add.
const OverlapSize = 16

// SampleRate is the fixed DCS playback sample rate in Hz.
const SampleRate = 31250

// ScalingMantissa is the 2-bit mantissa table used by every scaling-
// factor code: xx eeee mm, mm indexing this
// table in 1.15.
var ScalingMantissa = [4]uint16{0x8000, 0x9838, 0xB505, 0xD745}

// OS94BandSampleCounts is the per-band output sample count table for
// OS94+.
var OS94BandSampleCounts = [NumBands]int{
	7, 8, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 32,
}

// OS93BandSampleCounts is the per-band output sample count table for
// OS93a/OS93b: 16 samples per band uniformly.
var OS93BandSampleCounts = [NumBands]int{
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16,
}

// OS93bType1Band0Count is the override for OS93b Type-1 streams: band
// 0 carries 15 samples instead of 16.
const OS93bType1Band0Count = 15

// ScalingFactor decodes a 6-bit scaling-factor code ("ee ee mm": a
// 4-bit excess-15 exponent and a 2-bit mantissa selector) into its
// 1.15 multiplier: the base
// mantissa shifted right by (15 - exponentBits).
func ScalingFactor(code byte) uint16 {
	exp := (code >> 2) & 0xF
	mant := code & 0x3
	base := ScalingMantissa[mant]
	shift := 15 - int(exp)
	if shift <= 0 {
		return base
	}
	if shift >= 16 {
		return 0
	}
	return base >> uint(shift)
}
