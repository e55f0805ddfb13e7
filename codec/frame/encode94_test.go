/*
NAME
  encode94_test.go

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

// roundTripOS94Band compresses a single band (index 0, to keep the
// output index arithmetic simple) and checks that DecompressOS94
// recovers exactly the per-sample contribution accumulate() would
// have produced directly from samples, scalingFactorCode and
// mixingMultiplier -- i.e. that the Huffman/raw bitstream round-trips
// the same delta sequence, independent of what those deltas mean in
// amplitude terms. Starting from a zeroed buffer, propagateDelta moves
// the first sample's contribution to index 0 and leaves index 1 zero.
func roundTripOS94Band(t *testing.T, samples []int32, scalingFactorCode byte, mixingMultiplier uint16) {
	t.Helper()

	bands := []BandSamples94{{ScalingFactorCode: scalingFactorCode, Samples: samples}}
	var encState StreamState
	header, payload, err := CompressOS94(bands, &encState)
	if err != nil {
		t.Fatalf("CompressOS94: %v", err)
	}

	want := make([]uint16, BufLen)
	scalingFactor := format.ScalingFactor(scalingFactorCode & 0x3F)
	for i, s := range samples {
		accumulate(want, 1+i, uint16(s), scalingFactor, mixingMultiplier)
	}

	got := make([]uint16, BufLen)
	var decState StreamState
	r := bitio.NewReader(payload, 0)
	DecompressOS94(r, header, &decState, mixingMultiplier, got)

	if got[0] != want[1] {
		t.Errorf("buf[0] = %#x, want %#x", got[0], want[1])
	}
	if got[1] != 0 {
		t.Errorf("buf[1] = %#x, want 0", got[1])
	}
	for i := 2; i <= len(samples); i++ {
		if got[i] != want[i] {
			t.Errorf("buf[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestCompressOS94RoundTripCodebookBand(t *testing.T) {
	// Small values and a trailing zero pair: exercises both the
	// codebook path and double-zero coalescing.
	roundTripOS94Band(t, []int32{0, 1, -1, 0, 0, 1, 0}, 0x2A, 0x7FFF)
}

func TestCompressOS94RoundTripRawBand(t *testing.T) {
	// Large magnitude values no codebook can represent, forcing the
	// raw-field fallback. 14 bits is the widest raw field a single
	// header delta (at most +14) can reach from a zeroed stream state.
	roundTripOS94Band(t, []int32{5000, -5000, 1234, -1234, 0, 8000, -8000}, 0x15, 0x4000)
}

func TestCompressOS94TerminatesHeaderEarly(t *testing.T) {
	bands := []BandSamples94{
		{ScalingFactorCode: 0x10, Samples: []int32{1, 2, 3, 4, 5, 6, 7}},
	}
	var state StreamState
	header, _, err := CompressOS94(bands, &state)
	if err != nil {
		t.Fatalf("CompressOS94: %v", err)
	}
	if header[1]&0x7F != 0x7F {
		t.Errorf("header[1] = %#x, want terminator 0x7F in low 7 bits", header[1])
	}
}

func TestQuantizeBand94Silence(t *testing.T) {
	amps := make([]float64, 16)
	_, _, silent := QuantizeBand94(amps, 16)
	if !silent {
		t.Error("all-zero amplitudes should be reported silent")
	}
}

func TestQuantizeBand94RoundTripsApproximately(t *testing.T) {
	amps := make([]float64, 16)
	for i := range amps {
		amps[i] = 2000 * float64(i%5-2)
	}
	code, deltas, silent := QuantizeBand94(amps, 16)
	if silent {
		t.Fatal("non-trivial amplitudes reported silent")
	}
	scale := float64(int16(format.ScalingFactor(code))) / 32768
	for i, d := range deltas {
		got := float64(d) * scale
		diff := got - amps[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 4000 {
			t.Errorf("sample %d: reconstructed %.1f too far from target %.1f", i, got, amps[i])
		}
	}
}

func TestPickBandTypeCode94PrefersCodebookOverRaw(t *testing.T) {
	typeCode, _, raw, _ := pickBandTypeCode94([]int32{0, 1, -1, 0})
	if raw {
		t.Errorf("small deltas should fit a codebook, got raw fallback (typeCode=%d)", typeCode)
	}
}
