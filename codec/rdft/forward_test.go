/*
NAME
  forward_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rdft

import "testing"

// TestForwardTransform94RoundTripsSilence checks that an all-zero PCM
// frame forward-transforms to an all-zero coefficient frame: a silent
// input has no spectral content to pack into any bin.
func TestForwardTransform94RoundTripsSilence(t *testing.T) {
	var samples [256]int16
	coeffs := ForwardTransform94(samples, 0)
	for i, c := range coeffs {
		if c != 0 {
			t.Fatalf("coeffs[%d] = %#x, want 0 for silent input", i, c)
		}
	}
}

// TestForwardTransform94DCBin checks that a constant (DC-only) input
// places all of its energy in coefficient 0's real part and leaves
// every other bin silent, the defining property of a DC signal's
// spectrum.
func TestForwardTransform94DCBin(t *testing.T) {
	var samples [256]int16
	for i := range samples {
		samples[i] = 1000
	}
	coeffs := ForwardTransform94(samples, 0)
	if coeffs[0] == 0 {
		t.Error("coeffs[0] (DC real part) is zero for a constant input")
	}
	for i := 2; i < len(coeffs); i++ {
		if int16(coeffs[i]) > 4 || int16(coeffs[i]) < -4 {
			t.Errorf("coeffs[%d] = %d, want near-zero for a pure DC input", i, int16(coeffs[i]))
		}
	}
}

// TestForwardTransform94VolShiftScales checks that increasing volShift
// scales the packed coefficients up, pre-compensating for the inverse
// transforms' right-shift-by-volShift convention.
func TestForwardTransform94VolShiftScales(t *testing.T) {
	var samples [256]int16
	for i := range samples {
		samples[i] = 20000
	}
	low := ForwardTransform94(samples, 0)
	high := ForwardTransform94(samples, 1)
	if int16(high[0]) == 0 {
		t.Skip("DC bin clamped to zero, cannot compare scale")
	}
	lowMag := int16(low[0])
	if lowMag < 0 {
		lowMag = -lowMag
	}
	highMag := int16(high[0])
	if highMag < 0 {
		highMag = -highMag
	}
	if highMag <= lowMag {
		t.Errorf("volShift=1 coefficient (%d) not larger than volShift=0 (%d)", highMag, lowMag)
	}
}

// TestForwardTransform93MatchesForwardTransform94 checks that the two
// dialect entry points agree, since the 1993 and 1994+ formats share
// the same underlying transform.
func TestForwardTransform93MatchesForwardTransform94(t *testing.T) {
	var samples [256]int16
	for i := range samples {
		samples[i] = int16(i*37 - 4000)
	}
	a := ForwardTransform94(samples, 2)
	b := ForwardTransform93(samples, 2)
	if a != b {
		t.Error("ForwardTransform93 and ForwardTransform94 disagree on identical input")
	}
}
