/*
NAME
  format_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package format

import "testing"

func TestScalingFactorMaxExponentIsUnshifted(t *testing.T) {
	// exponent = 15 -> shift 0 -> base value unshifted.
	for mant := byte(0); mant < 4; mant++ {
		code := (15 << 2) | mant
		got := ScalingFactor(code)
		if got != ScalingMantissa[mant] {
			t.Errorf("ScalingFactor(%#x) = %#x, want %#x", code, got, ScalingMantissa[mant])
		}
	}
}

func TestScalingFactorShiftsDown(t *testing.T) {
	code := byte(0<<2) | 0 // exponent 0, mantissa 0x8000 -> shift 15 -> 1.
	got := ScalingFactor(code)
	if got != 1 {
		t.Errorf("ScalingFactor(%#x) = %#x, want 1", code, got)
	}
}

func TestDialectAlgorithm(t *testing.T) {
	if Os94Plus.Algorithm() != RDFT1994Plus {
		t.Error("Os94Plus should use the 1994+ algorithm")
	}
	if Os93a.Algorithm() != RDFT1993 || Os93b.Algorithm() != RDFT1993 {
		t.Error("OS93 dialects should use the 1993 algorithm")
	}
}
