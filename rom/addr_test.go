/*
NAME
  addr_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rom

import "testing"

func TestFromLinearToLinearRoundTrip(t *testing.T) {
	for _, era := range []HWEra{OriginalDCS, DCS95} {
		for chip := 0; chip < MaxChips; chip++ {
			for _, off := range []uint32{0, 1, 0x1234, 0xFFFFF} {
				addr := ToLinear(chip, off, era)
				gotChip, gotOff := FromLinear(addr, era)
				if gotChip != chip || gotOff != off {
					t.Errorf("era=%v chip=%d off=%#x: round trip got chip=%d off=%#x",
						era, chip, off, gotChip, gotOff)
				}
			}
		}
	}
}

func TestIsNull(t *testing.T) {
	if !Addr(NullAddr).IsNull() {
		t.Error("NullAddr should be null")
	}
	if !Addr(0xFF0000).IsNull() {
		t.Error("0xFF0000 should be null (high byte 0xFF)")
	}
	if Addr(0x001234).IsNull() {
		t.Error("0x001234 should not be null")
	}
}

func TestChipSelectShiftDiffers(t *testing.T) {
	chipOrig, _ := FromLinear(Addr(1<<20), OriginalDCS)
	if chipOrig != 1 {
		t.Errorf("OriginalDCS chip for addr 1<<20 = %d, want 1", chipOrig)
	}
	chip95, _ := FromLinear(Addr(1<<20), DCS95)
	if chip95 != 0 {
		t.Errorf("DCS95 chip for addr 1<<20 = %d, want 0 (needs 1<<21 to select chip 1)", chip95)
	}
}

func TestChipName(t *testing.T) {
	name, err := ChipName(0)
	if err != nil || name != "U2" {
		t.Errorf("ChipName(0) = %q, %v, want U2, nil", name, err)
	}
	if _, err := ChipName(MaxChips); err == nil {
		t.Error("ChipName(MaxChips) should error")
	}
}
