/*
NAME
  encode93_test.go

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

func TestCompressOS93RoundTrip(t *testing.T) {
	samples := make([]int32, 16)
	for i := range samples {
		samples[i] = int32(i*37 - 300)
	}
	scalingFactorCode := byte(0x31)
	mixingMultiplier := uint16(0x6000)

	bands := []BandSamples93{{ScalingFactorCode: scalingFactorCode, Samples: samples}}
	encState := NewStreamState93(0)
	header, payload, err := CompressOS93(bands, &encState)
	if err != nil {
		t.Fatalf("CompressOS93: %v", err)
	}

	want := make([]uint16, BufLen)
	scalingFactor := format.ScalingFactor(scalingFactorCode & 0x3F)
	for i, s := range samples {
		accumulate(want, 1+i, uint16(s), scalingFactor, mixingMultiplier)
	}

	got := make([]uint16, BufLen)
	decState := NewStreamState93(0)
	r := bitio.NewReader(payload, 0)
	DecompressOS93(r, header, &decState, mixingMultiplier, got)

	// propagateDelta moves the first sample's contribution to index 0
	// and restores index 1 to its pre-call value (zero).
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

func TestCompressOS93SilentBandSkips(t *testing.T) {
	bands := []BandSamples93{
		{ScalingFactorCode: 0x10, Samples: nil},
		{ScalingFactorCode: 0x20, Samples: make([]int32, 16)},
	}
	encState := NewStreamState93(0)
	header, payload, err := CompressOS93(bands, &encState)
	if err != nil {
		t.Fatalf("CompressOS93: %v", err)
	}

	got := make([]uint16, BufLen)
	decState := NewStreamState93(0)
	r := bitio.NewReader(payload, 0)
	DecompressOS93(r, header, &decState, 0x7FFF, got)
	for i := 1; i <= 32; i++ {
		if got[i] != 0 {
			t.Errorf("buf[%d] = %#x, want 0 for two silent bands", i, got[i])
		}
	}
}

func TestCompressOS93RejectsUnexpectedSubType(t *testing.T) {
	bands := []BandSamples93{{ScalingFactorCode: 0x10, Samples: make([]int32, 16)}}
	state := StreamState{BandSubType: 1}
	if _, _, err := CompressOS93(bands, &state); err == nil {
		t.Error("CompressOS93 should reject a state not started by NewStreamState93(0)")
	}
}
