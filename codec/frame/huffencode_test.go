/*
NAME
  huffencode_test.go

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

	"github.com/ausocean/dcs/internal/bitio"
)

func TestHeaderEncoder94RoundTrips(t *testing.T) {
	for delta, code := range headerEncoder94 {
		w := bitio.NewWriter()
		code.write(w)
		r := bitio.NewReader(w.Close(), 0)
		got := decodeBandTypeDelta94(r)
		if got != delta {
			t.Errorf("delta %d: round trip got %d", delta, got)
		}
	}
}

func TestHeaderEncoder93RoundTrips(t *testing.T) {
	for delta, code := range headerEncoderNoFlip93 {
		w := bitio.NewWriter()
		code.write(w)
		r := bitio.NewReader(w.Close(), 0)
		sub := 0
		got := readHuff93(r, &sub)
		if got != delta {
			t.Errorf("no-flip delta %d: round trip got %d", delta, got)
		}
		if sub != 0 {
			t.Errorf("no-flip delta %d flipped sub-type unexpectedly", delta)
		}
	}
	for delta, code := range headerEncoderFlip93 {
		w := bitio.NewWriter()
		code.write(w)
		r := bitio.NewReader(w.Close(), 0)
		sub := 0
		got := readHuff93(r, &sub)
		if got != delta {
			t.Errorf("flip delta %d: round trip got %d", delta, got)
		}
		if sub != 1 {
			t.Errorf("flip delta %d did not flip sub-type", delta)
		}
	}
}

func TestSampleEncoder94RoundTrips(t *testing.T) {
	for tc := 1; tc <= 6; tc++ {
		enc := sampleEncoders94[tc]
		for delta, code := range enc.vals {
			w := bitio.NewWriter()
			code.write(w)
			r := bitio.NewReader(w.Close(), 0)
			codebook, maxBitWidth := sampleCodebook94(tc)
			entry := codebook[r.Peek(maxBitWidth)]
			r.Consume(int(entry >> 8))
			sampleValueRef := 1 << uint(tc-1)
			got := int(entry&0xFF) - sampleValueRef
			if got != delta {
				t.Errorf("typeCode %d delta %d: round trip got %d", tc, delta, got)
			}
		}
		if enc.hasDZ {
			w := bitio.NewWriter()
			enc.dz.write(w)
			r := bitio.NewReader(w.Close(), 0)
			codebook, maxBitWidth := sampleCodebook94(tc)
			entry := codebook[r.Peek(maxBitWidth)]
			if entry&0xFF&0x80 == 0 {
				t.Errorf("typeCode %d: double-zero codeword decoded to a non-double-zero entry %#x", tc, entry)
			}
		}
	}
}
