/*
NAME
  decode93a_type1.go

DESCRIPTION
  decode93a_type1.go implements DecompressOS93aType1, the unique frame
  format used by a handful of Judge Dredd tracks: a
  Stream Header whose first byte has bit $80 set, carrying a 2-bit
  codebook selector and a 5-bit band count in its remaining bits
  instead of per-band scaling codes. Each band's input bit width and
  a running scaling-factor code are themselves Huffman-coded, and
  decoded samples are looked up in pairs from a fixed table
  (sampletable93a.go) rather than computed from a bit-width codebook.

  Unlike DecompressOS93 and DecompressOS94, this decompressor does not
  perform the delta-propagation step on the first two output samples;
  the original firmware's Type-1 handler never touches them.

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
	"github.com/ausocean/dcs/internal/bitio"
	"github.com/ausocean/dcs/internal/fixed"
)

// inputsPerBand93aType1 gives the fixed number of stream inputs in
// each successive band of a Type-1 frame (up to 18 bands).
var inputsPerBand93aType1 = [18]int{2, 2, 2, 2, 3, 4, 5, 6, 5, 6, 7, 9, 11, 14, 12, 12, 12, 13}

// bandBitsEntry is one entry of the band-bit-width prefix codebook.
type bandBitsEntry struct {
	bandBits   int
	prefixBits int
}

// bandBitsCodebooks93a holds all four band-bit-width codebooks back
// to back, 16 entries each, selected by a stream's 2-bit prefix
// codebook selector (bits $60 of the header byte, shifted right one).
var bandBitsCodebooks93a = [64]bandBitsEntry{
	// group 0: header bits 0x60 == 0x00
	{0x0000, 3}, {0x0000, 3}, {0xffff, 4}, {0x0005, 4},
	{0x0001, 3}, {0x0001, 3}, {0x0002, 3}, {0x0002, 3},
	{0x0003, 2}, {0x0003, 2}, {0x0003, 2}, {0x0003, 2},
	{0x0004, 2}, {0x0004, 2}, {0x0004, 2}, {0x0004, 2},
	// group 1: header bits 0x60 == 0x20
	{0x0000, 3}, {0x0000, 3}, {0xffff, 4}, {0x0003, 4},
	{0x0004, 4}, {0x0007, 4}, {0x0001, 3}, {0x0001, 3},
	{0x0002, 3}, {0x0002, 3}, {0x0005, 3}, {0x0005, 3},
	{0x0006, 2}, {0x0006, 2}, {0x0006, 2}, {0x0006, 2},
	// group 2: header bits 0x60 == 0x40
	{0x0000, 4}, {0x0001, 4}, {0xffff, 4}, {0x0002, 4},
	{0x0003, 4}, {0x0008, 4}, {0x0004, 3}, {0x0004, 3},
	{0x0005, 3}, {0x0005, 3}, {0x0006, 3}, {0x0006, 3},
	{0x0007, 2}, {0x0007, 2}, {0x0007, 2}, {0x0007, 2},
	// group 3: header bits 0x60 == 0x60
	{0x0000, 4}, {0x0001, 4}, {0xffff, 4}, {0x0002, 4},
	{0x0003, 4}, {0x0009, 4}, {0x0004, 3}, {0x0004, 3},
	{0x0005, 3}, {0x0005, 3}, {0x0006, 3}, {0x0006, 3},
	{0x0007, 2}, {0x0007, 2}, {0x0007, 2}, {0x0007, 2},
}

// scaleEntry is one entry of the two-level scaling-code codebook.
type scaleEntry struct {
	value         int
	nBits         int
	subTableIndex int
}

// scaleCodebook93a is the two-level Huffman codebook for a Type-1
// band's scaling-code delta. A value of 0xFFFF means "look again,
// starting at subTableIndex, with the next 4 bits".
var scaleCodebook93a = [80]scaleEntry{
	{0x0000, 2, 0}, {0x0000, 2, 0}, {0x0000, 2, 0}, {0x0000, 2, 0},
	{0x0001, 2, 0}, {0x0001, 2, 0}, {0x0001, 2, 0}, {0x0001, 2, 0},
	{0x0034, 4, 0}, {0x0035, 4, 0}, {0x0002, 4, 0}, {0x0003, 4, 0},
	{0xFFFF, 4, 0x0010}, {0xFFFF, 4, 0x0020}, {0xFFFF, 4, 0x0030}, {0xFFFF, 4, 0x0040},
	{0x002c, 7, 0}, {0x002c, 7, 0}, {0x002d, 7, 0}, {0x002d, 7, 0},
	{0x002e, 7, 0}, {0x002e, 7, 0}, {0x002f, 7, 0}, {0x002f, 7, 0},
	{0x0030, 7, 0}, {0x0030, 7, 0}, {0x0031, 7, 0}, {0x0031, 7, 0},
	{0x0032, 7, 0}, {0x0032, 7, 0}, {0x0033, 7, 0}, {0x0033, 7, 0},
	{0x0004, 7, 0}, {0x0004, 7, 0}, {0x0005, 7, 0}, {0x0005, 7, 0},
	{0x0006, 7, 0}, {0x0006, 7, 0}, {0x0007, 7, 0}, {0x0007, 7, 0},
	{0x0008, 7, 0}, {0x0008, 7, 0}, {0x0009, 7, 0}, {0x0009, 7, 0},
	{0x000a, 7, 0}, {0x000a, 7, 0}, {0x000b, 7, 0}, {0x000b, 7, 0},
	{0x001c, 8, 0}, {0x001d, 8, 0}, {0x001e, 8, 0}, {0x001f, 8, 0},
	{0x0020, 8, 0}, {0x0021, 8, 0}, {0x0022, 8, 0}, {0x0023, 8, 0},
	{0x0024, 8, 0}, {0x0025, 8, 0}, {0x0026, 8, 0}, {0x0027, 8, 0},
	{0x0028, 8, 0}, {0x0029, 8, 0}, {0x002a, 8, 0}, {0x002b, 8, 0},
	{0x000c, 8, 0}, {0x000d, 8, 0}, {0x000e, 8, 0}, {0x000f, 8, 0},
	{0x0010, 8, 0}, {0x0011, 8, 0}, {0x0012, 8, 0}, {0x0013, 8, 0},
	{0x0014, 8, 0}, {0x0015, 8, 0}, {0x0016, 8, 0}, {0x0017, 8, 0},
	{0x0018, 8, 0}, {0x0019, 8, 0}, {0x001a, 8, 0}, {0x001b, 8, 0},
}

// DecompressOS93aType1 decodes one frame of Judge Dredd's unique
// Type-1 stream format into buf (length BufLen). hdrByte is the
// stream's single header byte. mixingMultiplier is the channel's
// current 1.15 mixing level.
func DecompressOS93aType1(r *bitio.Reader, hdrByte byte, mixingMultiplier uint16, buf []uint16) {
	prevScaleCode := 0x1A
	prefixCodebookSelector := int(hdrByte & 0x60)
	numBands := int(hdrByte & 0x1F)
	bandBitsCodebook := bandBitsCodebooks93a[prefixCodebookSelector>>1:]

	outIdx := 0
	for bandNo := 0; bandNo < numBands; bandNo++ {
		numInputs := inputsPerBand93aType1[bandNo]

		entry := bandBitsCodebook[r.Peek(4)]
		bandBits := entry.bandBits
		r.Consume(entry.prefixBits)
		if bandBits == 0xFFFF {
			break
		}
		if bandBits == 0 {
			outIdx += numInputs * 2
			continue
		}

		se := scaleCodebook93a[r.Peek(4)]
		r.Consume(se.nBits)
		if se.value == 0xFFFF {
			se = scaleCodebook93a[se.subTableIndex+int(r.Peek(4))]
			r.Consume(se.nBits - 4)
		}

		scaleCode := prevScaleCode + se.value - 1 + bandBits*2
		if scaleCode > 0x39 {
			scaleCode -= 0x36
		}
		prevScaleCode = scaleCode - bandBits*2

		shift := uint(scaleCode >> 2)
		exponent := scaleCode & 3
		scaleFactor := uint32(0x8000)
		for i := 0; i < exponent; i++ {
			scaleFactor = (scaleFactor * 0x9838) >> 15
		}
		scaleFactor <<= shift
		scaleFactor = ((scaleFactor >> 16) * uint32(mixingMultiplier)) >> 15

		base := 2<<uint(bandBits) + 0
		for i := 0; i < numInputs; i++ {
			sample := int(r.Get(bandBits))
			idx := base + 2*sample
			v0 := samplePairTable93a[idx]
			v1 := samplePairTable93a[idx+1]

			_, mr := fixed.MulAddRound(fixed.MR(uint64(buf[outIdx]))<<16, v0, uint16(scaleFactor))
			buf[outIdx] = mr.MR1()
			outIdx++

			_, mr = fixed.MulAddRound(fixed.MR(uint64(buf[outIdx]))<<16, v1, uint16(scaleFactor))
			buf[outIdx] = mr.MR1()
			outIdx++
		}
	}
}
