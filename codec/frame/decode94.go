/*
NAME
  decode94.go

DESCRIPTION
  decode94.go implements DecompressOS94, the frame decompressor used
  by every OS94-and-later dialect. A frame's 16-byte
  Stream Header gives each band's scaling-factor code; a per-frame
  differential Huffman header (huffman94.go) gives each band's
  bit-width/encoding type code; bands with a non-zero type code 1-6
  decode through a fixed Huffman sample codebook (codebooks94.go),
  and codes 7+ are raw signed fields.

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
	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/bitio"
)

// preAdjSubtype0 and preAdjSubtype13 are the scaling-code
// pre-adjustment tables for bands 0-2 of a Type-1 stream, selected by
// the stream's 2-bit sub-format code. Only two
// distinct tables are reachable; the ROM's apparent four-way
// selection collapses to these two, a faithfully preserved quirk.
var (
	preAdjSubtype0  = [16]int{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	preAdjSubtype13 = [16]int{0, 0, 0, 0, 1, 2, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4}
)

// bandXlat is one entry of a Type-1 band-type translation table: the
// translated band type code and a scaling-factor-code adjustment.
type bandXlat struct {
	typeCode  int
	scalingAdj int
}

var xlatBand02 = [16]bandXlat{
	{0x00, 0x00}, {0x01, 0x00}, {0x02, 0x00}, {0x03, 0x00},
	{0x04, 0x00}, {0x04, 0x02}, {0x04, 0x05}, {0x05, 0x05},
	{0x05, 0x09}, {0x05, 0x0d}, {0x06, 0x0d}, {0x06, 0x11},
	{0x06, 0x15}, {0x07, 0x19}, {0x07, 0x1d}, {0x08, 0x1d},
}

var xlatBand35 = [16]bandXlat{
	{0x00, 0x00}, {0x01, 0x00}, {0x02, 0x00}, {0x03, 0x00},
	{0x04, 0x00}, {0x04, 0x02}, {0x04, 0x07}, {0x04, 0x0b},
	{0x05, 0x0b}, {0x05, 0x0f}, {0x05, 0x13}, {0x05, 0x17},
	{0x06, 0x17}, {0x06, 0x1b}, {0x06, 0x1f}, {0x07, 0x1f},
}

var xlatBand6F = [16]bandXlat{
	{0x00, 0x00}, {0x01, 0x00}, {0x02, 0x00}, {0x03, 0x00},
	{0x03, 0x02}, {0x04, 0x02}, {0x04, 0x07}, {0x04, 0x0b},
	{0x05, 0x0b}, {0x05, 0x0f}, {0x05, 0x13}, {0x05, 0x17},
	{0x06, 0x17}, {0x06, 0x1b}, {0x06, 0x1f}, {0x07, 0x23},
}

// DecompressOS94 decodes one frame of an OS94+ channel into buf
// (length BufLen). header is the stream's 16-byte Stream Header
// (low 7 bits of each byte, as stored in ROM); state.BandType is
// updated in place with the frame's decoded band-type codes.
// mixingMultiplier is the channel's current 1.15 mixing level.
func DecompressOS94(r *bitio.Reader, header [format.NumBands]byte, state *StreamState, mixingMultiplier uint16, buf []uint16) {
	prevFirst := buf[1]

	frameFormatType := int(header[0]&0x80) >> 7
	frameSubFormatType := (int(header[1]&0x80) >> 6) | (int(header[2]&0x80) >> 7)

	var preAdjTab *[16]int
	if frameSubFormatType == 0 {
		preAdjTab = &preAdjSubtype0
	} else {
		preAdjTab = &preAdjSubtype13
	}
	var preAdj [3]int
	for i := 0; i < 3; i++ {
		preAdj[i] = preAdjTab[state.BandType[i]]
	}

	// Decode the differential band-type-code header.
	for i := 0; i < format.NumBands && header[i]&0x7F != 0x7F; i++ {
		state.BandType[i] += decodeBandTypeDelta94(r)
	}

	outIdx := 1
	for bandIndex := 0; bandIndex < format.NumBands; bandIndex++ {
		curHdr := int(header[bandIndex]) & 0x7F
		if curHdr == 0x7F {
			break
		}

		outputCount := format.OS94BandSampleCounts[bandIndex]
		outputInc := 1
		if curHdr&0x40 != 0 {
			outputInc = 2
			outputCount /= 2
		}

		curBandTypeCode := state.BandType[bandIndex]
		if curBandTypeCode == 0 {
			outIdx += outputCount
			continue
		}

		scalingFactorCode := curHdr
		if frameFormatType != 0 {
			var xlat bandXlat
			switch {
			case bandIndex < 3:
				curHdr += preAdj[bandIndex]
				xlat = xlatBand02[curBandTypeCode&0xF]
			case bandIndex < 6:
				xlat = xlatBand35[curBandTypeCode&0xF]
			default:
				xlat = xlatBand6F[curBandTypeCode&0xF]
			}
			curBandTypeCode = xlat.typeCode
			scalingFactorCode = curHdr + xlat.scalingAdj
		}
		scalingFactor := format.ScalingFactor(byte(scalingFactorCode & 0x3F))

		bandBuf := make([]uint16, outputCount)
		switch {
		case curBandTypeCode <= 6:
			sampleValueRef := 1 << uint(curBandTypeCode-1)
			codebook, maxBitWidth := sampleCodebook94(curBandTypeCode)
			i := 0
			for i < outputCount {
				lookahead := r.Peek(maxBitWidth)
				entry := codebook[lookahead]
				val := int(entry & 0xFF)
				nBits := int(entry >> 8)
				r.Consume(nBits)
				if val&0x80 != 0 {
					bandBuf[i] = 0
					if i+1 < outputCount {
						i++
						bandBuf[i] = 0
					}
					i++
				} else {
					bandBuf[i] = uint16(val - sampleValueRef)
					i++
				}
			}
		default:
			for i := 0; i < outputCount; i++ {
				bandBuf[i] = uint16(r.GetSigned(curBandTypeCode))
			}
		}

		for i := 0; i < outputCount; i++ {
			accumulate(buf, outIdx, bandBuf[i], scalingFactor, mixingMultiplier)
			outIdx += outputInc
		}
	}

	propagateDelta(buf, prevFirst)
}
