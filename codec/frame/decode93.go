/*
NAME
  decode93.go

DESCRIPTION
  decode93.go implements DecompressOS93, the frame decompressor shared
  by OS93a Type-0 streams and every OS93b stream. Each
  of the header's 16 bytes describes one band: a scaling-factor code
  identical in layout to OS94+'s, and (format type 0) a directly
  encoded 4-bit band-type code and 1-bit sub-type delta, or (format
  type 1) a Huffman-coded differential band-type code shared with the
  sub-type inversion quirk in huffman93.go.

  Band-type code 0's sub-type 1 case reproduces a documented rounding
  anomaly in the original firmware: the repeat loop's multiply-round
  carries the previous iteration's rounding remainder forward instead
  of reloading it from the repeated sample each time. Fixing this
  anomaly changes decoded PCM output in a handful of frames across the
  title library, so it is preserved rather than corrected.

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
	"github.com/ausocean/dcs/internal/fixed"
)

// subTypeDec and subTypeInc give the format-type-0 one-bit band
// sub-type transition: subtract-1-mod-3 and add-1-mod-3.
var (
	subTypeDec = [3]int{2, 0, 1}
	subTypeInc = [3]int{1, 2, 0}
)

// DecompressOS93 decodes one frame of an OS93a-Type-0 or OS93b
// channel into buf (length BufLen). header is the stream's 16-byte
// header (low 7 bits of each byte as stored in ROM); state carries
// the band-type and band-sub-type state across frames.
func DecompressOS93(r *bitio.Reader, header [format.NumBands]byte, state *StreamState, mixingMultiplier uint16, buf []uint16) {
	prevFirst := buf[1]

	streamFormatType := int(header[0]&0x80) >> 7

	isFirstBand := true
	var prvInput, prvInputDelta uint16
	curBandTypeCode := 0
	outIdx := 1

	for band := 0; band < format.NumBands; band++ {
		curHdr := int(header[band]) & 0x7F
		if curHdr == 0x7F {
			break
		}

		scalingFactor := format.ScalingFactor(byte(curHdr & 0x3F))
		outputStrideCode := curHdr >> 6

		var nSamples, outputBufInc, outputBufFixup, outputBufStride int
		if streamFormatType == 0 {
			if outputStrideCode == 0 {
				nSamples, outputBufInc, outputBufFixup, outputBufStride = 16, 1, 0, 16
			} else {
				outIdx++
				nSamples, outputBufInc, outputBufFixup, outputBufStride = 16, 2, -1, 31
			}
		} else {
			if outputStrideCode == 0 {
				outputBufInc, outputBufFixup = 1, 0
				if isFirstBand {
					nSamples = 15
				} else {
					nSamples = 16
				}
				outputBufStride = nSamples
			} else {
				outputBufInc, outputBufFixup = 2, 0
				nSamples, outputBufStride = 8, 8
			}
		}

		if state.ReuseBandType {
			state.ReuseBandType = r.Get(1) != 0
		}
		if !state.ReuseBandType {
			if streamFormatType == 0 {
				if r.Get(1) != 0 {
					if r.Get(1) != 0 {
						state.BandSubType = subTypeInc[state.BandSubType]
					} else {
						state.BandSubType = subTypeDec[state.BandSubType]
					}
				}
				curBandTypeCode = int(r.Get(4))
			} else {
				state.BandType[band] += readHuff93(r, &state.BandSubType)
				curBandTypeCode = state.BandType[band]
			}
		}

		addOutput := func(sample uint16) {
			accumulate(buf, outIdx, sample, scalingFactor, mixingMultiplier)
			outIdx += outputBufInc
		}

		if curBandTypeCode == 0 {
			state.ReuseBandType = true
			switch state.BandSubType {
			case 0:
				outIdx += outputBufStride
				prvInput, prvInputDelta = 0, 0
			case 1:
				// Reproduces the documented rounding anomaly: prodLow
				// is computed once from prvInput, outside the loop,
				// and then reused unchanged on every iteration instead
				// of being recomputed from the repeated sample each
				// time.
				prodLow := int16((int64(int16(prvInput)) * int64(int16(scalingFactor))) & 0xFFFF)
				for i := 0; i < nSamples; i++ {
					acc := (int64(int16(buf[outIdx])) << 16) | int64(uint16(prodLow))
					acc += int64(prodLow) * int64(int16(mixingMultiplier))
					buf[outIdx] = uint16((acc >> 16) & 0xFFFF)
					outIdx += outputBufInc
				}
				prvInputDelta = 0
				outIdx += outputBufFixup
			case 2:
				for i := 0; i < nSamples; i++ {
					prvInput += prvInputDelta
					addOutput(prvInput)
				}
				outIdx += outputBufFixup
			}
		} else {
			bitWidth := curBandTypeCode
			if streamFormatType == 0 {
				bitWidth++
			}
			inputs := make([]uint16, nSamples)
			for i := range inputs {
				inputs[i] = uint16(r.GetSigned(bitWidth))
			}
			switch state.BandSubType {
			case 0:
				for _, v := range inputs {
					addOutput(v)
				}
				if nSamples >= 2 {
					prvInput = inputs[nSamples-1]
					prvInputDelta = uint16(fixed.SatAdd16(int16(inputs[nSamples-1]), -int16(inputs[nSamples-2])))
				}
			case 1:
				for _, v := range inputs {
					prvInputDelta = v
					prvInput += prvInputDelta
					addOutput(prvInput)
				}
			case 2:
				for _, v := range inputs {
					prvInputDelta += v
					prvInput += prvInputDelta
					addOutput(prvInput)
				}
			}
			outIdx += outputBufFixup
		}

		isFirstBand = false
	}

	propagateDelta(buf, prevFirst)
}
