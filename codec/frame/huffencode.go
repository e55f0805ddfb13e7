/*
NAME
  huffencode.go

DESCRIPTION
  huffencode.go inverts the fixed decode-side Huffman structures
  (headerHuffTree94, headerHuffTree93, and the six OS94+ sample
  codebooks) into encode-side lookup tables, so the frame compressor
  can emit the same bit patterns DecompressOS94/DecompressOS93 expect
  without hand-duplicating the trees. Each inversion is built once, at
  package init, and cached.

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

import "github.com/ausocean/dcs/internal/bitio"

// huffCode is one Huffman codeword: the low nBits bits of code,
// MSB-first.
type huffCode struct {
	code  uint32
	nBits int
}

func (c huffCode) write(w *bitio.Writer) { w.WriteBits(c.code, c.nBits) }

// buildHeaderEncoder94 walks headerHuffTree94 breadth-first and
// returns the shortest codeword for every excess-$2E delta it can
// represent. The tree's non-terminal nodes are offsets (a '0' bit
// advances to idx+1, a '1' bit jumps to idx+node), so the walk tracks
// the absolute index reached rather than following packed child
// pointers directly.
func buildHeaderEncoder94() map[int]huffCode {
	type step struct {
		idx  int
		code uint32
		n    int
	}
	out := make(map[int]huffCode)
	seen := make(map[int]bool)
	queue := []step{{0, 0, 0}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if seen[s.idx] {
			continue
		}
		seen[s.idx] = true
		node := headerHuffTree94[s.idx]
		if node&0x8000 != 0 {
			delta := int(node&0xFF) - 0x2E
			if _, ok := out[delta]; !ok {
				out[delta] = huffCode{s.code, s.n}
			}
			continue
		}
		queue = append(queue, step{s.idx + 1, s.code << 1, s.n + 1})
		queue = append(queue, step{s.idx + int(node), (s.code << 1) | 1, s.n + 1})
	}
	return out
}

// buildHeaderEncoder93 walks headerHuffTree93 breadth-first and
// returns two codeword tables: noFlip for excess-$0F deltas (terminal
// values below $1E) and flip for excess-$2E deltas that also invert
// the running band sub-type (terminal values $1E and above), mirroring
// readHuff93's two conventions.
func buildHeaderEncoder93() (noFlip, flip map[int]huffCode) {
	type step struct {
		idx  int
		code uint32
		n    int
	}
	noFlip = make(map[int]huffCode)
	flip = make(map[int]huffCode)
	seen := make(map[int]bool)
	queue := []step{{0, 0, 0}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if seen[s.idx] {
			continue
		}
		seen[s.idx] = true
		node := headerHuffTree93[s.idx]
		if node&0x8000 != 0 {
			val := int(node & 0x3F)
			if val < 0x1E {
				d := val - 0x0F
				if _, ok := noFlip[d]; !ok {
					noFlip[d] = huffCode{s.code, s.n}
				}
			} else {
				d := val - 0x2E
				if _, ok := flip[d]; !ok {
					flip[d] = huffCode{s.code, s.n}
				}
			}
			continue
		}
		lo := int(node & 0xFF)
		hi := int(node >> 8)
		queue = append(queue, step{lo, s.code << 1, s.n + 1})
		queue = append(queue, step{hi, (s.code << 1) | 1, s.n + 1})
	}
	return noFlip, flip
}

// sampleEncoder94 is the encode-side counterpart of one OS94+ sample
// codebook: vals maps a decoded delta (val-sampleValueRef) to its
// shortest codeword, and dz is the "two zero samples" sentinel
// codeword, present whenever the codebook defines one.
type sampleEncoder94 struct {
	vals  map[int]huffCode
	dz    huffCode
	hasDZ bool
}

// buildSampleEncoder94 inverts codebook (one of codebook94_1..6):
// scanning in increasing lookahead order visits each value's smallest
// representable code first, since the table entries repeat across
// every index whose unconsumed low bits don't affect the decode.
func buildSampleEncoder94(typeCode int) sampleEncoder94 {
	codebook, maxBitWidth := sampleCodebook94(typeCode)
	sampleValueRef := 1 << uint(typeCode-1)
	enc := sampleEncoder94{vals: make(map[int]huffCode)}
	for i, entry := range codebook {
		nBits := int(entry >> 8)
		low := entry & 0xFF
		code := uint32(i) >> uint(maxBitWidth-nBits)
		if low&0x80 != 0 {
			if !enc.hasDZ {
				enc.dz = huffCode{code, nBits}
				enc.hasDZ = true
			}
			continue
		}
		d := int(low) - sampleValueRef
		if _, ok := enc.vals[d]; !ok {
			enc.vals[d] = huffCode{code, nBits}
		}
	}
	return enc
}

var (
	headerEncoder94        = buildHeaderEncoder94()
	headerEncoderNoFlip93, headerEncoderFlip93 = buildHeaderEncoder93()
	sampleEncoders94        = [7]sampleEncoder94{}
)

func init() {
	for tc := 1; tc <= 6; tc++ {
		sampleEncoders94[tc] = buildSampleEncoder94(tc)
	}
}

// fitsSampleEncoder94 reports whether enc can represent every value in
// deltas, honouring the same double-zero coalescing
// writeSamples94 uses, so a typeCode candidate is only accepted when
// the compressor can actually emit it losslessly.
func fitsSampleEncoder94(enc sampleEncoder94, deltas []int32) bool {
	for i := 0; i < len(deltas); i++ {
		if deltas[i] == 0 && enc.hasDZ && (i+1 >= len(deltas) || deltas[i+1] == 0) {
			if i+1 < len(deltas) {
				i++
			}
			continue
		}
		if _, ok := enc.vals[int(deltas[i])]; !ok {
			return false
		}
	}
	return true
}

// writeSamples94 Huffman-encodes deltas into w using enc, coalescing
// adjacent zero pairs into the double-zero sentinel exactly as
// DecompressOS94 expects to unpack them.
func writeSamples94(w *bitio.Writer, enc sampleEncoder94, deltas []int32) {
	for i := 0; i < len(deltas); i++ {
		if deltas[i] == 0 && enc.hasDZ && (i+1 >= len(deltas) || deltas[i+1] == 0) {
			enc.dz.write(w)
			if i+1 < len(deltas) {
				i++
			}
			continue
		}
		enc.vals[int(deltas[i])].write(w)
	}
}
