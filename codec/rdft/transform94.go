/*
NAME
  transform94.go

DESCRIPTION
  transform94.go implements the 1994+ inverse real-valued discrete
  Fourier transform: three in-place twiddle passes fold
  the 256-sample frequency-domain frame into a standard 128-point
  complex IFFT layout, six Cooley-Tukey butterfly iterations (one
  short of a full 128-point IFFT) leave the result split into two
  interleaved 64-point halves, and the volume-shift, overlap-add and
  extract steps at the end of Transform94 finish the job.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rdft

import "github.com/ausocean/dcs/internal/fixed"

// Transform94 runs the 1994+ inverse transform on buf, a 256-element
// frequency-domain frame (used as working storage and overwritten in
// place), applies volShift, mixes in overlap, and returns 240 PCM
// samples. overlap is updated in place with the new frame's tail for
// the next call.
func Transform94(buf []uint16, overlap *[16]uint16, volShift int) [240]uint16 {
	// Fold the RDFT's Nyquist-bin pair (index 0x80/0x81) to match the
	// sign convention the IFFT butterfly expects.
	buf[0x80] = fixed.Mul(buf[0x80], 0x8000)
	buf[0x81] = fixed.Mul(uint16(-int16(buf[0x81])), 0x8000)

	// Dual-halves fold: combine samples from opposite ends of the
	// buffer into sum/difference pairs, negated via the 0x8000 factor.
	p0, p1 := 0, 0x100
	for i := 0; i < 0x40; i++ {
		x0 := int32(int16(buf[p0]))
		y0 := int32(int16(buf[p1]))
		x1 := int32(int16(buf[p0+1]))
		y1 := int32(int16(buf[p1+1]))

		buf[p0] = fixed.Mul(uint16(fixed.Sat16(x0+y0)), 0x8000)
		buf[p1] = fixed.Mul(uint16(fixed.Sat16(x0-y0)), 0x8000)
		buf[p0+1] = fixed.Mul(uint16(fixed.Sat16(x1-y1)), 0x8000)
		buf[p1+1] = fixed.Mul(uint16(fixed.Sat16(x1+y1)), 0x8000)

		p0 += 2
		p1 -= 2
	}

	// Twiddle with the half-set coefficients, read through the
	// bit-reversal table.
	p4, p5 := 0, 0x100
	i0, i1 := uint16(2), uint16(0)
	for i := 0; i < 0x40; i++ {
		c0 := ifftCoefficients[bitRev9[i0]]
		c1 := ifftCoefficients[bitRev9[i1]]

		x0 := int32(int16(buf[p4]))
		x1 := int32(int16(buf[p4+1]))
		xn0 := buf[p5]
		xn1 := buf[p5+1]

		mr := fixed.MulSS(xn1, c1)
		prod0v, _ := fixed.MulSubRound(mr, xn0, c0)
		prod0 := int32(int16(prod0v))

		mr = fixed.MulSS(xn1, c0)
		prod1v, _ := fixed.MulAddRound(mr, xn0, c1)
		prod1 := int32(int16(prod1v))

		buf[p4] = uint16(fixed.Sat16(prod1 + x0))
		buf[p4+1] = uint16(fixed.Sat16(prod0 + x1))
		buf[p5] = uint16(fixed.Sat16(x0 - prod1))
		buf[p5+1] = uint16(fixed.Sat16(prod0 - x1))

		p4 += 2
		p5 -= 2
		i0 += 4
		i1 += 4
	}

	// High/low fold: turns the twiddled layout into standard
	// frequency-ordered complex pairs for the IFFT below.
	p0, p1 = 0, 0x80
	for i := 0; i < 0x40; i++ {
		x0 := int32(int16(buf[p0]))
		y0 := int32(int16(buf[p1]))
		x1 := int32(int16(buf[p0+1]))
		y1 := int32(int16(buf[p1+1]))

		buf[p0] = uint16(fixed.Sat16(x0 + y0))
		buf[p1] = uint16(fixed.Sat16(x0 - y0))
		p0++
		p1++
		buf[p0] = uint16(fixed.Sat16(x1 + y1))
		buf[p1] = uint16(fixed.Sat16(x1 - y1))
		p0++
		p1++
	}

	// Cooley-Tukey IFFT, stopped one iteration short of a full
	// 128-point transform: the result ends up split into
	// two interleaved 64-point halves rather than fully combined.
	nPartitions := 2
	partitionSize := 0x40
	for iter := 0; iter < 6; iter++ {
		p0, p1 = 0, partitionSize
		for part := 0; part < nPartitions; part++ {
			cSin := ifftCoefficients[part]
			cCos := ifftCoefficients[0x80+part]
			for j := partitionSize / 2; j != 0; j-- {
				aReal := buf[p1]
				aImag := buf[p1+1]

				mr := fixed.MulSS(aReal, cCos)
				tRealV, _ := fixed.MulSubRound(mr, aImag, cSin)
				tReal := int32(int16(tRealV))

				mr = fixed.MulSS(aImag, cCos)
				tImagV, _ := fixed.MulAddRound(mr, aReal, cSin)
				tImag := int32(int16(tImagV))

				uReal := int32(int16(buf[p0]))
				uImag := int32(int16(buf[p0+1]))

				buf[p0] = uint16(fixed.Sat16(uReal - tReal))
				buf[p0+1] = uint16(fixed.Sat16(uImag - tImag))
				p0 += 2

				buf[p1] = uint16(fixed.Sat16(uReal + tReal))
				buf[p1+1] = uint16(fixed.Sat16(uImag + tImag))
				p1 += 2
			}
			p0 += partitionSize
			p1 += partitionSize
		}
		nPartitions *= 2
		partitionSize /= 2
	}

	// Volume normalization: every intermediate sample is a 1.15
	// mantissa with an implied exponent of 2^-volShift.
	for i := range buf[:0x100] {
		buf[i] = uint16(fixed.ShiftRightArith(int32(int16(buf[i])), uint(volShift)))
	}

	// Mix the previous frame's overlap tail into the first 16 elements,
	// read through the bit-reversal permutation.
	co0, coN := 0, 0x0F
	ov := 0
	for i := 0; i < 16; i += 2 {
		bi := int(bitRev9[i])

		a := fixed.MulSU(buf[bi], overlapCoefficients[co0])
		b := fixed.MulSU(overlap[ov], overlapCoefficients[coN])
		co0++
		coN--
		ov++
		buf[bi] = fixed.RoundAcc(a + b)
		bi++

		a = fixed.MulSU(buf[bi], overlapCoefficients[co0])
		b = fixed.MulSU(overlap[ov], overlapCoefficients[coN])
		co0++
		coN--
		ov++
		buf[bi] = fixed.RoundAcc(a + b)
	}

	// Extract the 240 output samples in time order via the
	// bit-reversal permutation.
	var out [240]uint16
	oi := 0
	for i := 0; i < 240; i += 2 {
		bi := int(bitRev9[i])
		out[oi] = buf[bi]
		out[oi+1] = buf[bi+1]
		oi += 2
	}

	// Save the last 16 samples as the next frame's overlap tail.
	oi = 0
	for i := 240; i < 256; i += 2 {
		bi := int(bitRev9[i])
		overlap[oi] = buf[bi]
		overlap[oi+1] = buf[bi+1]
		oi += 2
	}

	return out
}
