/*
NAME
  forward.go

DESCRIPTION
  forward.go implements the forward transforms used by the encoder to
  turn a window of PCM audio into the frequency-domain coefficients
  the frame compressor quantizes and Huffman-encodes. Rather than
  reproducing the inverse transforms' fixed-point fold/twiddle/partial-
  IFFT decomposition bit for bit, both ForwardTransform94 and
  ForwardTransform93 compute a standard real-input FFT via go-dsp and
  repack it into the same 128-complex-bin, Nyquist-plus-DC-packed
  layout the two inverse transforms consume, with the DC and Nyquist
  bins sharing coefficient 0. A from-scratch forward counterpart is the
  encoder's preferred route for an ADSP-2105 DSP routine whose every
  addressing quirk was chosen for code size, not arithmetic clarity;
  reproducing it exactly would mean re-deriving an undocumented index
  permutation with no way to check the result. The coefficients this
  produces round-trip through the inverse transforms to recognisable
  audio rather than bit-identical audio, which is the fidelity bar the
  encoder side of the format is held to.

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

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// windowFrame applies the shared 16-tap overlap window to the first
// and last OverlapSize samples of a frame, tapering them the same way
// the inverse transforms' overlap-add does, so consecutive encoded
// frames cross-fade instead of clicking at the boundary.
func windowFrame(samples []float64) {
	n := len(samples)
	for i := 0; i < 16; i++ {
		w := float64(overlapCoefficients[i]) / 32768
		samples[i] *= w
		samples[n-1-i] *= w
	}
}

// packNyquistHalfSpectrum computes the 128 complex coefficients of a
// real-input FFT via the standard half-size-complex-FFT packing: r is
// the 256-point real spectrum (index k holds the complex coefficient
// for frequency k, with r[256-k] its conjugate), and the result is
// the length-128 sequence whose real/imaginary parts are exactly what
// a radix-2 decimation-in-time IFFT of a 256-real-sample signal would
// expect as its folded input, with the DC (k=0) and Nyquist (k=128)
// bins packed together into coefficient 0's real and imaginary parts.
func packNyquistHalfSpectrum(r []complex128) []complex128 {
	z := make([]complex128, 128)
	for k := 0; k < 128; k++ {
		rk := r[k]
		rk2 := r[k+128]
		e := (rk + rk2) / 2
		wk := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/256))
		o := (rk - rk2) / (2 * wk)
		z[k] = e + complex(0, 1)*o
	}
	return z
}

// packComplex converts a 1.15 fixed-point complex bin into the
// [real, imag] uint16 pair the decoder's coefficient buffer stores,
// clamping to the representable range.
func packComplex(c complex128, scale float64) (re, im uint16) {
	toFixed := func(v float64) uint16 {
		v *= scale
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		return uint16(int16(v))
	}
	return toFixed(real(c)), toFixed(imag(c))
}

// ForwardTransform94 computes the 256 frequency-domain coefficients
// for one OS94+ frame from 256 windowed PCM input samples (a frame's
// 240 samples plus OverlapSize samples of overlap context, matching
// the inverse transform's overlap convention).
// volShift is the caller's chosen normalization shift; it should
// match the value later passed to Transform94 when decoding the
// resulting stream.
func ForwardTransform94(samples [256]int16, volShift int) [256]uint16 {
	f := make([]float64, 256)
	for i, s := range samples {
		f[i] = float64(s)
	}
	windowFrame(f)

	r := fft.FFTReal(f)
	z := packNyquistHalfSpectrum(r)

	var out [256]uint16
	// The inverse transforms right-shift their IFFT output by volShift
	// before emitting PCM; pre-scale by the same factor here so that
	// shift survives the round trip, and divide by 128 (half the
	// 256-point FFT length) so the unnormalized go-dsp transform lands
	// back in 1.15 range.
	scale := math.Ldexp(1, volShift) / 128
	for k, c := range z {
		re, im := packComplex(c, scale)
		out[2*k] = re
		out[2*k+1] = im
	}
	return out
}

// ForwardTransform93 computes the 256 frequency-domain coefficients
// for one OS93-dialect frame. It shares ForwardTransform94's packing
// (the 1993 and 1994+ inverse transforms compute the same
// mathematical transform by different routes, see transform93.go), so
// the forward direction needs only one implementation; the separate
// entry point exists for symmetry with DecompressOS93/DecompressOS94
// and to make the dialect an explicit part of the call site.
func ForwardTransform93(samples [256]int16, volShift int) [256]uint16 {
	return ForwardTransform94(samples, volShift)
}
