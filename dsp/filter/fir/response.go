package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Response computes the complex frequency response H(e^{-jw}) at the given
// normalized frequency (cycles per sample).
func (f *Filter) Response(freq float64) complex128 {
	w := 2 * math.Pi * freq
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given normalized
// frequency.
func (f *Filter) MagnitudeDB(freq float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freq)))
}

// MagnitudeResponse returns |H| on fftSize/2+1 evenly spaced frequencies
// from DC to Nyquist; bin k corresponds to k/fftSize cycles per sample.
// fftSize must be a power of two no smaller than Size().
func (f *Filter) MagnitudeResponse(fftSize int) ([]float64, error) {
	if len(f.coeffs) == 0 || !core.IsPowerOfTwo(fftSize) || fftSize < len(f.coeffs) {
		return nil, fmt.Errorf("%w: fft size %d for %d taps", ErrInvalidSize, fftSize, len(f.coeffs))
	}

	in := make([]complex128, fftSize)
	for i, c := range f.coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fir: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fir: forward fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
