// Package fir designs linear-phase FIR filters with the windowed-sinc method
// and applies them by direct linear convolution.
//
// A [Filter] is created only through a validating factory: [NewLowpass],
// [NewHighpass], [NewBandpass] or [NewCustom]. Every factory either returns a
// fully synthesized, immutable filter or a nil filter and an error wrapping
// one of the package sentinels ([ErrInvalidSize], [ErrMismatchedSize],
// [ErrInvalidParameterValue], [ErrInvalidParameterOrder],
// [ErrNormalisationFailed]); use [errors.Is] to branch on them.
//
// Cutoff frequencies are normalized to cycles per sample and must lie in
// the open interval (0, 0.5). Filter lengths must be odd so that the ideal
// response has an exact center tap.
//
// Synthesis, for center c = size/2 and offset k = i - c:
//
//	lowpass:  h[i] = w[i] * 2fc * sinc(2fc*k), normalized to unity DC gain
//	highpass: h[i] = -w[i] * 2fc * sinc(2fc*k), h[c] += 1 (spectral inversion)
//	bandpass: h[i] = w[i] * (2fh*sinc(2fh*k) - 2fl*sinc(2fl*k)), normalized
//
// where w is the optional taper selected with [WithWindow] (rectangular by
// default). Highpass taps are not normalized; spectral inversion already
// yields unity gain at Nyquist.
//
// Filtering is offline only: [Filter.Convolve] returns the full linear
// convolution of length len(signal)+Size()-1. [Filter.MagnitudeResponse]
// inspects a design through a zero-padded FFT but never filters with it.
package fir
