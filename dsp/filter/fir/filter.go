package fir

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fir/dsp/conv"
)

// normalisationEpsilon is the smallest tap sum accepted as a DC gain.
const normalisationEpsilon = 1e-12

// Filter is an immutable FIR filter: a kind tag and an odd-length tap vector.
// The zero value has no taps and fails every convolution with ErrInvalidSize.
type Filter struct {
	kind   Kind
	coeffs []float64
}

// newFilter allocates a zeroed filter. It does not validate; callers must
// have checked size already.
func newFilter(kind Kind, size int) *Filter {
	return &Filter{
		kind:   kind,
		coeffs: make([]float64, size),
	}
}

// Coefficients returns a copy of the filter taps.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Size returns the number of taps.
func (f *Filter) Size() int {
	return len(f.coeffs)
}

// Kind returns the synthesis kind of the filter.
func (f *Filter) Kind() Kind {
	return f.kind
}

// Convolve returns the full linear convolution of signal with the taps,
// of length len(signal)+Size()-1.
//
//	y[k] = sum_{n+m=k} signal[n] * h[m]
func (f *Filter) Convolve(signal []float64) ([]float64, error) {
	if len(signal) == 0 || len(f.coeffs) == 0 {
		return nil, fmt.Errorf("%w: cannot convolve %d samples with %d taps", ErrInvalidSize, len(signal), len(f.coeffs))
	}

	out, err := conv.Direct(signal, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	return out, nil
}

// ConvolveInPlace convolves *signal like Convolve and replaces *signal with
// the (longer) result, which is also returned. The caller's backing array is
// never written. *signal is left untouched on error.
func (f *Filter) ConvolveInPlace(signal *[]float64) ([]float64, error) {
	if signal == nil {
		return nil, fmt.Errorf("%w: nil signal", ErrInvalidSize)
	}

	out, err := f.Convolve(*signal)
	if err != nil {
		return nil, err
	}

	*signal = out

	return out, nil
}

// setCoefficients replaces the taps wholesale; the length may not change.
func (f *Filter) setCoefficients(values []float64) error {
	if len(values) != len(f.coeffs) {
		return fmt.Errorf("%w: got %d taps, filter has %d", ErrMismatchedSize, len(values), len(f.coeffs))
	}

	copy(f.coeffs, values)

	return nil
}

// normalise scales the taps to unity DC gain.
func (f *Filter) normalise() error {
	sum := floats.Sum(f.coeffs)
	if math.IsNaN(sum) || sum < normalisationEpsilon {
		return fmt.Errorf("%w: tap sum %g", ErrNormalisationFailed, sum)
	}

	for i := range f.coeffs {
		f.coeffs[i] /= sum
	}

	return nil
}
