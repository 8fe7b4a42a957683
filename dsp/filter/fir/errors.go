package fir

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by filter construction and convolution.
var (
	ErrInvalidSize           = errors.New("fir: invalid size")
	ErrMismatchedSize        = errors.New("fir: mismatched size")
	ErrInvalidParameterValue = errors.New("fir: invalid parameter value")
	ErrInvalidParameterOrder = errors.New("fir: invalid parameter order")
	ErrNormalisationFailed   = errors.New("fir: normalisation failed")
)

// checkFrequencyRange requires 0 < fc < 0.5 (cycles per sample).
func checkFrequencyRange(fc float64) error {
	if !(fc > 0 && fc < 0.5) {
		return fmt.Errorf("%w: cutoff %g outside (0, 0.5)", ErrInvalidParameterValue, fc)
	}
	return nil
}

func checkFrequencyOrder(low, high float64) error {
	if !(low < high) {
		return fmt.Errorf("%w: low cutoff %g must be below high cutoff %g", ErrInvalidParameterOrder, low, high)
	}
	return nil
}

// checkSize requires an odd, non-zero tap count so the design has an exact
// center tap.
func checkSize(size int) error {
	if size <= 0 || size%2 == 0 {
		return fmt.Errorf("%w: size must be odd and > 0, got %d", ErrInvalidSize, size)
	}
	return nil
}

func checkFinite(taps []float64) error {
	for i, v := range taps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: tap %d is %v", ErrInvalidParameterValue, i, v)
		}
	}
	return nil
}
