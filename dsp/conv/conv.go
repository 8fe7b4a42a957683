package conv

import (
	"errors"

	"github.com/cwbudde/algo-fir/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// OutputLen returns the full linear convolution length for inputs of
// length n and m, or 0 if either is empty.
func OutputLen(n, m int) int {
	if n <= 0 || m <= 0 {
		return 0
	}

	return n + m - 1
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, OutputLen(len(a), len(b)))
	if err := DirectTo(result, a, b); err != nil {
		return nil, err
	}

	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1 and must not alias a or b.
func DirectTo(dst, a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	if len(dst) != OutputLen(len(a), len(b)) {
		return ErrLengthMismatch
	}

	core.Zero(dst)

	m := len(b)
	for i, x := range a {
		if x == 0 {
			continue
		}

		floats.AddScaled(dst[i:i+m], x, b)
	}

	return nil
}
