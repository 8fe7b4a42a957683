package fir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/window"
)

// synthesizer computes the taps of one filter kind into a zeroed filter.
type synthesizer interface {
	calculateCoefficients(f *Filter) error
}

// Option configures filter design.
type Option func(*config)

type config struct {
	window window.Type
}

func defaultConfig() config {
	return config{window: window.TypeRectangular}
}

// WithWindow tapers the truncated ideal response with the given window.
// The default is window.TypeRectangular, i.e. plain truncation.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// newTaper returns the window coefficients for a design of the given size.
func newTaper(size int, opts []Option) ([]float64, error) {
	cfg := applyOptions(opts)

	w, err := window.New(size, window.WithType(cfg.window))
	switch {
	case errors.Is(err, window.ErrInvalidType):
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameterValue, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	return w.Coefficients(), nil
}

// design builds the zeroed filter and runs synthesis. Parameters must be
// validated before calling.
func design(kind Kind, size int, s synthesizer) (*Filter, error) {
	f := newFilter(kind, size)
	if err := s.calculateCoefficients(f); err != nil {
		return nil, err
	}

	return f, nil
}

// idealLowpass returns the truncated ideal lowpass response 2fc*sinc(2fc*k)
// centered at size/2.
func idealLowpass(fc float64, size int) []float64 {
	taps := make([]float64, size)
	c := size / 2
	for i := range taps {
		k := float64(i - c)
		taps[i] = 2 * fc * core.Sinc(2*fc*k)
	}
	return taps
}

func applyTaper(taps, taper []float64) {
	vecmath.MulBlockInPlace(taps, taper)
}
