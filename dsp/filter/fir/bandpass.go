package fir

import "gonum.org/v1/gonum/floats"

type bandpass struct {
	low, high float64
	taper     []float64
}

// NewBandpass designs a bandpass filter as the difference of two lowpass
// kernels with cutoffs high and low, 0 < low < high < 0.5. The taps are
// normalized by their sum; designs whose truncated DC gain is not positive
// fail with ErrNormalisationFailed.
func NewBandpass(low, high float64, size int, opts ...Option) (*Filter, error) {
	if err := checkFrequencyRange(low); err != nil {
		return nil, err
	}
	if err := checkFrequencyRange(high); err != nil {
		return nil, err
	}
	if err := checkFrequencyOrder(low, high); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	taper, err := newTaper(size, opts)
	if err != nil {
		return nil, err
	}

	return design(KindBandpass, size, bandpass{low: low, high: high, taper: taper})
}

func (bp bandpass) calculateCoefficients(f *Filter) error {
	taps := idealLowpass(bp.high, f.Size())
	floats.Sub(taps, idealLowpass(bp.low, f.Size()))
	applyTaper(taps, bp.taper)

	if err := f.setCoefficients(taps); err != nil {
		return err
	}

	return f.normalise()
}
