package fir

type lowpass struct {
	cutoff float64
	taper  []float64
}

// NewLowpass designs a lowpass filter with normalized cutoff in (0, 0.5)
// and an odd number of taps. The taps are normalized to unity DC gain.
func NewLowpass(cutoff float64, size int, opts ...Option) (*Filter, error) {
	if err := checkFrequencyRange(cutoff); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	taper, err := newTaper(size, opts)
	if err != nil {
		return nil, err
	}

	return design(KindLowpass, size, lowpass{cutoff: cutoff, taper: taper})
}

func (lp lowpass) calculateCoefficients(f *Filter) error {
	taps := idealLowpass(lp.cutoff, f.Size())
	applyTaper(taps, lp.taper)

	if err := f.setCoefficients(taps); err != nil {
		return err
	}

	return f.normalise()
}
