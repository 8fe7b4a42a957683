package fir

type highpass struct {
	cutoff float64
	taper  []float64
}

// NewHighpass designs a highpass filter by spectral inversion of the
// windowed lowpass kernel. With the default rectangular window the center
// tap is exactly 1-2*cutoff. The taps are not normalized.
func NewHighpass(cutoff float64, size int, opts ...Option) (*Filter, error) {
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

	return design(KindHighpass, size, highpass{cutoff: cutoff, taper: taper})
}

func (hp highpass) calculateCoefficients(f *Filter) error {
	taps := idealLowpass(hp.cutoff, f.Size())
	applyTaper(taps, hp.taper)

	for i := range taps {
		taps[i] = -taps[i]
	}
	taps[len(taps)/2]++

	return f.setCoefficients(taps)
}
