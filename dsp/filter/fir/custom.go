package fir

type custom struct {
	taps []float64
}

// NewCustom wraps caller-supplied taps. The length must be odd and non-zero
// and every tap finite. The taps are copied and used as is.
func NewCustom(taps []float64) (*Filter, error) {
	if err := checkSize(len(taps)); err != nil {
		return nil, err
	}
	if err := checkFinite(taps); err != nil {
		return nil, err
	}

	return design(KindCustom, len(taps), custom{taps: taps})
}

func (c custom) calculateCoefficients(f *Filter) error {
	return f.setCoefficients(c.taps)
}
