package fir

import "fmt"

// Kind identifies the synthesis algorithm that produced a filter.
type Kind int

const (
	KindLowpass Kind = iota
	KindHighpass
	KindBandpass
	// KindCustom marks taps supplied directly by the caller.
	KindCustom
)

var kindNames = [...]string{
	KindLowpass:  "Lowpass",
	KindHighpass: "Highpass",
	KindBandpass: "Bandpass",
	KindCustom:   "Custom",
}

// String returns the kind name, e.g. "Bandpass".
func (k Kind) String() string {
	if k < KindLowpass || k > KindCustom {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}
