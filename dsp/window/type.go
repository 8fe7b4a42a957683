package window

import (
	"fmt"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeHanning
	TypeBlackman
)

var typeNames = [...]string{
	TypeRectangular: "Rectangular",
	TypeHamming:     "Hamming",
	TypeHanning:     "Hanning",
	TypeBlackman:    "Blackman",
}

// Types returns every supported window type in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHamming, TypeHanning, TypeBlackman}
}

// Valid reports whether t is one of the declared window types.
func (t Type) Valid() bool {
	return t >= TypeRectangular && t <= TypeBlackman
}

// String returns the window name, e.g. "Hamming".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a case-insensitive window name. "hann" is accepted as
// an alias for Hanning, "rect" and "none" for Rectangular.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "rect", "none":
		return TypeRectangular, nil
	case "hann":
		return TypeHanning, nil
	}

	for _, t := range Types() {
		if strings.ToLower(t.String()) == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidType, name)
}
