package window

import (
	"errors"
	"fmt"
)

// Errors returned by window construction and application.
var (
	ErrInvalidSize    = errors.New("window: invalid size")
	ErrInvalidType    = errors.New("window: invalid type")
	ErrMismatchedSize = errors.New("window: mismatched size")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidSize, size)
	}
	return nil
}

func validateType(t Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidType, int(t))
	}
	return nil
}

func validateSignal(signal []float64, size int) error {
	if len(signal) != size {
		return fmt.Errorf("%w: signal has %d samples, window has %d", ErrMismatchedSize, len(signal), size)
	}
	return nil
}
