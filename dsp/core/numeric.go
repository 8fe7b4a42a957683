package core

import "math"

const defaultEpsilon = 1e-12

// sincEpsilon bounds the region around the origin where Sinc returns 1.
const sincEpsilon = 1e-12

// Sinc returns the normalized sinc function sin(πx)/(πx).
// Arguments with |x| < 1e-12 return exactly 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincEpsilon {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NormalizedFrequency converts a frequency in Hz to cycles per sample.
// Returns NaN when sampleRate is not positive.
func NormalizedFrequency(freqHz, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return math.NaN()
	}

	return freqHz / sampleRate
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
