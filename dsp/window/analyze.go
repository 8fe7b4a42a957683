package window

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

const (
	// analysisOversample is the zero-padding factor of the analysis spectrum,
	// i.e. spectrum points per window bin.
	analysisOversample = 32
	minAnalysisFFT     = 4096
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// from a zero-padded power spectrum. Empty or zero-sum input yields a zero
// Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return Analysis{}
	}

	power, err := powerSpectrum(coeffs)
	if err != nil || power[0] == 0 {
		return Analysis{}
	}

	dcRef := power[0]
	binsPerPoint := float64(n) / float64(2*(len(power)-1))

	a := Analysis{
		CoherentGain: sum / float64(n),
		ENBW:         float64(n) * floats.Dot(coeffs, coeffs) / (sum * sum),
	}

	a.Bandwidth3dB = 2 * halfPowerPoint(power, dcRef) * binsPerPoint

	minIdx := firstMinimum(power, dcRef)
	a.FirstMinimumBins = float64(minIdx) * binsPerPoint
	a.HighestSidelobedB = highestSidelobe(power, dcRef, minIdx)

	if halfBin := dftMagSq(coeffs, 0.5/float64(n)); halfBin > 0 {
		a.ScallopLossdB = 10 * math.Log10(halfBin/dcRef)
	}

	return a
}

// powerSpectrum returns |X[k]|^2 for k = 0..nfft/2 of the zero-padded window.
func powerSpectrum(coeffs []float64) ([]float64, error) {
	nfft := core.NextPowerOfTwo(max(len(coeffs)*analysisOversample, minAnalysisFFT))

	in := make([]complex128, nfft)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	half := nfft/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return power, nil
}

// halfPowerPoint returns the fractional spectrum index where the power first
// falls to half of dcRef, linearly interpolated between neighbouring points.
func halfPowerPoint(power []float64, dcRef float64) float64 {
	target := 0.5 * dcRef
	for k := 1; k < len(power); k++ {
		if power[k] > target {
			continue
		}

		prev := power[k-1]
		frac := (prev - target) / (prev - power[k])
		return float64(k-1) + frac
	}

	return float64(len(power) - 1)
}

// firstMinimum scans from DC for the first local minimum after the spectrum
// has dropped below 10% of DC. Flat-top style plateaus are skipped by the
// threshold. Returns 0 when no minimum exists.
func firstMinimum(power []float64, dcRef float64) int {
	threshold := 0.1 * dcRef
	for k := 1; k < len(power)-1; k++ {
		if power[k] < threshold && power[k] <= power[k-1] && power[k] <= power[k+1] {
			return k
		}
	}

	return 0
}

// highestSidelobe returns the peak level past the first minimum, in dB
// relative to DC. Without a minimum there is no sidelobe: -Inf.
func highestSidelobe(power []float64, dcRef float64, minIdx int) float64 {
	if minIdx <= 0 {
		return math.Inf(-1)
	}

	peak := floats.Max(power[minIdx:])
	if peak <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peak/dcRef)
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}
