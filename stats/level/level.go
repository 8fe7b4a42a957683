// Package level computes time-domain level statistics of a sampled signal:
// DC offset, RMS, peak and crest factor, each with its decibel equivalent
// relative to full scale 1.0.
package level

import (
	"math"

	"github.com/cwbudde/algo-fir/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Stats holds level statistics of a signal.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
}

func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate returns the level statistics of signal. An empty signal yields
// zero levels and -Inf for every dB field.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	nf := float64(n)
	energy := floats.Dot(signal, signal)
	dc := floats.Sum(signal) / nf
	rms := math.Sqrt(energy / nf)
	peak := Peak(signal)

	s := Stats{
		Length:         n,
		DC:             dc,
		DC_dB:          core.LinearToDB(math.Abs(dc)),
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           peak,
		Peak_dB:        core.LinearToDB(peak),
		CrestFactor_dB: math.Inf(-1),
		Energy:         energy,
	}

	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}

	return s
}

// RMS returns the root-mean-square of the signal, 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// Peak returns the largest absolute sample, 0 when empty.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(floats.Max(signal), -floats.Min(signal))
}

// GainDB returns the RMS level change from in to out in dB. It is NaN when
// in is silent.
func GainDB(in, out []float64) float64 {
	rin := RMS(in)
	if rin == 0 {
		return math.NaN()
	}
	return core.LinearToDB(RMS(out) / rin)
}
