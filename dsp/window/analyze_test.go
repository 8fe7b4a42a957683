package window

import (
	"math"
	"testing"
)

func TestAnalyzeKnownWindows(t *testing.T) {
	const n = 1024

	tests := []struct {
		typ          Type
		coherentGain float64
		enbw         float64
		bw3dB        float64
		firstMin     float64
		sidelobe     float64
		scallop      float64
	}{
		{TypeRectangular, 1.0, 1.0, 0.886, 1.0, -13.26, -3.92},
		{TypeHanning, 0.5, 1.5, 1.44, 2.0, -31.47, -1.42},
		{TypeHamming, 0.54, 1.36, 1.30, 2.0, -42.7, -1.75},
		{TypeBlackman, 0.42, 1.73, 1.65, 3.0, -58.1, -1.10},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			a := Analyze(Generate(tt.typ, n))

			check := func(name string, got, want, tol float64) {
				t.Helper()
				if math.Abs(got-want) > tol {
					t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
				}
			}

			check("CoherentGain", a.CoherentGain, tt.coherentGain, 0.01)
			check("ENBW", a.ENBW, tt.enbw, 0.02)
			check("Bandwidth3dB", a.Bandwidth3dB, tt.bw3dB, 0.03)
			check("FirstMinimumBins", a.FirstMinimumBins, tt.firstMin, 0.05)
			check("HighestSidelobedB", a.HighestSidelobedB, tt.sidelobe, 1.0)
			check("ScallopLossdB", a.ScallopLossdB, tt.scallop, 0.05)
		})
	}
}

func TestAnalyzeDegenerateInput(t *testing.T) {
	if a := Analyze(nil); a != (Analysis{}) {
		t.Fatalf("Analyze(nil) = %#v, want zero", a)
	}

	if a := Analyze([]float64{0, 0, 0}); a != (Analysis{}) {
		t.Fatalf("Analyze(zeros) = %#v, want zero", a)
	}
}

func TestAnalyzeSingleSample(t *testing.T) {
	a := Analyze(Generate(TypeHamming, 1))
	if a.CoherentGain != 1 || a.ENBW != 1 {
		t.Fatalf("single sample: coherent gain %v, ENBW %v", a.CoherentGain, a.ENBW)
	}

	if !math.IsInf(a.HighestSidelobedB, -1) {
		t.Fatalf("single sample sidelobe = %v, want -Inf", a.HighestSidelobedB)
	}
}
