package fir

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/window"
)

func BenchmarkNewLowpass(b *testing.B) {
	for _, taps := range []int{9, 65, 257} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = NewLowpass(0.2, taps, WithWindow(window.TypeHamming))
			}
		})
	}
}

func BenchmarkConvolve(b *testing.B) {
	signal := make([]float64, 1024)
	for i := range signal {
		signal[i] = float64(i) * 0.001
	}

	for _, taps := range []int{9, 65, 257} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			f, err := NewLowpass(0.2, taps)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(len(signal)) * 8)
			b.ResetTimer()

			for b.Loop() {
				_, _ = f.Convolve(signal)
			}
		})
	}
}
