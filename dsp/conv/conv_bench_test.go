package conv

import (
	"fmt"
	"testing"
)

func BenchmarkDirect(b *testing.B) {
	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = float64(i%17) * 0.01
	}

	for _, taps := range []int{9, 33, 129} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			kernel := make([]float64, taps)
			for i := range kernel {
				kernel[i] = 1.0 / float64(taps)
			}

			dst := make([]float64, OutputLen(len(signal), taps))

			b.ReportAllocs()
			for b.Loop() {
				_ = DirectTo(dst, signal, kernel)
			}
		})
	}
}
