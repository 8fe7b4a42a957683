package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		for _, typ := range []Type{TypeHanning, TypeBlackman} {
			b.Run(typ.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = Generate(typ, n)
				}
			})
		}
	}
}

func BenchmarkApplyInPlace(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hanning/"+strconv.Itoa(n), func(b *testing.B) {
			w, err := New(n, WithType(TypeHanning))
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float64, n)
			b.ReportAllocs()
			for b.Loop() {
				_ = w.ApplyInPlace(buf)
			}
		})
	}
}
