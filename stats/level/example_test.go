package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-fir/stats/level"
)

func ExampleCalculate() {
	s := level.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f crest=%.1f\n", s.RMS, s.Peak, s.CrestFactor)

	// Output:
	// rms=1.0 peak=1.0 crest=1.0
}
