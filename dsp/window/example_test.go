package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/window"
)

func ExampleNew() {
	w, err := window.New(5, window.WithType(window.TypeHanning))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(w.Type(), w.Size())
	for _, c := range w.Coefficients() {
		fmt.Printf("%.2f ", c)
	}
	fmt.Println()

	// Output:
	// Hanning 5
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleWindow_Apply() {
	w, _ := window.New(4, window.WithType(window.TypeHamming))

	out, err := w.Apply([]float64{1, 1, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3])

	_, err = w.Apply([]float64{1, 1})
	fmt.Println(err)

	// Output:
	// 0.08 0.77 0.77 0.08
	// window: mismatched size: signal has 2 samples, window has 4
}

func ExampleWindow_SetType() {
	w, _ := window.New(3)
	fmt.Println(w.Type(), w.Coefficients())

	_ = w.SetType(window.TypeHanning)
	fmt.Println(w.Type(), w.Coefficients())

	// Output:
	// Rectangular [1 1 1]
	// Hanning [0 1 0]
}
