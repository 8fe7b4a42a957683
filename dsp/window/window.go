package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Cosine-sum terms: w(x) = sum_k c[k] * cos(2*pi*k*x), x in [0, 1].
var (
	hammingCoeffs  = []float64{0.54, -0.46}
	hanningCoeffs  = []float64{0.5, -0.5}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Window holds a window type and its coefficients. The length is fixed at
// construction; only the type may change afterwards, via SetType.
type Window struct {
	typ    Type
	coeffs []float64
}

// Option configures window construction.
type Option func(*config)

type config struct {
	typ Type
}

func defaultConfig() config {
	return config{typ: TypeRectangular}
}

// WithType selects the window function. The default is TypeRectangular.
func WithType(t Type) Option {
	return func(c *config) {
		c.typ = t
	}
}

// New creates a window of the given length.
// It fails with ErrInvalidSize for size <= 0 and ErrInvalidType for an
// unknown type.
func New(size int, opts ...Option) (*Window, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateType(cfg.typ); err != nil {
		return nil, err
	}

	w := &Window{
		typ:    cfg.typ,
		coeffs: make([]float64, size),
	}
	if err := w.setCoefficients(Generate(cfg.typ, size)); err != nil {
		return nil, err
	}

	return w, nil
}

// Coefficients returns a copy of the window coefficients.
func (w *Window) Coefficients() []float64 {
	c := make([]float64, len(w.coeffs))
	copy(c, w.coeffs)
	return c
}

// Type returns the current window type.
func (w *Window) Type() Type {
	return w.typ
}

// Size returns the window length.
func (w *Window) Size() int {
	return len(w.coeffs)
}

// SetType re-synthesizes the coefficients for t at the current length.
// On error the window is left unchanged.
func (w *Window) SetType(t Type) error {
	if err := validateType(t); err != nil {
		return err
	}

	if err := w.setCoefficients(Generate(t, len(w.coeffs))); err != nil {
		return err
	}

	w.typ = t

	return nil
}

// Apply returns a new slice holding signal[i] * w[i].
func (w *Window) Apply(signal []float64) ([]float64, error) {
	if err := validateSignal(signal, len(w.coeffs)); err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	vecmath.MulBlock(out, signal, w.coeffs)

	return out, nil
}

// ApplyInPlace multiplies signal by the window in place.
// signal is not modified on error.
func (w *Window) ApplyInPlace(signal []float64) error {
	if err := validateSignal(signal, len(w.coeffs)); err != nil {
		return err
	}

	vecmath.MulBlockInPlace(signal, w.coeffs)

	return nil
}

func (w *Window) setCoefficients(values []float64) error {
	if len(values) != len(w.coeffs) {
		return validateSignal(values, len(w.coeffs))
	}

	copy(w.coeffs, values)

	return nil
}

// Generate returns window coefficients of the given length, or nil when
// size <= 0 or t is unknown. A length-1 window is [1] for every type.
func Generate(t Type, size int) []float64 {
	if size <= 0 || !t.Valid() {
		return nil
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, size))
	}

	return out
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps index n of a symmetric window to x = n/(size-1).
func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}
