package interp

// Interpolator is a 1-D interpolator over strictly increasing sample
// positions.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of positions and returns the results. An
	// optional output slice can be supplied to avoid an allocation; it must
	// have the same length as xs.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var _ Interpolator = (*Spline)(nil)
