// Package interp implements cubic spline interpolation over time-series
// samples.
//
// A Spline passes exactly through every knot and is continuous up to the
// second derivative at interior knots (natural boundary conditions). Knot
// positions must be strictly increasing; construction rejects anything else.
package interp

import (
	"fmt"
	"sort"

	"github.com/voltlab/voltseries/errs"
)

// MinPoints is the minimum number of knots required for a cubic
// interpolating spline.
const MinPoints = 4

// Spline is a natural cubic interpolating spline.
//
// Segment i covers [xs[i], xs[i+1]] and evaluates as
// a[i] + b[i]*dx + c[i]*dx^2 + d[i]*dx^3 with dx = x - xs[i]. Queries outside
// the knot range extrapolate the boundary segment's cubic.
type Spline struct {
	xs         []float64
	a, b, c, d []float64
}

// NewSpline builds a natural cubic spline through the given knots.
//
// It fails with errs.ErrLengthMismatch when xs and ys differ in length,
// errs.ErrInsufficientPoints when fewer than MinPoints knots are given, and
// errs.ErrUnsortedTimes when xs is not strictly increasing.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d positions, %d values", errs.ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < MinPoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d", errs.ErrInsufficientPoints, len(xs), MinPoints)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: position %d", errs.ErrUnsortedTimes, i)
		}
	}

	n := len(xs) - 1 // number of segments

	s := &Spline{
		xs: append([]float64(nil), xs...),
		a:  append([]float64(nil), ys...),
		b:  make([]float64, n),
		c:  make([]float64, n+1),
		d:  make([]float64, n),
	}

	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = xs[i+1] - xs[i]
	}

	// Tridiagonal solve for the second-derivative coefficients, natural
	// boundary (c[0] = c[n] = 0).
	alpha := make([]float64, n)
	for i := 1; i < n; i++ {
		alpha[i] = 3*(s.a[i+1]-s.a[i])/h[i] - 3*(s.a[i]-s.a[i-1])/h[i-1]
	}

	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]float64, n+1)
	l[0] = 1
	for i := 1; i < n; i++ {
		l[i] = 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n] = 1

	for j := n - 1; j >= 0; j-- {
		s.c[j] = z[j] - mu[j]*s.c[j+1]
		s.b[j] = (s.a[j+1]-s.a[j])/h[j] - h[j]*(s.c[j+1]+2*s.c[j])/3
		s.d[j] = (s.c[j+1] - s.c[j]) / (3 * h[j])
	}

	return s, nil
}

// Len returns the number of knots.
func (s *Spline) Len() int {
	return len(s.xs)
}

// Bounds returns the first and last knot positions.
func (s *Spline) Bounds() (lo, hi float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

// Eval evaluates the spline at x.
func (s *Spline) Eval(x float64) float64 {
	i := s.segment(x)
	dx := x - s.xs[i]

	return s.a[i] + dx*(s.b[i]+dx*(s.c[i]+dx*s.d[i]))
}

// EvalAll evaluates the spline at every position in xs.
func (s *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) > 0 {
		res = out[0]
	} else {
		res = make([]float64, len(xs))
	}
	for i, x := range xs {
		res[i] = s.Eval(x)
	}

	return res
}

// segment returns the index of the segment whose polynomial covers x,
// clamped to the boundary segments for out-of-range queries.
func (s *Spline) segment(x float64) int {
	i := sort.SearchFloat64s(s.xs, x)
	if i > 0 && (i == len(s.xs) || s.xs[i] != x) {
		i--
	}
	if i > len(s.xs)-2 {
		i = len(s.xs) - 2
	}

	return i
}
