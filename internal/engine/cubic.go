// Package engine implements the curve fitting engines: an interpolating
// natural cubic spline and a penalised piecewise-linear smoothing spline.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-curvefit/internal/tridiag"
)

// CubicSpline is a piecewise cubic interpolant through every knot.
//
// On segment i the curve is
//
//	g(x) = a_i + b_i·Δx + c_i·Δx² + d_i·Δx³,  Δx = x - x_i
//
// with continuous value and first derivative across interior knots and zero
// second derivative at both ends (natural boundary conditions).
//
// A CubicSpline is not safe for concurrent Fit and Evaluate. Concurrent
// Evaluate calls on a fitted spline are safe.
type CubicSpline struct {
	knots      knotSet
	a, b, c, d []float64
}

// NewCubicSpline creates an unfitted cubic spline.
func NewCubicSpline() *CubicSpline {
	return &CubicSpline{}
}

// Fit computes the segment coefficients for knots and values. On error the
// previously fitted state is kept.
func (s *CubicSpline) Fit(knots []Point, values []float64) error {
	ks, err := newKnotSet(knots)
	if err != nil {
		return err
	}
	if err := checkValues("values", values, len(knots)); err != nil {
		return err
	}

	m := ks.segments()
	a := make([]float64, m)
	b := make([]float64, m)
	c := make([]float64, m)
	d := make([]float64, m)

	if m == 1 {
		// Two knots: the straight line between them.
		a[0] = values[0]
		b[0] = (values[1] - values[0]) / ks.width(0)
	} else {
		curv, err := solveCurvatures(&ks, values)
		if err != nil {
			return err
		}
		copy(c, curv)

		for i := 0; i < m-1; i++ {
			h := ks.width(i)
			a[i] = values[i]
			b[i] = (values[i+1]-values[i])/h - (c[i+1]+2*c[i])*h/3
			d[i] = (c[i+1] - c[i]) / (3 * h)
		}

		// The last segment's cubic term cancels its curvature at the right
		// end, giving g''(x_m) = 0 there as well.
		last := m - 1
		h := ks.width(last)
		a[last] = values[last]
		b[last] = (values[m]-values[last])/h - 2*c[last]*h/3
		d[last] = -c[last] / (3 * h)
	}

	s.knots = ks
	s.a, s.b, s.c, s.d = a, b, c, d
	return nil
}

// solveCurvatures returns c_0..c_{m-1} for m >= 2 segments. c_0 is fixed to
// zero; the interior curvatures solve the symmetric, diagonally dominant
// system
//
//	h_{i-1}·c_{i-1} + 2(h_{i-1}+h_i)·c_i + h_i·c_{i+1} = 3(Δf_i/h_i - Δf_{i-1}/h_{i-1})
//
// for i = 1..m-1, with c_m = 0 dropping out of the last row.
func solveCurvatures(ks *knotSet, values []float64) ([]float64, error) {
	m := ks.segments()
	n := m - 1
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)

	for row := range n {
		i := row + 1
		hPrev, hCur := ks.width(i-1), ks.width(i)
		sub[row] = hPrev
		diag[row] = 2 * (hPrev + hCur)
		super[row] = hCur
		slopePrev := (values[i] - values[i-1]) / hPrev
		slopeCur := (values[i+1] - values[i]) / hCur
		rhs[row] = 3 * (slopeCur - slopePrev)
	}

	interior, err := tridiag.Solve(sub, diag, super, rhs)
	if err != nil {
		if errors.Is(err, tridiag.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
		}
		return nil, err
	}

	c := make([]float64, m)
	copy(c[1:], interior)
	return c, nil
}

// Evaluate returns the spline value and first two derivatives at p.X.
func (s *CubicSpline) Evaluate(p Point) (Evaluation, error) {
	if s.a == nil {
		return Evaluation{}, ErrNotFitted
	}
	i, err := s.knots.locate(p.X)
	if err != nil {
		return Evaluation{}, err
	}

	dx := p.X - s.knots.xs[i]
	a, b, c, d := s.a[i], s.b[i], s.c[i], s.d[i]
	return Evaluation{
		Value:  a + dx*(b+dx*(c+dx*d)),
		First:  b + dx*(2*c+3*d*dx),
		Second: 2*c + 6*d*dx,
	}, nil
}

// Segments returns the number of fitted segments, zero before Fit.
func (s *CubicSpline) Segments() int {
	return len(s.a)
}

// Knots returns a copy of the knots the spline was last fitted on.
func (s *CubicSpline) Knots() []Point {
	return clonePoints(s.knots.points)
}

// Coefficients returns copies of the per-segment polynomial coefficients.
func (s *CubicSpline) Coefficients() (a, b, c, d []float64) {
	return cloneFloats(s.a), cloneFloats(s.b), cloneFloats(s.c), cloneFloats(s.d)
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
