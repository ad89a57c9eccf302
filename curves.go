package curvefit

import (
	"fmt"

	"github.com/tphakala/go-curvefit/internal/engine"
)

// InterpolationCurve is a natural cubic spline passing through every knot.
// It has continuous first and second derivatives and zero curvature at both
// ends.
type InterpolationCurve struct {
	spline *engine.CubicSpline
}

// Fit fits the spline through values at knots. An interpolant has no data
// term to weight, so weights must be nil.
func (c *InterpolationCurve) Fit(knots []Point, values, weights []float64) error {
	if weights != nil {
		return fmt.Errorf("%w: interpolation does not take weights", ErrInvalidInput)
	}
	return c.spline.Fit(knots, values)
}

// Evaluate returns the spline value and first two derivatives at p.X.
func (c *InterpolationCurve) Evaluate(p Point) (Evaluation, error) {
	return c.spline.Evaluate(p)
}

// Segments returns the number of fitted segments.
func (c *InterpolationCurve) Segments() int {
	return c.spline.Segments()
}

// Knots returns a copy of the fitted knots.
func (c *InterpolationCurve) Knots() []Point {
	return c.spline.Knots()
}

// Coefficients returns copies of the per-segment polynomial coefficients
// a, b, c and d of g(x) = a + b·Δx + c·Δx² + d·Δx³, in that order.
func (c *InterpolationCurve) Coefficients() ([]float64, []float64, []float64, []float64) {
	return c.spline.Coefficients()
}

// GetInfo implements the info provider used by GetInfo.
func (c *InterpolationCurve) GetInfo() Info {
	return Info{Kind: KindInterpolation, Segments: c.spline.Segments()}
}

// SmoothingCurve is a penalised piecewise-linear spline. Its second
// derivative is zero everywhere.
type SmoothingCurve struct {
	spline *engine.SmoothingSpline
}

// Fit fits the spline to values at knots with optional per-knot weights.
func (c *SmoothingCurve) Fit(knots []Point, values, weights []float64) error {
	return c.spline.Fit(knots, values, weights)
}

// Evaluate returns the spline value and first derivative at p.X.
func (c *SmoothingCurve) Evaluate(p Point) (Evaluation, error) {
	return c.spline.Evaluate(p)
}

// Smoothing returns the smoothing parameter p.
func (c *SmoothingCurve) Smoothing() float64 {
	return c.spline.Smoothing()
}

// Knots returns a copy of the fitted knots.
func (c *SmoothingCurve) Knots() []Point {
	return c.spline.Knots()
}

// Coefficients returns a copy of the nodal values alpha.
func (c *SmoothingCurve) Coefficients() []float64 {
	return c.spline.Coefficients()
}

// GetInfo implements the info provider used by GetInfo.
func (c *SmoothingCurve) GetInfo() Info {
	segments := 0
	if n := len(c.spline.Knots()); n > 1 {
		segments = n - 1
	}
	return Info{Kind: KindSmoothing, Segments: segments, Smoothing: c.spline.Smoothing()}
}

// Compile-time interface checks.
var (
	_ Curve = (*InterpolationCurve)(nil)
	_ Curve = (*SmoothingCurve)(nil)
)
