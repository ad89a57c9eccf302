package curvefit

import (
	"fmt"

	"github.com/tphakala/go-curvefit/internal/engine"
)

// NewInterpolation creates an unfitted natural cubic interpolation curve.
func NewInterpolation() *InterpolationCurve {
	return &InterpolationCurve{spline: engine.NewCubicSpline()}
}

// NewSmoothing creates an unfitted smoothing curve with parameter p in [0, 1).
func NewSmoothing(p float64) (*SmoothingCurve, error) {
	spline, err := engine.NewSmoothingSpline(p)
	if err != nil {
		return nil, err
	}
	return &SmoothingCurve{spline: spline}, nil
}

// FitInterpolation is a convenience function for one-shot interpolation of
// ys sampled at abscissas xs.
func FitInterpolation(xs, ys []float64) (*InterpolationCurve, error) {
	c := NewInterpolation()
	if err := c.Fit(PointsFromX(xs), ys, nil); err != nil {
		return nil, fmt.Errorf("interpolation fit: %w", err)
	}
	return c, nil
}

// FitSmoothing is a convenience function for one-shot smoothing of ys
// sampled at abscissas xs with weights ws (nil for unit weights).
func FitSmoothing(xs, ys, ws []float64, p float64) (*SmoothingCurve, error) {
	c, err := NewSmoothing(p)
	if err != nil {
		return nil, err
	}
	if err := c.Fit(PointsFromX(xs), ys, ws); err != nil {
		return nil, fmt.Errorf("smoothing fit (p=%v): %w", p, err)
	}
	return c, nil
}

// EvaluateAt returns the value of c at x.
func EvaluateAt(c Curve, x float64) (float64, error) {
	e, err := c.Evaluate(Point{X: x})
	if err != nil {
		return 0, err
	}
	return e.Value, nil
}

// EvaluateAll returns the value of c at every abscissa in xs. It stops at
// the first failing query and returns no partial result.
func EvaluateAll(c Curve, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	if err := EvaluateInto(out, c, xs); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateInto writes the value of c at every abscissa in xs into dst,
// which must be at least len(xs) long.
func EvaluateInto(dst []float64, c Curve, xs []float64) error {
	if len(dst) < len(xs) {
		return fmt.Errorf("%w: destination holds %d values, need %d", ErrInvalidInput, len(dst), len(xs))
	}
	for i, x := range xs {
		e, err := c.Evaluate(Point{X: x})
		if err != nil {
			return fmt.Errorf("evaluate xs[%d]=%v: %w", i, x, err)
		}
		dst[i] = e.Value
	}
	return nil
}

// Derivatives returns the first and second derivative of c at every
// abscissa in xs.
func Derivatives(c Curve, xs []float64) ([]float64, []float64, error) {
	first := make([]float64, len(xs))
	second := make([]float64, len(xs))
	for i, x := range xs {
		e, err := c.Evaluate(Point{X: x})
		if err != nil {
			return nil, nil, fmt.Errorf("evaluate xs[%d]=%v: %w", i, x, err)
		}
		first[i], second[i] = e.First, e.Second
	}
	return first, second, nil
}
