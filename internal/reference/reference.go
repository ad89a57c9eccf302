// Package reference wraps gonum interpolators and linear solvers behind the
// curvefit contracts so the engines can be cross-checked and benchmarked
// against an independent implementation.
package reference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	curvefit "github.com/tphakala/go-curvefit"
)

// Reference lookup constants
const (
	// boundaryTolerance matches the engines' knot tolerance.
	boundaryTolerance = 1e-7

	// derivativeStepFraction is the finite-difference step for second
	// derivatives, relative to the knot span.
	derivativeStepFraction = 1e-6
)

// NaturalCubic adapts gonum's interp.NaturalCubic to curvefit.Curve.
//
// gonum panics on unsorted input and clamps out-of-range queries, so the
// adapter validates knots up front and rejects queries outside the fitted
// range. The second derivative is a finite difference of the analytic first
// derivative.
type NaturalCubic struct {
	spline interp.NaturalCubic
	xs     []float64
}

// NewNaturalCubic returns an unfitted gonum natural cubic spline.
func NewNaturalCubic() *NaturalCubic {
	return &NaturalCubic{}
}

// Fit fits the spline. Weights are not supported and must be nil.
func (n *NaturalCubic) Fit(knots []curvefit.Point, values, weights []float64) error {
	if weights != nil {
		return fmt.Errorf("%w: natural cubic reference does not take weights", curvefit.ErrInvalidInput)
	}
	xs, err := abscissas(knots, values)
	if err != nil {
		return err
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, values); err != nil {
		return fmt.Errorf("%w: gonum natural cubic: %w", curvefit.ErrSingularSystem, err)
	}
	n.spline = spline
	n.xs = xs
	return nil
}

// Evaluate returns the value and first two derivatives at p.X.
func (n *NaturalCubic) Evaluate(p curvefit.Point) (curvefit.Evaluation, error) {
	if err := checkQuery(n.xs, p.X); err != nil {
		return curvefit.Evaluation{}, err
	}
	x := p.X
	return curvefit.Evaluation{
		Value:  n.spline.Predict(x),
		First:  n.spline.PredictDerivative(x),
		Second: n.secondDerivative(x),
	}, nil
}

// secondDerivative differentiates PredictDerivative numerically, one-sided
// within a step of either end.
func (n *NaturalCubic) secondDerivative(x float64) float64 {
	lo, hi := n.xs[0], n.xs[len(n.xs)-1]
	h := derivativeStepFraction * (hi - lo)
	switch {
	case x-h < lo:
		return (n.spline.PredictDerivative(x+h) - n.spline.PredictDerivative(x)) / h
	case x+h > hi:
		return (n.spline.PredictDerivative(x) - n.spline.PredictDerivative(x-h)) / h
	default:
		return (n.spline.PredictDerivative(x+h) - n.spline.PredictDerivative(x-h)) / (2 * h)
	}
}

// Linear adapts gonum's interp.PiecewiseLinear to curvefit.Curve. It is the
// reference for a smoothing curve with p = 0 and positive weights, which
// passes through every data point.
type Linear struct {
	line   interp.PiecewiseLinear
	xs, ys []float64
}

// NewLinear returns an unfitted gonum piecewise-linear interpolator.
func NewLinear() *Linear {
	return &Linear{}
}

// Fit fits the interpolator. Weights are not supported and must be nil.
func (l *Linear) Fit(knots []curvefit.Point, values, weights []float64) error {
	if weights != nil {
		return fmt.Errorf("%w: linear reference does not take weights", curvefit.ErrInvalidInput)
	}
	xs, err := abscissas(knots, values)
	if err != nil {
		return err
	}

	var line interp.PiecewiseLinear
	if err := line.Fit(xs, values); err != nil {
		return fmt.Errorf("gonum piecewise linear: %w", err)
	}
	l.line = line
	l.xs = xs
	l.ys = append([]float64(nil), values...)
	return nil
}

// Evaluate returns the value and slope at p.X. A query on an interior knot
// reports the slope of the segment to its left.
func (l *Linear) Evaluate(p curvefit.Point) (curvefit.Evaluation, error) {
	if err := checkQuery(l.xs, p.X); err != nil {
		return curvefit.Evaluation{}, err
	}
	i := segmentFor(l.xs, p.X)
	return curvefit.Evaluation{
		Value: l.line.Predict(p.X),
		First: (l.ys[i+1] - l.ys[i]) / (l.xs[i+1] - l.xs[i]),
	}, nil
}

// abscissas validates knots and values the way the engines do and returns
// the knot abscissas.
func abscissas(knots []curvefit.Point, values []float64) ([]float64, error) {
	if len(knots) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 knots, got %d", curvefit.ErrInvalidInput, len(knots))
	}
	if len(values) != len(knots) {
		return nil, fmt.Errorf("%w: %d values for %d knots", curvefit.ErrInvalidInput, len(values), len(knots))
	}
	xs := make([]float64, len(knots))
	for i, k := range knots {
		if math.IsNaN(k.X) || math.IsInf(k.X, 0) || math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, fmt.Errorf("%w: knot %d is not finite", curvefit.ErrInvalidInput, i)
		}
		if i > 0 && k.X <= knots[i-1].X {
			return nil, fmt.Errorf("%w: knots must be strictly increasing at %d", curvefit.ErrInvalidInput, i)
		}
		if i > 0 && math.IsInf(k.X-knots[i-1].X, 0) {
			return nil, fmt.Errorf("%w: width of segment %d overflows", curvefit.ErrInvalidInput, i-1)
		}
		xs[i] = k.X
	}
	return xs, nil
}

func checkQuery(xs []float64, x float64) error {
	if len(xs) == 0 {
		return curvefit.ErrNotFitted
	}
	lo, hi := xs[0], xs[len(xs)-1]
	if math.IsNaN(x) || x <= lo-boundaryTolerance || x >= hi+boundaryTolerance {
		return fmt.Errorf("%w: x=%v outside [%v, %v]", curvefit.ErrOutOfRange, x, lo, hi)
	}
	return nil
}

// segmentFor returns the segment containing x, preferring the left segment
// at interior knots. x must already be in range.
func segmentFor(xs []float64, x float64) int {
	last := len(xs) - 2
	for i := range last {
		if x < xs[i+1]+boundaryTolerance {
			return i
		}
	}
	return last
}

var (
	_ curvefit.Curve = (*NaturalCubic)(nil)
	_ curvefit.Curve = (*Linear)(nil)
)
