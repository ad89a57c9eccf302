package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-curvefit/internal/tridiag"
)

// SmoothingSpline is a piecewise-linear curve balancing weighted closeness to
// the data against a roughness penalty.
//
// The curve is a combination of hat functions, one coefficient alpha_j per
// knot. The smoothing parameter p in [0, 1) weights the two terms of the
// assembled system: (1-p) on the data fit and p on the penalty. p = 0 with
// positive weights reproduces the data exactly; larger p flattens the curve.
//
// A SmoothingSpline is not safe for concurrent Fit and Evaluate. Concurrent
// Evaluate calls on a fitted spline are safe.
type SmoothingSpline struct {
	p     float64
	knots knotSet
	alpha []float64
}

// NewSmoothingSpline creates an unfitted smoothing spline with parameter p.
// p must be finite and in [0, 1); at p = 1 the data term vanishes and the
// system is singular.
func NewSmoothingSpline(p float64) (*SmoothingSpline, error) {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return nil, fmt.Errorf("%w: p=%v, want 0 <= p < 1", ErrInvalidParameter, p)
	}
	return &SmoothingSpline{p: p}, nil
}

// Smoothing returns the smoothing parameter p.
func (s *SmoothingSpline) Smoothing() float64 {
	return s.p
}

// Fit computes the nodal coefficients for knots, values and optional
// per-knot weights. A nil weights slice means unit weights. On error the
// previously fitted state is kept.
func (s *SmoothingSpline) Fit(knots []Point, values, weights []float64) error {
	ks, err := newKnotSet(knots)
	if err != nil {
		return err
	}
	if err := checkValues("values", values, len(knots)); err != nil {
		return err
	}
	if weights == nil {
		weights = make([]float64, len(knots))
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if err := checkValues("weights", weights, len(knots)); err != nil {
			return err
		}
		var total float64
		for i, w := range weights {
			if w < 0 {
				return fmt.Errorf("%w: weights[%d]=%v is negative", ErrInvalidInput, i, w)
			}
			total += w
		}
		if total == 0 {
			// Only the penalty remains, and it leaves the level of the curve free.
			return fmt.Errorf("%w: every weight is zero", ErrSingularSystem)
		}
	}

	sys, err := s.assemble(&ks, values, weights)
	if err != nil {
		return err
	}

	alpha, err := tridiag.Solve(sys.sub, sys.diag, sys.super, sys.rhs)
	if err != nil {
		if errors.Is(err, tridiag.ErrSingular) {
			return fmt.Errorf("%w: %w", ErrSingularSystem, err)
		}
		return err
	}

	s.knots = ks
	s.alpha = alpha
	return nil
}

// system is a symmetric tridiagonal system over knot indices. sub[j] and
// super[j-1] both hold the coupling between knots j-1 and j.
type system struct {
	sub, diag, super, rhs []float64
}

// assemble accumulates the data-fit and penalty contributions of every
// segment. The data term evaluates both hat functions at the segment's own
// endpoints, each weighted by that endpoint's weight and value.
func (s *SmoothingSpline) assemble(ks *knotSet, values, weights []float64) (system, error) {
	n := len(ks.xs)
	sys := system{
		sub:   make([]float64, n),
		diag:  make([]float64, n),
		super: make([]float64, n),
		rhs:   make([]float64, n),
	}
	fit := 1 - s.p

	for i := range ks.segments() {
		for _, node := range [2]int{i, i + 1} {
			ksi := toMaster(ks.xs[i], ks.xs[i+1], ks.xs[node])
			n1, err := hat(basisFirst, ksi)
			if err != nil {
				return system{}, err
			}
			n2, err := hat(basisSecond, ksi)
			if err != nil {
				return system{}, err
			}

			w := fit * weights[node]
			sys.diag[i] += w * n1 * n1
			sys.diag[i+1] += w * n2 * n2
			sys.sub[i+1] += w * n1 * n2
			sys.super[i] += w * n2 * n1
			sys.rhs[i] += w * n1 * values[node]
			sys.rhs[i+1] += w * n2 * values[node]
		}

		penalty := s.p / ks.width(i)
		sys.diag[i] += penalty
		sys.diag[i+1] += penalty
		sys.sub[i+1] -= penalty
		sys.super[i] -= penalty
	}

	return sys, nil
}

// Evaluate returns the curve value and first derivative at p.X. The second
// derivative of a piecewise-linear curve is always zero.
func (s *SmoothingSpline) Evaluate(p Point) (Evaluation, error) {
	if s.alpha == nil {
		return Evaluation{}, ErrNotFitted
	}
	i, err := s.knots.locate(p.X)
	if err != nil {
		return Evaluation{}, err
	}

	x0, x1 := s.knots.xs[i], s.knots.xs[i+1]
	ksi := toMaster(x0, x1, p.X)
	n1, err := hat(basisFirst, ksi)
	if err != nil {
		return Evaluation{}, err
	}
	n2, err := hat(basisSecond, ksi)
	if err != nil {
		return Evaluation{}, err
	}
	d1, err := hatDerivative(basisFirst)
	if err != nil {
		return Evaluation{}, err
	}
	d2, err := hatDerivative(basisSecond)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Value: s.alpha[i]*n1 + s.alpha[i+1]*n2,
		First: (s.alpha[i]*d1 + s.alpha[i+1]*d2) * masterSpan / (x1 - x0),
	}, nil
}

// Knots returns a copy of the knots the spline was last fitted on.
func (s *SmoothingSpline) Knots() []Point {
	return clonePoints(s.knots.points)
}

// Coefficients returns a copy of the nodal coefficients alpha.
func (s *SmoothingSpline) Coefficients() []float64 {
	return cloneFloats(s.alpha)
}

// toMaster maps x on the segment [x0, x1] to the master coordinate ξ in [-1, 1].
func toMaster(x0, x1, x float64) float64 {
	return masterSpan*(x-x0)/(x1-x0) - 1
}

// hat evaluates hat function number (1 or 2) at master coordinate ksi.
func hat(number int, ksi float64) (float64, error) {
	switch number {
	case basisFirst:
		return hatHalf * (1 - ksi), nil
	case basisSecond:
		return hatHalf * (1 + ksi), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBasisIndex, number)
	}
}

// hatDerivative returns the master-coordinate derivative of hat function
// number (1 or 2), which is constant on the segment.
func hatDerivative(number int) (float64, error) {
	switch number {
	case basisFirst:
		return -hatHalf, nil
	case basisSecond:
		return hatHalf, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBasisIndex, number)
	}
}
