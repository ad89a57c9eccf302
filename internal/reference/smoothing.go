package reference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	curvefit "github.com/tphakala/go-curvefit"
)

// smoothingSystem is the smoothing spline's symmetric tridiagonal normal
// equations.
type smoothingSystem struct {
	n    int
	diag []float64
	off  []float64 // off[i] couples i and i+1
	rhs  []float64
}

// assembleSmoothing builds the penalised least-squares system for the
// piecewise-linear smoothing spline directly from its definition: the data
// term Σ (1-p)·w_k·(g(x_k) - f_k)² taken once per segment endpoint, plus
// p·Σ (α_{i+1} - α_i)² / h_i.
func assembleSmoothing(knots []curvefit.Point, values, weights []float64, p float64) (*smoothingSystem, error) {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return nil, fmt.Errorf("%w: p=%v", curvefit.ErrInvalidParameter, p)
	}
	xs, err := abscissas(knots, values)
	if err != nil {
		return nil, err
	}
	n := len(xs)
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	} else if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d knots", curvefit.ErrInvalidInput, len(weights), n)
	}

	sys := &smoothingSystem{
		n:    n,
		diag: make([]float64, n),
		off:  make([]float64, n-1),
		rhs:  make([]float64, n),
	}
	for i := range n - 1 {
		h := xs[i+1] - xs[i]
		for _, k := range [2]int{i, i + 1} {
			// Linear basis in physical coordinates.
			right := (xs[k] - xs[i]) / h
			left := 1 - right
			w := (1 - p) * weights[k]
			sys.diag[i] += w * left * left
			sys.diag[i+1] += w * right * right
			sys.off[i] += w * left * right
			sys.rhs[i] += w * left * values[k]
			sys.rhs[i+1] += w * right * values[k]
		}
		q := p / h
		sys.diag[i] += q
		sys.diag[i+1] += q
		sys.off[i] -= q
	}
	return sys, nil
}

func (s *smoothingSystem) at(i, j int) float64 {
	switch {
	case i == j:
		return s.diag[i]
	case j == i+1:
		return s.off[i]
	case i == j+1:
		return s.off[j]
	default:
		return 0
	}
}

// SolveSmoothingDense solves the smoothing spline system as a dense matrix
// with gonum's LU solver and returns the nodal values α.
func SolveSmoothingDense(knots []curvefit.Point, values, weights []float64, p float64) ([]float64, error) {
	sys, err := assembleSmoothing(knots, values, weights, p)
	if err != nil {
		return nil, err
	}

	a := mat.NewDense(sys.n, sys.n, nil)
	for i := range sys.n {
		for j := max(0, i-1); j <= min(sys.n-1, i+1); j++ {
			a.Set(i, j, sys.at(i, j))
		}
	}

	var alpha mat.VecDense
	if err := alpha.SolveVec(a, mat.NewVecDense(sys.n, sys.rhs)); err != nil {
		return nil, fmt.Errorf("%w: dense solve: %w", curvefit.ErrSingularSystem, err)
	}
	return alpha.RawVector().Data, nil
}

// SolveSmoothingBanded solves the same system with gonum's tridiagonal
// LAPACK solver, which uses partial pivoting.
func SolveSmoothingBanded(knots []curvefit.Point, values, weights []float64, p float64) ([]float64, error) {
	sys, err := assembleSmoothing(knots, values, weights, p)
	if err != nil {
		return nil, err
	}

	sub := append([]float64(nil), sys.off...)
	a := mat.NewTridiag(sys.n, sub, sys.diag, sys.off)

	var alpha mat.VecDense
	if err := a.SolveVecTo(&alpha, false, mat.NewVecDense(sys.n, sys.rhs)); err != nil {
		return nil, fmt.Errorf("%w: banded solve: %w", curvefit.ErrSingularSystem, err)
	}
	return alpha.RawVector().Data, nil
}
