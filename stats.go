package curvefit

import (
	"fmt"
	"math"

	"github.com/tphakala/go-curvefit/internal/simdops"
)

// Stats summarises how closely a fitted curve follows its data at the knots.
type Stats struct {
	// N is the number of knots.
	N int

	// WeightedSSE is Σ w_i·(g(x_i) - f_i)².
	WeightedSSE float64

	// RMS is the unweighted root-mean-square residual.
	RMS float64

	// MaxAbs is the largest absolute residual.
	MaxAbs float64
}

// Residuals evaluates c at every knot and summarises the residuals against
// values. weights may be nil for unit weights.
func Residuals(c Curve, knots []Point, values, weights []float64) (Stats, error) {
	n := len(knots)
	if len(values) != n {
		return Stats{}, fmt.Errorf("%w: %d values for %d knots", ErrInvalidInput, len(values), n)
	}
	if weights != nil && len(weights) != n {
		return Stats{}, fmt.Errorf("%w: %d weights for %d knots", ErrInvalidInput, len(weights), n)
	}
	if n == 0 {
		return Stats{}, nil
	}

	residuals := make([]float64, n)
	for i, k := range knots {
		e, err := c.Evaluate(k)
		if err != nil {
			return Stats{}, fmt.Errorf("residual at knot %d: %w", i, err)
		}
		residuals[i] = e.Value - values[i]
	}

	scratch := make([]float64, n)
	sse := simdops.WeightedSumSquares(residuals, nil, nil)
	return Stats{
		N:           n,
		WeightedSSE: simdops.WeightedSumSquares(residuals, weights, scratch),
		RMS:         math.Sqrt(sse / float64(n)),
		MaxAbs:      simdops.MaxAbs(residuals),
	}, nil
}
