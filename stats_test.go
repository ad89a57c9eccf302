package curvefit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResiduals_Interpolation(t *testing.T) {
	xs := []float64{0, 0.4, 1, 1.7, 2}
	ys := []float64{3, -1, 2, 2.5, 0}
	c, err := FitInterpolation(xs, ys)
	require.NoError(t, err)

	stats, err := Residuals(c, PointsFromX(xs), ys, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.N)
	assert.InDelta(t, 0, stats.WeightedSSE, 1e-18)
	assert.InDelta(t, 0, stats.MaxAbs, 1e-9)
}

// TestResiduals_Smoothing uses the three-knot spike whose fit is α = [1, 2, 1],
// leaving residuals [1, -1, 1].
func TestResiduals_Smoothing(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 3, 0}
	c, err := FitSmoothing(xs, ys, nil, 0.5)
	require.NoError(t, err)

	stats, err := Residuals(c, PointsFromX(xs), ys, []float64{2, 1, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, stats.WeightedSSE, 1e-12)
	assert.InDelta(t, 1.0, stats.RMS, 1e-12)
	assert.InDelta(t, 1.0, stats.MaxAbs, 1e-12)

	unweighted, err := Residuals(c, PointsFromX(xs), ys, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, unweighted.WeightedSSE, 1e-12)
}

func TestResiduals_Errors(t *testing.T) {
	c, err := FitInterpolation([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	_, err = Residuals(c, PointsFromX([]float64{0, 1}), []float64{0}, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Residuals(c, PointsFromX([]float64{0, 1}), []float64{0, 1}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Residuals(c, PointsFromX([]float64{0, 5}), []float64{0, 1}, nil)
	require.ErrorIs(t, err, ErrOutOfRange)

	stats, err := Residuals(c, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
