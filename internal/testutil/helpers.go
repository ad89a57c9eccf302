// Package testutil provides reusable test helper functions for curve fitting tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default tolerances for various test scenarios.
const (
	InterpolationTolerance = 1e-9
	ContinuityTolerance    = 1e-6
	ReferenceTolerance     = 1e-8
)

// ValueFunc evaluates a fitted curve at x.
type ValueFunc func(x float64) (float64, error)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertReproduces verifies that f passes through (xs[i], want[i]) for every i.
func AssertReproduces(t *testing.T, f ValueFunc, xs, want []float64, tolerance float64) bool {
	t.Helper()
	require.Len(t, want, len(xs))
	for i, x := range xs {
		got, err := f(x)
		if !assert.NoError(t, err, "evaluate at xs[%d]=%v", i, x) {
			return false
		}
		if !assert.InDelta(t, want[i], got, tolerance, "value at xs[%d]=%v", i, x) {
			return false
		}
	}
	return true
}

// Sample evaluates f at every x and fails the test on the first error.
func Sample(t *testing.T, f ValueFunc, xs []float64) []float64 {
	t.Helper()
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := f(x)
		require.NoError(t, err, "evaluate at xs[%d]=%v", i, x)
		out[i] = v
	}
	return out
}

// Grid returns n points evenly spaced over [lo, hi], n >= 2.
func Grid(n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// SumSquaredDiff returns Σ (a[i]-b[i])² over the shorter of a and b.
func SumSquaredDiff(a, b []float64) float64 {
	var sum float64
	for i := range min(len(a), len(b)) {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
