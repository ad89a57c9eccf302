package engine

import (
	"fmt"
	"math"
	"sort"
)

// knotSet is the knot abscissas a spline was fitted on. It owns its slices.
type knotSet struct {
	points []Point
	xs     []float64
}

// newKnotSet copies pts after checking there are at least two of them and
// that their abscissas are finite and strictly increasing.
func newKnotSet(pts []Point) (knotSet, error) {
	if len(pts) < minKnots {
		return knotSet{}, fmt.Errorf("%w: need at least %d knots, got %d", ErrInvalidInput, minKnots, len(pts))
	}

	ks := knotSet{
		points: make([]Point, len(pts)),
		xs:     make([]float64, len(pts)),
	}
	copy(ks.points, pts)
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return knotSet{}, fmt.Errorf("%w: knot %d has non-finite x=%v", ErrInvalidInput, i, p.X)
		}
		if i > 0 && p.X <= pts[i-1].X {
			return knotSet{}, fmt.Errorf("%w: knots must be strictly increasing, x[%d]=%v follows x[%d]=%v",
				ErrInvalidInput, i, p.X, i-1, pts[i-1].X)
		}
		if i > 0 && math.IsInf(p.X-pts[i-1].X, 0) {
			return knotSet{}, fmt.Errorf("%w: width of segment %d overflows, x[%d]=%v x[%d]=%v",
				ErrInvalidInput, i-1, i-1, pts[i-1].X, i, p.X)
		}
		ks.xs[i] = p.X
	}
	return ks, nil
}

// segments returns the number of segments between the knots.
func (ks *knotSet) segments() int {
	return len(ks.xs) - 1
}

// width returns the width h_i of segment i.
func (ks *knotSet) width(i int) float64 {
	return ks.xs[i+1] - ks.xs[i]
}

// locate returns the first segment whose tolerance-padded bounds contain x.
//
// A segment i admits x when x_i < x < x_{i+1} or x lies within
// boundaryTolerance of either end, so a query at an interior knot resolves to
// the segment on its left. Because the padded intervals are ordered, the
// first admitting segment is the first one whose padded right end exceeds x,
// provided its padded left end does not.
func (ks *knotSet) locate(x float64) (int, error) {
	n := ks.segments()
	if n < 1 {
		return 0, ErrNotFitted
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: x is NaN", ErrOutOfRange)
	}

	i := sort.Search(n, func(i int) bool {
		return x < ks.xs[i+1]+boundaryTolerance
	})
	if i == n || x <= ks.xs[i]-boundaryTolerance {
		return 0, fmt.Errorf("%w: x=%v outside [%v, %v]", ErrOutOfRange, x, ks.xs[0], ks.xs[n])
	}
	return i, nil
}

// checkValues verifies values has one finite entry per knot.
func checkValues(name string, values []float64, knots int) error {
	if len(values) != knots {
		return fmt.Errorf("%w: %d %s for %d knots", ErrInvalidInput, len(values), name, knots)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is not finite", ErrInvalidInput, name, i)
		}
	}
	return nil
}

// clonePoints returns a copy of pts.
func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
