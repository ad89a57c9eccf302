// Package simdops provides generic SIMD reductions for float32 and float64
// slices, used by the residual statistics and sample scaling code.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// WeightedSumSquares returns Σ w[i]·r[i]² over equal-length slices, using
// scratch (len >= len(r)) for the weighted residuals. A nil w means unit
// weights.
func WeightedSumSquares[F Float](r, w, scratch []F) F {
	ops := For[F]()
	if len(r) == 0 {
		return 0
	}
	if w == nil {
		return ops.DotProductUnsafe(r, r)
	}
	wr := scratch[:len(r)]
	for i := range r {
		wr[i] = w[i] * r[i]
	}
	return ops.DotProductUnsafe(wr, r)
}

// MaxAbs returns the largest absolute value in a, or zero when a is empty.
func MaxAbs[F Float](a []F) F {
	var peak F
	for _, v := range a {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
