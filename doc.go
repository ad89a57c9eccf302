// Package curvefit fits one-dimensional curves to sampled data in pure Go.
//
// Two fitting strategies are provided behind the [Curve] interface:
//
//   - [InterpolationCurve]: a natural cubic spline that passes through every
//     data point with continuous first and second derivatives and zero
//     curvature at both ends.
//   - [SmoothingCurve]: a piecewise-linear spline that balances weighted
//     closeness to the data against a roughness penalty. The smoothing
//     parameter p in [0, 1) moves the curve from exact reproduction of the
//     data (p = 0) towards a flat line (p close to 1).
//
// Both strategies solve a tridiagonal linear system with the Thomas
// algorithm, so fitting and memory are linear in the number of knots.
// Evaluation finds the containing segment by binary search and returns the
// value with its first and second derivatives.
//
// # Quick Start
//
// For one-shot fitting of sampled values:
//
//	curve, err := curvefit.FitInterpolation(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := curvefit.EvaluateAt(curve, 0.25)
//
// For smoothing with per-point weights:
//
//	curve, err := curvefit.FitSmoothing(xs, ys, weights, 0.8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e, err := curve.Evaluate(curvefit.Point{X: 0.25})
//	fmt.Println(e.Value, e.First)
//
// Curves can also be built from a [Config]:
//
//	c, err := curvefit.New(&curvefit.Config{Kind: curvefit.KindSmoothing, Smoothing: 0.4})
//
// # Knots and Queries
//
// Knots must be strictly increasing in X; Y and Z are carried but not used.
// Fit copies the knots, so callers may reuse their slices. A query that lies
// within 1e-7 of a knot is treated as lying on it, and a query on an
// interior knot is answered by the segment to its left. Queries outside the
// fitted range fail with [ErrOutOfRange]; there is no extrapolation.
//
// # Smoothing Sweeps
//
// [SmoothSweep] fits one smoothing curve per parameter concurrently:
//
//	curves, err := curvefit.SmoothSweep(ctx, knots, ys, weights, curvefit.DefaultSweep())
//
// # Thread Safety
//
// A fitted curve is safe for concurrent Evaluate calls. Fit must not run
// concurrently with any other call on the same curve. Separate curves share
// no state.
//
// # Errors
//
// All errors wrap one of the package sentinels ([ErrInvalidInput],
// [ErrOutOfRange], [ErrInvalidParameter], [ErrNotFitted],
// [ErrSingularSystem], [ErrInvalidBasisIndex], [ErrInvalidConfig]) and can be
// tested with errors.Is. A failed Fit leaves the previous fit in place.
package curvefit
