// Package bench times the curve engines against the gonum-backed references
// and exports the timings as Prometheus gauges.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-curvefit"
	"github.com/tphakala/go-curvefit/internal/reference"
	"github.com/tphakala/go-curvefit/internal/sample"
)

// Engine names used as the "engine" label.
const (
	EngineInterpolation          = "interpolation"
	EngineSmoothing              = "smoothing"
	EngineReferenceInterpolation = "reference_interpolation"
	EngineReferenceSmoothing     = "reference_smoothing"
)

// ErrInvalidRepeat indicates a non-positive repeat count.
var ErrInvalidRepeat = errors.New("bench: repeat must be positive")

// Timing is the wall time of repeated runs in milliseconds.
type Timing struct {
	Mean   float64
	Stdev  float64
	Repeat int
}

// String formats the timing as "mean ± stdev ms".
func (t Timing) String() string {
	return fmt.Sprintf("%.2f ± %.2f ms", t.Mean, t.Stdev)
}

// Measure runs fn repeat times and returns the mean and sample standard
// deviation of the wall time. The deviation is zero for a single run. The
// first error from fn aborts the measurement.
func Measure(repeat int, fn func() error) (Timing, error) {
	if repeat < 1 {
		return Timing{}, fmt.Errorf("%w: got %d", ErrInvalidRepeat, repeat)
	}

	times := make([]float64, repeat)
	for i := range times {
		start := time.Now()
		if err := fn(); err != nil {
			return Timing{}, err
		}
		times[i] = float64(time.Since(start)) / float64(time.Millisecond)
	}

	if repeat == 1 {
		return Timing{Mean: times[0], Repeat: 1}, nil
	}
	mean, std := stat.MeanStdDev(times, nil)
	return Timing{Mean: mean, Stdev: std, Repeat: repeat}, nil
}

// Case describes one benchmark sample.
type Case struct {
	N      int
	Mean   float64
	Sigma  float64
	Seed   uint64
	Ps     []float64
	Repeat int
}

// Result holds the timings of one case, keyed by engine name.
type Result struct {
	N       int
	Timings map[string]Timing
}

// Engines returns the engine names in report order.
func Engines() []string {
	return []string{
		EngineInterpolation,
		EngineSmoothing,
		EngineReferenceInterpolation,
		EngineReferenceSmoothing,
	}
}

// RunCase draws a normal sample and times fitting plus evaluation at every
// knot for each engine. The smoothing engines fit one curve per parameter in
// c.Ps, sequentially; the reference smoothing solution is evaluated through a
// gonum piecewise-linear interpolant over its nodal values.
func RunCase(c Case) (*Result, error) {
	xs, ys, err := sample.Normal(c.N, c.Mean, c.Sigma, c.Seed)
	if err != nil {
		return nil, err
	}
	knots := curvefit.PointsFromX(xs)
	weights := sample.UnitWeights(c.N)
	out := make([]float64, c.N)

	runs := map[string]func() error{
		EngineInterpolation: func() error {
			curve, err := curvefit.FitInterpolation(xs, ys)
			if err != nil {
				return err
			}
			return curvefit.EvaluateInto(out, curve, xs)
		},
		EngineSmoothing: func() error {
			curves, err := curvefit.FitSequential(knots, ys, weights, c.Ps)
			if err != nil {
				return err
			}
			for _, curve := range curves {
				if err := curvefit.EvaluateInto(out, curve, xs); err != nil {
					return err
				}
			}
			return nil
		},
		EngineReferenceInterpolation: func() error {
			ref := reference.NewNaturalCubic()
			if err := ref.Fit(knots, ys, nil); err != nil {
				return err
			}
			return curvefit.EvaluateInto(out, ref, xs)
		},
		EngineReferenceSmoothing: func() error {
			for _, p := range c.Ps {
				alpha, err := reference.SolveSmoothingBanded(knots, ys, weights, p)
				if err != nil {
					return err
				}
				line := reference.NewLinear()
				if err := line.Fit(knots, alpha, nil); err != nil {
					return err
				}
				if err := curvefit.EvaluateInto(out, line, xs); err != nil {
					return err
				}
			}
			return nil
		},
	}

	res := &Result{N: c.N, Timings: make(map[string]Timing, len(runs))}
	for _, name := range Engines() {
		t, err := Measure(c.Repeat, runs[name])
		if err != nil {
			return nil, fmt.Errorf("%s n=%d: %w", name, c.N, err)
		}
		res.Timings[name] = t
	}
	return res, nil
}

// RunSizes runs one case per sample size, stopping early when ctx is done.
func RunSizes(ctx context.Context, base Case, sizes []int) ([]*Result, error) {
	results := make([]*Result, 0, len(sizes))
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		c := base
		c.N = n
		res, err := RunCase(c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
