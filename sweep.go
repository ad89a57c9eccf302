package curvefit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SmoothSweep fits one independent smoothing curve per parameter in ps to
// the same data. Fits run concurrently; the result is in the order of ps.
//
// Every parameter is validated before any fit starts. The first failing fit
// cancels the fits that have not started yet and its error is returned
// without partial results. Cancelling ctx has the same effect.
func SmoothSweep(ctx context.Context, knots []Point, values, weights, ps []float64) ([]*SmoothingCurve, error) {
	curves := make([]*SmoothingCurve, len(ps))
	for i, p := range ps {
		c, err := NewSmoothing(p)
		if err != nil {
			return nil, fmt.Errorf("sweep p[%d]: %w", i, err)
		}
		curves[i] = c
	}

	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range curves {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := c.Fit(knots, values, weights); err != nil {
				return fmt.Errorf("sweep p=%v: %w", ps[i], err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

// FitSequential fits the same curves as SmoothSweep one after another on
// the calling goroutine.
func FitSequential(knots []Point, values, weights, ps []float64) ([]*SmoothingCurve, error) {
	curves := make([]*SmoothingCurve, len(ps))
	for i, p := range ps {
		c, err := NewSmoothing(p)
		if err != nil {
			return nil, fmt.Errorf("sweep p[%d]: %w", i, err)
		}
		if err := c.Fit(knots, values, weights); err != nil {
			return nil, fmt.Errorf("sweep p=%v: %w", p, err)
		}
		curves[i] = c
	}
	return curves, nil
}
