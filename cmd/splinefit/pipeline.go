package main

import (
	"context"
	"fmt"

	"github.com/tphakala/go-curvefit"
	"github.com/tphakala/go-curvefit/internal/reference"
	"github.com/tphakala/go-curvefit/internal/report"
	"github.com/tphakala/go-curvefit/internal/sample"
	"github.com/tphakala/go-curvefit/internal/spectrum"
)

// dataset is one generated sample with its two weight vectors.
type dataset struct {
	xs     []float64
	values []float64
	knots  []curvefit.Point
	unit   []float64
	weak   []float64
}

func newDataset(cfg *Config) (*dataset, error) {
	xs, ys, err := sample.Normal(cfg.N, cfg.Mean, cfg.Sigma, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &dataset{
		xs:     xs,
		values: ys,
		knots:  curvefit.PointsFromX(xs),
		unit:   sample.UnitWeights(cfg.N),
		weak:   sample.WeakenedWeights(cfg.N, cfg.WeakNodes, cfg.WeakWeight),
	}, nil
}

// fit holds the curves of one weight vector together with their values at
// the knots.
type fit struct {
	interp   *curvefit.InterpolationCurve
	smooth   []*curvefit.SmoothingCurve
	table    *report.Table
	weights  []float64
	smoothed [][]float64
}

// fitOwn fits the interpolating spline and one smoothing spline per
// parameter, the latter concurrently.
func (d *dataset) fitOwn(ctx context.Context, weights, ps []float64) (*fit, error) {
	interp, err := curvefit.FitInterpolation(d.xs, d.values)
	if err != nil {
		return nil, fmt.Errorf("interpolation: %w", err)
	}
	interpolated, err := curvefit.EvaluateAll(interp, d.xs)
	if err != nil {
		return nil, fmt.Errorf("interpolation: %w", err)
	}

	curves, err := curvefit.SmoothSweep(ctx, d.knots, d.values, weights, ps)
	if err != nil {
		return nil, fmt.Errorf("smoothing: %w", err)
	}
	smoothed := make([][]float64, len(curves))
	for j, c := range curves {
		if smoothed[j], err = curvefit.EvaluateAll(c, d.xs); err != nil {
			return nil, fmt.Errorf("smoothing p=%.2f: %w", ps[j], err)
		}
	}

	return &fit{
		interp:   interp,
		smooth:   curves,
		weights:  weights,
		smoothed: smoothed,
		table:    d.table(weights, interpolated, ps, smoothed, ""),
	}, nil
}

// referenceTable computes the same columns with the gonum-backed references.
func (d *dataset) referenceTable(weights, ps []float64) (*report.Table, error) {
	ref := reference.NewNaturalCubic()
	if err := ref.Fit(d.knots, d.values, nil); err != nil {
		return nil, fmt.Errorf("reference interpolation: %w", err)
	}
	interpolated, err := curvefit.EvaluateAll(ref, d.xs)
	if err != nil {
		return nil, fmt.Errorf("reference interpolation: %w", err)
	}

	smoothed := make([][]float64, len(ps))
	for j, p := range ps {
		if smoothed[j], err = reference.SolveSmoothingBanded(d.knots, d.values, weights, p); err != nil {
			return nil, fmt.Errorf("reference smoothing p=%.2f: %w", p, err)
		}
	}
	return d.table(weights, interpolated, ps, smoothed, libSuffix), nil
}

func (d *dataset) table(weights, interpolated, ps []float64, smoothed [][]float64, suffix string) *report.Table {
	return &report.Table{
		Values:       d.values,
		Weights:      weights,
		Interpolated: interpolated,
		Smoothing:    ps,
		Smoothed:     smoothed,
		Suffix:       suffix,
	}
}

// summarize computes residual and roughness statistics for every curve of f.
func (d *dataset) summarize(f *fit) ([]report.Summary, error) {
	analyzer, err := spectrum.NewAnalyzer(len(d.xs))
	if err != nil {
		return nil, err
	}

	row := func(label string, c curvefit.Curve, weights, values []float64) (report.Summary, error) {
		st, err := curvefit.Residuals(c, d.knots, d.values, weights)
		if err != nil {
			return report.Summary{}, fmt.Errorf("%s: %w", label, err)
		}
		ratio, err := analyzer.HighFrequencyRatio(values, spectrumCutoff)
		if err != nil {
			return report.Summary{}, fmt.Errorf("%s: %w", label, err)
		}
		return report.Summary{Label: label, RMS: st.RMS, MaxAbs: st.MaxAbs, HighRatio: ratio}, nil
	}

	rows := make([]report.Summary, 0, len(f.smooth)+1)
	r, err := row("interpolation", f.interp, nil, f.table.Interpolated)
	if err != nil {
		return nil, err
	}
	rows = append(rows, r)
	for j, c := range f.smooth {
		r, err := row(fmt.Sprintf("p = %.2f", c.Smoothing()), c, f.weights, f.smoothed[j])
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}
