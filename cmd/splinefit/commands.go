package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-curvefit"
	"github.com/tphakala/go-curvefit/internal/bench"
	"github.com/tphakala/go-curvefit/internal/report"
	"github.com/tphakala/go-curvefit/internal/sample"
)

// =============================================================================
// TABLE COMMAND
// =============================================================================

func (a *app) newTableCmd() *cobra.Command {
	var weak bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print fitted values at every knot and a fit summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTable(cmd, weak)
		},
	}
	cmd.Flags().BoolVar(&weak, "weak", false, "use the weakened weights for the smoothing splines")
	return cmd
}

func (a *app) runTable(cmd *cobra.Command, weak bool) error {
	ds, err := newDataset(&a.cfg)
	if err != nil {
		return err
	}
	weights := ds.unit
	if weak {
		weights = ds.weak
	}
	f, err := ds.fitOwn(cmd.Context(), weights, a.cfg.P)
	if err != nil {
		return err
	}
	summary, err := ds.summarize(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.PrintHeader(out, a.cfg.N, a.cfg.Mean, a.cfg.Sigma); err != nil {
		return err
	}
	if err := report.PrintInterpolation(out, f.table); err != nil {
		return err
	}
	if err := report.PrintSmoothing(out, f.table); err != nil {
		return err
	}
	return report.PrintSummary(out, summary)
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write own and reference results as CSV files",
		Long: "Writes " + csvOwnUnit + " and " + csvOwnWeak + " from the spline engines and " +
			csvLibUnit + " and " + csvLibWeak + " from the gonum-backed references, " +
			"with unit and weakened weights respectively.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd)
		},
	}
}

func (a *app) runExport(cmd *cobra.Command) error {
	ds, err := newDataset(&a.cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, variant := range []struct {
		weights  []float64
		own, lib string
	}{
		{ds.unit, csvOwnUnit, csvLibUnit},
		{ds.weak, csvOwnWeak, csvLibWeak},
	} {
		f, err := ds.fitOwn(cmd.Context(), variant.weights, a.cfg.P)
		if err != nil {
			return err
		}
		if err := a.writeCSV(variant.own, f.table); err != nil {
			return err
		}

		lib, err := ds.referenceTable(variant.weights, a.cfg.P)
		if err != nil {
			return err
		}
		if err := a.writeCSV(variant.lib, lib); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeCSV(name string, t *report.Table) error {
	path := filepath.Join(a.cfg.OutputDir, name)
	if err := writeFile(path, func(w io.Writer) error { return report.WriteCSV(w, t) }); err != nil {
		return err
	}
	a.logger.Info("saved", "file", path, "rows", t.Rows(), "columns", len(t.Header()))
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return write(f)
}

// =============================================================================
// BENCH COMMAND
// =============================================================================

func (a *app) newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time own engines against the references",
		Long: "Times fitting plus evaluation at every knot for each sample size and writes " +
			"the timings to " + metricsFile + " in the Prometheus text format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd)
		},
	}
}

func (a *app) runBench(cmd *cobra.Command) error {
	base := bench.Case{
		Mean:   a.cfg.Mean,
		Sigma:  a.cfg.Sigma,
		Seed:   a.cfg.Seed,
		Ps:     a.cfg.P,
		Repeat: a.cfg.Repeat,
	}
	results, err := bench.RunSizes(cmd.Context(), base, a.cfg.BenchSizes)
	if err != nil {
		return err
	}

	rec := bench.NewRecorder()
	out := cmd.OutOrStdout()
	for _, res := range results {
		rec.Observe(res)
		if _, err := fmt.Fprintf(out, "N=%d:\n", res.N); err != nil {
			return err
		}
		for _, engine := range bench.Engines() {
			t := res.Timings[engine]
			if _, err := fmt.Fprintf(out, "  %-24s %s\n", engine, t); err != nil {
				return err
			}
			a.logger.Debug("timing", "n", res.N, "engine", engine, "mean_ms", t.Mean, "stdev_ms", t.Stdev)
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(a.cfg.OutputDir, metricsFile)
	if err := rec.WriteTextfile(path); err != nil {
		return err
	}
	a.logger.Info("saved", "file", path, "cases", len(results))
	return nil
}

// =============================================================================
// RENDER COMMAND
// =============================================================================

type renderOptions struct {
	kind      string
	smoothing float64
	input     string
	output    string
	upsample  int
}

func (a *app) newRenderCmd() *cobra.Command {
	opts := renderOptions{kind: curvefit.KindInterpolation.String(), upsample: defaultUpsample}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fitted curve as a mono WAV file",
		Long: "Fits a curve to the generated sample, or to the first channel of --input, " +
			"evaluates it on an evenly spaced grid and writes the result as PCM audio.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runRender(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", opts.kind, "curve kind (interpolation, smoothing)")
	f.Float64Var(&opts.smoothing, "smoothing", opts.smoothing, "smoothing parameter for --kind smoothing")
	f.StringVar(&opts.input, "input", "", "WAV file to fit instead of the generated sample")
	f.StringVar(&opts.output, "output", "", "output WAV path (default <output-dir>/"+defaultWAVName+")")
	f.IntVar(&opts.upsample, "upsample", opts.upsample, "output samples per knot")
	return cmd
}

func (a *app) runRender(opts renderOptions) error {
	if opts.upsample < 1 {
		return fmt.Errorf("%w: upsample must be positive, got %d", errInvalidConfig, opts.upsample)
	}
	kind, err := curvefit.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	curve, err := curvefit.New(&curvefit.Config{Kind: kind, Smoothing: opts.smoothing})
	if err != nil {
		return err
	}

	xs, values, inputRate, err := a.renderInput(opts.input)
	if err != nil {
		return err
	}
	rate := a.cfg.SampleRate
	if inputRate > 0 {
		// Keep the duration of the input.
		rate = inputRate * opts.upsample
	}
	var weights []float64
	if kind == curvefit.KindSmoothing {
		weights = sample.UnitWeights(len(xs))
	}
	if err := curve.Fit(curvefit.PointsFromX(xs), values, weights); err != nil {
		return err
	}

	grid := floats.Span(make([]float64, len(xs)*opts.upsample), xs[0], xs[len(xs)-1])
	rendered, err := curvefit.EvaluateAll(curve, grid)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		path = filepath.Join(a.cfg.OutputDir, defaultWAVName)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteWAV(f, rendered, rate, a.cfg.BitDepth); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	info := curvefit.GetInfo(curve)
	a.logger.Info("saved", "file", path, "kind", info.Kind, "segments", info.Segments,
		"smoothing", info.Smoothing, "samples", len(rendered), "sample_rate", rate)
	return nil
}

// renderInput returns the knots and values to fit: the first channel of the
// WAV file at path with its sample rate, or the generated sample with rate 0.
func (a *app) renderInput(path string) (xs, values []float64, rate int, err error) {
	if path == "" {
		xs, values, err = sample.Normal(a.cfg.N, a.cfg.Mean, a.cfg.Sigma, a.cfg.Seed)
		return xs, values, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	sig, err := sample.FromWAV(f, a.cfg.N)
	if err != nil {
		return nil, nil, 0, err
	}
	a.logger.Info("loaded", "file", path, "samples", len(sig.Values),
		"sample_rate", sig.SampleRate, "bit_depth", sig.BitDepth, "channels", sig.Channels)
	return sig.Times, sig.Values, sig.SampleRate, nil
}
