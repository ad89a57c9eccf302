// Command splinefit fits interpolating and smoothing splines to a seeded
// normal sample and reports, exports, benchmarks or renders the results.
//
// Usage:
//
//	splinefit table                       # print the fitted values at every knot
//	splinefit export -o out               # write own and reference CSV tables
//	splinefit bench --bench-sizes 10,100  # time own engines against references
//	splinefit render --kind smoothing --smoothing 0.8 -o out
//	splinefit render --input speech.wav   # fit a curve to the first channel of a WAV file
//
// Parameters come from built-in defaults, an optional YAML run file
// (--config), SPLINEFIT_* environment variables and flags, in increasing
// order of precedence.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	flags      Config
	cfg        Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: defaultConfig()}

	root := &cobra.Command{
		Use:           "splinefit",
		Short:         "Fit interpolating and smoothing splines to sampled data",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", "YAML run file")
	pf.IntVar(&a.flags.N, flagN, a.flags.N, "number of observations")
	pf.Float64Var(&a.flags.Mean, flagMean, a.flags.Mean, "mean of the normal sample")
	pf.Float64Var(&a.flags.Sigma, flagSigma, a.flags.Sigma, "standard deviation of the normal sample")
	pf.Uint64Var(&a.flags.Seed, flagSeed, a.flags.Seed, "random seed")
	pf.Float64SliceVar(&a.flags.P, flagP, a.flags.P, "smoothing parameters in [0, 1)")
	pf.IntSliceVar(&a.flags.WeakNodes, flagWeakNodes, a.flags.WeakNodes, "1-based indices of weakened nodes")
	pf.Float64Var(&a.flags.WeakWeight, flagWeakWeight, a.flags.WeakWeight, "weight of weakened nodes")
	pf.StringVarP(&a.flags.OutputDir, flagOutputDir, "o", a.flags.OutputDir, "directory for written files")
	pf.IntVar(&a.flags.Repeat, flagRepeat, a.flags.Repeat, "benchmark repetitions per engine")
	pf.IntSliceVar(&a.flags.BenchSizes, flagBenchSizes, a.flags.BenchSizes, "benchmark sample sizes")
	pf.IntVar(&a.flags.SampleRate, flagSampleRate, a.flags.SampleRate, "sample rate of rendered WAV files")
	pf.IntVar(&a.flags.BitDepth, flagBitDepth, a.flags.BitDepth, "bit depth of rendered WAV files (16, 24, 32)")
	pf.StringVar(&a.flags.LogLevel, flagLogLevel, a.flags.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		a.newTableCmd(),
		a.newExportCmd(),
		a.newBenchCmd(),
		a.newRenderCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags(), &a.flags)
	if err != nil {
		return err
	}
	level, err := cfg.level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "config", cfg, "file", a.configPath)
	return nil
}
