package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-curvefit"
	"github.com/tphakala/go-curvefit/internal/sample"
)

var errInvalidConfig = errors.New("invalid run configuration")

// Config holds the parameters of a run. Values are layered: built-in
// defaults, then the YAML run file, then SPLINEFIT_* environment variables,
// then command-line flags.
type Config struct {
	N          int       `yaml:"n"`
	Mean       float64   `yaml:"mean"`
	Sigma      float64   `yaml:"sigma"`
	Seed       uint64    `yaml:"seed"`
	P          []float64 `yaml:"p"`
	WeakNodes  []int     `yaml:"weak_nodes" split_words:"true"`
	WeakWeight float64   `yaml:"weak_weight" split_words:"true"`
	OutputDir  string    `yaml:"output_dir" split_words:"true"`
	Repeat     int       `yaml:"repeat"`
	BenchSizes []int     `yaml:"bench_sizes" split_words:"true"`
	SampleRate int       `yaml:"sample_rate" split_words:"true"`
	BitDepth   int       `yaml:"bit_depth" split_words:"true"`
	LogLevel   string    `yaml:"log_level" split_words:"true"`
}

func defaultConfig() Config {
	return Config{
		N:          sample.DefaultN,
		Mean:       sample.DefaultMean,
		Sigma:      sample.DefaultSigma,
		Seed:       sample.DefaultSeed,
		P:          curvefit.DefaultSweep(),
		WeakNodes:  sample.DefaultWeakNodes(),
		WeakWeight: sample.DefaultWeakWeight,
		OutputDir:  defaultOutputDir,
		Repeat:     defaultRepeat,
		BenchSizes: slices.Clone(defaultBenchSizes),
		SampleRate: defaultSampleRate,
		BitDepth:   defaultBitDepth,
		LogLevel:   defaultLogLevel,
	}
}

// loadConfig layers the run file at path (if any), the environment and the
// flags that were set explicitly on top of the defaults.
func loadConfig(path string, flags *pflag.FlagSet, flagValues *Config) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := readRunFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %w", errInvalidConfig, err)
	}

	applyFlags(&cfg, flagValues, flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readRunFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", errInvalidConfig, path, err)
	}
	return nil
}

// applyFlags copies the flags the user set from src into dst.
func applyFlags(dst, src *Config, flags *pflag.FlagSet) {
	if flags == nil {
		return
	}
	setters := map[string]func(){
		flagN:          func() { dst.N = src.N },
		flagMean:       func() { dst.Mean = src.Mean },
		flagSigma:      func() { dst.Sigma = src.Sigma },
		flagSeed:       func() { dst.Seed = src.Seed },
		flagP:          func() { dst.P = slices.Clone(src.P) },
		flagWeakNodes:  func() { dst.WeakNodes = slices.Clone(src.WeakNodes) },
		flagWeakWeight: func() { dst.WeakWeight = src.WeakWeight },
		flagOutputDir:  func() { dst.OutputDir = src.OutputDir },
		flagRepeat:     func() { dst.Repeat = src.Repeat },
		flagBenchSizes: func() { dst.BenchSizes = slices.Clone(src.BenchSizes) },
		flagSampleRate: func() { dst.SampleRate = src.SampleRate },
		flagBitDepth:   func() { dst.BitDepth = src.BitDepth },
		flagLogLevel:   func() { dst.LogLevel = src.LogLevel },
	}
	flags.Visit(func(f *pflag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set()
		}
	})
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if c.N < 2 {
		return fmt.Errorf("%w: n must be at least 2, got %d", errInvalidConfig, c.N)
	}
	if !(c.Sigma > 0) {
		return fmt.Errorf("%w: sigma must be positive, got %v", errInvalidConfig, c.Sigma)
	}
	if len(c.P) == 0 {
		return fmt.Errorf("%w: at least one smoothing parameter is required", errInvalidConfig)
	}
	for _, p := range c.P {
		if !(p >= 0 && p < 1) {
			return fmt.Errorf("%w: %w: smoothing must be in [0, 1), got %v",
				errInvalidConfig, curvefit.ErrInvalidParameter, p)
		}
	}
	if c.WeakWeight < 0 {
		return fmt.Errorf("%w: weak_weight must be non-negative, got %v", errInvalidConfig, c.WeakWeight)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", errInvalidConfig)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be positive, got %d", errInvalidConfig, c.Repeat)
	}
	for _, n := range c.BenchSizes {
		if n < 2 {
			return fmt.Errorf("%w: bench size must be at least 2, got %d", errInvalidConfig, n)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", errInvalidConfig, c.SampleRate)
	}
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit_depth must be 16, 24 or 32, got %d", errInvalidConfig, c.BitDepth)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log_level: %w", errInvalidConfig, err)
	}
	return level, nil
}

// LogValue lets the config be logged as one structured attribute group.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("n", c.N),
		slog.Float64("mean", c.Mean),
		slog.Float64("sigma", c.Sigma),
		slog.Uint64("seed", c.Seed),
		slog.Any("p", c.P),
		slog.Float64("weak_weight", c.WeakWeight),
		slog.Int("weak_nodes", len(c.WeakNodes)),
		slog.String("output_dir", c.OutputDir),
	)
}
