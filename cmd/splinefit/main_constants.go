package main

const (
	// envPrefix namespaces the environment overrides, e.g. SPLINEFIT_N.
	envPrefix = "SPLINEFIT"

	// Output file names
	csvOwnUnit     = "spline_output.csv"
	csvOwnWeak     = "spline_output_w_half.csv"
	csvLibUnit     = "spline_lib_w1.csv"
	csvLibWeak     = "spline_lib_w_half.csv"
	metricsFile    = "bench.prom"
	defaultWAVName = "curve.wav"

	// libSuffix marks reference columns in CSV headers.
	libSuffix = "_lib"

	// Rendering defaults
	defaultSampleRate = 8000
	defaultBitDepth   = 16
	defaultUpsample   = 8

	// Benchmark defaults
	defaultRepeat = 3

	// spectrumCutoff is the normalised frequency above which spectral energy
	// counts as roughness in the summary table.
	spectrumCutoff = 0.25

	defaultOutputDir = "."
	defaultLogLevel  = "info"

	// Directory and file permissions
	dirPerm = 0o755
)

// Flag names shared by the config loader and the command definitions.
const (
	flagConfig     = "config"
	flagN          = "n"
	flagMean       = "mean"
	flagSigma      = "sigma"
	flagSeed       = "seed"
	flagP          = "p"
	flagWeakNodes  = "weak-nodes"
	flagWeakWeight = "weak-weight"
	flagOutputDir  = "output-dir"
	flagRepeat     = "repeat"
	flagBenchSizes = "bench-sizes"
	flagSampleRate = "sample-rate"
	flagBitDepth   = "bit-depth"
	flagLogLevel   = "log-level"
)

var defaultBenchSizes = []int{10, 100, 1087}
