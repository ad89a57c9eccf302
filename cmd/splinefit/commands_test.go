package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-curvefit"
	"github.com/tphakala/go-curvefit/internal/report"
	"github.com/tphakala/go-curvefit/internal/sample"
)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return stdout.String(), err
}

// readCSV parses a semicolon-separated file written by export.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\ufeff")), "missing byte order mark")

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func parseColumn(t *testing.T, records [][]string, col int) []float64 {
	t.Helper()
	out := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[col], 64)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func readWAV(t *testing.T, path string) *sample.Signal {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sig, err := sample.FromWAV(f, 0)
	require.NoError(t, err)
	return sig
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table", "--n", "20")
	require.NoError(t, err)

	for _, want := range []string{
		"Observations N",
		"Interpolating spline",
		"Smoothing spline",
		"p = 0.00",
		"p = 0.99",
		"Fit summary",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTableCommand_WeakWeights(t *testing.T) {
	out, err := execute(t, "table", "--n", "12", "--weak", "--weak-nodes", "2,4", "--weak-weight", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "0.5")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "export", "--n", "30", "-o", dir, "--weak-nodes", "5,10")
	require.NoError(t, err)

	own := readCSV(t, filepath.Join(dir, csvOwnUnit))
	require.Len(t, own, 31)
	assert.Equal(t,
		[]string{"index", "value_f", "weight_w", "g_interp", "g_p_0.00", "g_p_0.40", "g_p_0.80", "g_p_0.99"},
		own[0])
	assert.Equal(t, "1", own[1][0])

	lib := readCSV(t, filepath.Join(dir, csvLibUnit))
	require.Len(t, lib, 31)
	assert.Equal(t, "g_interp_lib", lib[0][3])
	assert.Equal(t, "g_p_0.99_lib", lib[0][7])

	// Own engines and references agree column by column.
	for col := 3; col < len(own[0]); col++ {
		assert.InDeltaSlice(t, parseColumn(t, lib, col), parseColumn(t, own, col), 1e-8, "column %s", own[0][col])
	}

	weak := readCSV(t, filepath.Join(dir, csvOwnWeak))
	weights := parseColumn(t, weak, 2)
	assert.InDelta(t, 0.5, weights[4], 0)
	assert.InDelta(t, 0.5, weights[9], 0)
	assert.InDelta(t, 1.0, weights[0], 0)

	libWeak := readCSV(t, filepath.Join(dir, csvLibWeak))
	assert.InDeltaSlice(t, parseColumn(t, libWeak, 5), parseColumn(t, weak, 5), 1e-8)
}

func TestBenchCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "bench", "--bench-sizes", "10,20", "--repeat", "1", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "N=10:")
	assert.Contains(t, out, "N=20:")
	assert.Contains(t, out, "reference_smoothing")

	data, err := os.ReadFile(filepath.Join(dir, metricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `curvefit_bench_duration_ms{engine="interpolation",n="20",stat="mean"}`)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "render", "--n", "20", "--kind", "smoothing", "--smoothing", "0.4", "-o", dir)
	require.NoError(t, err)

	sig := readWAV(t, filepath.Join(dir, defaultWAVName))
	assert.Equal(t, defaultSampleRate, sig.SampleRate)
	assert.Equal(t, defaultBitDepth, sig.BitDepth)
	assert.Len(t, sig.Values, 20*defaultUpsample)

	var peak float64
	for _, v := range sig.Values {
		peak = max(peak, abs(v))
	}
	assert.InDelta(t, 0.98, peak, 1e-4)
}

func TestRenderCommand_FromWAV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.wav")
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i%7) - 3
	}
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, report.WriteWAV(f, values, 100, 16))
	require.NoError(t, f.Close())

	output := filepath.Join(dir, "out.wav")
	_, err = execute(t, "render", "--input", input, "--upsample", "2", "--output", output, "--bit-depth", "24")
	require.NoError(t, err)

	sig := readWAV(t, output)
	assert.Equal(t, 200, sig.SampleRate, "duration is preserved")
	assert.Equal(t, 24, sig.BitDepth)
	assert.Len(t, sig.Values, 100)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"smoothing of one", []string{"table", "--p", "1"}, errInvalidConfig},
		{"unknown kind", []string{"render", "--kind", "bogus"}, curvefit.ErrInvalidConfig},
		{"render smoothing of one", []string{"render", "--kind", "smoothing", "--smoothing", "1"}, curvefit.ErrInvalidParameter},
		{"zero upsample", []string{"render", "--upsample", "0"}, errInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommandErrors_ExtraArgs(t *testing.T) {
	_, err := execute(t, "table", "unexpected")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown command") || strings.Contains(err.Error(), "accepts 0 arg"))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
