package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-curvefit/internal/sample"
)

func smallTable() *Table {
	return &Table{
		Values:       []float64{1.5, -2},
		Weights:      []float64{1, 0.5},
		Interpolated: []float64{1.5, -2},
		Smoothing:    []float64{0, 0.4},
		Smoothed:     [][]float64{{1.5, -2}, {0.25, -0.75}},
	}
}

// =============================================================================
// Table validation
// =============================================================================

func TestTableValidate(t *testing.T) {
	require.NoError(t, smallTable().Validate())

	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{"short weights", func(t *Table) { t.Weights = t.Weights[:1] }},
		{"short interpolated", func(t *Table) { t.Interpolated = nil }},
		{"missing parameter", func(t *Table) { t.Smoothing = t.Smoothing[:1] }},
		{"short smoothing column", func(t *Table) { t.Smoothed[1] = t.Smoothed[1][:1] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := smallTable()
			tt.mutate(tbl)
			require.ErrorIs(t, tbl.Validate(), ErrInvalidTable)
		})
	}
}

// =============================================================================
// CSV
// =============================================================================

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, smallTable()))

	want := "\ufeff" +
		"index;value_f;weight_w;g_interp;g_p_0.00;g_p_0.40\n" +
		"1;1.5;1;1.5;1.5;0.25\n" +
		"2;-2;0.5;-2;-2;-0.75\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Suffix(t *testing.T) {
	tbl := smallTable()
	tbl.Suffix = "_lib"
	assert.Equal(t,
		[]string{"index", "value_f", "weight_w", "g_interp_lib", "g_p_0.00_lib", "g_p_0.40_lib"},
		tbl.Header())
}

func TestWriteCSV_Invalid(t *testing.T) {
	tbl := smallTable()
	tbl.Weights = nil
	var buf bytes.Buffer
	require.ErrorIs(t, WriteCSV(&buf, tbl), ErrInvalidTable)
	assert.Zero(t, buf.Len(), "nothing written for an invalid table")
}

// =============================================================================
// Console tables
// =============================================================================

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintHeader(&buf, 1087, 1.08, 4.96))
	out := buf.String()
	assert.Contains(t, out, "Observations N")
	assert.Contains(t, out, "1087")
	assert.Contains(t, out, "1.08")
	assert.Contains(t, out, "4.96")
}

func TestPrintInterpolation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintInterpolation(&buf, smallTable()))
	out := buf.String()
	assert.Contains(t, out, "Interpolating spline")
	assert.Contains(t, out, "g_interp")
	assert.Contains(t, out, "1.500000E+00")
	assert.Contains(t, out, "-2.000000E+00")
	assert.Contains(t, out, "0.5")
}

func TestPrintSmoothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSmoothing(&buf, smallTable()))
	out := buf.String()
	assert.Contains(t, out, "Smoothing spline")
	assert.Contains(t, out, "p = 0.00")
	assert.Contains(t, out, "p = 0.40")
	assert.Contains(t, out, "2.500000E-01")
	assert.Contains(t, out, "-7.500000E-01")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Greater(t, len(lines), 4, "title, borders, header and two rows")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, []Summary{{Label: "p = 0.40", RMS: 1, MaxAbs: 2, HighRatio: 0.125}}))
	out := buf.String()
	assert.Contains(t, out, "p = 0.40")
	assert.Contains(t, out, "0.1250")
	assert.Contains(t, out, "2.000000E+00")
}

// =============================================================================
// WAV
// =============================================================================

func TestWriteWAV_RoundTrip(t *testing.T) {
	values := []float64{0, 0.5, -1, 0.25}
	path := filepath.Join(t.TempDir(), "curve.wav")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, values, 8000, 16))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	sig, err := sample.FromWAV(f, 0)
	require.NoError(t, err)
	assert.Equal(t, 8000, sig.SampleRate)
	assert.Equal(t, 16, sig.BitDepth)
	require.Len(t, sig.Values, len(values))
	for i, v := range values {
		assert.InDelta(t, headroom*v, sig.Values[i], 1e-4, "sample %d", i)
	}
}

func TestWriteWAV_Silence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, []float64{0, 0, 0}, 8000, 24))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sig, err := sample.FromWAV(f, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, sig.Values)
}

func TestWriteWAV_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.ErrorIs(t, WriteWAV(f, []float64{1}, 8000, 12), ErrInvalidAudio)
	require.ErrorIs(t, WriteWAV(f, []float64{1}, 0, 16), ErrInvalidAudio)
	require.ErrorIs(t, WriteWAV(f, nil, 8000, 16), ErrInvalidAudio)
}
