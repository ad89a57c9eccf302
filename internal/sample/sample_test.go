package sample

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestLinspace(t *testing.T) {
	xs, err := Linspace(5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs, 1e-15)

	_, err = Linspace(1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestNormal_Reproducible(t *testing.T) {
	xs1, ys1, err := Normal(DefaultN, DefaultMean, DefaultSigma, DefaultSeed)
	require.NoError(t, err)
	xs2, ys2, err := Normal(DefaultN, DefaultMean, DefaultSigma, DefaultSeed)
	require.NoError(t, err)

	if diff := cmp.Diff(ys1, ys2); diff != "" {
		t.Errorf("same seed gave different values (-first +second):\n%s", diff)
	}
	assert.Equal(t, xs1, xs2)
	assert.Len(t, ys1, DefaultN)
	assert.Equal(t, 0.0, xs1[0])
	assert.Equal(t, 1.0, xs1[DefaultN-1])

	_, other, err := Normal(DefaultN, DefaultMean, DefaultSigma, DefaultSeed+1)
	require.NoError(t, err)
	assert.NotEqual(t, ys1, other)
}

func TestNormal_Moments(t *testing.T) {
	_, ys, err := Normal(DefaultN, DefaultMean, DefaultSigma, DefaultSeed)
	require.NoError(t, err)

	mean, std := stat.MeanStdDev(ys, nil)
	// Five standard errors either way.
	assert.InDelta(t, DefaultMean, mean, 5*DefaultSigma/math.Sqrt(DefaultN))
	assert.InDelta(t, DefaultSigma, std, 0.15*DefaultSigma)
}

func TestNormal_Errors(t *testing.T) {
	_, _, err := Normal(1, 0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidSize)

	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, _, err := Normal(10, 0, sigma, 1)
		require.ErrorIs(t, err, ErrInvalidDistribution, "sigma=%v", sigma)
	}
	_, _, err = Normal(10, math.NaN(), 1, 1)
	require.ErrorIs(t, err, ErrInvalidDistribution)
}

func TestWeights(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, UnitWeights(3))
	assert.Equal(t, []float64{0.5, 1, 1, 0.5}, WeakenedWeights(4, []int{1, 4, 0, 9}, 0.5))

	nodes := DefaultWeakNodes()
	assert.Equal(t, []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}, nodes)

	w := WeakenedWeights(DefaultN, nodes, DefaultWeakWeight)
	assert.Equal(t, 0.5, w[99])
	assert.Equal(t, 0.5, w[999])
	assert.Equal(t, 1.0, w[100])
}

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 32767.0, MaxValue(16))
	assert.Equal(t, 8388607.0, MaxValue(24))
	assert.Equal(t, 32767.0, MaxValue(12), "unknown depth falls back to 16-bit")
}

// =============================================================================
// WAV input
// =============================================================================

func writeTestWAV(t *testing.T, rate, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestFromWAV_Mono(t *testing.T) {
	path := writeTestWAV(t, 8000, 1, []int{0, 16384, -16384, 32767})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	sig, err := FromWAV(f, 0)
	require.NoError(t, err)
	assert.Equal(t, 8000, sig.SampleRate)
	assert.Equal(t, 16, sig.BitDepth)
	assert.Equal(t, 1, sig.Channels)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 8000, 2.0 / 8000, 3.0 / 8000}, sig.Times, 1e-15)
	assert.InDeltaSlice(t, []float64{0, 16384.0 / 32767, -16384.0 / 32767, 1}, sig.Values, 1e-12)
}

func TestFromWAV_StereoKeepsFirstChannel(t *testing.T) {
	path := writeTestWAV(t, 44100, 2, []int{100, -1, 200, -1, 300, -1})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	sig, err := FromWAV(f, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sig.Channels)
	require.Len(t, sig.Values, 2, "maxSamples caps the frame count")
	assert.InDelta(t, 100.0/32767, sig.Values[0], 1e-12)
	assert.InDelta(t, 200.0/32767, sig.Values[1], 1e-12)
}

func TestFromWAV_Invalid(t *testing.T) {
	_, err := FromWAV(bytes.NewReader([]byte("not a wav file at all")), 0)
	require.ErrorIs(t, err, ErrInvalidWAV)

	path := writeTestWAV(t, 8000, 1, []int{5})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = FromWAV(f, 0)
	require.ErrorIs(t, err, ErrInvalidSize)
}
