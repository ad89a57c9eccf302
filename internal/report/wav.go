package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-curvefit/internal/sample"
	"github.com/tphakala/go-curvefit/internal/simdops"
)

const (
	// pcmFormat is the WAVE format tag for integer PCM.
	pcmFormat = 1

	monoChannels = 1

	// headroom keeps the rendered peak just below full scale.
	headroom = 0.98
)

// ErrInvalidAudio indicates an unsupported bit depth, a non-positive sample
// rate or an empty curve.
var ErrInvalidAudio = errors.New("report: invalid audio parameters")

// WriteWAV renders values as a mono PCM WAV stream. The curve is scaled so
// its largest magnitude sits just below full scale; a flat zero curve is
// written as silence. Supported bit depths are 16, 24 and 32.
func WriteWAV(w io.WriteSeeker, values []float64, sampleRate, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidAudio, bitDepth)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidAudio, sampleRate)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: no samples", ErrInvalidAudio)
	}

	ops := simdops.For[float64]()
	scaled := make([]float64, len(values))
	if peak := simdops.MaxAbs(values); peak > 0 {
		ops.Scale(scaled, values, headroom*sample.MaxValue(bitDepth)/peak)
	}

	data := make([]int, len(scaled))
	for i, v := range scaled {
		data[i] = int(math.Round(v))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
