package sample

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// Signal is a mono PCM signal read from a WAV file.
type Signal struct {
	// Times holds each sample's time in seconds.
	Times []float64

	// Values holds samples normalised to [-1, 1].
	Values []float64

	SampleRate int
	BitDepth   int

	// Channels is the channel count of the source; only the first is kept.
	Channels int
}

// FromWAV decodes a PCM WAV stream and returns its first channel as a
// signal sampled at t = i / sampleRate. At most maxSamples samples are kept
// when maxSamples > 0.
func FromWAV(r io.ReadSeeker, maxSamples int) (*Signal, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM WAV stream", ErrInvalidWAV)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidWAV)
	}

	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	bitDepth := int(decoder.BitDepth)
	frames := len(buf.Data) / channels
	if maxSamples > 0 && frames > maxSamples {
		frames = maxSamples
	}
	if frames < minSamples {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidSize, frames)
	}

	invMax := 1 / MaxValue(bitDepth)
	sig := &Signal{
		Times:      make([]float64, frames),
		Values:     make([]float64, frames),
		SampleRate: rate,
		BitDepth:   bitDepth,
		Channels:   channels,
	}
	for i := range frames {
		sig.Times[i] = float64(i) / float64(rate)
		sig.Values[i] = float64(buf.Data[i*channels]) * invMax
	}
	return sig, nil
}
