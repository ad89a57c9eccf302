// Package spectrum measures how much of a sampled curve's energy sits at
// high frequencies, as a roughness measure for comparing smoothing levels.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-curvefit/internal/simdops"
)

const (
	// nyquist is the highest relative frequency of a real sequence, in
	// cycles per sample.
	nyquist = 0.5

	// hermitianDivisor gives the n/2 + 1 unique coefficients of a real FFT.
	hermitianDivisor = 2

	minLength = 2
)

var (
	// ErrTooShort indicates fewer than two samples.
	ErrTooShort = errors.New("spectrum: need at least two samples")

	// ErrInvalidCutoff indicates a cutoff outside (0, 0.5).
	ErrInvalidCutoff = errors.New("spectrum: cutoff must be in (0, 0.5)")

	// ErrLengthMismatch indicates input of a different length than the analyzer.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
)

// Analyzer computes power spectra of fixed-length real sequences. It keeps
// its FFT plan and working buffers so repeated analyses do not allocate.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	fft *fourier.FFT
	n   int

	centered []float64
	coeffs   []complex128
	conj     []complex128
	power    []complex128
}

// NewAnalyzer creates an analyzer for sequences of length n.
func NewAnalyzer(n int) (*Analyzer, error) {
	if n < minLength {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}
	bins := n/hermitianDivisor + 1
	return &Analyzer{
		fft:      fourier.NewFFT(n),
		n:        n,
		centered: make([]float64, n),
		coeffs:   make([]complex128, bins),
		conj:     make([]complex128, bins),
		power:    make([]complex128, bins),
	}, nil
}

// Len returns the sequence length the analyzer was created for.
func (a *Analyzer) Len() int {
	return a.n
}

// PowerSpectrum returns the relative frequency (cycles per sample) and
// one-sided power of every unique FFT bin of values after removing its mean.
func (a *Analyzer) PowerSpectrum(values []float64) (freqs, power []float64, err error) {
	if err := a.transform(values); err != nil {
		return nil, nil, err
	}
	freqs = make([]float64, len(a.power))
	power = make([]float64, len(a.power))
	for i := range a.power {
		freqs[i] = a.fft.Freq(i)
		power[i] = a.binPower(i)
	}
	return freqs, power, nil
}

// HighFrequencyRatio returns the fraction of the signal's energy at
// relative frequencies strictly above cutoff. The mean is removed first, so
// a constant signal has ratio 0.
func (a *Analyzer) HighFrequencyRatio(values []float64, cutoff float64) (float64, error) {
	if math.IsNaN(cutoff) || cutoff <= 0 || cutoff >= nyquist {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidCutoff, cutoff)
	}
	if err := a.transform(values); err != nil {
		return 0, err
	}

	var total, high float64
	for i := range a.power {
		p := a.binPower(i)
		total += p
		if a.fft.Freq(i) > cutoff {
			high += p
		}
	}
	if total == 0 {
		return 0, nil
	}
	return high / total, nil
}

// transform removes the mean and fills a.power with c·conj(c) per bin.
func (a *Analyzer) transform(values []float64) error {
	if len(values) != a.n {
		return fmt.Errorf("%w: got %d samples, analyzer length %d", ErrLengthMismatch, len(values), a.n)
	}

	mean := simdops.For[float64]().Sum(values) / float64(a.n)
	for i, v := range values {
		a.centered[i] = v - mean
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.centered)
	for i, c := range a.coeffs {
		a.conj[i] = cmplx.Conj(c)
	}
	c128.Mul(a.power, a.coeffs, a.conj)
	return nil
}

// binPower returns the one-sided power of bin i. Bins other than DC and,
// for even lengths, Nyquist stand for a conjugate pair and count twice.
func (a *Analyzer) binPower(i int) float64 {
	p := real(a.power[i])
	if i == 0 || (a.n%hermitianDivisor == 0 && i == len(a.power)-1) {
		return p
	}
	return hermitianDivisor * p
}

// HighFrequencyRatio is a convenience function for a one-off analysis.
func HighFrequencyRatio(values []float64, cutoff float64) (float64, error) {
	a, err := NewAnalyzer(len(values))
	if err != nil {
		return 0, err
	}
	return a.HighFrequencyRatio(values, cutoff)
}
