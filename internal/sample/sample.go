// Package sample generates and loads the data sets the curves are fitted to:
// seeded normal samples on an even grid, per-node weight vectors and PCM
// audio read from WAV files.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by the sample generators and loaders.
var (
	// ErrInvalidSize indicates a sample with fewer than two points.
	ErrInvalidSize = errors.New("sample: need at least two points")

	// ErrInvalidDistribution indicates a non-finite mean or non-positive sigma.
	ErrInvalidDistribution = errors.New("sample: invalid distribution parameters")

	// ErrInvalidWAV indicates the input is not a readable PCM WAV file.
	ErrInvalidWAV = errors.New("sample: invalid WAV input")
)

// Linspace returns n evenly spaced abscissas over [0, 1].
func Linspace(n int) ([]float64, error) {
	if n < minSamples {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return floats.Span(make([]float64, n), 0, 1), nil
}

// Normal returns n evenly spaced abscissas over [0, 1] and n values drawn
// from a normal distribution with the given mean and standard deviation.
// The same seed always yields the same values.
func Normal(n int, mean, sigma float64, seed uint64) (xs, ys []float64, err error) {
	xs, err = Linspace(n)
	if err != nil {
		return nil, nil, err
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) || !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, nil, fmt.Errorf("%w: mean=%v sigma=%v", ErrInvalidDistribution, mean, sigma)
	}

	dist := distuv.Normal{
		Mu:    mean,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed),
	}
	ys = make([]float64, n)
	for i := range ys {
		ys[i] = dist.Rand()
	}
	return xs, ys, nil
}

// UnitWeights returns n weights equal to one.
func UnitWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// WeakenedWeights returns unit weights with the nodes at the given 1-based
// indices set to weight. Indices outside 1..n are ignored.
func WeakenedWeights(n int, indices []int, weight float64) []float64 {
	w := UnitWeights(n)
	for _, idx := range indices {
		if idx >= 1 && idx <= n {
			w[idx-1] = weight
		}
	}
	return w
}

// DefaultWeakNodes returns the default weakened node indices 100, 200, ..., 1000.
func DefaultWeakNodes() []int {
	nodes := make([]int, 0, weakNodeLast/weakNodeStride)
	for idx := weakNodeStride; idx <= weakNodeLast; idx += weakNodeStride {
		nodes = append(nodes, idx)
	}
	return nodes
}
