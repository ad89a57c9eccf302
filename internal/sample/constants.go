package sample

// Default synthetic sample parameters
const (
	// DefaultN is the default number of sample points.
	DefaultN = 1087

	// DefaultMean and DefaultSigma parameterise the normal distribution the
	// sample values are drawn from.
	DefaultMean  = 1.08
	DefaultSigma = 4.96

	// DefaultSeed makes the default sample reproducible.
	DefaultSeed = 242025
)

// Default weak-node parameters
const (
	// DefaultWeakWeight is the weight given to weakened nodes.
	DefaultWeakWeight = 0.5

	// weakNodeStride and weakNodeLast give the default weakened nodes
	// 100, 200, ..., 1000 (1-based).
	weakNodeStride = 100
	weakNodeLast   = 1000
)

// PCM scaling constants
const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt8  = 127.0
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	minSamples = 2
)

// MaxValue returns the positive full-scale integer for a PCM bit depth.
// Unknown depths are treated as 16-bit.
func MaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
