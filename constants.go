package curvefit

// Kind names
const (
	kindInterpolationName = "interpolation"
	kindSmoothingName     = "smoothing"
	kindCubicAlias        = "cubic"
)

// Default smoothing sweep, matching the reference tables.
var defaultSweep = []float64{0, 0.4, 0.8, 0.99}

// DefaultSweep returns a copy of the smoothing parameters tabulated by the
// reports: 0, 0.4, 0.8 and 0.99.
func DefaultSweep() []float64 {
	out := make([]float64, len(defaultSweep))
	copy(out, defaultSweep)
	return out
}
