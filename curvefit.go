package curvefit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-curvefit/internal/engine"
)

// Point is a sample location. Only X is used for fitting; Y and Z travel
// with the point unchanged.
type Point = engine.Point

// Evaluation is a fitted curve's value and first two derivatives at a point.
type Evaluation = engine.Evaluation

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return engine.NewPoint(x, y, z)
}

// PointsFromX returns one point per abscissa with Y and Z set to zero.
func PointsFromX(xs []float64) []Point {
	return engine.PointsFromX(xs)
}

// Curve is the capability shared by every fitting strategy.
// Implementations replace their fitted state wholesale on each successful
// Fit and keep it unchanged when Fit fails.
type Curve interface {
	// Fit fits the curve to values sampled at knots. weights holds one
	// non-negative weight per knot for strategies that use them; nil means
	// unit weights. Knots must be strictly increasing in X.
	Fit(knots []Point, values, weights []float64) error

	// Evaluate returns the curve value and its first and second derivatives
	// at p.X. Queries outside the fitted knots fail with ErrOutOfRange.
	Evaluate(p Point) (Evaluation, error)
}

// Kind selects the fitting strategy.
type Kind int

const (
	// KindInterpolation passes a natural cubic spline through every point.
	KindInterpolation Kind = iota

	// KindSmoothing fits a penalised piecewise-linear spline that trades
	// closeness to the data for smoothness, controlled by Config.Smoothing.
	KindSmoothing
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInterpolation:
		return kindInterpolationName
	case KindSmoothing:
		return kindSmoothingName
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as produced by Kind.String. "cubic" is
// accepted as an alias for interpolation.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case kindInterpolationName, kindCubicAlias:
		return KindInterpolation, nil
	case kindSmoothingName:
		return KindSmoothing, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, s)
	}
}

// Config holds curve construction parameters.
type Config struct {
	// Kind selects the fitting strategy.
	Kind Kind

	// Smoothing is the smoothing parameter p in [0, 1) used by KindSmoothing.
	// 0 reproduces the data exactly; values near 1 flatten the curve.
	// Ignored for KindInterpolation.
	Smoothing float64
}

// Common errors returned by curve construction, fitting and evaluation.
// Use errors.Is to test for them; returned errors carry detail.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid curve configuration")

	// ErrInvalidInput indicates knots, values or weights that cannot be fitted.
	ErrInvalidInput = engine.ErrInvalidInput

	// ErrOutOfRange indicates a query outside the fitted knots.
	ErrOutOfRange = engine.ErrOutOfRange

	// ErrInvalidBasisIndex indicates a hat function index other than 1 or 2.
	ErrInvalidBasisIndex = engine.ErrInvalidBasisIndex

	// ErrInvalidParameter indicates a smoothing parameter outside [0, 1).
	ErrInvalidParameter = engine.ErrInvalidParameter

	// ErrNotFitted indicates Evaluate was called before a successful Fit.
	ErrNotFitted = engine.ErrNotFitted

	// ErrSingularSystem indicates the fitting system could not be solved,
	// for example when every smoothing weight is zero.
	ErrSingularSystem = engine.ErrSingularSystem
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindInterpolation:
		return nil
	case KindSmoothing:
		if math.IsNaN(c.Smoothing) || c.Smoothing < 0 || c.Smoothing >= 1 {
			return fmt.Errorf("%w: %w: smoothing must be in [0, 1), got %v",
				ErrInvalidConfig, ErrInvalidParameter, c.Smoothing)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, int(c.Kind))
	}
}

// New creates an unfitted curve with the specified configuration.
func New(config *Config) (Curve, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Kind {
	case KindSmoothing:
		return NewSmoothing(config.Smoothing)
	default:
		return NewInterpolation(), nil
	}
}

// Info describes a curve.
type Info struct {
	// Kind is the fitting strategy.
	Kind Kind

	// Segments is the number of fitted segments, zero before the first Fit.
	Segments int

	// Smoothing is the smoothing parameter; zero for interpolation.
	Smoothing float64
}

// infoProvider is an optional interface for curves that can describe themselves.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about a curve.
// Curves that do not implement GetInfo report only their kind as
// interpolation with no segments.
func GetInfo(c Curve) Info {
	if provider, ok := c.(infoProvider); ok {
		return provider.GetInfo()
	}
	return Info{Kind: KindInterpolation}
}
