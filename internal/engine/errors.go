package engine

import "errors"

// Errors returned by the fitting engines.
var (
	// ErrInvalidInput indicates knot, value or weight sequences that cannot be
	// fitted: mismatched lengths, fewer than two knots, non-finite entries,
	// knots that are not strictly increasing, or negative weights.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange indicates a query abscissa outside every fitted segment.
	ErrOutOfRange = errors.New("point out of range")

	// ErrInvalidBasisIndex indicates a hat function index other than 1 or 2.
	ErrInvalidBasisIndex = errors.New("invalid basis index")

	// ErrInvalidParameter indicates a smoothing parameter outside [0, 1).
	ErrInvalidParameter = errors.New("invalid smoothing parameter")

	// ErrNotFitted indicates Evaluate was called before a successful Fit.
	ErrNotFitted = errors.New("curve not fitted")

	// ErrSingularSystem indicates the assembled linear system had a zero pivot.
	ErrSingularSystem = errors.New("singular system")
)
