package engine

// Segment lookup constants
const (
	// boundaryTolerance is the absolute distance within which a query abscissa
	// is considered to sit on a segment end. It admits floating-point
	// round-off when evaluating exactly at knots.
	boundaryTolerance = 1e-7

	// minKnots is the smallest knot sequence that defines a segment.
	minKnots = 2
)

// Hat basis constants
const (
	// basisFirst and basisSecond index the two linear hat functions of a
	// segment: N1 falls from 1 to 0, N2 rises from 0 to 1.
	basisFirst  = 1
	basisSecond = 2

	// hatHalf is the 1/2 factor of N1 = (1-ξ)/2, N2 = (1+ξ)/2 and their
	// master-coordinate derivatives ∓1/2.
	hatHalf = 0.5

	// masterSpan is the width of the master interval [-1, 1]; it is the
	// chain-rule factor 2/h between master and physical derivatives.
	masterSpan = 2.0
)
