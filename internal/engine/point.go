package engine

// Point is a sample location. The one-dimensional engines only read X; Y and
// Z are carried so callers can keep their original coordinates attached.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// PointsFromX returns one point per abscissa with Y and Z set to zero.
func PointsFromX(xs []float64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{X: x}
	}
	return pts
}

// Evaluation holds a fitted curve's value and first two derivatives at a
// query point.
type Evaluation struct {
	Value  float64
	First  float64
	Second float64
}
