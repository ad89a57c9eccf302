// Package tridiag solves tridiagonal linear systems with the Thomas algorithm.
package tridiag

import (
	"errors"
	"fmt"
	"math"
)

// pivotTolerance is the relative size below which an eliminated pivot is
// treated as zero. Rows are measured by the sum of their absolute entries, so
// a pivot that only survives as round-off of a singular system is caught.
const pivotTolerance = 64 * 0x1p-52

var (
	// ErrDimensionMismatch indicates the diagonals and right-hand side differ in length.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrSingular indicates a zero pivot was met during forward elimination.
	ErrSingular = errors.New("tridiag: singular system")
)

// Solve solves the system
//
//	| d0 u0          |   | x0 |   | r0 |
//	| s1 d1 u1       |   | x1 |   | r1 |
//	|    ..  ..  ..  | * | .. | = | .. |
//	|       sn    dn |   | xn |   | rn |
//
// and returns x. sub[0] and super[n-1] are not read. The inputs are left
// untouched.
func Solve(sub, diag, super, rhs []float64) ([]float64, error) {
	n := len(diag)
	x := make([]float64, n)
	scratch := make([]float64, 2*n)
	if err := SolveInto(x, scratch, sub, diag, super, rhs); err != nil {
		return nil, err
	}
	return x, nil
}

// SolveInto is like Solve but writes the solution into dst and uses scratch
// (len >= 2*n) for the eliminated diagonal and right-hand side, so repeated
// solves of equal size do not allocate.
func SolveInto(dst, scratch, sub, diag, super, rhs []float64) error {
	n := len(diag)
	if n == 0 {
		return fmt.Errorf("%w: empty system", ErrDimensionMismatch)
	}
	if len(sub) != n || len(super) != n || len(rhs) != n || len(dst) != n {
		return fmt.Errorf("%w: sub=%d diag=%d super=%d rhs=%d dst=%d",
			ErrDimensionMismatch, len(sub), n, len(super), len(rhs), len(dst))
	}
	if len(scratch) < 2*n {
		return fmt.Errorf("%w: scratch has %d elements, need %d", ErrDimensionMismatch, len(scratch), 2*n)
	}

	b := scratch[:n]
	r := scratch[n : 2*n]
	copy(b, diag)
	copy(r, rhs)

	// Forward elimination: row j loses its sub-diagonal entry.
	if negligible(b[0], 0, diag[0], super[0], n) {
		return fmt.Errorf("%w: zero pivot at row 0", ErrSingular)
	}
	for j := 1; j < n; j++ {
		m := sub[j] / b[j-1]
		b[j] -= m * super[j-1]
		r[j] -= m * r[j-1]
		if negligible(b[j], sub[j], diag[j], super[j], n-j) {
			return fmt.Errorf("%w: zero pivot at row %d", ErrSingular, j)
		}
	}

	// Back-substitution.
	dst[n-1] = r[n-1] / b[n-1]
	for j := n - 2; j >= 0; j-- {
		dst[j] = (r[j] - super[j]*dst[j+1]) / b[j]
	}

	return nil
}

// negligible reports whether pivot is zero relative to its row. super is
// only part of the row when more rows follow.
func negligible(pivot, sub, diag, super float64, remaining int) bool {
	scale := math.Abs(sub) + math.Abs(diag)
	if remaining > 1 {
		scale += math.Abs(super)
	}
	return math.Abs(pivot) <= pivotTolerance*scale
}
