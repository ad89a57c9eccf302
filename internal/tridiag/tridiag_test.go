package tridiag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSolve_Identity verifies a diagonal system returns the scaled right-hand side.
func TestSolve_Identity(t *testing.T) {
	sub := []float64{0, 0, 0}
	diag := []float64{2, 4, 5}
	super := []float64{0, 0, 0}
	rhs := []float64{2, 8, 10}

	x, err := Solve(sub, diag, super, rhs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 2}, x, 1e-15)
}

// TestSolve_KnownSystem checks a small symmetric system solved by hand.
func TestSolve_KnownSystem(t *testing.T) {
	// | 4 1 |   | x0 |   | -6 |
	// | 1 4 | * | x1 | = |  6 |
	x, err := Solve([]float64{0, 1}, []float64{4, 4}, []float64{1, 0}, []float64{-6, 6})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, 2}, x, 1e-15)
}

// TestSolve_SingleUnknown verifies the n=1 case.
func TestSolve_SingleUnknown(t *testing.T) {
	x, err := Solve([]float64{7}, []float64{4}, []float64{9}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, x)
}

// TestSolve_MatchesDense compares against a dense gonum solve of a
// diagonally dominant system with uneven bands.
func TestSolve_MatchesDense(t *testing.T) {
	const n = 12
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)
	for i := range n {
		if i > 0 {
			sub[i] = 0.3 + 0.05*float64(i)
		}
		if i < n-1 {
			super[i] = 1.1 - 0.07*float64(i)
		}
		diag[i] = 3 + 0.2*float64(i%3)
		rhs[i] = float64(i*i) - 4
	}

	dense := mat.NewDense(n, n, nil)
	for i := range n {
		dense.Set(i, i, diag[i])
		if i > 0 {
			dense.Set(i, i-1, sub[i])
		}
		if i < n-1 {
			dense.Set(i, i+1, super[i])
		}
	}
	var want mat.VecDense
	require.NoError(t, want.SolveVec(dense, mat.NewVecDense(n, rhs)))

	got, err := Solve(sub, diag, super, rhs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.RawVector().Data, got, 1e-12)
}

// TestSolve_InputsUnchanged verifies the caller's slices are not overwritten.
func TestSolve_InputsUnchanged(t *testing.T) {
	sub := []float64{0, 1, 1}
	diag := []float64{4, 4, 4}
	super := []float64{1, 1, 0}
	rhs := []float64{1, 2, 3}

	_, err := Solve(sub, diag, super, rhs)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, diag)
	assert.Equal(t, []float64{1, 2, 3}, rhs)
}

// TestSolve_Errors covers dimension and singularity failures.
func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name                  string
		sub, diag, super, rhs []float64
		wantErr               error
	}{
		{"empty", nil, nil, nil, nil, ErrDimensionMismatch},
		{"short rhs", []float64{0, 1}, []float64{1, 1}, []float64{1, 0}, []float64{1}, ErrDimensionMismatch},
		{"zero first pivot", []float64{0, 1}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1}, ErrSingular},
		{"zero later pivot", []float64{0, 1}, []float64{1, 1}, []float64{1, 0}, []float64{1, 1}, ErrSingular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.sub, tt.diag, tt.super, tt.rhs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestSolve_RoundedZeroPivot uses a pure difference-penalty matrix on uneven
// spacing. It is singular, but elimination leaves the last pivot at about
// 1e-16 instead of exactly zero.
func TestSolve_RoundedZeroPivot(t *testing.T) {
	xs := []float64{0, 0.13, 0.5, 0.77, 1.31, 2}
	n := len(xs)
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	for i := range n - 1 {
		k := 0.3 / (xs[i+1] - xs[i])
		diag[i] += k
		diag[i+1] += k
		sub[i+1] -= k
		super[i] -= k
	}

	_, err := Solve(sub, diag, super, make([]float64, n))
	require.ErrorIs(t, err, ErrSingular)
	assert.Contains(t, err.Error(), "row 5")
}

// TestSolve_SmallButRegularPivot keeps a well-posed system whose entries are
// all tiny.
func TestSolve_SmallButRegularPivot(t *testing.T) {
	x, err := Solve([]float64{0, 1e-20}, []float64{4e-20, 4e-20}, []float64{1e-20, 0}, []float64{-6e-20, 6e-20})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, 2}, x, 1e-12)
}

// TestSolveInto_ShortScratch verifies the scratch length check.
func TestSolveInto_ShortScratch(t *testing.T) {
	dst := make([]float64, 2)
	err := SolveInto(dst, make([]float64, 3), []float64{0, 1}, []float64{4, 4}, []float64{1, 0}, []float64{1, 1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// BenchmarkSolve measures a 1087-unknown solve, the default sample size.
func BenchmarkSolve(b *testing.B) {
	const n = 1087
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)
	for i := range n {
		sub[i], diag[i], super[i], rhs[i] = 1, 4, 1, float64(i)
	}
	dst := make([]float64, n)
	scratch := make([]float64, 2*n)

	b.ReportAllocs()
	for b.Loop() {
		_ = SolveInto(dst, scratch, sub, diag, super, rhs)
	}
}
