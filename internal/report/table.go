// Package report renders fitted curves for people and tools: aligned console
// tables, semicolon-separated CSV for spreadsheets and WAV audio.
package report

import (
	"errors"
	"fmt"
)

// ErrInvalidTable indicates columns of different lengths or a smoothing
// column without a matching parameter.
var ErrInvalidTable = errors.New("report: invalid table")

// Table holds one row per knot: the sampled value, its weight, the
// interpolated value and one smoothed value per smoothing parameter.
type Table struct {
	Values       []float64
	Weights      []float64
	Interpolated []float64

	// Smoothing lists the parameters p, one per Smoothed column.
	Smoothing []float64
	Smoothed  [][]float64

	// Suffix is appended to the fitted-column names in CSV headers, for
	// example "_lib" for reference results.
	Suffix string
}

// Validate checks that every column has one entry per row.
func (t *Table) Validate() error {
	n := len(t.Values)
	if len(t.Weights) != n || len(t.Interpolated) != n {
		return fmt.Errorf("%w: %d values, %d weights, %d interpolated",
			ErrInvalidTable, n, len(t.Weights), len(t.Interpolated))
	}
	if len(t.Smoothing) != len(t.Smoothed) {
		return fmt.Errorf("%w: %d smoothing parameters for %d columns",
			ErrInvalidTable, len(t.Smoothing), len(t.Smoothed))
	}
	for j, col := range t.Smoothed {
		if len(col) != n {
			return fmt.Errorf("%w: smoothing column %d has %d rows, want %d", ErrInvalidTable, j, len(col), n)
		}
	}
	return nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return len(t.Values)
}

func sci(v float64) string {
	return fmt.Sprintf("%.6E", v)
}

func smoothingLabel(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
