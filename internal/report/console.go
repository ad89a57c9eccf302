package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeBlock(w io.Writer, title, body string) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", body)
	return err
}

// PrintHeader prints the sample size and distribution parameters.
func PrintHeader(w io.Writer, n int, mean, sigma float64) error {
	t := newTable("Observations N", "Mean M", "Deviation σ").
		Row(strconv.Itoa(n), fmt.Sprintf("%.2f", mean), fmt.Sprintf("%.2f", sigma))
	return writeBlock(w, "", t.String())
}

// PrintInterpolation prints the sampled values next to the interpolating
// spline evaluated at each knot.
func PrintInterpolation(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	tbl := newTable("#", "Value f", "Weight w", "g_interp")
	for i := range t.Rows() {
		tbl.Row(strconv.Itoa(i+1), sci(t.Values[i]), weightCell(t.Weights[i]), sci(t.Interpolated[i]))
	}
	return writeBlock(w, "Interpolating spline", tbl.String())
}

// PrintSmoothing prints the sampled values next to one smoothing spline
// column per parameter.
func PrintSmoothing(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	headers := []string{"#", "Value f", "Weight w"}
	for _, p := range t.Smoothing {
		headers = append(headers, "p = "+smoothingLabel(p))
	}
	tbl := newTable(headers...)
	for i := range t.Rows() {
		row := []string{strconv.Itoa(i + 1), sci(t.Values[i]), weightCell(t.Weights[i])}
		for _, col := range t.Smoothed {
			row = append(row, sci(col[i]))
		}
		tbl.Row(row...)
	}
	return writeBlock(w, "Smoothing spline", tbl.String())
}

// Summary is one line of a per-curve summary table.
type Summary struct {
	Label     string
	RMS       float64
	MaxAbs    float64
	HighRatio float64
}

// PrintSummary prints residual and roughness statistics per curve.
func PrintSummary(w io.Writer, rows []Summary) error {
	tbl := newTable("Curve", "RMS residual", "Max |residual|", "High-frequency share")
	for _, r := range rows {
		tbl.Row(r.Label, sci(r.RMS), sci(r.MaxAbs), fmt.Sprintf("%.4f", r.HighRatio))
	}
	return writeBlock(w, "Fit summary", tbl.String())
}

func weightCell(w float64) string {
	return strconv.FormatFloat(w, 'g', 3, 64)
}
