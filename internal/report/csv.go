package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const (
	// csvSeparator suits spreadsheets in locales that use a decimal comma.
	csvSeparator = ';'

	// utf8BOM marks the file as UTF-8 for spreadsheet import.
	utf8BOM = "\ufeff"
)

// Header returns the CSV column names:
// index;value_f;weight_w;g_interp;g_p_0.00;... with Suffix appended to every
// fitted column.
func (t *Table) Header() []string {
	header := []string{"index", "value_f", "weight_w", "g_interp" + t.Suffix}
	for _, p := range t.Smoothing {
		header = append(header, "g_p_"+smoothingLabel(p)+t.Suffix)
	}
	return header
}

// WriteCSV writes the table as semicolon-separated values preceded by a
// UTF-8 byte order mark. Numbers use the shortest representation that
// round-trips.
func WriteCSV(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, 0, len(t.Header()))
	for i := range t.Rows() {
		record = append(record[:0],
			strconv.Itoa(i+1),
			formatFloat(t.Values[i]),
			formatFloat(t.Weights[i]),
			formatFloat(t.Interpolated[i]),
		)
		for _, col := range t.Smoothed {
			record = append(record, formatFloat(col[i]))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
