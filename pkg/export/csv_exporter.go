package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is tabular export content: a header row plus data rows. Rows are
// positional and must match the header width.
type Table struct {
	Headers []string
	Rows    [][]string
}

// CSVExporter renders tables into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the table.
func (e *CSVExporter) Render(t Table) ([]byte, error) {
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return nil, fmt.Errorf("csv row width %d does not match header width %d", len(row), len(t.Headers))
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
