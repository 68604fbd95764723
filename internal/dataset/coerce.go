package dataset

import (
	"math"
	"strconv"
)

// Matrix is a row-major numeric matrix with uniform row width.
type Matrix [][]float64

// CoercionStats reports how much of the matrix had to be defaulted, for
// observability. Defaulting is never an error.
type CoercionStats struct {
	// Defaulted counts cells that were absent or unparseable.
	Defaulted int
	// MissingColumns lists schema columns entirely absent from the header.
	MissingColumns []string
}

// Coerce builds a fixed-width matrix from the table, one column per schema
// entry in schema order, independent of whatever stray columns the upload
// carries. Absent or unparseable cells become 0 — or NaN when markMissing is
// set, leaving them for the KNN imputer instead of treating them as real
// zeros. Output width equals len(schema) for every row.
func Coerce(t *Table, schema []string, markMissing bool) (Matrix, CoercionStats) {
	stats := CoercionStats{}
	present := make(map[string]bool, len(t.Header))
	for _, h := range t.Header {
		present[h] = true
	}
	for _, col := range schema {
		if !present[col] {
			stats.MissingColumns = append(stats.MissingColumns, col)
		}
	}

	def := 0.0
	if markMissing {
		def = math.NaN()
	}

	m := make(Matrix, len(t.Records))
	for i, rec := range t.Records {
		row := make([]float64, len(schema))
		for j, col := range schema {
			v, ok := parseCell(rec[col])
			if !ok {
				row[j] = def
				stats.Defaulted++
				continue
			}
			row[j] = v
		}
		m[i] = row
	}
	return m, stats
}

// CoerceNumeric is the no-schema fallback: it selects every numeric column
// from the table (at least one non-empty value, and every non-empty value
// parses) in header order, with missing cells defaulted like Coerce.
func CoerceNumeric(t *Table, markMissing bool) ([]string, Matrix, CoercionStats) {
	var cols []string
	for _, col := range t.Header {
		if isNumericColumn(t, col) {
			cols = append(cols, col)
		}
	}
	m, stats := Coerce(t, cols, markMissing)
	return cols, m, stats
}

func isNumericColumn(t *Table, col string) bool {
	seen := false
	for _, rec := range t.Records {
		cell := rec[col]
		if cell == "" {
			continue
		}
		if _, ok := parseCell(cell); !ok {
			return false
		}
		seen = true
	}
	return seen
}

func parseCell(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
