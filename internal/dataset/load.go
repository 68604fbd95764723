// Package dataset loads delimited survey exports and coerces them into the
// fixed-width numeric matrices the pipeline operates on. Survey archive
// exports carry '#'-prefixed comment banners and blank separator lines; both
// are stripped before parsing. The column set of an upload is never trusted
// to match any schema.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RawRecord is one input row: column name → raw cell text.
// An absent key and an empty string both mean "missing".
type RawRecord map[string]string

// Table is a parsed upload: the file's header in original order plus one
// RawRecord per data row.
type Table struct {
	Header  []string
	Records []RawRecord
}

// Load reads a delimited file, drops comment ('#'-prefixed) and blank lines,
// and parses the remainder as CSV with the first surviving line as header.
// Ragged rows are tolerated: short rows leave trailing columns missing, long
// rows have their overflow cells ignored.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(string(raw))
}

// Parse is Load over in-memory content.
func Parse(content string) (*Table, error) {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return &Table{}, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(kept, "\n")))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Header: header}
	for _, row := range rows[1:] {
		rec := make(RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}
