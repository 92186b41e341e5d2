package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// Parse reads CSV text into raw rows keyed by canonical header name.
//
// The first record is the header. Headers and values are trimmed and stripped
// of surrounding quote characters; headers are additionally lowercased so
// "Timestamp" and `"timestamp"` address the same column. Records where every
// field is empty after cleaning are skipped before normalization ever sees
// them. Short records are padded with empty fields rather than rejected.
func Parse(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: no header row")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(clean(h))
	}

	rows := make([]domain.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.RawRow, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			var v string
			if i < len(record) {
				v = clean(record[i])
			}
			if v != "" {
				empty = false
			}
			row[col] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// clean trims whitespace and one layer of surrounding quote characters.
// The simulator double-quotes some fields, which encoding/csv preserves
// verbatim when the outer quoting is single quotes or stray.
func clean(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	return s
}
