package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoHeader = errors.New("file has no header row")

// ReadFile parses a delimited file into a Table. The delimiter is sniffed
// from the header line: tab if one is present, comma otherwise. A UTF-8
// BOM on the first column name is stripped. Rows shorter than the header
// leave the missing columns empty; extra fields are dropped.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	br := bufio.NewReader(f)
	headerLine, err := br.Peek(4096)
	if err != nil && len(headerLine) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	delimiter := ','
	if strings.ContainsRune(firstLine(headerLine), '\t') {
		delimiter = '\t'
	}

	r := csv.NewReader(br)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 || isBlankHeader(records[0]) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	columns := records[0]
	columns[0] = strings.TrimPrefix(columns[0], "\ufeff")

	table := &Table{
		Filename: filepath.Base(path),
		Columns:  columns,
		Comma:    delimiter,
	}

	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}

func firstLine(b []byte) string {
	s := string(b)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		return s[:idx]
	}

	return s
}

func isBlankHeader(header []string) bool {
	for _, col := range header {
		if strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")) != "" {
			return false
		}
	}

	return true
}
