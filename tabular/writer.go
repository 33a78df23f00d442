package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes the table to dir under its filename, creating dir if
// needed. Output uses the table's delimiter and CRLF record terminators.
func WriteFile(dir string, table *Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, table.Filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // close error is surfaced via Flush below

	w := csv.NewWriter(f)
	w.Comma = table.Delimiter()
	w.UseCRLF = true

	if err = w.WriteAll(table.Records()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err = f.Sync(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}

// WriteAll writes every table into dir, stopping at the first failure.
func WriteAll(dir string, tables []*Table) error {
	for _, table := range tables {
		if err := WriteFile(dir, table); err != nil {
			return err
		}
	}

	return nil
}
