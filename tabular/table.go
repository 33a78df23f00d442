package tabular

// Row holds one record's values keyed by column name. Columns missing from
// the map serialize as empty fields.
type Row = map[string]string

// Table is an ordered set of columns with rows, bound for (or read from) a
// single delimited file.
type Table struct {
	// Filename is the basename the table is written to or was read from.
	Filename string

	// Columns fixes the column order. It must not be reordered or renamed;
	// the downstream consumer schema depends on it.
	Columns []string

	// Rows in output order.
	Rows []Row

	// Comma is the field delimiter. Zero value means tab.
	Comma rune
}

// NewTable creates an empty table with the given filename and column order.
func NewTable(filename string, columns ...string) *Table {
	return &Table{
		Filename: filename,
		Columns:  columns,
	}
}

// Append adds one or more rows to the table.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Delimiter returns the effective field delimiter.
func (t *Table) Delimiter() rune {
	if t.Comma == 0 {
		return '\t'
	}

	return t.Comma
}

// Records renders the header and all rows as field slices in column order.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Columns)

	for _, row := range t.Rows {
		fields := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			fields[i] = row[col]
		}
		records = append(records, fields)
	}

	return records
}
