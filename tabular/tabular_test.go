package tabular_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcplibrary/polaris-sampledata/tabular"
)

func Test_WriteFile_ThenReadFile_RoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		comma rune
	}{
		{name: "tab_delimited", comma: 0},
		{name: "comma_delimited", comma: ','},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			table := tabular.NewTable("Polaris.Polaris.Patrons.csv", "PatronID", "Barcode", "Name")
			table.Comma = tc.comma
			table.Append(
				tabular.Row{"PatronID": "10000", "Barcode": "23307000000001", "Name": "DOE, JANE"},
				tabular.Row{"PatronID": "10001", "Barcode": "23307000000002", "Name": "SMITH, JOHN"},
			)

			require.NoError(t, tabular.WriteFile(dir, table))

			read, err := tabular.ReadFile(filepath.Join(dir, table.Filename))
			require.NoError(t, err)

			assert.Equal(t, table.Columns, read.Columns)
			assert.Equal(t, table.Rows, read.Rows)
			assert.Equal(t, table.Delimiter(), read.Delimiter())
		})
	}
}

func Test_WriteFile_UsesCRLFRecordTerminators(t *testing.T) {
	dir := t.TempDir()

	table := tabular.NewTable("out.csv", "A", "B")
	table.Append(tabular.Row{"A": "1", "B": "2"})
	require.NoError(t, tabular.WriteFile(dir, table))

	raw, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)

	assert.Equal(t, "A\tB\r\n1\t2\r\n", string(raw))
}

func Test_ReadFile_SniffsDelimiterFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected rune
	}{
		{name: "tab_in_header_means_tab", content: "A\tB\r\n1\t2\r\n", expected: '\t'},
		{name: "no_tab_means_comma", content: "A,B\r\n1,2\r\n", expected: ','},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.csv")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			table, err := tabular.ReadFile(path)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, table.Delimiter())
			assert.Equal(t, []string{"A", "B"}, table.Columns)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, tabular.Row{"A": "1", "B": "2"}, table.Rows[0])
		})
	}
}

func Test_ReadFile_StripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffPatronID\tBarcode\r\n1\t2\r\n"), 0o644))

	table, err := tabular.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"PatronID", "Barcode"}, table.Columns)
}

func Test_ReadFile_EmptyFileHasNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := tabular.ReadFile(path)

	assert.ErrorIs(t, err, tabular.ErrNoHeader)
}

func Test_ReadFile_ShortRowsLeaveColumnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("A\tB\tC\r\n1\t2\r\n"), 0o644))

	table, err := tabular.ReadFile(path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, tabular.Row{"A": "1", "B": "2"}, table.Rows[0])
	assert.Empty(t, table.Rows[0]["C"])
}

func Test_Records_RendersColumnsInOrder(t *testing.T) {
	table := tabular.NewTable("out.csv", "C", "A", "B")
	table.Append(tabular.Row{"A": "a", "B": "b", "C": "c", "Ignored": "x"})

	records := table.Records()

	require.Len(t, records, 2)
	assert.Equal(t, []string{"C", "A", "B"}, records[0])
	assert.Equal(t, []string{"c", "a", "b"}, records[1])
}

func Test_WriteFile_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	table := tabular.NewTable("out.csv", "A")
	table.Append(tabular.Row{"A": "1"})

	require.NoError(t, tabular.WriteFile(dir, table))

	raw, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "A\r\n"))
}
