package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/dcplibrary/polaris-sampledata/polaris"
	"github.com/dcplibrary/polaris-sampledata/tabular"
)

// ManifestFilename is written alongside the generated tables.
const ManifestFilename = "manifest.json"

// Manifest summarizes one generation run. It carries only values derived
// from the seed and reference date, never the wall clock, so two runs with
// the same inputs produce byte-identical manifests.
type Manifest struct {
	Seed          int64          `json:"seed"`
	ReferenceDate string         `json:"referenceDate"`
	Entities      EntityCounts   `json:"entities"`
	Tables        []TableSummary `json:"tables"`
}

// EntityCounts records how many of each entity the run produced.
type EntityCounts struct {
	Patrons        int `json:"patrons"`
	Items          int `json:"items"`
	Holds          int `json:"holds"`
	Overdues       int `json:"overdues"`
	AlmostOverdues int `json:"almostOverdues"`
}

// TableSummary records one output file and its data row count.
type TableSummary struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}

func buildManifest(seed int64, referenceDate time.Time, dataset *polaris.Dataset, tables []*tabular.Table) *Manifest {
	summaries := make([]TableSummary, 0, len(tables))
	for _, table := range tables {
		summaries = append(summaries, TableSummary{
			Filename: table.Filename,
			Rows:     len(table.Rows),
		})
	}

	return &Manifest{
		Seed:          seed,
		ReferenceDate: referenceDate.Format("2006-01-02"),
		Entities: EntityCounts{
			Patrons:        len(dataset.Patrons),
			Items:          len(dataset.Items),
			Holds:          len(dataset.Holds),
			Overdues:       len(dataset.Overdues),
			AlmostOverdues: len(dataset.AlmostOverdues),
		},
		Tables: summaries,
	}
}

// WriteManifest serializes the manifest to dir/manifest.json.
func WriteManifest(dir string, m *Manifest) error {
	data, err := jsoniter.ConfigFastest.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
