package generate

import (
	"time"

	"go.uber.org/zap"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
	"github.com/dcplibrary/polaris-sampledata/tabular"
)

// ItemPoolSize is the number of items generated up front. Holds and
// checkouts consume from this pool in allocation order; if it runs dry the
// remaining scenario allocations are silently skipped.
const ItemPoolSize = 100

// Generator runs one sample-data generation pass. All randomness comes
// from the embedded seeded source, consumed in a fixed order.
type Generator struct {
	seed      int64
	src       *fakedata.Source
	now       time.Time
	scenarios []Scenario
	log       *zap.Logger
}

// Output is everything one generation run produces.
type Output struct {
	Dataset  *polaris.Dataset
	Tables   []*tabular.Table
	Manifest *Manifest
}

// NewGenerator creates a Generator for the given seed and reference date.
// The reference date stands in for "today" in all date arithmetic; pinning
// it makes runs reproducible end to end. A nil logger is replaced with a
// no-op logger.
func NewGenerator(seed int64, referenceDate time.Time, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		seed:      seed,
		src:       fakedata.NewSource(seed),
		now:       referenceDate,
		scenarios: DefaultScenarios(),
		log:       logger,
	}
}

// Run builds the dataset, assembles the derived tables and renders the
// flat-file output. It does not touch the filesystem; pair it with
// tabular.WriteAll and WriteManifest.
func (g *Generator) Run() (*Output, error) {
	dataset := polaris.NewDataset()

	g.buildPatrons(dataset)
	g.buildItems(dataset)
	g.buildCirculation(dataset)

	g.log.Info("entities built",
		zap.Int("patrons", len(dataset.Patrons)),
		zap.Int("items", len(dataset.Items)),
		zap.Int("holds", len(dataset.Holds)),
		zap.Int("overdues", len(dataset.Overdues)),
		zap.Int("almost_overdues", len(dataset.AlmostOverdues)),
	)

	assembly, err := g.assembleNotices(dataset)
	if err != nil {
		return nil, err
	}

	g.log.Info("notices assembled",
		zap.Int("history_rows", len(assembly.History)),
		zap.Int("log_rows", len(assembly.Logs)),
	)

	tables, err := g.renderTables(dataset, assembly)
	if err != nil {
		return nil, err
	}

	return &Output{
		Dataset:  dataset,
		Tables:   tables,
		Manifest: buildManifest(g.seed, g.now, dataset, tables),
	}, nil
}
