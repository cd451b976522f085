package plot

import (
	"context"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
)

// DefaultDataset is the name the CLI gives the dataset it loads and the name
// the bundled renderers look up.
const DefaultDataset = "historical_data"

// Renderer draws a named collection of record sets into outputDir. An
// implementation may persist a chart artifact there but is not required to.
type Renderer interface {
	Render(ctx context.Context, datasets map[string][]domain.HistoricalRecord, outputDir string) error
}
