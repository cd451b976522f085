package plot

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
)

// Simulated is the default renderer. It only reports what it would have
// drawn and never writes to the output directory.
type Simulated struct {
	dataset string
}

func NewSimulated() *Simulated {
	return &Simulated{dataset: DefaultDataset}
}

func (r *Simulated) Render(ctx context.Context, datasets map[string][]domain.HistoricalRecord, outputDir string) error {
	requestID := uuid.New()

	records := datasets[r.dataset]
	if len(records) == 0 {
		slog.WarnContext(ctx, "no records to plot", "dataset", r.dataset, "request_id", requestID)
		return nil
	}

	slog.InfoContext(ctx, "creating candlestick plot", "dataset", r.dataset, "records", len(records), "output_dir", outputDir, "request_id", requestID)
	slog.DebugContext(ctx, "simulated plot creation finished", "dataset", r.dataset, "request_id", requestID)
	return nil
}
