package plot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
)

// Table renders candlesticks as a plain-text table written to
// <outputDir>/<dataset>.txt.
type Table struct {
	fs      afero.Fs
	dataset string
}

func NewTable(fs afero.Fs) *Table {
	return &Table{fs: fs, dataset: DefaultDataset}
}

func (r *Table) Render(ctx context.Context, datasets map[string][]domain.HistoricalRecord, outputDir string) error {
	requestID := uuid.New()

	records := datasets[r.dataset]
	if len(records) == 0 {
		slog.WarnContext(ctx, "no records to plot", "dataset", r.dataset, "request_id", requestID)
		return nil
	}

	candlesticks, err := domain.ToCandlesticks(records)
	if err != nil {
		return fmt.Errorf("failed to convert records to candlesticks: %w", err)
	}

	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Timestamp", "Open", "High", "Low", "Close", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, candlestick := range candlesticks {
		table.Append([]string{
			candlestick.Timestamp.Format(domain.TimestampLayout),
			fmt.Sprintf("%.2f", candlestick.Open),
			fmt.Sprintf("%.2f", candlestick.High),
			fmt.Sprintf("%.2f", candlestick.Low),
			fmt.Sprintf("%.2f", candlestick.Close),
			p.Sprintf("%.0f", candlestick.Volume),
		})
	}
	table.Render()

	path := filepath.Join(outputDir, r.dataset+".txt")
	if err := afero.WriteFile(r.fs, path, []byte(display.String()), 0644); err != nil {
		return fmt.Errorf("failed to write plot artifact `%s`: %w", path, err)
	}

	slog.InfoContext(ctx, "wrote candlestick plot", "dataset", r.dataset, "records", len(records), "path", path, "request_id", requestID)
	return nil
}
