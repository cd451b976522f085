package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
)

var ErrNoDataset = errors.New("no dataset loaded")

// Interface requirements for the record source
type recordSource interface {
	LoadRecords(ctx context.Context, path string) ([]domain.HistoricalRecord, error)
}

// Processor holds at most one loaded dataset. Loading replaces the held
// dataset wholesale; datasets are never merged.
type Processor struct {
	source  recordSource
	records []domain.HistoricalRecord
	loaded  bool
}

func NewProcessor(source recordSource) *Processor {
	return &Processor{source: source}
}

// Load reads records from path through the record source, replaces the held
// dataset with the result and returns it.
func (p *Processor) Load(ctx context.Context, path string) ([]domain.HistoricalRecord, error) {
	records, err := p.source.LoadRecords(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	p.records = records
	p.loaded = true
	return records, nil
}

// Candlesticks converts the held dataset. The held records are not mutated.
func (p *Processor) Candlesticks() ([]domain.Candlestick, error) {
	if !p.loaded {
		return nil, ErrNoDataset
	}

	candlesticks, err := domain.ToCandlesticks(p.records)
	if err != nil {
		return nil, fmt.Errorf("failed to convert records to candlesticks: %w", err)
	}

	return candlesticks, nil
}

// Current returns the held dataset, or nil if nothing has been loaded.
func (p *Processor) Current() []domain.HistoricalRecord {
	return p.records
}
