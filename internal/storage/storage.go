package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
)

func init() {
	// A header missing any of the six record columns is a parse failure.
	gocsv.FailIfUnmatchedStructTags = true
}

type store struct {
	fs afero.Fs
}

func NewStore(fs afero.Fs) *store {
	return &store{fs: fs}
}

// LoadRecords reads OHLCV records from the CSV file at path, preserving file
// order. A missing file is not an error: the built-in sample records are
// returned instead.
func (s *store) LoadRecords(ctx context.Context, path string) ([]domain.HistoricalRecord, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check if csv file exists: %w", err)
	}
	if !exists {
		slog.InfoContext(ctx, "csv file not found, using sample records", "path", path)
		return SampleRecords(), nil
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file `%s`: %w", path, err)
	}
	defer file.Close()

	records := []domain.HistoricalRecord{}
	if err := gocsv.Unmarshal(file, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			slog.DebugContext(ctx, "csv file is empty", "path", path)
			return records, nil
		}
		return nil, fmt.Errorf("failed to parse csv file `%s`: %w", path, err)
	}

	slog.DebugContext(ctx, "loaded records", "path", path, "count", len(records))
	return records, nil
}

// EnsureDir creates dir if it does not exist yet. Calling it again for the
// same directory is a no-op.
func (s *store) EnsureDir(ctx context.Context, dir string) error {
	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to check if directory exists: %w", err)
	}
	if exists {
		slog.InfoContext(ctx, "directory already exists", "path", dir)
		return nil
	}

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory `%s`: %w", dir, err)
	}

	slog.InfoContext(ctx, "created directory", "path", dir)
	return nil
}
