package plot

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xc0d3d00d/candleplot/internal/domain"
)

func TestTableRender(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one artifact with a row per record", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		datasets := map[string][]domain.HistoricalRecord{DefaultDataset: sampleRecords()}

		require.NoError(t, NewTable(fs).Render(ctx, datasets, "output"))

		content, err := afero.ReadFile(fs, "output/historical_data.txt")
		require.NoError(t, err)
		assert.Contains(t, string(content), "2023-01-01 00:00:00")
		assert.Contains(t, string(content), "2023-01-02 00:00:00")
		assert.Contains(t, string(content), "100.00")
		assert.Contains(t, string(content), "1,200")
	})

	t.Run("absent dataset warns and writes nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		require.NoError(t, NewTable(fs).Render(ctx, map[string][]domain.HistoricalRecord{}, "output"))

		exists, err := afero.Exists(fs, "output/historical_data.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty dataset warns and writes nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		datasets := map[string][]domain.HistoricalRecord{DefaultDataset: {}}

		require.NoError(t, NewTable(fs).Render(ctx, datasets, "output"))

		exists, err := afero.Exists(fs, "output/historical_data.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("malformed timestamp aborts the render", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		datasets := map[string][]domain.HistoricalRecord{DefaultDataset: {
			{Timestamp: "2023-01-01", Open: 100, High: 105, Low: 95, Close: 102, Volume: 1000},
		}}

		err := NewTable(fs).Render(ctx, datasets, "output")
		assert.ErrorIs(t, err, domain.ErrTimestampFormat)
	})

	t.Run("write failure is surfaced with the artifact path", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		datasets := map[string][]domain.HistoricalRecord{DefaultDataset: sampleRecords()}

		err := NewTable(fs).Render(ctx, datasets, "output")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write plot artifact")
		assert.Contains(t, err.Error(), "output/historical_data.txt")
	})
}
