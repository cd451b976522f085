package storage

import "github.com/0xc0d3d00d/candleplot/internal/domain"

// SampleRecords returns the fixed dataset used when no CSV file is present.
func SampleRecords() []domain.HistoricalRecord {
	return []domain.HistoricalRecord{
		{Timestamp: "2023-01-01 00:00:00", Open: 100.0, High: 105.0, Low: 95.0, Close: 102.0, Volume: 1000.0},
		{Timestamp: "2023-01-02 00:00:00", Open: 102.0, High: 108.0, Low: 101.0, Close: 106.0, Volume: 1200.0},
		{Timestamp: "2023-01-03 00:00:00", Open: 106.0, High: 110.0, Low: 104.0, Close: 108.0, Volume: 1500.0},
	}
}
