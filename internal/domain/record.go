package domain

// HistoricalRecord is one OHLCV row as it appears in the source CSV.
// The timestamp stays raw text until a candlestick is requested.
type HistoricalRecord struct {
	Timestamp string  `csv:"Timestamp"`
	Open      float64 `csv:"Open"`
	High      float64 `csv:"High"`
	Low       float64 `csv:"Low"`
	Close     float64 `csv:"Close"`
	Volume    float64 `csv:"Volume"`
}

func (r HistoricalRecord) ToCandlestick() (Candlestick, error) {
	timestamp, err := ParseTimestamp(r.Timestamp)
	if err != nil {
		return Candlestick{}, err
	}
	return Candlestick{
		Timestamp: timestamp,
		Open:      r.Open,
		High:      r.High,
		Low:       r.Low,
		Close:     r.Close,
		Volume:    r.Volume,
	}, nil
}

func ToCandlesticks(records []HistoricalRecord) ([]Candlestick, error) {
	if records == nil {
		return nil, nil
	}
	candlesticks := make([]Candlestick, 0, len(records))
	for _, record := range records {
		candlestick, err := record.ToCandlestick()
		if err != nil {
			return nil, err
		}
		candlesticks = append(candlesticks, candlestick)
	}
	return candlesticks, nil
}
