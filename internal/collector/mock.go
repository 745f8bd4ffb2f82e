package collector

import (
	"time"

	"fxcharter/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// It records the parameters of the last FetchCandles call.
type MockFetcher struct {
	Price float64
	Data  model.Series
	Err   error

	LastSymbol   string
	LastInterval string
	LastPeriod   string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(symbol, interval, period string) (model.Series, error) {
	m.LastSymbol = symbol
	m.LastInterval = interval
	m.LastPeriod = period
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data, nil
	}
	return GenerateMockCandles(m.Price, 96), nil
}

// GenerateMockCandles produces count deterministic 15-minute candles ending at
// a fixed reference time, drifting gently around basePrice.
func GenerateMockCandles(basePrice float64, count int) model.Series {
	ref := time.Date(2025, 8, 20, 21, 45, 0, 0, time.UTC)
	candles := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0001)
		candles[i] = model.Candle{
			Time:  ref.Add(-time.Duration(count-1-i) * 15 * time.Minute),
			Open:  p * 0.9995,
			High:  p * 1.0008,
			Low:   p * 0.9992,
			Close: p,
		}
	}
	return candles
}
