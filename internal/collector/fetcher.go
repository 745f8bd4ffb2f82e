package collector

import "fxcharter/internal/model"

// Fetcher defines the interface for fetching candle data.
type Fetcher interface {
	// FetchCandles returns candles for symbol at the given interval token
	// covering the given lookback period token, ordered ascending by time.
	FetchCandles(symbol, interval, period string) (model.Series, error)
	Name() string
}
