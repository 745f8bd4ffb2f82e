package collector

import (
	"fmt"
	"time"

	"fxcharter/internal/calculator"
	"fxcharter/internal/model"
)

// Collector orchestrates one data collection run: fetch, then weekend filter.
type Collector struct {
	Fetcher  Fetcher
	Symbol   string
	Interval string
	Period   string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, interval, period string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Interval: interval, Period: period}
}

// Collect fetches candles and drops weekend rows.
func (c *Collector) Collect() (*model.Snapshot, error) {
	raw, err := c.Fetcher.FetchCandles(c.Symbol, c.Interval, c.Period)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}

	filtered := calculator.FilterWeekends(raw)

	return &model.Snapshot{
		Symbol:    c.Symbol,
		Interval:  c.Interval,
		Period:    c.Period,
		Candles:   filtered,
		RawCount:  len(raw),
		FetchedAt: time.Now().UTC(),
	}, nil
}
