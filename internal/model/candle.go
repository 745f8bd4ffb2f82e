package model

import "time"

// Candle represents a single OHLCV bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered sequence of candles, ascending by time.
type Series []Candle

// HasVolume reports whether any candle in the series carries volume.
// FX pairs typically report zero volume for every bar.
func (s Series) HasVolume() bool {
	for _, c := range s {
		if c.Volume > 0 {
			return true
		}
	}
	return false
}

// LatestClose returns the close of the most recent candle, or 0 if empty.
func (s Series) LatestClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}

// TimeRange returns the first and last candle timestamps.
func (s Series) TimeRange() (first, last time.Time) {
	if len(s) == 0 {
		return
	}
	return s[0].Time, s[len(s)-1].Time
}

// Snapshot holds the result of one collection run.
type Snapshot struct {
	Symbol    string
	Interval  string
	Period    string
	Candles   Series
	RawCount  int // rows returned by the provider, before weekend filtering
	FetchedAt time.Time
}
