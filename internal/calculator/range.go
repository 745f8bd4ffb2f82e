package calculator

import "fxcharter/internal/model"

// RangeSeries returns the per-candle high minus low. Used for the lower chart
// panel when the series carries no volume (the usual case for FX pairs).
func RangeSeries(candles model.Series) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High - c.Low
	}
	return out
}

// DayBoundaries returns the index of the first candle of each distinct UTC
// calendar day except the first one. These are the positions of the vertical
// day-separator lines on the chart.
func DayBoundaries(candles model.Series) []int {
	var boundaries []int
	var current string
	for i, c := range candles {
		day := c.Time.UTC().Format("2006-01-02")
		if i == 0 {
			current = day
			continue
		}
		if day != current {
			boundaries = append(boundaries, i)
			current = day
		}
	}
	return boundaries
}
