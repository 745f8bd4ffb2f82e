package chart

import (
	"fmt"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"

	"fxcharter/internal/model"
)

// RenderPNG writes a static snapshot of the series (close-price line) to path.
// Best-effort companion to the interactive HTML export.
func (r *Renderer) RenderPNG(candles model.Series, path string) error {
	if len(candles) == 0 {
		return ErrNoCandles
	}

	times := make([]float64, len(candles))
	closes := make([]float64, len(candles))
	for i, c := range candles {
		// Sequential x keeps weekend gaps out, matching the category axis
		// of the HTML chart.
		times[i] = float64(i)
		closes[i] = c.Close
	}

	graph := gochart.Chart{
		Title:  r.title(),
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				i := int(f)
				if i < 0 || i >= len(candles) {
					return ""
				}
				return candles[i].Time.UTC().Format("02/01 15:04")
			},
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.5f", f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Close",
				XValues: times,
				YValues: closes,
			},
		},
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(gochart.PNG, f); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
