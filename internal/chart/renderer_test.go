package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fxcharter/internal/model"
)

func sampleSeries(count int) model.Series {
	start := time.Date(2025, 8, 18, 7, 0, 0, 0, time.UTC)
	s := make(model.Series, count)
	for i := range s {
		p := 1.16 + float64(i%20)*0.0002
		s[i] = model.Candle{
			Time:  start.Add(time.Duration(i) * 15 * time.Minute),
			Open:  p,
			High:  p + 0.0009,
			Low:   p - 0.0006,
			Close: p + 0.0003,
		}
	}
	return s
}

func TestRenderHTML(t *testing.T) {
	r := NewRenderer("EUR/USD", "15m", 800, 1200)
	path := filepath.Join(t.TempDir(), "chart.html")

	if err := r.RenderHTML(sampleSeries(64), path); err != nil {
		t.Fatalf("render html: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "EUR/USD") {
		t.Error("symbol missing from chart output")
	}
	if !strings.Contains(html, "echarts") {
		t.Error("expected an echarts document")
	}
	// Candlestick panel and the volume/range sub-panel.
	if !strings.Contains(html, "candlestick") {
		t.Error("expected a candlestick series")
	}
	if !strings.Contains(html, "Range") {
		t.Error("expected a range sub-panel for volume-less FX data")
	}
}

func TestRenderHTML_VolumePanel(t *testing.T) {
	s := sampleSeries(8)
	for i := range s {
		s[i].Volume = 1000 + float64(i)
	}

	r := NewRenderer("EUR/USD", "15m", 800, 1200)
	path := filepath.Join(t.TempDir(), "chart.html")
	if err := r.RenderHTML(s, path); err != nil {
		t.Fatalf("render html: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Volume") {
		t.Error("expected a volume sub-panel when volume is present")
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	r := NewRenderer("EUR/USD", "15m", 800, 1200)
	path := filepath.Join(t.TempDir(), "chart.html")

	err := r.RenderHTML(nil, path)
	if !errors.Is(err, ErrNoCandles) {
		t.Fatalf("expected ErrNoCandles, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an empty series")
	}
}

func TestRenderHTML_CreatesChartDir(t *testing.T) {
	r := NewRenderer("EUR/USD", "15m", 800, 1200)
	path := filepath.Join(t.TempDir(), "charts", "chart.html")

	if err := r.RenderHTML(sampleSeries(8), path); err != nil {
		t.Fatalf("render html: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected chart at %s: %v", path, err)
	}
}

func TestRenderPNG(t *testing.T) {
	r := NewRenderer("EUR/USD", "15m", 400, 600)
	path := filepath.Join(t.TempDir(), "chart.png")

	if err := r.RenderPNG(sampleSeries(64), path); err != nil {
		t.Fatalf("render png: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func TestRenderPNG_Empty(t *testing.T) {
	r := NewRenderer("EUR/USD", "15m", 400, 600)
	err := r.RenderPNG(nil, filepath.Join(t.TempDir(), "chart.png"))
	if !errors.Is(err, ErrNoCandles) {
		t.Fatalf("expected ErrNoCandles, got %v", err)
	}
}
