package pipeline

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fxcharter/internal/chart"
	"fxcharter/internal/collector"
	"fxcharter/internal/config"
	"fxcharter/internal/exporter"
	"fxcharter/internal/model"
	"fxcharter/internal/recorder"
)

// Pipeline wires one full run: fetch, filter, export CSV, render charts.
type Pipeline struct {
	Config    *config.Config
	Collector *collector.Collector
	Recorder  recorder.Recorder
}

// New creates a Pipeline.
func New(cfg *config.Config, col *collector.Collector, rec recorder.Recorder) *Pipeline {
	return &Pipeline{Config: cfg, Collector: col, Recorder: rec}
}

// CSVPath returns the CSV output path for the configured symbol.
func (p *Pipeline) CSVPath() string {
	return filepath.Join(p.Config.Output.CSVDir, exporter.CSVName(p.Config.Data.Symbol))
}

// FetchAndExport runs the data half of the pipeline: fetch, weekend-filter,
// write CSV, record history. A fetch or CSV-write failure is terminal.
func (p *Pipeline) FetchAndExport() (*model.Snapshot, error) {
	cfg := p.Config
	fmt.Printf("📡 Fetching %s candles (%s, %s) from %s...\n",
		cfg.Data.Symbol, cfg.Data.Interval, cfg.Data.Period, p.Collector.Fetcher.Name())

	snap, err := p.Collector.Collect()
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ %d rows fetched, %d after weekend filter\n", snap.RawCount, len(snap.Candles))

	csvPath := p.CSVPath()
	if err := exporter.WriteCSVFile(csvPath, snap.Candles); err != nil {
		return nil, err
	}
	fmt.Printf("💾 CSV saved: %s\n", csvPath)

	if err := p.Recorder.RecordRun(snap); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := p.Recorder.RecordCandles(snap.Symbol, snap.Candles); err != nil {
		log.Printf("[ERROR] record candles: %v", err)
	}

	printSummary(snap.Candles)
	return snap, nil
}

// RenderCharts renders the HTML chart and, when enabled, the PNG snapshot.
// Export failures are reported but never fatal: the data already stands.
func (p *Pipeline) RenderCharts(candles model.Series) {
	cfg := p.Config
	r := chart.NewRenderer(displaySymbol(cfg.Data.Symbol), cfg.Data.Interval,
		cfg.Chart.Height, cfg.Chart.Width)

	base := p.chartBase()
	htmlPath := base + ".html"
	if err := r.RenderHTML(candles, htmlPath); err != nil {
		if errors.Is(err, chart.ErrNoCandles) {
			fmt.Println("❌ Nothing to chart: 0 candles")
		} else {
			fmt.Printf("❌ Chart export failed: %v\n", err)
		}
		return
	}
	fmt.Printf("✅ Chart saved: %s\n", htmlPath)

	if cfg.Chart.PNG {
		pngPath := base + ".png"
		if err := r.RenderPNG(candles, pngPath); err != nil {
			log.Printf("[WARN] png export failed: %v", err)
		} else {
			fmt.Printf("🖼️ PNG saved: %s\n", pngPath)
		}
	}
}

// Run executes the full fetch → filter → CSV → chart pipeline.
func (p *Pipeline) Run() error {
	snap, err := p.FetchAndExport()
	if err != nil {
		return err
	}
	p.RenderCharts(snap.Candles)
	return nil
}

func (p *Pipeline) chartBase() string {
	name := strings.ToLower(strings.TrimSuffix(exporter.CSVName(p.Config.Data.Symbol), ".csv"))
	stamp := time.Now().Format("20060102_150405")
	return filepath.Join(p.Config.Output.ChartDir, fmt.Sprintf("%s_chart_%s", name, stamp))
}

func printSummary(candles model.Series) {
	fmt.Printf("📊 Data: %d candles\n", len(candles))
	if len(candles) == 0 {
		return
	}
	first, last := candles.TimeRange()
	fmt.Printf("📈 Latest price: %.5f\n", candles.LatestClose())
	fmt.Printf("📅 Range: %s - %s\n",
		first.UTC().Format("02/01 15:04"), last.UTC().Format("02/01 15:04"))
}

// displaySymbol strips the provider suffix for chart titles: "EURUSD=X" -> "EUR/USD".
func displaySymbol(symbol string) string {
	s := strings.TrimSuffix(symbol, "=X")
	if len(s) == 6 {
		return s[:3] + "/" + s[3:]
	}
	return s
}
