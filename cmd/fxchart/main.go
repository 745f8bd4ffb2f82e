package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"fxcharter/internal/calculator"
	"fxcharter/internal/chart"
	"fxcharter/internal/config"
	"fxcharter/internal/exporter"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	fmt.Println("🔥 fxchart - candlestick chart from local data")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	csvPath := filepath.Join(cfg.Output.CSVDir, exporter.CSVName(cfg.Data.Symbol))
	fmt.Printf("📂 Reading candles from %s...\n", csvPath)

	candles, err := exporter.ReadCSVFile(csvPath)
	if err != nil {
		fmt.Printf("❌ Could not read %s: %v\n", csvPath, err)
		fmt.Println("💡 Run fxfetch first to generate the data")
		os.Exit(1)
	}
	// The CSV may predate the weekend filter; filtering again is a no-op
	// on already-filtered data.
	candles = calculator.FilterWeekends(candles)
	fmt.Printf("✅ Data loaded: %d candles\n", len(candles))

	symbol := strings.TrimSuffix(cfg.Data.Symbol, "=X")
	if len(symbol) == 6 {
		symbol = symbol[:3] + "/" + symbol[3:]
	}
	r := chart.NewRenderer(symbol, cfg.Data.Interval, cfg.Chart.Height, cfg.Chart.Width)

	name := strings.ToLower(strings.TrimSuffix(exporter.CSVName(cfg.Data.Symbol), ".csv"))
	base := filepath.Join(cfg.Output.ChartDir,
		fmt.Sprintf("%s_chart_%s", name, time.Now().Format("20060102_150405")))

	if err := r.RenderHTML(candles, base+".html"); err != nil {
		if errors.Is(err, chart.ErrNoCandles) {
			fmt.Println("❌ Nothing to chart: 0 candles")
			return
		}
		fmt.Printf("❌ Chart export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Chart saved: %s.html\n", base)

	if cfg.Chart.PNG {
		if err := r.RenderPNG(candles, base+".png"); err != nil {
			log.Printf("[WARN] png export failed: %v", err)
		} else {
			fmt.Printf("🖼️ PNG saved: %s.png\n", base)
		}
	}

	fmt.Printf("📈 Latest price: %.5f\n", candles.LatestClose())
	fmt.Println("🎯 fxchart finished")
}
