package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fxcharter/internal/collector"
	"fxcharter/internal/config"
	"fxcharter/internal/pipeline"
	"fxcharter/internal/recorder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	fmt.Println("🔥 fxfetch - currency data download")

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

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	col := collector.NewCollector(fetcher, cfg.Data.Symbol, cfg.Data.Interval, cfg.Data.Period)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	p := pipeline.New(cfg, col, rec)
	if _, err := p.FetchAndExport(); err != nil {
		fmt.Printf("❌ Data download failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🎯 fxfetch finished")
}
