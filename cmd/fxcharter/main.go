package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fxcharter/internal/collector"
	"fxcharter/internal/config"
	"fxcharter/internal/pipeline"
	"fxcharter/internal/recorder"
	"fxcharter/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	fmt.Println("🔥 fxcharter - currency analysis")
	fmt.Println("==================================================")

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
	log.Printf("[INFO] data source: %s", fetcher.Name())

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

	// One-shot unless a refresh schedule is configured.
	if cfg.Schedule.RefreshCron == "" {
		if err := p.Run(); err != nil {
			fmt.Printf("❌ Run failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n✅ Analysis finished")
		fmt.Println("🎯 fxcharter finished")
		return
	}

	sched := scheduler.NewScheduler(p)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	sched.RunNow()

	log.Println("[INFO] fxcharter is watching. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
