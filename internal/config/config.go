package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		Symbol   string `yaml:"symbol"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"data"`
	Chart struct {
		Height int  `yaml:"height"`
		Width  int  `yaml:"width"`
		PNG    bool `yaml:"png"`
	} `yaml:"chart"`
	Output struct {
		CSVDir   string `yaml:"csv_dir"`
		ChartDir string `yaml:"chart_dir"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Periods lists the lookback tokens the provider accepts.
var Periods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

// Intervals lists the candle-granularity tokens the provider accepts.
var Intervals = map[string]bool{
	"1m": true, "2m": true, "5m": true, "15m": true, "30m": true,
	"60m": true, "90m": true, "1h": true, "1d": true, "5d": true,
	"1wk": true, "1mo": true, "3mo": true,
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CURRENCY_PAIR"); v != "" {
		cfg.Data.Symbol = v
	}
	if v := os.Getenv("DATA_PERIOD"); v != "" {
		cfg.Data.Period = v
	}
	if v := os.Getenv("DATA_INTERVAL"); v != "" {
		cfg.Data.Interval = v
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		var h int
		if _, err := fmt.Sscanf(v, "%d", &h); err == nil {
			cfg.Chart.Height = h
		}
	}
	if v := os.Getenv("CHART_WIDTH"); v != "" {
		var w int
		if _, err := fmt.Sscanf(v, "%d", &w); err == nil {
			cfg.Chart.Width = w
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "EURUSD=X"
	}
	if cfg.Data.Period == "" {
		cfg.Data.Period = "1mo"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "15m"
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 800
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 1200
	}
	if cfg.Output.CSVDir == "" {
		cfg.Output.CSVDir = "outputs"
	}
	if cfg.Output.ChartDir == "" {
		cfg.Output.ChartDir = "charts"
	}

	return cfg, nil
}

// Validate checks that all configured values are usable. It runs before any
// network call, so a bad token never costs a fetch.
func (c *Config) Validate() error {
	if !Periods[c.Data.Period] {
		return fmt.Errorf("data.period: unknown token %q", c.Data.Period)
	}
	if !Intervals[c.Data.Interval] {
		return fmt.Errorf("data.interval: unknown token %q", c.Data.Interval)
	}
	if c.Chart.Height <= 0 {
		return fmt.Errorf("chart.height must be positive, got %d", c.Chart.Height)
	}
	if c.Chart.Width <= 0 {
		return fmt.Errorf("chart.width must be positive, got %d", c.Chart.Width)
	}
	return nil
}
