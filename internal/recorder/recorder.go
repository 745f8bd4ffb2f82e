package recorder

import "fxcharter/internal/model"

// Recorder persists fetch history for later inspection.
type Recorder interface {
	// RecordRun stores one collection run's metadata.
	RecordRun(snap *model.Snapshot) error
	// RecordCandles upserts the run's candles, keyed by symbol and timestamp.
	RecordCandles(symbol string, candles model.Series) error
	Close() error
}
