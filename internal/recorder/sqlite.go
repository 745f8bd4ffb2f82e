package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"fxcharter/internal/model"
)

// SQLiteRecorder persists fetch history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can inspect history while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS fetch_runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			interval   TEXT NOT NULL,
			period     TEXT NOT NULL,
			raw_rows   INTEGER,
			kept_rows  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON fetch_runs(fetched_at)`,

		`CREATE TABLE IF NOT EXISTS candles (
			symbol    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			open      REAL,
			high      REAL,
			low       REAL,
			close     REAL,
			volume    REAL,
			PRIMARY KEY (symbol, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_ts ON candles(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_runs
		(fetched_at, symbol, interval, period, raw_rows, kept_rows)
		VALUES (?,?,?,?,?,?)`,
		snap.FetchedAt.Unix(), snap.Symbol, snap.Interval, snap.Period,
		snap.RawCount, len(snap.Candles),
	)
	return err
}

func (r *SQLiteRecorder) RecordCandles(symbol string, candles model.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO candles
		(symbol, timestamp, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(symbol, timestamp) DO UPDATE SET
			open=excluded.open, high=excluded.high, low=excluded.low,
			close=excluded.close, volume=excluded.volume`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range candles {
		if _, err := stmt.Exec(symbol, c.Time.Unix(), c.Open, c.High, c.Low, c.Close, c.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert candle at %s: %w", c.Time.Format(time.RFC3339), err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
