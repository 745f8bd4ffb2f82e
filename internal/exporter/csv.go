package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fxcharter/internal/model"
)

// timeLayout is the timestamp format used in CSV files. Timestamps are UTC.
const timeLayout = "2006-01-02 15:04:05"

var header = []string{"timestamp", "open", "high", "low", "close", "volume"}

// WriteCSV writes candles to any io.Writer as CSV with a header row.
// Floats are written at full precision so re-reading reproduces the values
// exactly and output is byte-identical across runs for the same series.
func WriteCSV(w io.Writer, candles model.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range candles {
		record := []string{
			c.Time.UTC().Format(timeLayout),
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
			strconv.FormatFloat(c.Volume, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes candles to a CSV file at the given path, creating the
// parent directory if needed and overwriting any existing file.
func WriteCSVFile(path string, candles model.Series) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, candles)
}

// ReadCSVFile loads a candle series back from a CSV file written by
// WriteCSVFile. A missing volume column is tolerated.
func ReadCSVFile(path string) (model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty: %s", path)
	}

	candles := make(model.Series, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		if len(rec) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 fields, got %d", i+2, len(rec))
		}
		ts, err := time.ParseInLocation(timeLayout, rec[0], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse timestamp: %w", i+2, err)
		}
		vals := make([]float64, 0, 5)
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: parse float: %w", i+2, j+2, err)
			}
			vals = append(vals, v)
		}
		c := model.Candle{Time: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
		if len(vals) > 4 {
			c.Volume = vals[4]
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// CSVName derives the CSV file name for a symbol: "EURUSD=X" -> "EURUSD.csv".
func CSVName(symbol string) string {
	name := strings.TrimSuffix(symbol, "=X")
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String() + ".csv"
}
