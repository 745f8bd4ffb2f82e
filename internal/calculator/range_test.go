package calculator

import (
	"math"
	"testing"
	"time"

	"fxcharter/internal/model"
)

func TestRangeSeries(t *testing.T) {
	in := model.Series{
		{High: 1.1712, Low: 1.1698},
		{High: 1.1705, Low: 1.1705},
	}
	out := RangeSeries(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 values, got %d", len(out))
	}
	if math.Abs(out[0]-0.0014) > 1e-9 {
		t.Errorf("expected range 0.0014, got %v", out[0])
	}
	if out[1] != 0 {
		t.Errorf("expected zero range, got %v", out[1])
	}
}

func TestDayBoundaries(t *testing.T) {
	day1 := time.Date(2025, 8, 18, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 8, 20, 0, 15, 0, 0, time.UTC)
	in := model.Series{
		{Time: day1},
		{Time: day1.Add(15 * time.Minute)},
		{Time: day2},
		{Time: day2.Add(15 * time.Minute)},
		{Time: day3},
	}

	got := DayBoundaries(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 boundaries, got %d (%v)", len(got), got)
	}
	if got[0] != 2 || got[1] != 4 {
		t.Errorf("expected boundaries [2 4], got %v", got)
	}
}

func TestDayBoundaries_SingleDay(t *testing.T) {
	start := time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC)
	in := model.Series{
		{Time: start},
		{Time: start.Add(15 * time.Minute)},
	}
	if got := DayBoundaries(in); len(got) != 0 {
		t.Errorf("expected no boundaries within one day, got %v", got)
	}
}

func TestDayBoundaries_Empty(t *testing.T) {
	if got := DayBoundaries(nil); len(got) != 0 {
		t.Errorf("expected no boundaries, got %v", got)
	}
}
