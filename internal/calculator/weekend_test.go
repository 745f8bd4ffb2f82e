package calculator

import (
	"testing"
	"time"

	"fxcharter/internal/model"
)

// seriesFrom builds count candles at 15-minute steps starting at start.
func seriesFrom(start time.Time, count int) model.Series {
	s := make(model.Series, count)
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i) * 15 * time.Minute)
		s[i] = model.Candle{
			Time:  ts,
			Open:  1.16,
			High:  1.17,
			Low:   1.15,
			Close: 1.165,
		}
	}
	return s
}

func TestFilterWeekends_DropsSaturdayAndSunday(t *testing.T) {
	// 2025-07-18 is a Friday; one week of 15m candles crosses a full weekend.
	start := time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)
	in := seriesFrom(start, 7*96)

	out := FilterWeekends(in)

	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	for _, c := range out {
		wd := c.Time.UTC().Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("weekend candle survived filter: %s", c.Time)
		}
	}
	// 5 weekdays out of 7.
	if want := 5 * 96; len(out) != want {
		t.Errorf("expected %d candles, got %d", want, len(out))
	}
}

func TestFilterWeekends_PreservesOrder(t *testing.T) {
	start := time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)
	out := FilterWeekends(seriesFrom(start, 7*96))

	for i := 1; i < len(out); i++ {
		if !out[i-1].Time.Before(out[i].Time) {
			t.Fatalf("order not preserved at index %d", i)
		}
	}
}

func TestFilterWeekends_Idempotent(t *testing.T) {
	start := time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)
	once := FilterWeekends(seriesFrom(start, 7*96))
	twice := FilterWeekends(once)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Time.Equal(twice[i].Time) {
			t.Fatalf("row %d differs after second filter", i)
		}
	}
}

func TestFilterWeekends_MonthFixture(t *testing.T) {
	// 1344 15-minute rows starting Monday 2025-07-21: two full weeks.
	start := time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)
	in := seriesFrom(start, 1344)

	want := 0
	for _, c := range in {
		wd := c.Time.UTC().Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			want++
		}
	}

	out := FilterWeekends(in)
	if len(out) != want {
		t.Errorf("expected %d weekday rows, got %d", want, len(out))
	}
	if got := len(in) - len(out); got != 2*2*96 {
		t.Errorf("expected 2 weekends removed (%d rows), got %d", 2*2*96, got)
	}
}

func TestFilterWeekends_Empty(t *testing.T) {
	out := FilterWeekends(nil)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}
