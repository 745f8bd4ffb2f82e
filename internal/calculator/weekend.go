package calculator

import (
	"time"

	"fxcharter/internal/model"
)

// FilterWeekends returns a new series excluding candles whose day-of-week is
// Saturday or Sunday. The weekday test runs in UTC: provider timestamps are
// Unix epoch, so UTC is the unambiguous reading and avoids off-by-one-day
// misclassification near midnight in other zones. Order-preserving and
// idempotent.
func FilterWeekends(candles model.Series) model.Series {
	out := make(model.Series, 0, len(candles))
	for _, c := range candles {
		switch c.Time.UTC().Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		out = append(out, c)
	}
	return out
}
