package service

import (
	"time"

	"github.com/limbo/dayflow/pkg/entity"
)

// StartedWithin decides whether an interval is counted for a window.
// Intervals count by their start only and are never cut at the window end,
// so a session begun at 23:30 adds its whole length to that day.
func StartedWithin(w DayWindow, iv entity.Interval) bool {
	return w.Contains(iv.Start())
}

// ElapsedMinutes is the whole number of minutes an interval has lasted.
// Running intervals are measured up to now.
func ElapsedMinutes(iv entity.Interval, now time.Time) int {
	end, closed := iv.End()
	if !closed {
		end = now
	}
	elapsed := end.Sub(iv.Start())
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}

// TotalMinutes sums ElapsedMinutes over the intervals StartedWithin w.
func TotalMinutes[T entity.Interval](w DayWindow, intervals []T, now time.Time) int {
	total := 0
	for _, iv := range intervals {
		if !StartedWithin(w, iv) {
			continue
		}
		total += ElapsedMinutes(iv, now)
	}
	return total
}
