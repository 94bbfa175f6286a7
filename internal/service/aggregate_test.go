package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/pkg/entity"
)

func TestTotalMinutes(t *testing.T) {
	day := service.DayWindowAt(time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC), time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2025, 4, 2, h, m, 0, 0, time.UTC)
	}
	closed := func(start, end time.Time) entity.TimedInterval {
		return entity.TimedInterval{UserID: testUID, Kind: entity.KindFocus, StartAt: start, EndAt: ptr(end)}
	}
	open := func(start time.Time) entity.TimedInterval {
		return entity.TimedInterval{UserID: testUID, Kind: entity.KindManual, StartAt: start}
	}
	testCases := []struct {
		Desc      string
		Intervals []entity.TimedInterval
		Now       time.Time
		Want      int
	}{
		{
			Desc: "no intervals",
			Now:  at(12, 0),
			Want: 0,
		},
		{
			Desc:      "closed interval inside window",
			Intervals: []entity.TimedInterval{closed(at(9, 0), at(9, 50))},
			Now:       at(12, 0),
			Want:      50,
		},
		{
			Desc:      "open interval runs until now",
			Intervals: []entity.TimedInterval{open(at(10, 15))},
			Now:       at(11, 0),
			Want:      45,
		},
		{
			Desc:      "partial minutes are dropped",
			Intervals: []entity.TimedInterval{closed(at(9, 0), at(9, 0).Add(89*time.Second))},
			Now:       at(12, 0),
			Want:      1,
		},
		{
			Desc:      "interval started before window is ignored",
			Intervals: []entity.TimedInterval{closed(at(0, 0).Add(-time.Hour), at(1, 0))},
			Now:       at(12, 0),
			Want:      0,
		},
		{
			Desc:      "interval crossing window end counts fully",
			Intervals: []entity.TimedInterval{closed(at(23, 30), at(23, 30).Add(2*time.Hour))},
			Now:       at(23, 59),
			Want:      120,
		},
		{
			Desc:      "interval starting at window end is excluded",
			Intervals: []entity.TimedInterval{closed(day.End, day.End.Add(time.Hour))},
			Now:       day.End.Add(2 * time.Hour),
			Want:      0,
		},
		{
			Desc:      "end before start counts as zero",
			Intervals: []entity.TimedInterval{closed(at(10, 0), at(9, 0))},
			Now:       at(12, 0),
			Want:      0,
		},
		{
			Desc: "mixed",
			Intervals: []entity.TimedInterval{
				closed(at(8, 0), at(8, 30)),
				open(at(11, 0)),
				closed(at(0, 0).Add(-time.Minute), at(0, 30)),
			},
			Now:  at(11, 20),
			Want: 50,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Want, service.TotalMinutes(day, tc.Intervals, tc.Now))
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	iv := entity.TimedInterval{StartAt: start}
	assert.Equal(t, 0, service.ElapsedMinutes(iv, start.Add(-time.Hour)))
	assert.Equal(t, 30, service.ElapsedMinutes(iv, start.Add(30*time.Minute)))
	iv.EndAt = ptr(start.Add(10 * time.Minute))
	assert.Equal(t, 10, service.ElapsedMinutes(iv, start.Add(30*time.Minute)))
}

func TestStartedWithin(t *testing.T) {
	loc := mustZone(t, "Asia/Tokyo")
	w := service.DayWindowAt(time.Date(2025, 4, 2, 3, 0, 0, 0, time.UTC), loc)
	// 23:30 UTC on April 1 is 08:30 on April 2 in Tokyo
	iv := entity.TimedInterval{StartAt: time.Date(2025, 4, 1, 23, 30, 0, 0, time.UTC)}
	assert.True(t, service.StartedWithin(w, iv))
	iv.StartAt = time.Date(2025, 4, 1, 14, 59, 0, 0, time.UTC)
	assert.False(t, service.StartedWithin(w, iv))
}
