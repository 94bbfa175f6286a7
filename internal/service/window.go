package service

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
)

const dayLabelLayout = "Mon 01/02"

// DayWindow is the absolute [Start, End) interval of one local calendar day.
// Start and End are in UTC. Date is the local calendar date at UTC midnight.
type DayWindow struct {
	Start time.Time
	End   time.Time
	Date  time.Time
	Label string
}

func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// LoadZone resolves an IANA zone name. An empty or unknown name is a
// configuration error; callers fall back to their default zone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", errorvalues.ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q", errorvalues.ErrUnknownTimezone, name)
	}
	return loc, nil
}

// DayWindowAt returns the window of the local date containing now in loc.
func DayWindowAt(now time.Time, loc *time.Location) DayWindow {
	y, m, d := now.In(loc).Date()
	return dayWindowOf(y, m, d, loc)
}

// WeekWindows returns days consecutive day windows ending with the local
// date of now, oldest first.
func WeekWindows(now time.Time, loc *time.Location, days int) []DayWindow {
	if days <= 0 {
		return nil
	}
	y, m, d := now.In(loc).Date()
	windows := make([]DayWindow, 0, days)
	for i := days - 1; i >= 0; i-- {
		windows = append(windows, dayWindowOf(y, m, d-i, loc))
	}
	return windows
}

// CalendarDay is the local date of now in loc, expressed as UTC midnight.
func CalendarDay(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayWindowOf(y int, m time.Month, d int, loc *time.Location) DayWindow {
	// normalizes overflowing days such as March 0
	y, m, d = time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Date()
	start := localMidnight(y, m, d, loc)
	ny, nm, nd := time.Date(y, m, d+1, 12, 0, 0, 0, time.UTC).Date()
	end := localMidnight(ny, nm, nd, loc)
	return DayWindow{
		Start: start.UTC(),
		End:   end.UTC(),
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Label: start.Format(dayLabelLayout),
	}
}

// localMidnight returns the first instant of the local date y-m-d in loc.
func localMidnight(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if ty, tm, td := t.Date(); ty != y || tm != m || td != d {
		// Midnight is skipped by a DST jump and got normalized into the
		// previous day. The date then begins where that zone period ends.
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end.In(loc)
		}
	}
	return t
}
