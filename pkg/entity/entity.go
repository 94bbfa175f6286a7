package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          int64     `json:"id"`
	Timezone    string    `json:"tz"`
	MorningHour int       `json:"morning_hour"`
	EveningHour int       `json:"evening_hour"`
	CreatedAt   time.Time `json:"created_at"`
}

type Task struct {
	ID           uuid.UUID  `json:"id"`
	UserID       int64      `json:"uid"`
	Name         string     `json:"name"`
	PlannedStart *time.Time `json:"planned_start,omitempty"`
	PlannedEnd   *time.Time `json:"planned_end,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	Completed    bool       `json:"completed"`
}

type IntervalKind string

const (
	KindFocus  IntervalKind = "focus"
	KindManual IntervalKind = "manual"
)

// Interval is anything with an owner, a start and an optional end.
// A zero end with ok == false means the interval is still running.
type Interval interface {
	Owner() int64
	Start() time.Time
	End() (time.Time, bool)
}

// TimedInterval is either a focus session or a manual track, told apart by Kind.
// WorkMinutes and BreakMinutes are set only for focus sessions, TaskName only for
// manual tracks.
type TimedInterval struct {
	ID           uuid.UUID    `json:"id"`
	UserID       int64        `json:"uid"`
	Kind         IntervalKind `json:"kind"`
	StartAt      time.Time    `json:"start_at"`
	EndAt        *time.Time   `json:"end_at,omitempty"`
	WorkMinutes  int          `json:"work_minutes,omitempty"`
	BreakMinutes int          `json:"break_minutes,omitempty"`
	TaskName     string       `json:"task_name,omitempty"`
}

func (ti TimedInterval) Owner() int64 {
	return ti.UserID
}

func (ti TimedInterval) Start() time.Time {
	return ti.StartAt
}

func (ti TimedInterval) End() (time.Time, bool) {
	if ti.EndAt == nil {
		return time.Time{}, false
	}
	return *ti.EndAt, true
}

func (ti TimedInterval) IsOpen() bool {
	return ti.EndAt == nil
}

type StreakRecord struct {
	UserID  int64     `json:"uid"`
	Day     time.Time `json:"day"`
	MetGoal bool      `json:"met_goal"`
}

type Reflection struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"uid"`
	WentWell      string    `json:"went_well"`
	Improve       string    `json:"improve"`
	FocusTomorrow string    `json:"focus_tomorrow"`
	CreatedAt     time.Time `json:"created_at"`
}

type DaySummary struct {
	Label         string `json:"label"`
	FocusMinutes  int    `json:"focus_min"`
	ManualMinutes int    `json:"manual_min"`
	TasksDone     int    `json:"tasks_done"`
	TasksTotal    int    `json:"tasks_total"`
}

type WeeklyReport struct {
	Days        []DaySummary `json:"days"`
	TotalFocus  int          `json:"total_focus"`
	TotalManual int          `json:"total_manual"`
	TotalDone   int          `json:"total_done"`
	TotalTasks  int          `json:"total_tasks"`
	BestDay     *DaySummary  `json:"best_day,omitempty"`
}

type StreakStatus struct {
	Day       time.Time `json:"day"`
	MetGoal   bool      `json:"met_goal"`
	Streak    int       `json:"streak"`
	Milestone int       `json:"milestone,omitempty"`
}

// Assignment is one packed calendar slot. Err is set when the provider
// rejected the event; the slot is consumed either way.
type Assignment struct {
	TaskID uuid.UUID `json:"task_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Link   string    `json:"link,omitempty"`
	Err    error     `json:"-"`
}

type UserExport struct {
	User        *User           `json:"user"`
	Tasks       []Task          `json:"tasks"`
	Intervals   []TimedInterval `json:"intervals"`
	Reflections []Reflection    `json:"reflections"`
	Streaks     []StreakRecord  `json:"streaks"`
}
