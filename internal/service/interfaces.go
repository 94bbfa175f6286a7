package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UserServiceI,TasksServiceI,TrackingServiceI,ReportServiceI,StreakServiceI,SchedulingServiceI,CalendarProvider,ReminderPlanner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dayflow/pkg/entity"
)

type SetRemindersRequest struct {
	Morning int `validate:"min=0,max=23"`
	Evening int `validate:"min=0,max=23"`
}

type SetTimezoneRequest struct {
	Timezone string `validate:"required,timezone"`
}

type AddTaskRequest struct {
	Name string `validate:"required,max=200"`
}

type StartFocusRequest struct {
	WorkMinutes  int `validate:"min=0,max=480"`
	BreakMinutes int `validate:"min=0,max=120"`
}

type StartTrackRequest struct {
	TaskName string `validate:"required,max=200"`
}

type BookTaskRequest struct {
	Start           string `validate:"required,clock"`
	DurationMinutes int    `validate:"min=1,max=720"`
}

type ReflectionRequest struct {
	WentWell      string `validate:"max=2000"`
	Improve       string `validate:"max=2000"`
	FocusTomorrow string `validate:"max=2000"`
}

type UserServiceI interface {
	// Returns user, creating it with default settings on first interaction
	EnsureUser(ctx context.Context, uid int64) (*entity.User, error)
	// Validates hours, saves them and reschedules user's reminders
	SetReminders(ctx context.Context, uid int64, req SetRemindersRequest) (*entity.User, error)
	SetTimezone(ctx context.Context, uid int64, req SetTimezoneRequest) (*entity.User, error)
	AddReflection(ctx context.Context, uid int64, req ReflectionRequest) (*entity.Reflection, error)
	Export(ctx context.Context, uid int64) (*entity.UserExport, error)
	Wipe(ctx context.Context, uid int64) error
}

type TasksServiceI interface {
	AddTask(ctx context.Context, uid int64, req AddTaskRequest) (*entity.Task, error)
	// Marks task as done or not done. Foreign tasks are reported as not found
	CompleteTask(ctx context.Context, uid int64, taskID uuid.UUID, done bool) (*entity.Task, error)
	// Lists tasks created during user's local today
	TodayTasks(ctx context.Context, uid int64) ([]entity.Task, error)
}

type TrackingServiceI interface {
	StartFocus(ctx context.Context, uid int64, req StartFocusRequest) (*entity.TimedInterval, error)
	StopFocus(ctx context.Context, uid int64) (*entity.TimedInterval, error)
	// Starts manual track, closing the running one at the same instant
	StartManual(ctx context.Context, uid int64, req StartTrackRequest) (*entity.TimedInterval, error)
	StopManual(ctx context.Context, uid int64) (*entity.TimedInterval, error)
}

type ReportServiceI interface {
	TodaySummary(ctx context.Context, uid int64) (*entity.DaySummary, error)
	WeeklyReport(ctx context.Context, uid int64) (*entity.WeeklyReport, error)
}

type StreakServiceI interface {
	// Streak ending at user's local today
	Status(ctx context.Context, uid int64) (*entity.StreakStatus, error)
	// Decides whether the goal of now's local day is met, records it and returns the streak
	EvaluateDay(ctx context.Context, uid int64, now time.Time) (*entity.StreakStatus, error)
}

type SchedulingServiceI interface {
	// Packs tasks into work-hour blocks and creates calendar events for them
	AutoSchedule(ctx context.Context, uid int64, taskIDs []uuid.UUID) ([]entity.Assignment, error)
	// Books one task today at req.Start local time
	BookTask(ctx context.Context, uid int64, taskID uuid.UUID, req BookTaskRequest) (*entity.Assignment, error)
}

// CalendarProvider creates events in an external calendar and returns a link to the event.
type CalendarProvider interface {
	CreateEvent(ctx context.Context, title string, start, end time.Time, zone string) (string, error)
}

// ReminderPlanner (re)registers the daily jobs of a user.
type ReminderPlanner interface {
	ScheduleUser(user entity.User) error
	FocusStarted(session entity.TimedInterval)
}
