package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

const (
	leadTime       = 15 * time.Minute
	gapTime        = 5 * time.Minute
	mitTitlePrefix = "MIT: "
)

// Clock is a local wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("bad clock %q, want HH:MM", s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant the clock shows c on local date y-m-d.
func (c Clock) On(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// WorkHours is the daily local window auto-scheduled blocks are placed in.
type WorkHours struct {
	Start        Clock
	End          Clock
	BlockMinutes int
}

func (wh WorkHours) Validate() error {
	if wh.BlockMinutes <= 0 {
		return fmt.Errorf("%w: block must be positive, got %d minutes", errorvalues.ErrInvalidWorkHours, wh.BlockMinutes)
	}
	length := wh.End.minutes() - wh.Start.minutes()
	if length <= 0 {
		return fmt.Errorf("%w: %s-%s is empty", errorvalues.ErrInvalidWorkHours, wh.Start, wh.End)
	}
	if wh.BlockMinutes > length {
		return fmt.Errorf("%w: %d minute block doesn't fit into %s-%s",
			errorvalues.ErrInvalidWorkHours, wh.BlockMinutes, wh.Start, wh.End)
	}
	return nil
}

type Slot struct {
	Start time.Time
	End   time.Time
}

// PlanSlots lays out count consecutive blocks inside work hours, starting no
// earlier than now plus the lead time and rolling over to the next day's work
// start whenever a block would end past the work end. Returned times are UTC.
// wh must be valid.
func PlanSlots(count int, now time.Time, loc *time.Location, wh WorkHours) []Slot {
	if count <= 0 {
		return nil
	}
	y, m, d := now.In(loc).Date()
	cur := now.Add(leadTime)
	if start := wh.Start.On(y, m, d, loc); cur.Before(start) {
		cur = start
	}
	if !cur.Before(wh.End.On(y, m, d, loc)) {
		cur = wh.Start.On(y, m, d+1, loc)
	}

	block := time.Duration(wh.BlockMinutes) * time.Minute
	slots := make([]Slot, 0, count)
	for range count {
		cy, cm, cd := cur.In(loc).Date()
		// the gap may push past midnight when work ends late
		if start := wh.Start.On(cy, cm, cd, loc); cur.Before(start) {
			cur = start
		}
		end := cur.Add(block)
		if end.After(wh.End.On(cy, cm, cd, loc)) {
			cur = wh.Start.On(cy, cm, cd+1, loc)
			end = cur.Add(block)
		}
		slots = append(slots, Slot{Start: cur.UTC(), End: end.UTC()})
		cur = end.Add(gapTime)
	}
	return slots
}

type SchedulingService struct {
	zones    zoneResolver
	tasks    repository.TasksRepositoryI
	provider CalendarProvider
	settings *Settings
}

// NewSchedulingService builds the service. provider may be nil, then every
// scheduling call fails with ErrMissingCredentials.
func NewSchedulingService(users repository.UsersRepositoryI, tasks repository.TasksRepositoryI,
	provider CalendarProvider, settings *Settings) *SchedulingService {
	if users == nil || tasks == nil {
		log.Fatal("provided nil repository to scheduling service")
	}
	if settings == nil {
		log.Fatal("provided nil settings")
	}
	return &SchedulingService{
		zones:    zoneResolver{users: users, settings: settings},
		tasks:    tasks,
		provider: provider,
		settings: settings,
	}
}

func (ss *SchedulingService) AutoSchedule(ctx context.Context, uid int64, taskIDs []uuid.UUID) ([]entity.Assignment, error) {
	if ss.provider == nil {
		return nil, errorvalues.ErrMissingCredentials
	}
	wh := ss.settings.WorkHours
	if err := wh.Validate(); err != nil {
		return nil, err
	}
	_, loc, err := ss.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	tasks := make([]*entity.Task, 0, len(taskIDs))
	for _, id := range taskIDs {
		task, err := ss.ownedTask(ctx, uid, id)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	logger := ss.settings.logger().With(slog.Int64("uid", uid))
	slots := PlanSlots(len(tasks), ss.settings.now(), loc, wh)
	assignments := make([]entity.Assignment, 0, len(tasks))
	for i, task := range tasks {
		a := entity.Assignment{TaskID: task.ID, Start: slots[i].Start, End: slots[i].End}
		link, err := ss.createEvent(ctx, mitTitlePrefix+task.Name, a.Start, a.End, loc)
		if err != nil {
			a.Err = &errorvalues.TaskError{TaskID: task.ID, Err: err}
			logger.Warn("calendar event not created",
				slog.String("task_id", task.ID.String()),
				slog.String("error", err.Error()),
			)
			assignments = append(assignments, a)
			continue
		}
		a.Link = link
		if err := ss.tasks.SetSchedule(ctx, task.ID, a.Start, a.End); err != nil {
			return assignments, &errorvalues.TaskError{TaskID: task.ID, Err: err}
		}
		assignments = append(assignments, a)
	}
	logger.Info("tasks scheduled", slog.Int("count", len(assignments)))
	return assignments, nil
}

func (ss *SchedulingService) BookTask(ctx context.Context, uid int64, taskID uuid.UUID, req BookTaskRequest) (*entity.Assignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if ss.provider == nil {
		return nil, errorvalues.ErrMissingCredentials
	}
	clock, err := ParseClock(req.Start)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	_, loc, err := ss.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	task, err := ss.ownedTask(ctx, uid, taskID)
	if err != nil {
		return nil, err
	}
	y, m, d := ss.settings.now().In(loc).Date()
	start := clock.On(y, m, d, loc).UTC()
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	link, err := ss.createEvent(ctx, task.Name, start, end, loc)
	if err != nil {
		return nil, &errorvalues.TaskError{TaskID: task.ID, Err: err}
	}
	if err := ss.tasks.SetSchedule(ctx, task.ID, start, end); err != nil {
		return nil, &errorvalues.TaskError{TaskID: task.ID, Err: err}
	}
	return &entity.Assignment{TaskID: task.ID, Start: start, End: end, Link: link}, nil
}

// createEvent calls the provider, making sure any failure is a ProviderError.
func (ss *SchedulingService) createEvent(ctx context.Context, title string, start, end time.Time, loc *time.Location) (string, error) {
	link, err := ss.provider.CreateEvent(ctx, title, start, end, loc.String())
	if err != nil {
		if !errors.Is(err, errorvalues.ErrProvider) && !errors.Is(err, errorvalues.ErrConfiguration) {
			err = fmt.Errorf("%w: %v", errorvalues.ErrProvider, err)
		}
		return "", err
	}
	return link, nil
}

func (ss *SchedulingService) ownedTask(ctx context.Context, uid int64, id uuid.UUID) (*entity.Task, error) {
	task, err := ss.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, &errorvalues.TaskError{TaskID: id, Err: err}
	}
	if task.UserID != uid {
		return nil, &errorvalues.TaskError{TaskID: id, Err: errorvalues.ErrWrongOwner}
	}
	return task, nil
}
