package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

// Repositories holds every store the user service reads for export.
type Repositories struct {
	Users       repository.UsersRepositoryI
	Tasks       repository.TasksRepositoryI
	Intervals   repository.IntervalsRepositoryI
	Reflections repository.ReflectionsRepositoryI
	Streaks     repository.StreaksRepositoryI
}

type UserService struct {
	repos    Repositories
	planner  ReminderPlanner
	settings *Settings
}

// NewUserService builds the service. planner may be nil, then settings
// changes are stored without rescheduling reminders.
func NewUserService(repos Repositories, planner ReminderPlanner, settings *Settings) *UserService {
	if repos.Users == nil || repos.Tasks == nil || repos.Intervals == nil ||
		repos.Reflections == nil || repos.Streaks == nil {
		log.Fatal("provided nil repository to user service")
	}
	if settings == nil {
		log.Fatal("provided nil settings")
	}
	return &UserService{
		repos:    repos,
		planner:  planner,
		settings: settings,
	}
}

func (us *UserService) EnsureUser(ctx context.Context, uid int64) (*entity.User, error) {
	user, err := us.repos.Users.FindByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, err
	}
	user, err = us.repos.Users.GetOrCreate(ctx, uid, entity.User{
		ID:          uid,
		Timezone:    us.settings.defaultZone().String(),
		MorningHour: us.settings.MorningHour,
		EveningHour: us.settings.EveningHour,
	})
	if err != nil {
		return nil, err
	}
	if err := us.reschedule(*user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) SetReminders(ctx context.Context, uid int64, req SetRemindersRequest) (*entity.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := us.repos.Users.UpdateReminders(ctx, uid, req.Morning, req.Evening); err != nil {
		return nil, err
	}
	return us.reload(ctx, uid)
}

func (us *UserService) SetTimezone(ctx context.Context, uid int64, req SetTimezoneRequest) (*entity.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := us.repos.Users.UpdateTimezone(ctx, uid, req.Timezone); err != nil {
		return nil, err
	}
	return us.reload(ctx, uid)
}

// reload fetches the updated user and moves its jobs to the new settings.
func (us *UserService) reload(ctx context.Context, uid int64) (*entity.User, error) {
	user, err := us.repos.Users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := us.reschedule(*user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) reschedule(user entity.User) error {
	if us.planner == nil {
		return nil
	}
	return us.planner.ScheduleUser(user)
}

func (us *UserService) AddReflection(ctx context.Context, uid int64, req ReflectionRequest) (*entity.Reflection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	reflection := &entity.Reflection{
		UserID:        uid,
		WentWell:      req.WentWell,
		Improve:       req.Improve,
		FocusTomorrow: req.FocusTomorrow,
		CreatedAt:     us.settings.now(),
	}
	if err := us.repos.Reflections.Create(ctx, reflection); err != nil {
		return nil, err
	}
	return reflection, nil
}

func (us *UserService) Export(ctx context.Context, uid int64) (*entity.UserExport, error) {
	user, err := us.repos.Users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	export := &entity.UserExport{User: user}
	if export.Tasks, err = us.repos.Tasks.ListByUser(ctx, uid); err != nil {
		return nil, err
	}
	if export.Intervals, err = us.repos.Intervals.ListByUser(ctx, uid); err != nil {
		return nil, err
	}
	if export.Reflections, err = us.repos.Reflections.ListByUser(ctx, uid); err != nil {
		return nil, err
	}
	if export.Streaks, err = us.repos.Streaks.ListByUser(ctx, uid); err != nil {
		return nil, err
	}
	return export, nil
}

func (us *UserService) Wipe(ctx context.Context, uid int64) error {
	return us.repos.Users.WipeData(ctx, uid)
}
