package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

type TasksService struct {
	zones    zoneResolver
	tasks    repository.TasksRepositoryI
	settings *Settings
}

func NewTasksService(users repository.UsersRepositoryI, tasks repository.TasksRepositoryI, settings *Settings) *TasksService {
	if users == nil || tasks == nil {
		log.Fatal("provided nil repository to tasks service")
	}
	if settings == nil {
		log.Fatal("provided nil settings")
	}
	return &TasksService{
		zones:    zoneResolver{users: users, settings: settings},
		tasks:    tasks,
		settings: settings,
	}
}

func (ts *TasksService) AddTask(ctx context.Context, uid int64, req AddTaskRequest) (*entity.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	task := &entity.Task{
		UserID:    uid,
		Name:      req.Name,
		CreatedAt: ts.settings.now(),
	}
	if err := ts.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TasksService) CompleteTask(ctx context.Context, uid int64, taskID uuid.UUID, done bool) (*entity.Task, error) {
	task, err := ts.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if err := ts.tasks.SetCompleted(ctx, taskID, done); err != nil {
		return nil, err
	}
	task.Completed = done
	return task, nil
}

func (ts *TasksService) TodayTasks(ctx context.Context, uid int64) ([]entity.Task, error) {
	_, loc, err := ts.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	w := DayWindowAt(ts.settings.now(), loc)
	return ts.tasks.ListCreatedBetween(ctx, uid, w.Start, w.End)
}
