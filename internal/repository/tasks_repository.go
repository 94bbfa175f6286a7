package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/pkg/entity"
)

const taskColumns = `id, user_id, name, planned_start, planned_end, created_at, completed`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (user_id, name, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		task.UserID, task.Name, task.CreatedAt,
	)
	if err := row.Scan(&task.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errorvalues.Store("creating task", err)
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errorvalues.Store("getting task by id", err)
	}
	return task, nil
}

func (tr *TasksRepository) ListCreatedBetween(ctx context.Context, uid int64, from, to time.Time) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at, id;`,
		uid, from, to,
	)
	if err != nil {
		return nil, errorvalues.Store("listing tasks for period", err)
	}
	return collectTasks(rows)
}

func (tr *TasksRepository) ListByUser(ctx context.Context, uid int64) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at, id;`,
		uid,
	)
	if err != nil {
		return nil, errorvalues.Store("listing tasks", err)
	}
	return collectTasks(rows)
}

func (tr *TasksRepository) SetCompleted(ctx context.Context, id uuid.UUID, done bool) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET completed = $1 WHERE id = $2;`, done, id)
	if err != nil {
		return errorvalues.Store("updating task completion", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) SetSchedule(ctx context.Context, id uuid.UUID, start, end time.Time) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET planned_start = $1, planned_end = $2 WHERE id = $3;`,
		start, end, id,
	)
	if err != nil {
		return errorvalues.Store("saving task schedule", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.PlannedStart, &t.PlannedEnd, &t.CreatedAt, &t.Completed)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	defer rows.Close()
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, errorvalues.Store("task row parsing", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Store("unexpected task rows", err)
	}
	return tasks, nil
}
