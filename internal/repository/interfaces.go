package repository

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UsersRepositoryI,TasksRepositoryI,IntervalsRepositoryI,StreaksRepositoryI,ReflectionsRepositoryI

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/dayflow/pkg/entity"
)

type UsersRepositoryI interface {
	// Returns user with id, creating it with default settings on first call
	GetOrCreate(ctx context.Context, id int64, defaults entity.User) (*entity.User, error)
	// Looks up user by id
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// Lists every known user. Used to restore reminder jobs on startup
	List(ctx context.Context) ([]entity.User, error)
	// Updates reminder hours
	UpdateReminders(ctx context.Context, id int64, morning, evening int) error
	// Updates user's time zone name
	UpdateTimezone(ctx context.Context, id int64, tz string) error
	// Deletes every record owned by user in one transaction. User row itself stays
	WipeData(ctx context.Context, id int64) error
}

type TasksRepositoryI interface {
	// Creates new task. ID and CreatedAt are filled from database
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists user's tasks created in [from, to)
	ListCreatedBetween(ctx context.Context, uid int64, from, to time.Time) ([]entity.Task, error)
	ListByUser(ctx context.Context, uid int64) ([]entity.Task, error)
	SetCompleted(ctx context.Context, id uuid.UUID, done bool) error
	// Stores planned slot of the task. Times must be UTC
	SetSchedule(ctx context.Context, id uuid.UUID, start, end time.Time) error
}

type IntervalsRepositoryI interface {
	// Inserts new interval as is. Does not touch other open intervals
	Create(ctx context.Context, interval *entity.TimedInterval) error
	// Closes every open interval of interval.Kind owned by interval.UserID at
	// interval.StartAt and inserts interval, atomically
	StartExclusive(ctx context.Context, interval *entity.TimedInterval) (closed int, err error)
	// Closes the most recently started open interval of kind. Returns ErrNoRunningInterval if none
	CloseLatest(ctx context.Context, uid int64, kind entity.IntervalKind, at time.Time) (*entity.TimedInterval, error)
	// Lists intervals of kind started in [from, to)
	ListStartedBetween(ctx context.Context, uid int64, kind entity.IntervalKind, from, to time.Time) ([]entity.TimedInterval, error)
	ListByUser(ctx context.Context, uid int64) ([]entity.TimedInterval, error)
}

type StreaksRepositoryI interface {
	// Creates or overwrites the record of (uid, day)
	Upsert(ctx context.Context, record entity.StreakRecord) error
	// Lists records with day in [from, to], newest first
	ListBetween(ctx context.Context, uid int64, from, to time.Time) ([]entity.StreakRecord, error)
	ListByUser(ctx context.Context, uid int64) ([]entity.StreakRecord, error)
}

type ReflectionsRepositoryI interface {
	Create(ctx context.Context, reflection *entity.Reflection) error
	ListByUser(ctx context.Context, uid int64) ([]entity.Reflection, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
