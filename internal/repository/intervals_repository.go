package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/pkg/entity"
)

const intervalColumns = `id, user_id, kind, start_at, end_at, work_minutes, break_minutes, task_name`

const insertInterval = `INSERT INTO timed_intervals (user_id, kind, start_at, end_at, work_minutes, break_minutes, task_name)
	VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`

type IntervalsRepository struct {
	conn PgConnection
}

func NewIntervalsRepoWithConn(conn PgConnection) *IntervalsRepository {
	mustPing(conn, "intervalsRepo")
	return &IntervalsRepository{
		conn: conn,
	}
}

func (ir *IntervalsRepository) Create(ctx context.Context, interval *entity.TimedInterval) error {
	if interval == nil {
		return errors.New("interval is nil")
	}
	row := ir.conn.QueryRow(ctx, insertInterval, insertArgs(interval)...)
	if err := row.Scan(&interval.ID); err != nil {
		return mapIntervalInsertErr(err)
	}
	return nil
}

// StartExclusive holds a per-user advisory lock for the transaction so two
// concurrent starts are applied one after another. The partial unique index
// on open manual tracks backs this up across processes.
func (ir *IntervalsRepository) StartExclusive(ctx context.Context, interval *entity.TimedInterval) (int, error) {
	if interval == nil {
		return 0, errors.New("interval is nil")
	}
	var closed int64
	err := withTx(ctx, ir.conn, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, interval.UserID); err != nil {
			return errorvalues.Store("locking user intervals", err)
		}
		ct, err := tx.Exec(ctx,
			`UPDATE timed_intervals SET end_at = $1 WHERE user_id = $2 AND kind = $3 AND end_at IS NULL;`,
			interval.StartAt, interval.UserID, string(interval.Kind),
		)
		if err != nil {
			return errorvalues.Store("closing open intervals", err)
		}
		closed = ct.RowsAffected()
		return tx.QueryRow(ctx, insertInterval, insertArgs(interval)...).Scan(&interval.ID)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrStore) {
			return 0, err
		}
		return 0, mapIntervalInsertErr(err)
	}
	return int(closed), nil
}

func (ir *IntervalsRepository) CloseLatest(ctx context.Context, uid int64, kind entity.IntervalKind, at time.Time) (*entity.TimedInterval, error) {
	row := ir.conn.QueryRow(ctx,
		`UPDATE timed_intervals SET end_at = $1 WHERE id = (
			SELECT id FROM timed_intervals WHERE user_id = $2 AND kind = $3 AND end_at IS NULL
			ORDER BY start_at DESC LIMIT 1
		) RETURNING `+intervalColumns+`;`,
		at, uid, string(kind),
	)
	interval, err := scanInterval(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoRunningInterval
		}
		return nil, errorvalues.Store("closing interval", err)
	}
	return interval, nil
}

func (ir *IntervalsRepository) ListStartedBetween(ctx context.Context, uid int64, kind entity.IntervalKind, from, to time.Time) ([]entity.TimedInterval, error) {
	rows, err := ir.conn.Query(ctx,
		`SELECT `+intervalColumns+` FROM timed_intervals
		WHERE user_id = $1 AND kind = $2 AND start_at >= $3 AND start_at < $4 ORDER BY start_at;`,
		uid, string(kind), from, to,
	)
	if err != nil {
		return nil, errorvalues.Store("listing intervals for period", err)
	}
	return collectIntervals(rows)
}

func (ir *IntervalsRepository) ListByUser(ctx context.Context, uid int64) ([]entity.TimedInterval, error) {
	rows, err := ir.conn.Query(ctx,
		`SELECT `+intervalColumns+` FROM timed_intervals WHERE user_id = $1 ORDER BY start_at;`,
		uid,
	)
	if err != nil {
		return nil, errorvalues.Store("listing intervals", err)
	}
	return collectIntervals(rows)
}

func insertArgs(iv *entity.TimedInterval) []any {
	return []any{iv.UserID, string(iv.Kind), iv.StartAt, iv.EndAt, iv.WorkMinutes, iv.BreakMinutes, iv.TaskName}
}

func mapIntervalInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// Unique violation on the open manual track index
		case "23505":
			return errorvalues.ErrIntervalAlreadyOpen
		// FK violation
		case "23503":
			return errorvalues.ErrUserNotFound
		}
	}
	return errorvalues.Store("creating interval", err)
}

func scanInterval(row pgx.Row) (*entity.TimedInterval, error) {
	var iv entity.TimedInterval
	var kind string
	err := row.Scan(&iv.ID, &iv.UserID, &kind, &iv.StartAt, &iv.EndAt, &iv.WorkMinutes, &iv.BreakMinutes, &iv.TaskName)
	if err != nil {
		return nil, err
	}
	iv.Kind = entity.IntervalKind(kind)
	return &iv, nil
}

func collectIntervals(rows pgx.Rows) ([]entity.TimedInterval, error) {
	defer rows.Close()
	intervals := make([]entity.TimedInterval, 0)
	for rows.Next() {
		iv, err := scanInterval(rows)
		if err != nil {
			return nil, errorvalues.Store("interval row parsing", err)
		}
		intervals = append(intervals, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Store("unexpected interval rows", err)
	}
	return intervals, nil
}
