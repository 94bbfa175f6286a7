package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

// Upsert stores record.Day as a DATE, so only its calendar date matters.
func (sr *StreaksRepository) Upsert(ctx context.Context, record entity.StreakRecord) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO streaks (user_id, day, met_goal) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET met_goal = EXCLUDED.met_goal;`,
		record.UserID, record.Day, record.MetGoal,
	)
	if err != nil {
		return errorvalues.Store("upserting streak record", err)
	}
	return nil
}

func (sr *StreaksRepository) ListBetween(ctx context.Context, uid int64, from, to time.Time) ([]entity.StreakRecord, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT user_id, day, met_goal FROM streaks WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day DESC;`,
		uid, from, to,
	)
	if err != nil {
		return nil, errorvalues.Store("listing streak records", err)
	}
	return collectStreaks(rows)
}

func (sr *StreaksRepository) ListByUser(ctx context.Context, uid int64) ([]entity.StreakRecord, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT user_id, day, met_goal FROM streaks WHERE user_id = $1 ORDER BY day DESC;`,
		uid,
	)
	if err != nil {
		return nil, errorvalues.Store("listing streak records", err)
	}
	return collectStreaks(rows)
}

func collectStreaks(rows pgx.Rows) ([]entity.StreakRecord, error) {
	defer rows.Close()
	records := make([]entity.StreakRecord, 0)
	for rows.Next() {
		var r entity.StreakRecord
		if err := rows.Scan(&r.UserID, &r.Day, &r.MetGoal); err != nil {
			return nil, errorvalues.Store("streak row parsing", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errorvalues.Store("unexpected streak rows", err)
	}
	return records, nil
}
