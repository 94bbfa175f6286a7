package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/pkg/entity"
)

type ReflectionsRepository struct {
	conn PgConnection
}

func NewReflectionsRepoWithConn(conn PgConnection) *ReflectionsRepository {
	mustPing(conn, "reflectionsRepo")
	return &ReflectionsRepository{
		conn: conn,
	}
}

func (rr *ReflectionsRepository) Create(ctx context.Context, reflection *entity.Reflection) error {
	if reflection == nil {
		return errors.New("reflection is nil")
	}
	row := rr.conn.QueryRow(ctx,
		`INSERT INTO reflections (user_id, went_well, improve, focus_tomorrow, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		reflection.UserID, reflection.WentWell, reflection.Improve, reflection.FocusTomorrow, reflection.CreatedAt,
	)
	if err := row.Scan(&reflection.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errorvalues.Store("creating reflection", err)
	}
	return nil
}

func (rr *ReflectionsRepository) ListByUser(ctx context.Context, uid int64) ([]entity.Reflection, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, user_id, went_well, improve, focus_tomorrow, created_at FROM reflections WHERE user_id = $1 ORDER BY created_at;`,
		uid,
	)
	if err != nil {
		return nil, errorvalues.Store("listing reflections", err)
	}
	defer rows.Close()
	result := make([]entity.Reflection, 0)
	for rows.Next() {
		var r entity.Reflection
		if err = rows.Scan(&r.ID, &r.UserID, &r.WentWell, &r.Improve, &r.FocusTomorrow, &r.CreatedAt); err != nil {
			return nil, errorvalues.Store("reflection row parsing", err)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Store("unexpected reflection rows", err)
	}
	return result, nil
}
