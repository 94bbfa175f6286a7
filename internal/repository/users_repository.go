package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/pkg/entity"
)

// Tables holding per-user records, in deletion order.
var wipeTables = []string{"tasks", "timed_intervals", "reflections", "streaks"}

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) GetOrCreate(ctx context.Context, id int64, defaults entity.User) (*entity.User, error) {
	_, err := ur.conn.Exec(ctx,
		`INSERT INTO users (id, tz, morning_hour, evening_hour) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING;`,
		id, defaults.Timezone, defaults.MorningHour, defaults.EveningHour,
	)
	if err != nil {
		return nil, errorvalues.Store("creating user", err)
	}
	return ur.FindByID(ctx, id)
}

func (ur *UsersRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, tz, morning_hour, evening_hour, created_at FROM users WHERE id = $1;`, id)
	if err := row.Scan(&user.ID, &user.Timezone, &user.MorningHour, &user.EveningHour, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errorvalues.Store("searching user by id", err)
	}
	return &user, nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, tz, morning_hour, evening_hour, created_at FROM users ORDER BY id;`)
	if err != nil {
		return nil, errorvalues.Store("listing users", err)
	}
	defer rows.Close()
	users := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err = rows.Scan(&u.ID, &u.Timezone, &u.MorningHour, &u.EveningHour, &u.CreatedAt); err != nil {
			return nil, errorvalues.Store("user row parsing", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Store("unexpected user rows", err)
	}
	return users, nil
}

func (ur *UsersRepository) UpdateReminders(ctx context.Context, id int64, morning, evening int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET morning_hour = $1, evening_hour = $2 WHERE id = $3;`,
		morning, evening, id,
	)
	if err != nil {
		return errorvalues.Store("updating reminders", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateTimezone(ctx context.Context, id int64, tz string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET tz = $1 WHERE id = $2;`, tz, id)
	if err != nil {
		return errorvalues.Store("updating time zone", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) WipeData(ctx context.Context, id int64) error {
	err := withTx(ctx, ur.conn, func(tx pgx.Tx) error {
		for _, table := range wipeTables {
			if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1;`, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errorvalues.Store("wiping user data", err)
	}
	return nil
}
