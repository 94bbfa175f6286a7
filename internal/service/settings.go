package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

// Settings are shared by every service.
type Settings struct {
	// Zone used when a user has no valid zone of their own
	DefaultZone *time.Location
	// Reminder hours of newly created users
	MorningHour int
	EveningHour int
	WorkHours   WorkHours
	Goal        GoalPolicy
	// Now is the clock. Nil means time.Now
	Now    func() time.Time
	Logger *slog.Logger
}

func (s *Settings) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *Settings) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Settings) defaultZone() *time.Location {
	if s.DefaultZone == nil {
		return time.UTC
	}
	return s.DefaultZone
}

type zoneResolver struct {
	users    repository.UsersRepositoryI
	settings *Settings
}

// userZone loads the user and their zone. A broken zone name is logged and
// replaced by the default zone.
func (z *zoneResolver) userZone(ctx context.Context, uid int64) (*entity.User, *time.Location, error) {
	user, err := z.users.FindByID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	loc, err := LoadZone(user.Timezone)
	if err != nil {
		z.settings.logger().Warn("falling back to default time zone",
			slog.Int64("uid", uid),
			slog.String("tz", user.Timezone),
			slog.String("error", err.Error()),
		)
		loc = z.settings.defaultZone()
	}
	return user, loc, nil
}
