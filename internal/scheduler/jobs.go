package scheduler

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/pkg/entity"
)

const (
	jobTimeout = 30 * time.Second

	morningText = "Good morning! Pick your 3 most important tasks for today."
	eveningText = "Evening check-in: what went well, what to improve, and what to focus on tomorrow?"
)

// Streak evaluation runs one minute before local midnight.
var streakClock = service.Clock{Hour: 23, Minute: 59}

// Notifier delivers a text to a user.
type Notifier interface {
	Notify(ctx context.Context, uid int64, text string) error
}

// UsersLister lists the users whose jobs are restored on startup.
type UsersLister interface {
	List(ctx context.Context) ([]entity.User, error)
}

// DailyJobs plans reminders and the nightly streak evaluation of every user.
type DailyJobs struct {
	sched       *Scheduler
	notifier    Notifier
	streaks     service.StreakServiceI
	defaultZone *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

func NewDailyJobs(sched *Scheduler, notifier Notifier, streaks service.StreakServiceI,
	defaultZone *time.Location, logger *slog.Logger) *DailyJobs {
	if sched == nil || notifier == nil || streaks == nil {
		log.Fatal("provided nil dependency to daily jobs")
	}
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyJobs{
		sched:       sched,
		notifier:    notifier,
		streaks:     streaks,
		defaultZone: defaultZone,
		now:         time.Now,
		logger:      logger,
	}
}

// ScheduleUser replaces the user's morning, evening and streak timers.
func (dj *DailyJobs) ScheduleUser(user entity.User) error {
	loc, err := service.LoadZone(user.Timezone)
	if err != nil {
		dj.logger.Warn("scheduling in default time zone",
			slog.Int64("uid", user.ID),
			slog.String("error", err.Error()),
		)
		loc = dj.defaultZone
	}
	uid := user.ID
	err = dj.sched.Daily(Key{PurposeMorning, uid}, loc, user.MorningHour, 0, func() {
		dj.notify(uid, morningText)
	})
	if err != nil {
		return err
	}
	err = dj.sched.Daily(Key{PurposeEvening, uid}, loc, user.EveningHour, 0, func() {
		dj.notify(uid, eveningText)
	})
	if err != nil {
		return err
	}
	return dj.sched.Daily(Key{PurposeStreak, uid}, loc, streakClock.Hour, streakClock.Minute, func() {
		dj.evaluateStreak(uid, loc)
	})
}

// FocusStarted pings the user when the session's work part is over.
func (dj *DailyJobs) FocusStarted(session entity.TimedInterval) {
	at := session.StartAt.Add(time.Duration(session.WorkMinutes) * time.Minute)
	text := fmt.Sprintf("Focus session done! Take a %d minute break.", session.BreakMinutes)
	uid := session.UserID
	dj.sched.Once(Key{PurposeFocus, uid}, at, func() {
		dj.notify(uid, text)
	})
}

// RestoreAll schedules the jobs of every stored user. Failing users are
// logged and skipped.
func (dj *DailyJobs) RestoreAll(ctx context.Context, users UsersLister) error {
	list, err := users.List(ctx)
	if err != nil {
		return err
	}
	restored := 0
	for _, u := range list {
		if err := dj.ScheduleUser(u); err != nil {
			dj.logger.Error("restoring user jobs",
				slog.Int64("uid", u.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		restored++
	}
	dj.logger.Info("user jobs restored", slog.Int("users", restored))
	return nil
}

// evaluateStreak judges the day of the latest scheduled firing, so a job
// running late after midnight still settles the day it was meant for.
func (dj *DailyJobs) evaluateStreak(uid int64, loc *time.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	status, err := dj.streaks.EvaluateDay(ctx, uid, lastFiring(dj.now(), loc, streakClock))
	if err != nil {
		dj.logger.Error("evaluating streak",
			slog.Int64("uid", uid),
			slog.String("error", err.Error()),
		)
		return
	}
	dj.notifyCtx(ctx, uid, streakText(status))
}

// lastFiring is the latest instant at or before now when the clock in loc
// showed c.
func lastFiring(now time.Time, loc *time.Location, c service.Clock) time.Time {
	y, m, d := now.In(loc).Date()
	at := c.On(y, m, d, loc)
	if at.After(now) {
		at = c.On(y, m, d-1, loc)
	}
	return at
}

func streakText(status *entity.StreakStatus) string {
	if !status.MetGoal {
		return "Today's goal wasn't reached. Tomorrow is a new start!"
	}
	text := fmt.Sprintf("Goal reached! Current streak: %d days.", status.Streak)
	if status.Milestone > 0 {
		text += fmt.Sprintf(" Milestone unlocked: %d days in a row!", status.Milestone)
	}
	return text
}

func (dj *DailyJobs) notify(uid int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	dj.notifyCtx(ctx, uid, text)
}

func (dj *DailyJobs) notifyCtx(ctx context.Context, uid int64, text string) {
	if err := dj.notifier.Notify(ctx, uid, text); err != nil {
		dj.logger.Error("notification not delivered",
			slog.Int64("uid", uid),
			slog.String("error", err.Error()),
		)
	}
}

// LogNotifier writes notifications to the log. Used when no chat
// gateway is attached.
type LogNotifier struct {
	Logger *slog.Logger
}

func (ln LogNotifier) Notify(ctx context.Context, uid int64, text string) error {
	logger := ln.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notification", slog.Int64("uid", uid), slog.String("text", text))
	return nil
}
