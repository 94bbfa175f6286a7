package service

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

// streakPage is how many days of records one store query covers while walking back.
const streakPage = 31

var milestones = []int{3, 7, 14, 30, 60, 100}

// Milestone returns streak if it is a badge-worthy length, 0 otherwise.
func Milestone(streak int) int {
	if slices.Contains(milestones, streak) {
		return streak
	}
	return 0
}

// GoalPolicy decides whether a day counts for the streak.
type GoalPolicy struct {
	FocusMinutes int
	TasksDone    int
}

func (gp GoalPolicy) Met(day entity.DaySummary) bool {
	return day.FocusMinutes >= gp.FocusMinutes || day.TasksDone >= gp.TasksDone
}

// StreakService keys every record by the user's local calendar date, both
// when recording a day and when walking back.
type StreakService struct {
	zones    zoneResolver
	streaks  repository.StreaksRepositoryI
	reports  *ReportService
	settings *Settings
}

func NewStreakService(users repository.UsersRepositoryI, streaks repository.StreaksRepositoryI,
	reports *ReportService, settings *Settings) *StreakService {
	if users == nil || streaks == nil {
		log.Fatal("provided nil repository to streak service")
	}
	if reports == nil || settings == nil {
		log.Fatal("provided nil dependency to streak service")
	}
	return &StreakService{
		zones:    zoneResolver{users: users, settings: settings},
		streaks:  streaks,
		reports:  reports,
		settings: settings,
	}
}

// RecordDay upserts the goal state of day. Only the date part of day is used.
func (ss *StreakService) RecordDay(ctx context.Context, uid int64, day time.Time, met bool) error {
	return ss.streaks.Upsert(ctx, entity.StreakRecord{
		UserID:  uid,
		Day:     dateOf(day),
		MetGoal: met,
	})
}

// CurrentStreak counts consecutive met days walking back from today,
// today included. The first missing or unmet day ends the walk.
func (ss *StreakService) CurrentStreak(ctx context.Context, uid int64, today time.Time) (int, error) {
	cursor := dateOf(today)
	streak := 0
	for {
		from := cursor.AddDate(0, 0, -(streakPage - 1))
		records, err := ss.streaks.ListBetween(ctx, uid, from, cursor)
		if err != nil {
			return 0, err
		}
		met := make(map[string]bool, len(records))
		for _, r := range records {
			met[r.Day.Format(time.DateOnly)] = r.MetGoal
		}
		for day := cursor; !day.Before(from); day = day.AddDate(0, 0, -1) {
			if !met[day.Format(time.DateOnly)] {
				return streak, nil
			}
			streak++
		}
		cursor = from.AddDate(0, 0, -1)
	}
}

func (ss *StreakService) Status(ctx context.Context, uid int64) (*entity.StreakStatus, error) {
	_, loc, err := ss.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	today := CalendarDay(ss.settings.now(), loc)
	streak, err := ss.CurrentStreak(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	return &entity.StreakStatus{
		Day:       today,
		MetGoal:   streak > 0,
		Streak:    streak,
		Milestone: Milestone(streak),
	}, nil
}

func (ss *StreakService) EvaluateDay(ctx context.Context, uid int64, now time.Time) (*entity.StreakStatus, error) {
	_, loc, err := ss.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	summary, err := ss.reports.summarize(ctx, uid, loc, now)
	if err != nil {
		return nil, err
	}
	day := CalendarDay(now, loc)
	met := ss.settings.Goal.Met(*summary)
	if err := ss.RecordDay(ctx, uid, day, met); err != nil {
		return nil, err
	}
	streak, err := ss.CurrentStreak(ctx, uid, day)
	if err != nil {
		return nil, err
	}
	return &entity.StreakStatus{
		Day:       day,
		MetGoal:   met,
		Streak:    streak,
		Milestone: Milestone(streak),
	}, nil
}

// dateOf drops the clock part, keeping the date as written.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
