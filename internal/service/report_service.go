package service

import (
	"context"
	"log"
	"time"

	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

const reportDays = 7

type ReportService struct {
	zones     zoneResolver
	tasks     repository.TasksRepositoryI
	intervals repository.IntervalsRepositoryI
	settings  *Settings
}

func NewReportService(users repository.UsersRepositoryI, tasks repository.TasksRepositoryI,
	intervals repository.IntervalsRepositoryI, settings *Settings) *ReportService {
	if users == nil || tasks == nil || intervals == nil {
		log.Fatal("provided nil repository to report service")
	}
	if settings == nil {
		log.Fatal("provided nil settings")
	}
	return &ReportService{
		zones:     zoneResolver{users: users, settings: settings},
		tasks:     tasks,
		intervals: intervals,
		settings:  settings,
	}
}

func (rs *ReportService) TodaySummary(ctx context.Context, uid int64) (*entity.DaySummary, error) {
	_, loc, err := rs.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	return rs.summarize(ctx, uid, loc, rs.settings.now())
}

// summarize builds the summary of the local day containing now.
func (rs *ReportService) summarize(ctx context.Context, uid int64, loc *time.Location, now time.Time) (*entity.DaySummary, error) {
	w := DayWindowAt(now, loc)
	days, err := rs.collect(ctx, uid, []DayWindow{w}, now)
	if err != nil {
		return nil, err
	}
	return &days[0], nil
}

func (rs *ReportService) WeeklyReport(ctx context.Context, uid int64) (*entity.WeeklyReport, error) {
	_, loc, err := rs.zones.userZone(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := rs.settings.now()
	days, err := rs.collect(ctx, uid, WeekWindows(now, loc, reportDays), now)
	if err != nil {
		return nil, err
	}
	report := &entity.WeeklyReport{Days: days}
	bestIdx := -1
	for i, day := range days {
		report.TotalFocus += day.FocusMinutes
		report.TotalManual += day.ManualMinutes
		report.TotalDone += day.TasksDone
		report.TotalTasks += day.TasksTotal
		if day.FocusMinutes > 0 && (bestIdx < 0 || day.FocusMinutes > days[bestIdx].FocusMinutes) {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		best := days[bestIdx]
		report.BestDay = &best
	}
	return report, nil
}

// collect loads records of the whole [first.Start, last.End) range once and
// splits them into per-window summaries.
func (rs *ReportService) collect(ctx context.Context, uid int64, windows []DayWindow, now time.Time) ([]entity.DaySummary, error) {
	from, to := windows[0].Start, windows[len(windows)-1].End
	focus, err := rs.intervals.ListStartedBetween(ctx, uid, entity.KindFocus, from, to)
	if err != nil {
		return nil, err
	}
	manual, err := rs.intervals.ListStartedBetween(ctx, uid, entity.KindManual, from, to)
	if err != nil {
		return nil, err
	}
	tasks, err := rs.tasks.ListCreatedBetween(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	days := make([]entity.DaySummary, 0, len(windows))
	for _, w := range windows {
		day := entity.DaySummary{
			Label:         w.Label,
			FocusMinutes:  TotalMinutes(w, focus, now),
			ManualMinutes: TotalMinutes(w, manual, now),
		}
		for _, t := range tasks {
			if !w.Contains(t.CreatedAt) {
				continue
			}
			day.TasksTotal++
			if t.Completed {
				day.TasksDone++
			}
		}
		days = append(days, day)
	}
	return days, nil
}
