package service

import (
	"context"
	"log"
	"log/slog"

	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

const (
	defaultWorkMinutes  = 50
	defaultBreakMinutes = 10
)

// TrackingService runs focus sessions and manual tracks. Several focus
// sessions of one user may stay open at once; manual tracks may not.
type TrackingService struct {
	intervals repository.IntervalsRepositoryI
	planner   ReminderPlanner
	settings  *Settings
}

// NewTrackingService builds the service. planner may be nil, then no
// "focus done" pings are sent.
func NewTrackingService(intervals repository.IntervalsRepositoryI, planner ReminderPlanner, settings *Settings) *TrackingService {
	if intervals == nil {
		log.Fatal("provided nil intervals repository")
	}
	if settings == nil {
		log.Fatal("provided nil settings")
	}
	return &TrackingService{
		intervals: intervals,
		planner:   planner,
		settings:  settings,
	}
}

func (ts *TrackingService) StartFocus(ctx context.Context, uid int64, req StartFocusRequest) (*entity.TimedInterval, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.WorkMinutes == 0 {
		req.WorkMinutes = defaultWorkMinutes
	}
	if req.BreakMinutes == 0 {
		req.BreakMinutes = defaultBreakMinutes
	}
	session := &entity.TimedInterval{
		UserID:       uid,
		Kind:         entity.KindFocus,
		StartAt:      ts.settings.now(),
		WorkMinutes:  req.WorkMinutes,
		BreakMinutes: req.BreakMinutes,
	}
	if err := ts.intervals.Create(ctx, session); err != nil {
		return nil, err
	}
	if ts.planner != nil {
		ts.planner.FocusStarted(*session)
	}
	return session, nil
}

func (ts *TrackingService) StopFocus(ctx context.Context, uid int64) (*entity.TimedInterval, error) {
	return ts.intervals.CloseLatest(ctx, uid, entity.KindFocus, ts.settings.now())
}

func (ts *TrackingService) StartManual(ctx context.Context, uid int64, req StartTrackRequest) (*entity.TimedInterval, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	track := &entity.TimedInterval{
		UserID:   uid,
		Kind:     entity.KindManual,
		StartAt:  ts.settings.now(),
		TaskName: req.TaskName,
	}
	closed, err := ts.intervals.StartExclusive(ctx, track)
	if err != nil {
		return nil, err
	}
	if closed > 0 {
		ts.settings.logger().Info("closed running manual track",
			slog.Int64("uid", uid),
			slog.Int("closed", closed),
		)
	}
	return track, nil
}

func (ts *TrackingService) StopManual(ctx context.Context, uid int64) (*entity.TimedInterval, error) {
	return ts.intervals.CloseLatest(ctx, uid, entity.KindManual, ts.settings.now())
}
