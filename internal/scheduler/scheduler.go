package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/limbo/dayflow/pkg/cleanup"
)

type Purpose string

const (
	PurposeMorning Purpose = "morning"
	PurposeEvening Purpose = "evening"
	PurposeStreak  Purpose = "streak"
	PurposeFocus   Purpose = "focus"
)

// Key names the timers of one purpose for one user.
type Key struct {
	Purpose Purpose
	UserID  int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Purpose, k.UserID)
}

// Scheduler keeps cron entries grouped by Key. Firing is best effort:
// a timer missed while the process was down is not caught up.
type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entries map[Key][]cron.EntryID
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger{logger: logger}),
			cron.WithChain(cron.Recover(cronLogger{logger: logger})),
		),
		entries: make(map[Key][]cron.EntryID),
		logger:  logger,
	}
}

// Start runs the cron loop in its own goroutine and registers its stop.
func (s *Scheduler) Start() {
	s.cron.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F: func() error {
			ctx := s.cron.Stop()
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(10 * time.Second):
				return fmt.Errorf("running jobs didn't finish in time")
			}
		},
	})
}

// Daily replaces every timer of key with one firing fn each day at
// hour:minute local time in loc.
func (s *Scheduler) Daily(key Key, loc *time.Location, hour, minute int, fn func()) error {
	spec := fmt.Sprintf("CRON_TZ=%s %d %d * * *", loc.String(), minute, hour)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(key)
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return fmt.Errorf("registering %s with spec %q: %w", key, spec, err)
	}
	s.entries[key] = []cron.EntryID{id}
	return nil
}

// Once adds a timer firing fn at at, next to the timers key already has.
// The entry removes itself after firing.
func (s *Scheduler) Once(key Key, at time.Time, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var id cron.EntryID
	id = s.cron.Schedule(onceAt(at), cron.FuncJob(func() {
		s.forget(key, &id)
		fn()
	}))
	s.entries[key] = append(s.entries[key], id)
}

// Cancel removes every timer of key and reports how many there were.
func (s *Scheduler) Cancel(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(key)
}

// Registered is the number of live timers of key.
func (s *Scheduler) Registered(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[key])
}

func (s *Scheduler) cancelLocked(key Key) int {
	ids := s.entries[key]
	for _, id := range ids {
		s.cron.Remove(id)
	}
	delete(s.entries, key)
	return len(ids)
}

// forget drops a fired one-shot entry. id is read under the lock since the
// job may fire before Once has stored it.
func (s *Scheduler) forget(key Key, id *cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cron.Remove(*id)
	ids := s.entries[key]
	for i, other := range ids {
		if other == *id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.entries, key)
		return
	}
	s.entries[key] = ids
}

// onceAt fires a single time. cron drops entries whose next time is zero.
type onceAt time.Time

func (o onceAt) Next(t time.Time) time.Time {
	at := time.Time(o)
	if t.Before(at) {
		return at
	}
	return time.Time{}
}

type cronLogger struct {
	logger *slog.Logger
}

func (cl cronLogger) Info(msg string, keysAndValues ...any) {
	cl.logger.Debug("cron: "+msg, keysAndValues...)
}

func (cl cronLogger) Error(err error, msg string, keysAndValues ...any) {
	cl.logger.Error("cron: "+msg, append(keysAndValues, slog.String("error", err.Error()))...)
}
