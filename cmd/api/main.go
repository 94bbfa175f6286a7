// @title Dayflow API
// @description Day planning, focus tracking and streaks for chat users
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/limbo/dayflow/internal/api"
	"github.com/limbo/dayflow/internal/calendar"
	"github.com/limbo/dayflow/internal/migrations"
	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/internal/scheduler"
	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/pkg/cleanup"
	"github.com/limbo/dayflow/pkg/config"
	jwtservice "github.com/limbo/dayflow/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	settings := mustSettings(cfg, logger)

	pool := repository.Connect(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
	db := stdlib.OpenDBFromPool(pool)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err := migrations.Up(ctx, db)
	cancel()
	if err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
	_ = db.Close()

	usersRepo := repository.NewUsersRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	intervalsRepo := repository.NewIntervalsRepoWithConn(pool)
	streaksRepo := repository.NewStreaksRepoWithConn(pool)
	reflectionsRepo := repository.NewReflectionsRepoWithConn(pool)

	reportService := service.NewReportService(usersRepo, tasksRepo, intervalsRepo, settings)
	streakService := service.NewStreakService(usersRepo, streaksRepo, reportService, settings)

	sched := scheduler.New(logger)
	jobs := scheduler.NewDailyJobs(sched, scheduler.LogNotifier{Logger: logger}, streakService, settings.DefaultZone, logger)

	userService := service.NewUserService(service.Repositories{
		Users:       usersRepo,
		Tasks:       tasksRepo,
		Intervals:   intervalsRepo,
		Reflections: reflectionsRepo,
		Streaks:     streaksRepo,
	}, jobs, settings)

	serv := api.New(&api.ServicesList{
		UserService:       userService,
		TasksService:      service.NewTasksService(usersRepo, tasksRepo, settings),
		TrackingService:   service.NewTrackingService(intervalsRepo, jobs, settings),
		ReportService:     reportService,
		StreakService:     streakService,
		SchedulingService: service.NewSchedulingService(usersRepo, tasksRepo, calendarProvider(cfg, logger), settings),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET"), 0),
	})

	ctx, cancel = context.WithTimeout(context.Background(), time.Minute)
	err = jobs.RestoreAll(ctx, usersRepo)
	cancel()
	if err != nil {
		log.Fatal("restoring user jobs error: " + err.Error())
	}
	sched.Start()

	done := make(chan struct{})
	go func() {
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-sigCtx.Done()
		cleanup.CleanUp()
		close(done)
	}()

	if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
	<-done
}

func mustSettings(cfg *config.Config, logger *slog.Logger) *service.Settings {
	zone, err := service.LoadZone(cfg.GetStringOr("TZ", "UTC"))
	if err != nil {
		log.Fatal("default time zone error: " + err.Error())
	}
	start, err := service.ParseClock(cfg.GetStringOr("WORK_START", "09:00"))
	if err != nil {
		log.Fatal("WORK_START error: " + err.Error())
	}
	end, err := service.ParseClock(cfg.GetStringOr("WORK_END", "18:00"))
	if err != nil {
		log.Fatal("WORK_END error: " + err.Error())
	}
	wh := service.WorkHours{Start: start, End: end, BlockMinutes: cfg.GetInt("MIT_BLOCK_MIN", 60)}
	if err := wh.Validate(); err != nil {
		log.Fatal(err.Error())
	}
	return &service.Settings{
		DefaultZone: zone,
		MorningHour: cfg.GetInt("MORNING_REMINDER_HOUR", 9),
		EveningHour: cfg.GetInt("EVENING_REMINDER_HOUR", 21),
		WorkHours:   wh,
		Goal: service.GoalPolicy{
			FocusMinutes: cfg.GetInt("GOAL_FOCUS_MIN", 60),
			TasksDone:    cfg.GetInt("GOAL_TASKS_DONE", 2),
		},
		Logger: logger,
	}
}

// calendarProvider is nil unless auto-scheduling is switched on and
// credentials are complete. Scheduling requests fail with
// ErrMissingCredentials in that case.
func calendarProvider(cfg *config.Config, logger *slog.Logger) service.CalendarProvider {
	if !cfg.GetBool("CALENDAR_AUTOSCHEDULE", false) {
		return nil
	}
	provider, err := calendar.NewGoogleProvider(context.Background(), calendar.Config{
		ClientID:     cfg.GetString("GOOGLE_CLIENT_ID"),
		ClientSecret: cfg.GetString("GOOGLE_CLIENT_SECRET"),
		RefreshToken: cfg.GetString("GOOGLE_REFRESH_TOKEN"),
		CalendarID:   cfg.GetStringOr("GOOGLE_CALENDAR_ID", "primary"),
	}, logger)
	if err != nil {
		logger.Warn("calendar disabled", slog.String("error", err.Error()))
		return nil
	}
	return provider
}
