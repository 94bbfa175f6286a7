package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/pkg/cleanup"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	tasksService      service.TasksServiceI
	trackingService   service.TrackingServiceI
	reportService     service.ReportServiceI
	streakService     service.StreakServiceI
	schedulingService service.SchedulingServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	TasksService      service.TasksServiceI
	TrackingService   service.TrackingServiceI
	ReportService     service.ReportServiceI
	StreakService     service.StreakServiceI
	SchedulingService service.SchedulingServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil || servicesOptions.UserService == nil || servicesOptions.JwtService == nil {
		log.Fatal("provided nil dependency to api server")
	}
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		tasksService:      servicesOptions.TasksService,
		trackingService:   servicesOptions.TrackingService,
		reportService:     servicesOptions.ReportService,
		streakService:     servicesOptions.StreakService,
		schedulingService: servicesOptions.SchedulingService,
		jwtService:        servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Post("/tasks", s.AddTask)
		r.Get("/tasks/today", s.TodayTasks)
		r.Post("/tasks/schedule", s.AutoSchedule)
		r.Post("/tasks/{id}/done", s.CompleteTask)
		r.Post("/tasks/{id}/calendar", s.BookTask)

		r.Post("/focus/start", s.StartFocus)
		r.Post("/focus/stop", s.StopFocus)
		r.Post("/tracks/start", s.StartTrack)
		r.Post("/tracks/stop", s.StopTrack)

		r.Post("/reflections", s.AddReflection)
		r.Get("/summary/today", s.TodaySummary)
		r.Get("/summary/weekly", s.WeeklyReport)
		r.Get("/streak", s.Streak)

		r.Put("/settings/reminders", s.SetReminders)
		r.Put("/settings/timezone", s.SetTimezone)
		r.Get("/export", s.Export)
		r.Delete("/data", s.Wipe)
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until the server is shut down by the cleanup registry.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down api server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("api server is listening", slog.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
