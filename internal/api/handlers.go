package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/pkg/entity"
	"github.com/limbo/dayflow/pkg/httputil"
)

const (
	shortTimeout = 10 * time.Second
	// calendar round trips for a whole batch
	scheduleTimeout = 60 * time.Second
)

type AddTaskRequest struct {
	Name string `json:"name"`
}

type CompleteTaskRequest struct {
	Done *bool `json:"done"`
}

type BookTaskRequest struct {
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration_min"`
}

type AutoScheduleRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids"`
}

type ScheduleResult struct {
	TaskID uuid.UUID `json:"task_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Link   string    `json:"link,omitempty"`
	Error  string    `json:"error,omitempty"`
}

type AutoScheduleResponse struct {
	Results []ScheduleResult `json:"results"`
	Error   string           `json:"error,omitempty"`
}

type StartFocusRequest struct {
	WorkMinutes  int `json:"work_min"`
	BreakMinutes int `json:"break_min"`
}

type StartTrackRequest struct {
	TaskName string `json:"task_name"`
}

type ReflectionRequest struct {
	WentWell      string `json:"went_well"`
	Improve       string `json:"improve"`
	FocusTomorrow string `json:"focus_tomorrow"`
}

type SetRemindersRequest struct {
	Morning int `json:"morning"`
	Evening int `json:"evening"`
}

type SetTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

// StoppedResponse is a closed interval with its length.
type StoppedResponse struct {
	*entity.TimedInterval
	ElapsedMinutes int `json:"elapsed_min"`
}

type TasksResponse struct {
	Tasks []entity.Task `json:"tasks"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) AddTask(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req AddTaskRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	task, err := s.tasksService.AddTask(ctx, uid, service.AddTaskRequest{Name: req.Name})
	if err != nil {
		writeServiceError(w, logger, "adding task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task added", slog.String("task_id", task.ID.String()))
}

func (s *Server) TodayTasks(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	tasks, err := s.tasksService.TodayTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing tasks", err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Tasks: tasks})
}

// CompleteTask marks the task done unless the body says "done": false.
func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger)
	if !ok {
		return
	}
	var req CompleteTaskRequest
	if !decodeBody(w, r, logger, &req, true) {
		return
	}
	done := req.Done == nil || *req.Done
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	task, err := s.tasksService.CompleteTask(ctx, uid, id, done)
	if err != nil {
		writeServiceError(w, logger, "completing task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) BookTask(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger)
	if !ok {
		return
	}
	var req BookTaskRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	assignment, err := s.schedulingService.BookTask(ctx, uid, id, service.BookTaskRequest{
		Start:           req.Start,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		writeServiceError(w, logger, "booking task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, toResult(*assignment))
	logger.Info("task booked", slog.String("task_id", id.String()))
}

// AutoSchedule answers with per-task results. When the batch is aborted
// the slots placed so far are still listed next to the error.
func (s *Server) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req AutoScheduleRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	if len(req.TaskIDs) == 0 {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "task_ids must not be empty", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), scheduleTimeout)
	defer cancel()
	assignments, err := s.schedulingService.AutoSchedule(ctx, uid, req.TaskIDs)
	resp := AutoScheduleResponse{Results: make([]ScheduleResult, 0, len(assignments))}
	failed := 0
	for _, a := range assignments {
		if a.Err != nil {
			failed++
		}
		resp.Results = append(resp.Results, toResult(a))
	}
	if err != nil {
		status := httputil.StatusFor(err)
		if len(assignments) == 0 {
			writeServiceError(w, logger, "auto-scheduling", err)
			return
		}
		logger.Error("auto-scheduling aborted", slog.Int("placed", len(assignments)), slog.String("error", err.Error()))
		resp.Error = err.Error()
		httputil.WriteJSONResponse(w, status, resp)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("tasks auto-scheduled", slog.Int("tasks", len(assignments)), slog.Int("failed", failed))
}

func (s *Server) StartFocus(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req StartFocusRequest
	if !decodeBody(w, r, logger, &req, true) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	session, err := s.trackingService.StartFocus(ctx, uid, service.StartFocusRequest{
		WorkMinutes:  req.WorkMinutes,
		BreakMinutes: req.BreakMinutes,
	})
	if err != nil {
		writeServiceError(w, logger, "starting focus", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
}

func (s *Server) StopFocus(w http.ResponseWriter, r *http.Request) {
	s.stopInterval(w, r, "stopping focus", s.trackingService.StopFocus)
}

func (s *Server) StartTrack(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req StartTrackRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	track, err := s.trackingService.StartManual(ctx, uid, service.StartTrackRequest{TaskName: req.TaskName})
	if err != nil {
		writeServiceError(w, logger, "starting track", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, track)
}

func (s *Server) StopTrack(w http.ResponseWriter, r *http.Request) {
	s.stopInterval(w, r, "stopping track", s.trackingService.StopManual)
}

func (s *Server) stopInterval(w http.ResponseWriter, r *http.Request, action string,
	stop func(context.Context, int64) (*entity.TimedInterval, error)) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	interval, err := stop(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, action, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StoppedResponse{
		TimedInterval:  interval,
		ElapsedMinutes: service.ElapsedMinutes(interval, time.Now()),
	})
}

func (s *Server) AddReflection(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ReflectionRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	refl, err := s.userService.AddReflection(ctx, uid, service.ReflectionRequest{
		WentWell:      req.WentWell,
		Improve:       req.Improve,
		FocusTomorrow: req.FocusTomorrow,
	})
	if err != nil {
		writeServiceError(w, logger, "saving reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, refl)
}

func (s *Server) TodaySummary(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	summary, err := s.reportService.TodaySummary(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "summarizing today", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	report, err := s.reportService.WeeklyReport(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "building weekly report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	status, err := s.streakService.Status(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "counting streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) SetReminders(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req SetRemindersRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	user, err := s.userService.SetReminders(ctx, uid, service.SetRemindersRequest{
		Morning: req.Morning,
		Evening: req.Evening,
	})
	if err != nil {
		writeServiceError(w, logger, "setting reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("reminders updated", slog.Int("morning", user.MorningHour), slog.Int("evening", user.EveningHour))
}

func (s *Server) SetTimezone(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req SetTimezoneRequest
	if !decodeBody(w, r, logger, &req, false) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	user, err := s.userService.SetTimezone(ctx, uid, service.SetTimezoneRequest{Timezone: req.Timezone})
	if err != nil {
		writeServiceError(w, logger, "setting time zone", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("time zone updated", slog.String("tz", user.Timezone))
}

func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	export, err := s.userService.Export(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "exporting data", err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="dayflow-export.json"`)
	httputil.WriteJSONResponse(w, http.StatusOK, export)
}

func (s *Server) Wipe(w http.ResponseWriter, r *http.Request) {
	logger, uid, ok := s.caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), shortTimeout)
	defer cancel()
	if err := s.userService.Wipe(ctx, uid); err != nil {
		writeServiceError(w, logger, "wiping data", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("user data wiped")
}

func (s *Server) caller(w http.ResponseWriter, r *http.Request) (*slog.Logger, int64, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unauthorized request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return logger, 0, false
	}
	return logger, uid, true
}

// decodeBody reads a JSON body into dst. With optional set an empty body
// leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any, optional bool) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err == nil {
		if optional && len(bytes.TrimSpace(body)) == 0 {
			return true
		}
		err = sonic.ConfigDefault.Unmarshal(body, dst)
	}
	if err == nil {
		return true
	}
	logger.Error("invalid request body", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
	return false
}

func taskIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("invalid task id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	status := httputil.StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error while "+action, nil)
		return
	}
	logger.Warn(action+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, action+" failed", err)
}

func toResult(a entity.Assignment) ScheduleResult {
	res := ScheduleResult{
		TaskID: a.TaskID,
		Start:  a.Start,
		End:    a.End,
		Link:   a.Link,
	}
	if a.Err != nil {
		res.Error = a.Err.Error()
	}
	return res
}
