package api_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/dayflow/internal/api"
	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/internal/service"
	"github.com/limbo/dayflow/internal/service/mocks"
	"github.com/limbo/dayflow/pkg/entity"
	jwtservice "github.com/limbo/dayflow/pkg/jwt_service"
)

const (
	uid       int64 = 777000111
	jwtSecret       = "test-secret"
)

type serviceMocks struct {
	users      *mocks.MockUserServiceI
	tasks      *mocks.MockTasksServiceI
	tracking   *mocks.MockTrackingServiceI
	reports    *mocks.MockReportServiceI
	streaks    *mocks.MockStreakServiceI
	scheduling *mocks.MockSchedulingServiceI
}

func newServer(t *testing.T) (http.Handler, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:      mocks.NewMockUserServiceI(ctrl),
		tasks:      mocks.NewMockTasksServiceI(ctrl),
		tracking:   mocks.NewMockTrackingServiceI(ctrl),
		reports:    mocks.NewMockReportServiceI(ctrl),
		streaks:    mocks.NewMockStreakServiceI(ctrl),
		scheduling: mocks.NewMockSchedulingServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		UserService:       m.users,
		TasksService:      m.tasks,
		TrackingService:   m.tracking,
		ReportService:     m.reports,
		StreakService:     m.streaks,
		SchedulingService: m.scheduling,
		JwtService:        jwtservice.New(jwtSecret, time.Hour),
	})
	return serv.Handler(), m
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwtservice.New(jwtSecret, time.Hour).GenerateToken(uid)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, h http.Handler, method, path, body, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h, _ := newServer(t)
	rr := doRequest(t, h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	badPayload, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &api.JWTClaims{
		UserID: "not-a-number",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Auth         string
		MockPrepFunc func(m serviceMocks)
		WantStatus   int
	}{
		{
			Desc:       "no header",
			WantStatus: http.StatusUnauthorized,
		},
		{
			Desc:       "not a bearer",
			Auth:       "Basic abc",
			WantStatus: http.StatusUnauthorized,
		},
		{
			Desc:       "forged token",
			Auth:       "Bearer abc.def.ghi",
			WantStatus: http.StatusUnauthorized,
		},
		{
			Desc:       "non numeric user id",
			Auth:       "Bearer " + badPayload,
			WantStatus: http.StatusUnauthorized,
		},
		{
			Desc: "user can't be loaded",
			Auth: bearer(t),
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().EnsureUser(gomock.Any(), uid).
					Return(nil, errorvalues.Store("creating user", errors.New("conn refused")))
			},
			WantStatus: http.StatusInternalServerError,
		},
		{
			Desc: "first contact creates user",
			Auth: bearer(t),
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().EnsureUser(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
				m.streaks.EXPECT().Status(gomock.Any(), uid).Return(&entity.StreakStatus{}, nil)
			},
			WantStatus: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			h, m := newServer(t)
			if tc.MockPrepFunc != nil {
				tc.MockPrepFunc(m)
			}
			rr := doRequest(t, h, http.MethodGet, "/api/v1/streak", "", tc.Auth)
			assert.Equal(t, tc.WantStatus, rr.Code)
		})
	}
}

func TestEndpoints(t *testing.T) {
	taskID := uuid.New()
	now := time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)
	task := &entity.Task{ID: taskID, UserID: uid, Name: "write report", CreatedAt: now}
	session := &entity.TimedInterval{ID: uuid.New(), UserID: uid, Kind: entity.KindFocus, StartAt: now, WorkMinutes: 50, BreakMinutes: 10}

	testCases := []struct {
		Desc         string
		Method       string
		Path         string
		Body         string
		MockPrepFunc func(m serviceMocks)
		WantStatus   int
		WantContains []string
	}{
		{
			Desc:   "add task",
			Method: http.MethodPost, Path: "/api/v1/tasks", Body: `{"name":"write report"}`,
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().AddTask(gomock.Any(), uid, service.AddTaskRequest{Name: "write report"}).Return(task, nil)
			},
			WantStatus:   http.StatusCreated,
			WantContains: []string{taskID.String(), `"write report"`},
		},
		{
			Desc:   "add task with empty name",
			Method: http.MethodPost, Path: "/api/v1/tasks", Body: `{"name":""}`,
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().AddTask(gomock.Any(), uid, service.AddTaskRequest{}).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Name: required")))
			},
			WantStatus:   http.StatusBadRequest,
			WantContains: []string{"Name: required"},
		},
		{
			Desc:   "add task with broken body",
			Method: http.MethodPost, Path: "/api/v1/tasks", Body: `{"name":`,
			WantStatus: http.StatusBadRequest,
		},
		{
			Desc:   "today's tasks when there are none",
			Method: http.MethodGet, Path: "/api/v1/tasks/today",
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().TodayTasks(gomock.Any(), uid).Return(nil, nil)
			},
			WantStatus:   http.StatusOK,
			WantContains: []string{`"tasks":[]`},
		},
		{
			Desc:   "complete task without body",
			Method: http.MethodPost, Path: "/api/v1/tasks/" + taskID.String() + "/done",
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().CompleteTask(gomock.Any(), uid, taskID, true).Return(task, nil)
			},
			WantStatus: http.StatusOK,
		},
		{
			Desc:   "reopen task",
			Method: http.MethodPost, Path: "/api/v1/tasks/" + taskID.String() + "/done", Body: `{"done":false}`,
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().CompleteTask(gomock.Any(), uid, taskID, false).Return(task, nil)
			},
			WantStatus: http.StatusOK,
		},
		{
			Desc:   "complete foreign task",
			Method: http.MethodPost, Path: "/api/v1/tasks/" + taskID.String() + "/done",
			MockPrepFunc: func(m serviceMocks) {
				m.tasks.EXPECT().CompleteTask(gomock.Any(), uid, taskID, true).Return(nil, errorvalues.ErrWrongOwner)
			},
			WantStatus: http.StatusNotFound,
		},
		{
			Desc:   "complete task with bad id",
			Method: http.MethodPost, Path: "/api/v1/tasks/42/done",
			WantStatus: http.StatusBadRequest,
		},
		{
			Desc:   "book task",
			Method: http.MethodPost, Path: "/api/v1/tasks/" + taskID.String() + "/calendar", Body: `{"start":"09:30","duration_min":45}`,
			MockPrepFunc: func(m serviceMocks) {
				m.scheduling.EXPECT().BookTask(gomock.Any(), uid, taskID, service.BookTaskRequest{Start: "09:30", DurationMinutes: 45}).
					Return(&entity.Assignment{TaskID: taskID, Start: now, End: now.Add(45 * time.Minute), Link: "https://calendar.example/e"}, nil)
			},
			WantStatus:   http.StatusCreated,
			WantContains: []string{"https://calendar.example/e"},
		},
		{
			Desc:   "book task without calendar",
			Method: http.MethodPost, Path: "/api/v1/tasks/" + taskID.String() + "/calendar", Body: `{"start":"09:30","duration_min":45}`,
			MockPrepFunc: func(m serviceMocks) {
				m.scheduling.EXPECT().BookTask(gomock.Any(), uid, taskID, gomock.Any()).Return(nil, errorvalues.ErrMissingCredentials)
			},
			WantStatus: http.StatusServiceUnavailable,
		},
		{
			Desc:   "auto-schedule without tasks",
			Method: http.MethodPost, Path: "/api/v1/tasks/schedule", Body: `{"task_ids":[]}`,
			WantStatus: http.StatusBadRequest,
		},
		{
			Desc:   "auto-schedule before any slot is placed",
			Method: http.MethodPost, Path: "/api/v1/tasks/schedule", Body: fmt.Sprintf(`{"task_ids":[%q]}`, taskID),
			MockPrepFunc: func(m serviceMocks) {
				m.scheduling.EXPECT().AutoSchedule(gomock.Any(), uid, []uuid.UUID{taskID}).
					Return(nil, &errorvalues.TaskError{TaskID: taskID, Err: errorvalues.ErrTaskNotFound})
			},
			WantStatus: http.StatusNotFound,
		},
		{
			Desc:   "start focus with defaults",
			Method: http.MethodPost, Path: "/api/v1/focus/start",
			MockPrepFunc: func(m serviceMocks) {
				m.tracking.EXPECT().StartFocus(gomock.Any(), uid, service.StartFocusRequest{}).Return(session, nil)
			},
			WantStatus:   http.StatusCreated,
			WantContains: []string{`"work_minutes":50`},
		},
		{
			Desc:   "start focus with custom length",
			Method: http.MethodPost, Path: "/api/v1/focus/start", Body: `{"work_min":25,"break_min":5}`,
			MockPrepFunc: func(m serviceMocks) {
				m.tracking.EXPECT().StartFocus(gomock.Any(), uid, service.StartFocusRequest{WorkMinutes: 25, BreakMinutes: 5}).Return(session, nil)
			},
			WantStatus: http.StatusCreated,
		},
		{
			Desc:   "stop focus when nothing runs",
			Method: http.MethodPost, Path: "/api/v1/focus/stop",
			MockPrepFunc: func(m serviceMocks) {
				m.tracking.EXPECT().StopFocus(gomock.Any(), uid).Return(nil, errorvalues.ErrNoRunningInterval)
			},
			WantStatus: http.StatusNotFound,
		},
		{
			Desc:   "start track racing another start",
			Method: http.MethodPost, Path: "/api/v1/tracks/start", Body: `{"task_name":"emails"}`,
			MockPrepFunc: func(m serviceMocks) {
				m.tracking.EXPECT().StartManual(gomock.Any(), uid, service.StartTrackRequest{TaskName: "emails"}).
					Return(nil, errorvalues.ErrIntervalAlreadyOpen)
			},
			WantStatus: http.StatusConflict,
		},
		{
			Desc:   "stop track",
			Method: http.MethodPost, Path: "/api/v1/tracks/stop",
			MockPrepFunc: func(m serviceMocks) {
				end := now.Add(time.Hour)
				m.tracking.EXPECT().StopManual(gomock.Any(), uid).
					Return(&entity.TimedInterval{UserID: uid, Kind: entity.KindManual, StartAt: now, EndAt: &end, TaskName: "emails"}, nil)
			},
			WantStatus:   http.StatusOK,
			WantContains: []string{`"task_name":"emails"`, `"elapsed_min":60`},
		},
		{
			Desc:   "add reflection",
			Method: http.MethodPost, Path: "/api/v1/reflections", Body: `{"went_well":"shipped","improve":"sleep","focus_tomorrow":"tests"}`,
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().AddReflection(gomock.Any(), uid, service.ReflectionRequest{
					WentWell: "shipped", Improve: "sleep", FocusTomorrow: "tests",
				}).Return(&entity.Reflection{UserID: uid, WentWell: "shipped"}, nil)
			},
			WantStatus: http.StatusCreated,
		},
		{
			Desc:   "today summary",
			Method: http.MethodGet, Path: "/api/v1/summary/today",
			MockPrepFunc: func(m serviceMocks) {
				m.reports.EXPECT().TodaySummary(gomock.Any(), uid).
					Return(&entity.DaySummary{Label: "2025-06-11", FocusMinutes: 75, TasksDone: 2, TasksTotal: 3}, nil)
			},
			WantStatus:   http.StatusOK,
			WantContains: []string{`"focus_min":75`},
		},
		{
			Desc:   "weekly report store failure",
			Method: http.MethodGet, Path: "/api/v1/summary/weekly",
			MockPrepFunc: func(m serviceMocks) {
				m.reports.EXPECT().WeeklyReport(gomock.Any(), uid).
					Return(nil, errorvalues.Store("listing intervals", errors.New("timeout")))
			},
			WantStatus: http.StatusInternalServerError,
		},
		{
			Desc:   "set reminders",
			Method: http.MethodPut, Path: "/api/v1/settings/reminders", Body: `{"morning":7,"evening":22}`,
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().SetReminders(gomock.Any(), uid, service.SetRemindersRequest{Morning: 7, Evening: 22}).
					Return(&entity.User{ID: uid, Timezone: "UTC", MorningHour: 7, EveningHour: 22}, nil)
			},
			WantStatus:   http.StatusOK,
			WantContains: []string{`"morning_hour":7`},
		},
		{
			Desc:   "set unknown time zone",
			Method: http.MethodPut, Path: "/api/v1/settings/timezone", Body: `{"timezone":"Mars/Olympus"}`,
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().SetTimezone(gomock.Any(), uid, service.SetTimezoneRequest{Timezone: "Mars/Olympus"}).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Timezone: timezone")))
			},
			WantStatus: http.StatusBadRequest,
		},
		{
			Desc:   "export",
			Method: http.MethodGet, Path: "/api/v1/export",
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().Export(gomock.Any(), uid).Return(&entity.UserExport{
					User:  &entity.User{ID: uid, Timezone: "UTC"},
					Tasks: []entity.Task{*task},
				}, nil)
			},
			WantStatus:   http.StatusOK,
			WantContains: []string{`"tasks":[`, taskID.String()},
		},
		{
			Desc:   "wipe",
			Method: http.MethodDelete, Path: "/api/v1/data",
			MockPrepFunc: func(m serviceMocks) {
				m.users.EXPECT().Wipe(gomock.Any(), uid).Return(nil)
			},
			WantStatus: http.StatusNoContent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			h, m := newServer(t)
			m.users.EXPECT().EnsureUser(gomock.Any(), uid).Return(&entity.User{ID: uid, Timezone: "UTC"}, nil)
			if tc.MockPrepFunc != nil {
				tc.MockPrepFunc(m)
			}
			rr := doRequest(t, h, tc.Method, tc.Path, tc.Body, bearer(t))
			assert.Equal(t, tc.WantStatus, rr.Code, rr.Body.String())
			for _, want := range tc.WantContains {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}

func TestAutoScheduleResults(t *testing.T) {
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{"task_ids":[%q,%q,%q]}`, first, second, third)

	t.Run("provider rejects one event", func(t *testing.T) {
		h, m := newServer(t)
		m.users.EXPECT().EnsureUser(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
		m.scheduling.EXPECT().AutoSchedule(gomock.Any(), uid, []uuid.UUID{first, second, third}).Return([]entity.Assignment{
			{TaskID: first, Start: start, End: start.Add(time.Hour), Link: "l1"},
			{TaskID: second, Start: start.Add(65 * time.Minute), End: start.Add(125 * time.Minute), Err: errorvalues.ErrProvider},
			{TaskID: third, Start: start.Add(130 * time.Minute), End: start.Add(190 * time.Minute), Link: "l3"},
		}, nil)

		rr := doRequest(t, h, http.MethodPost, "/api/v1/tasks/schedule", body, bearer(t))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AutoScheduleResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 3)
		assert.Empty(t, resp.Results[0].Error)
		assert.Equal(t, errorvalues.ErrProvider.Error(), resp.Results[1].Error)
		assert.Empty(t, resp.Results[1].Link)
		assert.True(t, resp.Results[2].Start.Equal(start.Add(130*time.Minute)))
		assert.Empty(t, resp.Error)
	})

	t.Run("store failure keeps placed slots", func(t *testing.T) {
		h, m := newServer(t)
		m.users.EXPECT().EnsureUser(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
		m.scheduling.EXPECT().AutoSchedule(gomock.Any(), uid, gomock.Any()).Return([]entity.Assignment{
			{TaskID: first, Start: start, End: start.Add(time.Hour), Link: "l1"},
		}, &errorvalues.TaskError{TaskID: second, Err: errorvalues.Store("saving schedule", errors.New("eof"))})

		rr := doRequest(t, h, http.MethodPost, "/api/v1/tasks/schedule", body, bearer(t))
		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp api.AutoScheduleResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Results, 1)
		assert.Contains(t, resp.Error, second.String())
	})
}
