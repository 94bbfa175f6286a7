package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
	"github.com/limbo/dayflow/internal/repository"
	"github.com/limbo/dayflow/pkg/entity"
)

var intervalColumns = []string{"id", "user_id", "kind", "start_at", "end_at", "work_minutes", "break_minutes", "task_name"}

var (
	lockQuery      = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1);`)
	closeOpenQuery = regexp.QuoteMeta(`UPDATE timed_intervals SET end_at = $1 WHERE user_id = $2 AND kind = $3 AND end_at IS NULL;`)
	insertQuery    = regexp.QuoteMeta(`INSERT INTO timed_intervals (user_id, kind, start_at, end_at, work_minutes, break_minutes, task_name)`)
)

func TestCreateFocusSession(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewIntervalsRepoWithConn(mock)
	start := time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)
	id := uuid.New()

	mock.ExpectQuery(insertQuery).
		WithArgs(testUID, "focus", start, (*time.Time)(nil), 50, 10, "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	session := entity.TimedInterval{UserID: testUID, Kind: entity.KindFocus, StartAt: start, WorkMinutes: 50, BreakMinutes: 10}
	require.NoError(t, repo.Create(context.Background(), &session))
	assert.Equal(t, id, session.ID)
}

func TestStartExclusive(t *testing.T) {
	start := time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)
	newTrack := func() *entity.TimedInterval {
		return &entity.TimedInterval{UserID: testUID, Kind: entity.KindManual, StartAt: start, TaskName: "emails"}
	}

	testCases := []struct {
		Desc         string
		MockPrepFunc func(mock pgxmock.PgxPoolIface)
		WantClosed   int
		WantErr      error
		WantMsg      string
	}{
		{
			Desc: "closes the running track at the new start",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(testUID).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(closeOpenQuery).WithArgs(start, testUID, "manual").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(insertQuery).
					WithArgs(testUID, "manual", start, (*time.Time)(nil), 0, 0, "emails").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
				mock.ExpectCommit()
			},
			WantClosed: 1,
		},
		{
			Desc: "nothing was running",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(testUID).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(closeOpenQuery).WithArgs(start, testUID, "manual").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(insertQuery).
					WithArgs(testUID, "manual", start, (*time.Time)(nil), 0, 0, "emails").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
				mock.ExpectCommit()
			},
		},
		{
			Desc: "lost a race with another process",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(testUID).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(closeOpenQuery).WithArgs(start, testUID, "manual").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(insertQuery).
					WithArgs(testUID, "manual", start, (*time.Time)(nil), 0, 0, "emails").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
			WantErr: errorvalues.ErrIntervalAlreadyOpen,
		},
		{
			Desc: "lock failure",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(testUID).WillReturnError(errors.New("canceling statement"))
				mock.ExpectRollback()
			},
			WantErr: errorvalues.ErrStore,
			WantMsg: "locking user intervals",
		},
		{
			Desc: "closing the running track fails",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(testUID).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(closeOpenQuery).WithArgs(start, testUID, "manual").WillReturnError(errors.New("deadlock detected"))
				mock.ExpectRollback()
			},
			WantErr: errorvalues.ErrStore,
			WantMsg: "closing open intervals",
		},
		{
			Desc: "begin failure",
			MockPrepFunc: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			WantErr: errorvalues.ErrStore,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock := newMock(t)
			repo := repository.NewIntervalsRepoWithConn(mock)
			tc.MockPrepFunc(mock)
			track := newTrack()
			closed, err := repo.StartExclusive(context.Background(), track)
			if tc.WantErr != nil {
				assert.ErrorIs(t, err, tc.WantErr)
				if tc.WantMsg != "" {
					assert.ErrorContains(t, err, tc.WantMsg)
					assert.NotContains(t, err.Error(), "creating interval")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.WantClosed, closed)
			assert.NotEqual(t, uuid.Nil, track.ID)
		})
	}
}

func TestCloseLatest(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewIntervalsRepoWithConn(mock)
	start := time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)
	end := start.Add(50 * time.Minute)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE timed_intervals SET end_at = $1 WHERE id = (`)

	t.Run("closed", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(end, testUID, "focus").
			WillReturnRows(pgxmock.NewRows(intervalColumns).AddRow(id, testUID, "focus", start, &end, 50, 10, ""))
		session, err := repo.CloseLatest(context.Background(), testUID, entity.KindFocus, end)
		require.NoError(t, err)
		assert.Equal(t, entity.TimedInterval{
			ID: id, UserID: testUID, Kind: entity.KindFocus, StartAt: start, EndAt: &end, WorkMinutes: 50, BreakMinutes: 10,
		}, *session)
	})
	t.Run("nothing running", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(end, testUID, "manual").WillReturnError(pgx.ErrNoRows)
		_, err := repo.CloseLatest(context.Background(), testUID, entity.KindManual, end)
		assert.ErrorIs(t, err, errorvalues.ErrNoRunningInterval)
	})
}

func TestListStartedBetween(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewIntervalsRepoWithConn(mock)
	from := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	end := from.Add(2 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`start_at >= $3 AND start_at < $4 ORDER BY start_at;`)).
		WithArgs(testUID, "manual", from, to).
		WillReturnRows(pgxmock.NewRows(intervalColumns).
			AddRow(uuid.New(), testUID, "manual", from.Add(time.Hour), &end, 0, 0, "emails").
			AddRow(uuid.New(), testUID, "manual", from.Add(3*time.Hour), nil, 0, 0, "review"),
		)
	tracks, err := repo.ListStartedBetween(context.Background(), testUID, entity.KindManual, from, to)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.False(t, tracks[0].IsOpen())
	assert.True(t, tracks[1].IsOpen())
	assert.Equal(t, entity.KindManual, tracks[1].Kind)

	mock.ExpectQuery(regexp.QuoteMeta(`start_at >= $3 AND start_at < $4 ORDER BY start_at;`)).
		WithArgs(testUID, "focus", from, to).
		WillReturnError(errors.New("timeout"))
	_, err = repo.ListStartedBetween(context.Background(), testUID, entity.KindFocus, from, to)
	assert.ErrorIs(t, err, errorvalues.ErrStore)
}
