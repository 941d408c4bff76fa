package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

var sessionCols = []string{
	"id", "trainer_id", "member_id", "membership_id", "scheduled_at", "duration_minutes",
	"status", "notes", "created_at", "updated_at",
}

func setupSessionMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreate_TrainerBusy(t *testing.T) {
	repo, mock := setupSessionMock(t)
	at := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT id FROM staff WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM training_sessions WHERE trainer_id = $1 AND status = 'scheduled'")).
		WithArgs(1, at, at.Add(time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &TrainingSession{TrainerID: 1, MemberID: 20, ScheduledAt: at, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrTrainerBusy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := setupSessionMock(t)
	at := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("FOR UPDATE")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO training_sessions")).
		WithArgs(1, 20, nil, at, 45, StatusScheduled, "").
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(7, 1, 20, nil, at, 45, StatusScheduled, "", at, at))
	mock.ExpectCommit()

	ts, err := repo.Create(context.Background(), &TrainingSession{TrainerID: 1, MemberID: 20, ScheduledAt: at, DurationMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, 7, ts.ID)
	assert.Nil(t, ts.MembershipID)
}

func TestComplete_ConsumesIncludedSession(t *testing.T) {
	repo, mock := setupSessionMock(t)
	at := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM training_sessions WHERE id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(sessionCols).AddRow(7, 1, 20, 3, at, 60, StatusScheduled, "", at, at))
	mock.ExpectQuery(regexp.QuoteMeta("SET sessions_remaining = sessions_remaining - 1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sessions_remaining"}).AddRow(3, 4))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE training_sessions SET status = $1")).
		WithArgs(StatusCompleted, 7).
		WillReturnRows(sqlmock.NewRows(sessionCols).AddRow(7, 1, 20, 3, at, 60, StatusCompleted, "", at, at))
	mock.ExpectCommit()

	ts, err := repo.Complete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, ts.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_NoSessionsLeft(t *testing.T) {
	repo, mock := setupSessionMock(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM training_sessions WHERE id = $1 FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows(sessionCols).AddRow(7, 1, 20, 3, at, 60, StatusScheduled, "", at, at))
	mock.ExpectQuery(regexp.QuoteMeta("SET sessions_remaining = sessions_remaining - 1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1)")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, membership.ErrNoSessionsLeft)
}

func TestComplete_AlreadyFinished(t *testing.T) {
	repo, mock := setupSessionMock(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM training_sessions WHERE id = $1 FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows(sessionCols).AddRow(7, 1, 20, nil, at, 60, StatusCancelled, "", at, at))
	mock.ExpectRollback()

	_, err := repo.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_NotScheduled(t *testing.T) {
	repo, mock := setupSessionMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $3 AND status = 'scheduled'")).
		WithArgs(StatusCancelled, "", 7).
		WillReturnRows(sqlmock.NewRows(sessionCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM training_sessions WHERE id = $1)")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.Transition(context.Background(), 7, StatusCancelled, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
