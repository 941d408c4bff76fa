package membership

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var membershipCols = []string{
	"id", "member_id", "package_id", "status", "start_date", "end_date",
	"amount_due_cents", "amount_paid_cents", "amount_pending_cents", "discount_cents", "payment_status",
	"visits_limit", "visits_used", "sessions_remaining", "frozen_at", "freeze_reason", "freeze_days_used",
	"cancelled_at", "cancel_reason", "created_at", "updated_at",
}

func setupMembershipMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := setupMembershipMock(t)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE memberships SET status = 'cancelled'")).
		WithArgs(at, "moved", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE installments SET status = 'cancelled'")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_plans SET status = 'cancelled'")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Cancel(context.Background(), 4, "moved", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_AlreadyTerminal(t *testing.T) {
	repo, mock := setupMembershipMock(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE memberships SET status = 'cancelled'")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Cancel(context.Background(), 4, "moved", at)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConsumeVisit_LimitReached(t *testing.T) {
	repo, mock := setupMembershipMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET visits_used = visits_used + 1")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows(membershipCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1)")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.ConsumeVisit(context.Background(), 8)
	assert.ErrorIs(t, err, ErrVisitLimitReached)
}

func TestRepository_ConsumeSession_Unknown(t *testing.T) {
	repo, mock := setupMembershipMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET sessions_remaining = sessions_remaining - 1")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows(membershipCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1)")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.ConsumeSession(context.Background(), 8)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestRepository_ExpireDue(t *testing.T) {
	repo, mock := setupMembershipMock(t)
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SET status = 'expired'")).
		WithArgs(today).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id"}).AddRow(1, 10).AddRow(2, 11))

	expired, err := repo.ExpireDue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, []Expired{{ID: 1, MemberID: 10}, {ID: 2, MemberID: 11}}, expired)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupMembershipMock(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM memberships m WHERE m.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(membershipCols).AddRow(
			1, 10, 2, StatusActive, start, start.AddDate(0, 0, 29),
			5000, 2000, 3000, 0, PaymentPartial,
			nil, 0, 2, nil, nil, 0,
			nil, nil, now, now,
		))

	m, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), m.AmountPendingCents)
	assert.Equal(t, -1, m.VisitsLeft())
}

func TestConsumeVisitWith_CallerTx(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	sqlxDB := sqlx.NewDb(conn, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE memberships AS m SET visits_used = visits_used + 1")).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "visits_used"}).AddRow(8, 3))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)
	m, err := ConsumeVisitWith(context.Background(), tx, 8)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 3, m.VisitsUsed)
	require.NoError(t, mock.ExpectationsWereMet())
}
