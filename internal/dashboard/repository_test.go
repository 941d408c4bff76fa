package dashboard

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRevenue(t *testing.T) {
	repo, mock := setupDashboardMock(t)
	from, to := date(2024, 3, 1), date(2024, 4, 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE status = 'completed'")).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(125000)))

	got, err := repo.Revenue(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverdue(t *testing.T) {
	repo, mock := setupDashboardMock(t)
	today := date(2024, 3, 10)

	mock.ExpectQuery(regexp.QuoteMeta("FROM installments WHERE status IN ('pending', 'partial', 'overdue') AND due_date < $1")).
		WithArgs(today).
		WillReturnRows(sqlmock.NewRows([]string{"count", "cents"}).AddRow(3, int64(42000)))

	got, err := repo.Overdue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, &Overdue{Count: 3, Cents: 42000}, got)
}

func TestMembershipsByStatus(t *testing.T) {
	repo, mock := setupDashboardMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("active", 80).
			AddRow("trial", 4))

	got, err := repo.MembershipsByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{{Status: "active", Count: 80}, {Status: "trial", Count: 4}}, got)
}

func TestPackagePopularity(t *testing.T) {
	repo, mock := setupDashboardMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN memberships m ON m.package_id = p.id")).
		WillReturnRows(sqlmock.NewRows([]string{"package_id", "name", "sold", "active", "revenue_cents"}).
			AddRow(2, "Monthly", 40, 31, int64(1200000)).
			AddRow(1, "Day pass", 12, 0, int64(36000)))

	got, err := repo.PackagePopularity(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Monthly", got[0].Name)
	assert.Equal(t, 31, got[0].Active)
}
