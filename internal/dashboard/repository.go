package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) sum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) CountActiveMembers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM members WHERE status = 'active'`)
}

func (r *repository) CountNewMembers(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM members WHERE joined_at >= $1 AND joined_at < $2`, from, to)
}

func (r *repository) MembershipsByStatus(ctx context.Context) ([]StatusCount, error) {
	out := []StatusCount{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT status, COUNT(*) AS count
		FROM memberships
		WHERE status IN ('active', 'trial', 'frozen')
		GROUP BY status`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Revenue(ctx context.Context, from, to time.Time) (int64, error) {
	return r.sum(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM payments
		WHERE status = 'completed' AND paid_at >= $1 AND paid_at < $2`, from, to)
}

func (r *repository) Outstanding(ctx context.Context) (int64, error) {
	return r.sum(ctx, `
		SELECT COALESCE(SUM(amount_pending_cents), 0) FROM memberships
		WHERE status <> 'cancelled'`)
}

// Overdue counts open installments past their due date, whether or not the
// sweep has flagged them yet.
func (r *repository) Overdue(ctx context.Context, today time.Time) (*Overdue, error) {
	var o Overdue
	err := r.db.GetContext(ctx, &o, `
		SELECT COUNT(*) AS count,
			COALESCE(SUM(amount_cents + late_fee_cents - paid_cents), 0) AS cents
		FROM installments
		WHERE status IN ('pending', 'partial', 'overdue') AND due_date < $1`, today)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CountCheckins(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM attendance WHERE checked_in_at >= $1 AND checked_in_at < $2`, from, to)
}

func (r *repository) CountExpiring(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM memberships
		WHERE status IN ('active', 'trial') AND end_date >= $1 AND end_date < $2`, from, to)
}

func (r *repository) RevenueByMonth(ctx context.Context, from time.Time) ([]MonthRevenue, error) {
	out := []MonthRevenue{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT date_trunc('month', paid_at AT TIME ZONE 'UTC') AS month,
			COALESCE(SUM(amount_cents), 0) AS revenue_cents,
			COUNT(*) AS payments
		FROM payments
		WHERE status = 'completed' AND paid_at >= $1
		GROUP BY 1
		ORDER BY 1`, from)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) PackagePopularity(ctx context.Context) ([]PackageStat, error) {
	out := []PackageStat{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT p.id AS package_id, p.name,
			COUNT(m.id) AS sold,
			COUNT(m.id) FILTER (WHERE m.status IN ('active', 'trial', 'frozen')) AS active,
			COALESCE(SUM(m.amount_paid_cents), 0) AS revenue_cents
		FROM membership_packages p
		LEFT JOIN memberships m ON m.package_id = p.id
		GROUP BY p.id, p.name
		ORDER BY sold DESC, p.name`)
	if err != nil {
		return nil, err
	}
	return out, nil
}
