package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
)

const membershipColumns = `m.id, m.member_id, m.package_id, m.status, m.start_date, m.end_date,
	m.amount_due_cents, m.amount_paid_cents, m.amount_pending_cents, m.discount_cents, m.payment_status,
	m.visits_limit, m.visits_used, m.sessions_remaining, m.frozen_at, m.freeze_reason, m.freeze_days_used,
	m.cancelled_at, m.cancel_reason, m.created_at, m.updated_at`

const detailColumns = membershipColumns + `,
	mb.first_name AS member_first_name, mb.last_name AS member_last_name, mb.email AS member_email,
	p.name AS package_name`

const detailFrom = ` FROM memberships m
	JOIN members mb ON mb.id = m.member_id
	JOIN membership_packages p ON p.id = m.package_id`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Membership) (*Membership, error) {
	query := `
		INSERT INTO memberships AS m (member_id, package_id, status, start_date, end_date,
			amount_due_cents, amount_paid_cents, amount_pending_cents, discount_cents, payment_status,
			visits_limit, sessions_remaining)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + membershipColumns

	var created Membership
	err := r.db.GetContext(ctx, &created, query,
		m.MemberID, m.PackageID, m.Status, m.StartDate, m.EndDate,
		m.AmountDueCents, m.AmountPaidCents, m.AmountPendingCents, m.DiscountCents, m.PaymentStatus,
		m.VisitsLimit, m.SessionsRemaining,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	var m Membership
	err := r.db.GetContext(ctx, &m, `SELECT `+membershipColumns+` FROM memberships m WHERE m.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetDetail(ctx context.Context, id int) (*Detail, error) {
	var d Detail
	err := r.db.GetContext(ctx, &d, `SELECT `+detailColumns+detailFrom+` WHERE m.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Detail, error) {
	query := `SELECT ` + detailColumns + detailFrom + `
		WHERE ($1 = '' OR m.status = $1)
		ORDER BY m.end_date DESC, m.id DESC
		LIMIT $2 OFFSET $3`

	out := []Detail{}
	if err := r.db.SelectContext(ctx, &out, query, filter.Status, filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships m
		WHERE m.member_id = $1
		ORDER BY m.start_date DESC, m.id DESC`

	out := []Membership{}
	if err := r.db.SelectContext(ctx, &out, query, memberID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListExpiring(ctx context.Context, from, to time.Time) ([]Detail, error) {
	query := `SELECT ` + detailColumns + detailFrom + `
		WHERE m.status IN ('active', 'trial')
		  AND m.end_date BETWEEN $1 AND $2
		ORDER BY m.end_date, m.id`

	out := []Detail{}
	if err := r.db.SelectContext(ctx, &out, query, from, to); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveState persists the lifecycle fields touched by freeze and unfreeze.
func (r *repository) SaveState(ctx context.Context, m *Membership) error {
	query := `
		UPDATE memberships
		SET status = $1, end_date = $2, frozen_at = $3, freeze_reason = $4, freeze_days_used = $5,
			updated_at = NOW()
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query, m.Status, m.EndDate, m.FrozenAt, m.FreezeReason, m.FreezeDaysUsed, m.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMembershipNotFound
	}
	return nil
}

// Cancel closes the membership together with its open plan and installments.
func (r *repository) Cancel(ctx context.Context, id int, reason string, at time.Time) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE memberships
			SET status = 'cancelled', cancelled_at = $1, cancel_reason = $2, frozen_at = NULL, updated_at = NOW()
			WHERE id = $3 AND status NOT IN ('cancelled', 'expired')`,
			at, reason, id,
		)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrInvalidTransition
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE installments SET status = 'cancelled'
			WHERE membership_id = $1 AND status IN ('pending', 'partial', 'overdue')`, id); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE payment_plans SET status = 'cancelled'
			WHERE membership_id = $1 AND status = 'active'`, id)
		return err
	})
}

func (r *repository) ExpireDue(ctx context.Context, today time.Time) ([]Expired, error) {
	query := `
		UPDATE memberships
		SET status = 'expired', frozen_at = NULL, updated_at = NOW()
		WHERE status IN ('active', 'trial', 'frozen') AND end_date < $1
		RETURNING id, member_id`

	out := []Expired{}
	if err := r.db.SelectContext(ctx, &out, query, today); err != nil {
		return nil, err
	}
	return out, nil
}

const (
	consumeVisitSQL = `
		UPDATE memberships AS m
		SET visits_used = visits_used + 1, updated_at = NOW()
		WHERE m.id = $1 AND (m.visits_limit IS NULL OR m.visits_used < m.visits_limit)
		RETURNING ` + membershipColumns

	consumeSessionSQL = `
		UPDATE memberships AS m
		SET sessions_remaining = sessions_remaining - 1, updated_at = NOW()
		WHERE m.id = $1 AND m.sessions_remaining > 0
		RETURNING ` + membershipColumns
)

func (r *repository) ConsumeVisit(ctx context.Context, id int) (*Membership, error) {
	return ConsumeVisitWith(ctx, r.db, id)
}

func (r *repository) ConsumeSession(ctx context.Context, id int) (*Membership, error) {
	return ConsumeSessionWith(ctx, r.db, id)
}

// ConsumeVisitWith uses one visit of membership id through q, which may be a
// transaction owned by the caller. Unlimited memberships only count the visit.
func ConsumeVisitWith(ctx context.Context, q sqlx.QueryerContext, id int) (*Membership, error) {
	return consume(ctx, q, consumeVisitSQL, id, ErrVisitLimitReached)
}

// ConsumeSessionWith takes one included training session through q.
func ConsumeSessionWith(ctx context.Context, q sqlx.QueryerContext, id int) (*Membership, error) {
	return consume(ctx, q, consumeSessionSQL, id, ErrNoSessionsLeft)
}

func consume(ctx context.Context, q sqlx.QueryerContext, query string, id int, exhausted error) (*Membership, error) {
	var m Membership
	err := sqlx.GetContext(ctx, q, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		found, err := db.Exists(ctx, q, `SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1)`, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrMembershipNotFound
		}
		return nil, exhausted
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
