package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

const paymentColumns = `id, member_id, membership_id, amount_cents, method, status, reference, idempotency_key,
	received_by, notes, paid_at, refunded_at, refund_reason, created_at`

const openInstallmentsQuery = `
	SELECT i.id, i.plan_id, i.membership_id, i.sequence, i.due_date, i.amount_cents,
		i.paid_cents, i.late_fee_cents, i.late_fee_applied, i.status, i.paid_at
	FROM installments i
	WHERE i.membership_id = $1 AND i.status IN ('pending', 'partial', 'overdue')
	ORDER BY i.due_date, i.sequence
	FOR UPDATE`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Record applies a payment to a membership in one transaction: the
// membership row is locked, the balance checked, installments credited and
// the membership totals rewritten before the payment row is committed.
func (r *repository) Record(ctx context.Context, p *Payment, installmentID *int, today time.Time) (*Result, error) {
	var res *Result

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		m, err := lockMembership(ctx, tx, p.MembershipID)
		if err != nil {
			return err
		}

		if p.IdempotencyKey != nil {
			prior, err := findByKey(ctx, tx, *p.IdempotencyKey)
			if err != nil {
				return err
			}
			if prior != nil {
				if prior.MembershipID != p.MembershipID || prior.AmountCents != p.AmountCents {
					return ErrIdempotencyConflict
				}
				res = &Result{Payment: prior, Replayed: true}
				res.fill(m)
				return nil
			}
		}

		if m.Status == membership.StatusCancelled {
			return ErrMembershipCancelled
		}
		if p.AmountCents > m.AmountPendingCents {
			return ErrOverpayment
		}

		var open []paymentplan.Installment
		if err := tx.SelectContext(ctx, &open, openInstallmentsQuery, m.ID); err != nil {
			return err
		}

		allocations, err := Allocate(p.AmountCents, open, installmentID)
		if err != nil {
			return err
		}

		p.MemberID = m.MemberID
		p.Status = StatusCompleted
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO payments (member_id, membership_id, amount_cents, method, status, reference,
				idempotency_key, received_by, notes, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at`,
			p.MemberID, p.MembershipID, p.AmountCents, p.Method, p.Status, p.Reference,
			p.IdempotencyKey, p.ReceivedBy, p.Notes, p.PaidAt,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			if db.IsUniqueViolation(err) {
				return ErrIdempotencyConflict
			}
			return err
		}

		plans := map[int]bool{}
		byID := make(map[int]*paymentplan.Installment, len(open))
		for i := range open {
			byID[open[i].ID] = &open[i]
		}

		for idx := range allocations {
			a := &allocations[idx]
			a.PaymentID = p.ID
			inst := byID[a.InstallmentID]
			inst.PaidCents += a.AmountCents
			inst.Status = paymentplan.StatusFor(inst, today)
			if inst.Status == paymentplan.StatusPaid {
				paidAt := p.PaidAt
				inst.PaidAt = &paidAt
			}

			if err := saveInstallmentPayment(ctx, tx, inst); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO payment_allocations (payment_id, installment_id, amount_cents) VALUES ($1, $2, $3)`,
				a.PaymentID, a.InstallmentID, a.AmountCents,
			); err != nil {
				return err
			}
			plans[inst.PlanID] = true
		}
		p.Allocations = allocations

		m.AmountPaidCents += p.AmountCents
		m.UpdateAmounts()
		if err := saveMembershipAmounts(ctx, tx, m); err != nil {
			return err
		}

		for planID := range plans {
			if _, err := tx.ExecContext(ctx, paymentplan.CompletePlanSQL, planID); err != nil {
				return err
			}
		}

		res = &Result{Payment: p}
		res.fill(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Refund reverses a completed payment and every installment credit it made.
func (r *repository) Refund(ctx context.Context, paymentID int, reason string, at time.Time) (*Result, error) {
	var res *Result

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var p Payment
		err := tx.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, paymentID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPaymentNotFound
		}
		if err != nil {
			return err
		}

		m, err := lockMembership(ctx, tx, p.MembershipID)
		if err != nil {
			return err
		}

		// Re-read under the membership lock so two refunds cannot both pass.
		if err := tx.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, paymentID); err != nil {
			return err
		}
		if p.Status == StatusRefunded {
			return ErrAlreadyRefunded
		}

		var allocations []Allocation
		if err := tx.SelectContext(ctx, &allocations,
			`SELECT payment_id, installment_id, amount_cents FROM payment_allocations WHERE payment_id = $1`, p.ID); err != nil {
			return err
		}

		for _, a := range allocations {
			var inst paymentplan.Installment
			err := tx.GetContext(ctx, &inst, `
				SELECT id, plan_id, membership_id, sequence, due_date, amount_cents, paid_cents,
					late_fee_cents, late_fee_applied, status, paid_at
				FROM installments WHERE id = $1 FOR UPDATE`, a.InstallmentID)
			if err != nil {
				return err
			}

			inst.PaidCents -= a.AmountCents
			if inst.PaidCents < 0 {
				inst.PaidCents = 0
			}
			if inst.Status != paymentplan.StatusCancelled && inst.Status != paymentplan.StatusWaived {
				inst.Status = paymentplan.StatusFor(&inst, at)
			}
			if inst.Status != paymentplan.StatusPaid {
				inst.PaidAt = nil
			}
			if err := saveInstallmentPayment(ctx, tx, &inst); err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx,
				`UPDATE payment_plans SET status = 'active' WHERE id = $1 AND status = 'completed'`, inst.PlanID); err != nil {
				return err
			}
		}

		m.AmountPaidCents -= p.AmountCents
		if m.AmountPaidCents < 0 {
			m.AmountPaidCents = 0
		}
		m.UpdateAmounts()
		if err := saveMembershipAmounts(ctx, tx, m); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE payments SET status = 'refunded', refunded_at = $1, refund_reason = $2 WHERE id = $3`,
			at, reason, p.ID); err != nil {
			return err
		}

		p.Status = StatusRefunded
		p.RefundedAt = &at
		p.RefundReason = &reason
		p.Allocations = allocations
		res = &Result{Payment: &p}
		res.fill(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Allocations = []Allocation{}
	err = r.db.SelectContext(ctx, &p.Allocations,
		`SELECT payment_id, installment_id, amount_cents FROM payment_allocations WHERE payment_id = $1 ORDER BY installment_id`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE ($1 = 0 OR member_id = $1)
		  AND ($2 = 0 OR membership_id = $2)
		  AND ($3 = '' OR method = $3)
		  AND ($4::timestamptz IS NULL OR paid_at >= $4)
		  AND ($5::timestamptz IS NULL OR paid_at < $5)
		ORDER BY paid_at DESC, id DESC
		LIMIT $6 OFFSET $7`

	out := []Payment{}
	err := r.db.SelectContext(ctx, &out, query,
		filter.MemberID, filter.MembershipID, filter.Method, filter.From, filter.To, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summary totals completed payments with paid_at in [from, to).
func (r *repository) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	s := &Summary{From: from, To: to, ByMethod: []MethodTotal{}}
	err := r.db.SelectContext(ctx, &s.ByMethod, `
		SELECT method, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS total_cents
		FROM payments
		WHERE status = 'completed' AND paid_at >= $1 AND paid_at < $2
		GROUP BY method
		ORDER BY method`, from, to)
	if err != nil {
		return nil, err
	}

	for _, m := range s.ByMethod {
		s.Count += m.Count
		s.TotalCents += m.TotalCents
	}
	return s, nil
}

func lockMembership(ctx context.Context, tx *sqlx.Tx, id int) (*membership.Membership, error) {
	var m membership.Membership
	err := tx.GetContext(ctx, &m, `
		SELECT id, member_id, status, amount_due_cents, amount_paid_cents, amount_pending_cents, payment_status
		FROM memberships WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, membership.ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func findByKey(ctx context.Context, tx *sqlx.Tx, key string) (*Payment, error) {
	var p Payment
	err := tx.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE idempotency_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Allocations = []Allocation{}
	err = tx.SelectContext(ctx, &p.Allocations,
		`SELECT payment_id, installment_id, amount_cents FROM payment_allocations WHERE payment_id = $1`, p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func saveInstallmentPayment(ctx context.Context, tx *sqlx.Tx, inst *paymentplan.Installment) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE installments SET paid_cents = $1, status = $2, paid_at = $3 WHERE id = $4`,
		inst.PaidCents, inst.Status, inst.PaidAt, inst.ID)
	return err
}

func saveMembershipAmounts(ctx context.Context, tx *sqlx.Tx, m *membership.Membership) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE memberships
		SET amount_paid_cents = $1, amount_pending_cents = $2, payment_status = $3, updated_at = NOW()
		WHERE id = $4`,
		m.AmountPaidCents, m.AmountPendingCents, m.PaymentStatus, m.ID)
	return err
}

func (res *Result) fill(m *membership.Membership) {
	res.AmountPaid = m.AmountPaidCents
	res.AmountPending = m.AmountPendingCents
	res.PaymentStatus = m.PaymentStatus
}
