package paymentplan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
)

const planColumns = `id, membership_id, total_cents, down_payment_cents, installment_count, frequency,
	start_date, late_fee_type, late_fee_value, grace_days, status, created_at`

const installmentColumns = `i.id, i.plan_id, i.membership_id, i.sequence, i.due_date, i.amount_cents,
	i.paid_cents, i.late_fee_cents, i.late_fee_applied, i.status, i.paid_at`

const installmentDetailColumns = installmentColumns + `,
	mb.id AS member_id, mb.first_name AS member_first_name, mb.last_name AS member_last_name,
	mb.email AS member_email`

const installmentDetailFrom = ` FROM installments i
	JOIN memberships m ON m.id = i.membership_id
	JOIN members mb ON mb.id = m.member_id`

// CompletePlanSQL marks a plan completed once none of its installments are open.
const CompletePlanSQL = `
	UPDATE payment_plans SET status = 'completed'
	WHERE id = $1 AND status = 'active'
	  AND NOT EXISTS (
		SELECT 1 FROM installments WHERE plan_id = $1 AND status IN ('pending', 'partial', 'overdue')
	  )`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePlan(ctx context.Context, membershipID int, build BuildFunc) (*PaymentPlan, error) {
	var plan *PaymentPlan

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var snap struct {
			Status  string `db:"status"`
			Pending int64  `db:"amount_pending_cents"`
		}
		err := tx.GetContext(ctx, &snap,
			`SELECT status, amount_pending_cents FROM memberships WHERE id = $1 FOR UPDATE`, membershipID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMembershipNotFound
		}
		if err != nil {
			return err
		}
		if snap.Status == "cancelled" || snap.Status == "expired" {
			return ErrMembershipClosed
		}

		exists, err := db.Exists(ctx, tx,
			`SELECT EXISTS(SELECT 1 FROM payment_plans WHERE membership_id = $1 AND status = 'active')`, membershipID)
		if err != nil {
			return err
		}
		if exists {
			return ErrActivePlanExists
		}

		plan, err = build(snap.Pending)
		if err != nil {
			return err
		}
		plan.MembershipID = membershipID

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO payment_plans (membership_id, total_cents, down_payment_cents, installment_count,
				frequency, start_date, late_fee_type, late_fee_value, grace_days, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at`,
			plan.MembershipID, plan.TotalCents, plan.DownPaymentCents, plan.InstallmentCount,
			plan.Frequency, plan.StartDate, plan.LateFeeType, plan.LateFeeValue, plan.GraceDays, plan.Status,
		).Scan(&plan.ID, &plan.CreatedAt)
		if err != nil {
			return err
		}

		for idx := range plan.Installments {
			inst := &plan.Installments[idx]
			inst.PlanID = plan.ID
			inst.MembershipID = membershipID
			err := tx.QueryRowxContext(ctx, `
				INSERT INTO installments (plan_id, membership_id, sequence, due_date, amount_cents, status)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
				inst.PlanID, inst.MembershipID, inst.Sequence, inst.DueDate, inst.AmountCents, inst.Status,
			).Scan(&inst.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *repository) GetPlan(ctx context.Context, id int) (*PaymentPlan, error) {
	return r.getPlan(ctx, `SELECT `+planColumns+` FROM payment_plans WHERE id = $1`, id)
}

// GetByMembership returns the most recent plan of the membership.
func (r *repository) GetByMembership(ctx context.Context, membershipID int) (*PaymentPlan, error) {
	return r.getPlan(ctx, `SELECT `+planColumns+` FROM payment_plans
		WHERE membership_id = $1 ORDER BY id DESC LIMIT 1`, membershipID)
}

func (r *repository) getPlan(ctx context.Context, query string, arg int) (*PaymentPlan, error) {
	var plan PaymentPlan
	err := r.db.GetContext(ctx, &plan, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	plan.Installments = []Installment{}
	err = r.db.SelectContext(ctx, &plan.Installments,
		`SELECT `+installmentColumns+` FROM installments i WHERE i.plan_id = $1 ORDER BY i.sequence`, plan.ID)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) ListOverdue(ctx context.Context) ([]InstallmentDetail, error) {
	out := []InstallmentDetail{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+installmentDetailColumns+installmentDetailFrom+`
		WHERE i.status = 'overdue'
		ORDER BY i.due_date, i.id`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListUpcoming(ctx context.Context, from, to time.Time) ([]InstallmentDetail, error) {
	out := []InstallmentDetail{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+installmentDetailColumns+installmentDetailFrom+`
		WHERE i.status IN ('pending', 'partial') AND i.due_date BETWEEN $1 AND $2
		ORDER BY i.due_date, i.id`, from, to)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) OverdueTotals(ctx context.Context) (int, int64, error) {
	var totals struct {
		Count int   `db:"count"`
		Cents int64 `db:"cents"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS count, COALESCE(SUM(amount_cents + late_fee_cents - paid_cents), 0) AS cents
		FROM installments WHERE status = 'overdue'`)
	if err != nil {
		return 0, 0, err
	}
	return totals.Count, totals.Cents, nil
}

type sweepRow struct {
	InstallmentDetail
	LateFeeType  string `db:"plan_late_fee_type"`
	LateFeeValue int64  `db:"plan_late_fee_value"`
	GraceDays    int    `db:"plan_grace_days"`
}

// ApplyLateFees marks open installments past due as overdue and adds the
// assessed fee to both the installment and its membership balance.
func (r *repository) ApplyLateFees(ctx context.Context, today time.Time, assess AssessFunc) ([]Assessment, error) {
	var out []Assessment

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Memberships before installments, the same order payments use.
		_, err := tx.ExecContext(ctx, `
			SELECT 1 FROM memberships
			WHERE id IN (
				SELECT membership_id FROM installments
				WHERE status IN ('pending', 'partial', 'overdue') AND due_date < $1)
			ORDER BY id
			FOR UPDATE`, today)
		if err != nil {
			return err
		}

		var rows []sweepRow
		err = tx.SelectContext(ctx, &rows, `SELECT `+installmentDetailColumns+`,
				p.late_fee_type AS plan_late_fee_type, p.late_fee_value AS plan_late_fee_value,
				p.grace_days AS plan_grace_days`+installmentDetailFrom+`
			JOIN payment_plans p ON p.id = i.plan_id
			WHERE i.status IN ('pending', 'partial', 'overdue') AND i.due_date < $1
			ORDER BY i.id
			FOR UPDATE OF i`, today)
		if err != nil {
			return err
		}

		for _, row := range rows {
			plan := &PaymentPlan{ID: row.PlanID, LateFeeType: row.LateFeeType, LateFeeValue: row.LateFeeValue, GraceDays: row.GraceDays}
			fee := assess(&row.Installment, plan)
			newly := row.Status != StatusOverdue
			if fee == 0 && !newly {
				continue
			}

			_, err := tx.ExecContext(ctx, `
				UPDATE installments
				SET status = 'overdue', late_fee_cents = late_fee_cents + $1,
					late_fee_applied = late_fee_applied OR $1 > 0
				WHERE id = $2`, fee, row.ID)
			if err != nil {
				return err
			}

			if fee > 0 {
				if err := adjustMembershipDue(ctx, tx, row.MembershipID, fee); err != nil {
					return err
				}
			}

			row.Status = StatusOverdue
			row.LateFeeCents += fee
			row.LateFeeApplied = row.LateFeeApplied || fee > 0
			out = append(out, Assessment{InstallmentDetail: row.InstallmentDetail, FeeCents: fee, NewlyOverdue: newly})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Waive(ctx context.Context, installmentID int, includePrincipal bool, today time.Time) (*Installment, int64, error) {
	var inst Installment
	var waived int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Membership first, matching the lock order of payments.
		_, err := tx.ExecContext(ctx, `
			SELECT 1 FROM memberships
			WHERE id = (SELECT membership_id FROM installments WHERE id = $1)
			FOR UPDATE`, installmentID)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &inst,
			`SELECT `+installmentColumns+` FROM installments i WHERE i.id = $1 FOR UPDATE`, installmentID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInstallmentNotFound
		}
		if err != nil {
			return err
		}

		waived = applyWaiver(&inst, includePrincipal, today)
		if waived == 0 {
			return ErrNothingToWaive
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE installments SET late_fee_cents = $1, status = $2, paid_at = $3 WHERE id = $4`,
			inst.LateFeeCents, inst.Status, inst.PaidAt, inst.ID)
		if err != nil {
			return err
		}

		if err := adjustMembershipDue(ctx, tx, inst.MembershipID, -waived); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, CompletePlanSQL, inst.PlanID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return &inst, waived, nil
}

// applyWaiver forgives the unpaid late fee, or the whole outstanding balance
// when includePrincipal is set, and returns the forgiven amount.
func applyWaiver(inst *Installment, includePrincipal bool, today time.Time) int64 {
	if !inst.Open() {
		return 0
	}

	outstanding := inst.Outstanding()
	principal := inst.AmountCents - inst.PaidCents
	if principal < 0 {
		principal = 0
	}
	unpaidFee := outstanding - principal
	inst.LateFeeCents -= unpaidFee

	if includePrincipal {
		inst.Status = StatusWaived
		return outstanding
	}
	if unpaidFee == 0 {
		return 0
	}

	inst.Status = StatusFor(inst, today)
	if inst.Status == StatusPaid && inst.PaidAt == nil {
		inst.PaidAt = &today
	}
	return unpaidFee
}

// adjustMembershipDue shifts a membership's due and pending amounts by delta
// and re-derives its payment status.
func adjustMembershipDue(ctx context.Context, tx *sqlx.Tx, membershipID int, delta int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE memberships
		SET amount_due_cents = amount_due_cents + $1,
			amount_pending_cents = GREATEST(amount_pending_cents + $1, 0),
			payment_status = CASE
				WHEN amount_paid_cents >= amount_due_cents + $1 THEN 'paid'
				WHEN amount_paid_cents > 0 THEN 'partial'
				ELSE 'unpaid'
			END,
			updated_at = NOW()
		WHERE id = $2`, delta, membershipID)
	return err
}
