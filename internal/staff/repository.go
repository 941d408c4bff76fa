package staff

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
)

const staffColumns = `id, user_id, name, email, phone, role, compensation_type, base_pay_cents,
	commission_per_session_cents, commission_rate_bps, hired_at, active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Staff) (*Staff, error) {
	query := `
		INSERT INTO staff (user_id, name, email, phone, role, compensation_type, base_pay_cents,
			commission_per_session_cents, commission_rate_bps, hired_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
		RETURNING ` + staffColumns

	var created Staff
	err := r.db.GetContext(ctx, &created, query,
		s.UserID, s.Name, s.Email, s.Phone, s.Role, s.CompensationType, s.BasePayCents,
		s.CommissionPerSessionCents, s.CommissionRateBps, s.HiredAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Staff, error) {
	var s Staff
	err := r.db.GetContext(ctx, &s, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Staff, error) {
	out := []Staff{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+staffColumns+` FROM staff
		WHERE ($1 = '' OR role = $1) AND ($2 = false OR active = true)
		ORDER BY name, id`, filter.Role, filter.ActiveOnly)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, s *Staff) (*Staff, error) {
	query := `
		UPDATE staff
		SET name = $1, email = $2, phone = $3, role = $4, compensation_type = $5, base_pay_cents = $6,
			commission_per_session_cents = $7, commission_rate_bps = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + staffColumns

	var updated Staff
	err := r.db.GetContext(ctx, &updated, query,
		s.Name, s.Email, s.Phone, s.Role, s.CompensationType, s.BasePayCents,
		s.CommissionPerSessionCents, s.CommissionRateBps, s.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE staff SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// ReplaceShifts swaps the whole weekly schedule in one transaction.
func (r *repository) ReplaceShifts(ctx context.Context, staffID int, shifts []Shift) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM staff_shifts WHERE staff_id = $1`, staffID); err != nil {
			return err
		}
		for _, s := range shifts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO staff_shifts (staff_id, weekday, start_time, end_time) VALUES ($1, $2, $3, $4)`,
				staffID, s.Weekday, s.StartTime, s.EndTime)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) ListShifts(ctx context.Context, staffID int) ([]Shift, error) {
	out := []Shift{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, staff_id, weekday, start_time, end_time
		FROM staff_shifts WHERE staff_id = $1
		ORDER BY weekday, start_time`, staffID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignClient relies on the partial unique index over open assignments to
// keep one active trainer per member.
func (r *repository) AssignClient(ctx context.Context, trainerID, memberID int) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `
		WITH ins AS (
			INSERT INTO trainer_clients (trainer_id, member_id)
			VALUES ($1, $2)
			RETURNING trainer_id, member_id, assigned_at, ended_at
		)
		SELECT ins.trainer_id, ins.member_id, m.first_name AS member_first_name,
			m.last_name AS member_last_name, ins.assigned_at, ins.ended_at
		FROM ins JOIN members m ON m.id = ins.member_id`, trainerID, memberID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrClientAssigned
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) EndAssignment(ctx context.Context, trainerID, memberID int, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE trainer_clients SET ended_at = $1
		WHERE trainer_id = $2 AND member_id = $3 AND ended_at IS NULL`, at, trainerID, memberID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *repository) ListClients(ctx context.Context, trainerID int) ([]Client, error) {
	out := []Client{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT tc.trainer_id, tc.member_id, m.first_name AS member_first_name,
			m.last_name AS member_last_name, tc.assigned_at, tc.ended_at
		FROM trainer_clients tc
		JOIN members m ON m.id = tc.member_id
		WHERE tc.trainer_id = $1 AND tc.ended_at IS NULL
		ORDER BY m.last_name, m.first_name`, trainerID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) CompletedSessions(ctx context.Context, trainerID int, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM training_sessions
		WHERE trainer_id = $1 AND status = 'completed' AND scheduled_at >= $2 AND scheduled_at < $3`,
		trainerID, from, to)
	return n, err
}

// ClientPayments sums completed payments made by members while they were
// assigned to the trainer.
func (r *repository) ClientPayments(ctx context.Context, trainerID int, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(p.amount_cents), 0)
		FROM payments p
		JOIN trainer_clients tc ON tc.member_id = p.member_id AND tc.trainer_id = $1
		WHERE p.status = 'completed'
		  AND p.paid_at >= $2 AND p.paid_at < $3
		  AND p.paid_at >= tc.assigned_at
		  AND (tc.ended_at IS NULL OR p.paid_at < tc.ended_at)`,
		trainerID, from, to)
	return total, err
}
