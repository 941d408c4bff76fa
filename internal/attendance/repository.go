package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

const attendanceColumns = `id, member_id, membership_id, checked_in_at, checked_out_at, method, recorded_by`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CheckIn(ctx context.Context, a *Attendance, consumeVisit bool, dayStart time.Time) (*Attendance, error) {
	var created Attendance

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT id FROM members WHERE id = $1 FOR UPDATE`, a.MemberID); err != nil {
			return err
		}

		// A visit left open overnight is closed at its check-in time.
		if _, err := tx.ExecContext(ctx, `
			UPDATE attendance SET checked_out_at = checked_in_at
			WHERE member_id = $1 AND checked_out_at IS NULL AND checked_in_at < $2`,
			a.MemberID, dayStart); err != nil {
			return err
		}

		open, err := db.Exists(ctx, tx,
			`SELECT EXISTS(SELECT 1 FROM attendance WHERE member_id = $1 AND checked_out_at IS NULL)`, a.MemberID)
		if err != nil {
			return err
		}
		if open {
			return ErrAlreadyCheckedIn
		}

		if consumeVisit && a.MembershipID != nil {
			if _, err := membership.ConsumeVisitWith(ctx, tx, *a.MembershipID); err != nil {
				return err
			}
		}

		err = tx.GetContext(ctx, &created, `
			INSERT INTO attendance (member_id, membership_id, checked_in_at, method, recorded_by)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+attendanceColumns,
			a.MemberID, a.MembershipID, a.CheckedInAt, a.Method, a.RecordedBy)
		if db.IsUniqueViolation(err) {
			return ErrAlreadyCheckedIn
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) CheckOut(ctx context.Context, id int, at time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a, `
		UPDATE attendance SET checked_out_at = $1
		WHERE id = $2 AND checked_out_at IS NULL
		RETURNING `+attendanceColumns, at, id)
	if errors.Is(err, sql.ErrNoRows) {
		found, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM attendance WHERE id = $1)`, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrAttendanceNotFound
		}
		return nil, ErrAlreadyCheckedOut
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID, limit, offset int) ([]Attendance, error) {
	out := []Attendance{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+attendanceColumns+` FROM attendance
		WHERE member_id = $1
		ORDER BY checked_in_at DESC
		LIMIT $2 OFFSET $3`, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]Detail, error) {
	out := []Detail{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT a.id, a.member_id, a.membership_id, a.checked_in_at, a.checked_out_at, a.method, a.recorded_by,
			m.first_name AS member_first_name, m.last_name AS member_last_name
		FROM attendance a
		JOIN members m ON m.id = a.member_id
		WHERE a.checked_in_at >= $1 AND a.checked_in_at < $2
		ORDER BY a.checked_in_at`, from, to)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountByDay returns one row per UTC day that had at least one check-in.
func (r *repository) CountByDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	out := []DayCount{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT date_trunc('day', checked_in_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count
		FROM attendance
		WHERE checked_in_at >= $1 AND checked_in_at < $2
		GROUP BY 1
		ORDER BY 1`, from, to)
	if err != nil {
		return nil, err
	}
	return out, nil
}
