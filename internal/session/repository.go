package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

const sessionColumns = `id, trainer_id, member_id, membership_id, scheduled_at, duration_minutes,
	status, notes, created_at, updated_at`

const detailQuery = `
	SELECT s.id, s.trainer_id, s.member_id, s.membership_id, s.scheduled_at, s.duration_minutes,
		s.status, s.notes, s.created_at, s.updated_at,
		st.name AS trainer_name, m.first_name AS member_first_name, m.last_name AS member_last_name
	FROM training_sessions s
	JOIN staff st ON st.id = s.trainer_id
	JOIN members m ON m.id = s.member_id`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *TrainingSession) (*TrainingSession, error) {
	var created TrainingSession

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Serialize bookings per trainer.
		if _, err := tx.ExecContext(ctx, `SELECT id FROM staff WHERE id = $1 FOR UPDATE`, s.TrainerID); err != nil {
			return err
		}

		var clash bool
		err := tx.GetContext(ctx, &clash, `
			SELECT EXISTS(
				SELECT 1 FROM training_sessions
				WHERE trainer_id = $1 AND status = 'scheduled'
				  AND scheduled_at < $3
				  AND scheduled_at + duration_minutes * INTERVAL '1 minute' > $2
			)`, s.TrainerID, s.ScheduledAt, s.EndsAt())
		if err != nil {
			return err
		}
		if clash {
			return ErrTrainerBusy
		}

		return tx.GetContext(ctx, &created, `
			INSERT INTO training_sessions (trainer_id, member_id, membership_id, scheduled_at,
				duration_minutes, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+sessionColumns,
			s.TrainerID, s.MemberID, s.MembershipID, s.ScheduledAt, s.DurationMinutes, StatusScheduled, s.Notes)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TrainingSession, error) {
	var s TrainingSession
	err := r.db.GetContext(ctx, &s, `SELECT `+sessionColumns+` FROM training_sessions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Complete(ctx context.Context, id int) (*TrainingSession, error) {
	var s TrainingSession

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &s, `SELECT `+sessionColumns+` FROM training_sessions WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		if s.Status != StatusScheduled {
			return ErrInvalidTransition
		}

		if s.MembershipID != nil {
			if _, err := membership.ConsumeSessionWith(ctx, tx, *s.MembershipID); err != nil {
				return err
			}
		}

		return tx.GetContext(ctx, &s, `
			UPDATE training_sessions SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING `+sessionColumns, StatusCompleted, id)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Transition moves a scheduled session to a final state, appending notes.
func (r *repository) Transition(ctx context.Context, id int, to, notes string) (*TrainingSession, error) {
	var s TrainingSession
	err := r.db.GetContext(ctx, &s, `
		UPDATE training_sessions
		SET status = $1, notes = CASE WHEN $2 = '' THEN notes ELSE $2 END, updated_at = NOW()
		WHERE id = $3 AND status = 'scheduled'
		RETURNING `+sessionColumns, to, notes, id)
	if errors.Is(err, sql.ErrNoRows) {
		found, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM training_sessions WHERE id = $1)`, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrSessionNotFound
		}
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int, from, to time.Time) ([]Detail, error) {
	out := []Detail{}
	err := r.db.SelectContext(ctx, &out, detailQuery+`
		WHERE s.trainer_id = $1 AND s.scheduled_at >= $2 AND s.scheduled_at < $3
		ORDER BY s.scheduled_at`, trainerID, from, to)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Detail, error) {
	out := []Detail{}
	err := r.db.SelectContext(ctx, &out, detailQuery+`
		WHERE s.member_id = $1
		ORDER BY s.scheduled_at DESC`, memberID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
