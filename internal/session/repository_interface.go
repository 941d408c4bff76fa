package session

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts the session unless it overlaps another scheduled session
	// of the same trainer.
	Create(ctx context.Context, s *TrainingSession) (*TrainingSession, error)
	GetByID(ctx context.Context, id int) (*TrainingSession, error)
	// Complete marks a scheduled session completed and, when it is linked to
	// a membership, uses up one included session in the same transaction.
	Complete(ctx context.Context, id int) (*TrainingSession, error)
	Transition(ctx context.Context, id int, to, notes string) (*TrainingSession, error)
	ListByTrainer(ctx context.Context, trainerID int, from, to time.Time) ([]Detail, error)
	ListByMember(ctx context.Context, memberID int) ([]Detail, error)
}
