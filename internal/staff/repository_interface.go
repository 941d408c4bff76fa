package staff

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Staff) (*Staff, error)
	GetByID(ctx context.Context, id int) (*Staff, error)
	List(ctx context.Context, filter ListFilter) ([]Staff, error)
	Update(ctx context.Context, s *Staff) (*Staff, error)
	SetActive(ctx context.Context, id int, active bool) error

	ReplaceShifts(ctx context.Context, staffID int, shifts []Shift) error
	ListShifts(ctx context.Context, staffID int) ([]Shift, error)

	AssignClient(ctx context.Context, trainerID, memberID int) (*Client, error)
	EndAssignment(ctx context.Context, trainerID, memberID int, at time.Time) error
	ListClients(ctx context.Context, trainerID int) ([]Client, error)

	CompletedSessions(ctx context.Context, trainerID int, from, to time.Time) (int, error)
	ClientPayments(ctx context.Context, trainerID int, from, to time.Time) (int64, error)
}
