package payment

import (
	"context"
	"time"
)

type Repository interface {
	Record(ctx context.Context, p *Payment, installmentID *int, today time.Time) (*Result, error)
	Refund(ctx context.Context, paymentID int, reason string, at time.Time) (*Result, error)
	GetByID(ctx context.Context, id int) (*Payment, error)
	List(ctx context.Context, filter ListFilter) ([]Payment, error)
	Summary(ctx context.Context, from, to time.Time) (*Summary, error)
}
