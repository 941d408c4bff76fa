package paymentplan

import (
	"context"
	"time"
)

// BuildFunc produces the plan and schedule for a membership's pending balance.
type BuildFunc func(pendingCents int64) (*PaymentPlan, error)

// AssessFunc returns the late fee to apply to an overdue installment.
type AssessFunc func(inst *Installment, plan *PaymentPlan) int64

type Repository interface {
	CreatePlan(ctx context.Context, membershipID int, build BuildFunc) (*PaymentPlan, error)
	GetPlan(ctx context.Context, id int) (*PaymentPlan, error)
	GetByMembership(ctx context.Context, membershipID int) (*PaymentPlan, error)
	ListOverdue(ctx context.Context) ([]InstallmentDetail, error)
	ListUpcoming(ctx context.Context, from, to time.Time) ([]InstallmentDetail, error)
	OverdueTotals(ctx context.Context) (count int, cents int64, err error)
	ApplyLateFees(ctx context.Context, today time.Time, assess AssessFunc) ([]Assessment, error)
	Waive(ctx context.Context, installmentID int, includePrincipal bool, today time.Time) (*Installment, int64, error)
}
