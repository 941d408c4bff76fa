package paymentplan

import (
	"context"
	"errors"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
)

var (
	ErrPlanNotFound           = errors.New("payment plan not found")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrMembershipNotFound     = membership.ErrMembershipNotFound
	ErrMembershipClosed       = errors.New("membership is cancelled or expired")
	ErrActivePlanExists       = errors.New("membership already has an active payment plan")
	ErrInstallmentsNotAllowed = errors.New("package does not allow installments")
	ErrTooManyInstallments    = errors.New("installment count exceeds package maximum")
	ErrInvalidLateFee         = errors.New("invalid late fee settings")
	ErrNothingToWaive         = errors.New("nothing to waive on installment")
)

// MembershipSource resolves memberships.
type MembershipSource interface {
	Get(ctx context.Context, id int) (*membership.Membership, error)
}

// PackageSource resolves membership packages.
type PackageSource interface {
	Get(ctx context.Context, id int) (*catalog.Package, error)
}

type Service interface {
	CreateForMembership(ctx context.Context, membershipID int, req CreatePlanRequest) (*PaymentPlan, error)
	Get(ctx context.Context, planID int) (*PaymentPlan, error)
	GetByMembership(ctx context.Context, membershipID int) (*PaymentPlan, error)
	ListOverdue(ctx context.Context) ([]InstallmentDetail, error)
	ListUpcoming(ctx context.Context, days int) ([]InstallmentDetail, error)
	ApplyLateFees(ctx context.Context, now time.Time) (int, error)
	Waive(ctx context.Context, installmentID int, includePrincipal bool) (*Installment, error)
	RefreshOverdueGauge(ctx context.Context) error
}

type service struct {
	repo        Repository
	memberships MembershipSource
	packages    PackageSource
	publisher   events.Publisher
	notifier    notify.Notifier
	currency    string
	now         func() time.Time
}

func NewService(repo Repository, memberships MembershipSource, packages PackageSource, publisher events.Publisher, notifier notify.Notifier, currency string) Service {
	return &service{
		repo:        repo,
		memberships: memberships,
		packages:    packages,
		publisher:   publisher,
		notifier:    notifier,
		currency:    currency,
		now:         time.Now,
	}
}

// CreateForMembership finances the membership's pending balance. The
// balance is read under a row lock so concurrent payments cannot skew it.
func (s *service) CreateForMembership(ctx context.Context, membershipID int, req CreatePlanRequest) (*PaymentPlan, error) {
	m, err := s.memberships.Get(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.Terminal() {
		return nil, ErrMembershipClosed
	}

	pkg, err := s.packages.Get(ctx, m.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.InstallmentsAllowed {
		return nil, ErrInstallmentsNotAllowed
	}
	if req.InstallmentCount > pkg.MaxInstallments {
		return nil, ErrTooManyInstallments
	}

	feeType := req.LateFeeType
	if feeType == "" {
		feeType = LateFeeNone
	}
	if !validLateFee(feeType, req.LateFeeValue) {
		return nil, ErrInvalidLateFee
	}

	start := calendar.Day(s.now())
	if req.StartDate != nil {
		start = calendar.Day(*req.StartDate)
	}

	plan, err := s.repo.CreatePlan(ctx, membershipID, func(pendingCents int64) (*PaymentPlan, error) {
		schedule, err := BuildSchedule(pendingCents, req.DownPaymentCents, req.InstallmentCount, req.Frequency, start)
		if err != nil {
			return nil, err
		}
		return &PaymentPlan{
			TotalCents:       pendingCents,
			DownPaymentCents: req.DownPaymentCents,
			InstallmentCount: req.InstallmentCount,
			Frequency:        req.Frequency,
			StartDate:        start,
			LateFeeType:      feeType,
			LateFeeValue:     req.LateFeeValue,
			GraceDays:        req.GraceDays,
			Status:           PlanActive,
			Installments:     schedule,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("payment plan created",
		"plan_id", plan.ID,
		"membership_id", membershipID,
		"total_cents", plan.TotalCents,
		"installments", len(plan.Installments),
	)
	return plan, nil
}

func (s *service) Get(ctx context.Context, planID int) (*PaymentPlan, error) {
	return s.repo.GetPlan(ctx, planID)
}

func (s *service) GetByMembership(ctx context.Context, membershipID int) (*PaymentPlan, error) {
	return s.repo.GetByMembership(ctx, membershipID)
}

func (s *service) ListOverdue(ctx context.Context) ([]InstallmentDetail, error) {
	return s.repo.ListOverdue(ctx)
}

func (s *service) ListUpcoming(ctx context.Context, days int) ([]InstallmentDetail, error) {
	today := calendar.Day(s.now())
	return s.repo.ListUpcoming(ctx, today, calendar.AddDays(today, days))
}

// ApplyLateFees runs the overdue sweep and notifies members whose
// installments just went overdue or picked up a fee.
func (s *service) ApplyLateFees(ctx context.Context, now time.Time) (int, error) {
	assessed, err := s.repo.ApplyLateFees(ctx, calendar.Day(now), func(inst *Installment, plan *PaymentPlan) int64 {
		return LateFee(inst, plan, now)
	})
	if err != nil {
		return 0, err
	}

	fees := 0
	for _, a := range assessed {
		if a.FeeCents > 0 {
			fees++
		}

		events.Emit(ctx, s.publisher, events.InstallmentOverdue, a)

		if email := a.Email(); email != "" {
			msg := notify.InstallmentOverdue(email, a.MemberFirstName, a.Sequence, a.Outstanding(), a.LateFeeCents, s.currency, a.DueDate)
			if err := s.notifier.Enqueue(ctx, msg); err != nil {
				logger.Warn("overdue notice not queued", "installment_id", a.ID, "error", err)
			}
		}
	}

	metrics.RecordLateFees(fees)
	if len(assessed) > 0 {
		logger.Info("late fee sweep", "installments", len(assessed), "fees_applied", fees)
	}

	if err := s.RefreshOverdueGauge(ctx); err != nil {
		logger.Warn("overdue gauge not refreshed", "error", err)
	}
	return len(assessed), nil
}

func (s *service) Waive(ctx context.Context, installmentID int, includePrincipal bool) (*Installment, error) {
	inst, waived, err := s.repo.Waive(ctx, installmentID, includePrincipal, calendar.Day(s.now()))
	if err != nil {
		return nil, err
	}

	logger.Info("installment waived", "installment_id", installmentID, "waived_cents", waived, "principal", includePrincipal)
	return inst, nil
}

func (s *service) RefreshOverdueGauge(ctx context.Context) error {
	count, _, err := s.repo.OverdueTotals(ctx)
	if err != nil {
		return err
	}
	metrics.SetOverdueInstallments(count)
	return nil
}
