package onboarding

import (
	"context"
	"errors"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/payment"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

var (
	ErrDownPaymentTooLarge = errors.New("down payment exceeds membership amount due")
	ErrTrialNotPayable     = errors.New("trial memberships take no payment")
)

type Members interface {
	Create(ctx context.Context, req member.CreateMemberRequest) (*member.Member, error)
}

type Memberships interface {
	Create(ctx context.Context, req membership.CreateRequest) (*membership.Membership, error)
}

type Plans interface {
	CreateForMembership(ctx context.Context, membershipID int, req paymentplan.CreatePlanRequest) (*paymentplan.PaymentPlan, error)
}

type Payments interface {
	Record(ctx context.Context, req payment.RecordRequest) (*payment.Result, error)
}

type Service interface {
	Onboard(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	members     Members
	memberships Memberships
	plans       Plans
	payments    Payments
}

func NewService(members Members, memberships Memberships, plans Plans, payments Payments) Service {
	return &service{
		members:     members,
		memberships: memberships,
		plans:       plans,
		payments:    payments,
	}
}

// Onboard runs member, membership, plan and down payment in that order. The
// steps are separate transactions; a failure returns a *StepError carrying
// whatever was created before it so the desk can finish by hand.
func (s *service) Onboard(ctx context.Context, req Request) (*Result, error) {
	if req.Trial && (req.DownPayment != nil || req.Plan != nil) {
		return nil, ErrTrialNotPayable
	}

	res := &Result{}

	m, err := s.members.Create(ctx, req.Member)
	if err != nil {
		return nil, &StepError{Step: StepMember, Result: res, Err: err}
	}
	res.Member = m

	ms, err := s.memberships.Create(ctx, membership.CreateRequest{
		MemberID:      m.ID,
		PackageID:     req.PackageID,
		StartDate:     req.StartDate,
		DiscountCents: req.DiscountCents,
		Trial:         req.Trial,
	})
	if err != nil {
		return nil, s.abort(StepMembership, res, err)
	}
	res.Membership = ms

	if req.DownPayment != nil && req.DownPayment.AmountCents > ms.AmountDueCents {
		return nil, s.abort(StepDownPayment, res, ErrDownPaymentTooLarge)
	}

	var target *int
	if req.Plan != nil {
		planReq := *req.Plan
		if req.DownPayment != nil {
			planReq.DownPaymentCents = req.DownPayment.AmountCents
		}
		if planReq.StartDate == nil {
			start := ms.StartDate
			planReq.StartDate = &start
		}

		plan, err := s.plans.CreateForMembership(ctx, ms.ID, planReq)
		if err != nil {
			return nil, s.abort(StepPlan, res, err)
		}
		res.Plan = plan

		// The down payment settles installment #0.
		for i := range plan.Installments {
			if plan.Installments[i].Sequence == 0 && planReq.DownPaymentCents > 0 {
				id := plan.Installments[i].ID
				target = &id
			}
		}
	}

	if req.DownPayment != nil {
		paid, err := s.payments.Record(ctx, payment.RecordRequest{
			MembershipID:  ms.ID,
			AmountCents:   req.DownPayment.AmountCents,
			Method:        req.DownPayment.Method,
			InstallmentID: target,
			Reference:     req.DownPayment.Reference,
			Notes:         "down payment",
			ReceivedBy:    req.ReceivedBy,
		})
		if err != nil {
			return nil, s.abort(StepDownPayment, res, err)
		}
		res.Payment = paid

		ms.AmountPaidCents = paid.AmountPaid
		ms.AmountPendingCents = paid.AmountPending
		ms.PaymentStatus = paid.PaymentStatus
	}

	logger.Info("member onboarded",
		"member_id", m.ID,
		"membership_id", ms.ID,
		"plan", res.Plan != nil,
		"down_payment", req.DownPayment != nil,
	)
	return res, nil
}

func (s *service) abort(step string, res *Result, err error) error {
	args := []interface{}{"step", step, "member_id", res.Member.ID, "error", err}
	if res.Membership != nil {
		args = append(args, "membership_id", res.Membership.ID)
	}
	logger.Warn("onboarding stopped", args...)
	return &StepError{Step: step, Result: res, Err: err}
}
