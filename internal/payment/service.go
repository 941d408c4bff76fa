package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrInvalidMethod       = errors.New("unknown payment method")
	ErrOverpayment         = errors.New("payment exceeds pending balance")
	ErrMembershipCancelled = errors.New("membership is cancelled")
	ErrAlreadyRefunded     = errors.New("payment already refunded")
	ErrIdempotencyConflict = errors.New("idempotency key already used for a different payment")
)

// MemberSource resolves members for receipts.
type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*Result, error)
	Refund(ctx context.Context, paymentID int, reason string) (*Result, error)
	Get(ctx context.Context, id int) (*Payment, error)
	List(ctx context.Context, filter ListFilter) ([]Payment, error)
	Summary(ctx context.Context, from, to time.Time) (*Summary, error)
}

type service struct {
	repo      Repository
	members   MemberSource
	publisher events.Publisher
	notifier  notify.Notifier
	currency  string
	now       func() time.Time
}

func NewService(repo Repository, members MemberSource, publisher events.Publisher, notifier notify.Notifier, currency string) Service {
	return &service{
		repo:      repo,
		members:   members,
		publisher: publisher,
		notifier:  notifier,
		currency:  currency,
		now:       time.Now,
	}
}

func (s *service) Record(ctx context.Context, req RecordRequest) (*Result, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validMethod(req.Method) {
		return nil, ErrInvalidMethod
	}

	now := s.now()
	p := &Payment{
		MembershipID: req.MembershipID,
		AmountCents:  req.AmountCents,
		Method:       req.Method,
		ReceivedBy:   req.ReceivedBy,
		Notes:        req.Notes,
		PaidAt:       now,
	}
	if req.PaidAt != nil {
		p.PaidAt = *req.PaidAt
	}
	if ref := strings.TrimSpace(req.Reference); ref != "" {
		p.Reference = &ref
	}
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		p.IdempotencyKey = &key
	}

	res, err := s.repo.Record(ctx, p, req.InstallmentID, calendar.Day(now))
	if err != nil {
		if errors.Is(err, ErrOverpayment) || errors.Is(err, ErrMembershipCancelled) {
			metrics.RecordPayment(req.Method, "rejected", 0)
		}
		return nil, err
	}
	if res.Replayed {
		logger.Info("payment replayed", "payment_id", res.Payment.ID, "idempotency_key", req.IdempotencyKey)
		return res, nil
	}

	metrics.RecordPayment(p.Method, StatusCompleted, p.AmountCents)
	events.Emit(ctx, s.publisher, events.PaymentRecorded, res)
	logger.Info("payment recorded",
		"payment_id", res.Payment.ID,
		"membership_id", p.MembershipID,
		"amount_cents", p.AmountCents,
		"method", p.Method,
		"pending_cents", res.AmountPending,
	)

	s.sendReceipt(ctx, res)
	return res, nil
}

func (s *service) sendReceipt(ctx context.Context, res *Result) {
	m, err := s.members.Get(ctx, res.Payment.MemberID)
	if err != nil {
		logger.Warn("receipt skipped", "payment_id", res.Payment.ID, "error", err)
		return
	}
	if m.Contact() == "" {
		return
	}

	msg := notify.PaymentReceipt(m.Contact(), m.FirstName, res.Payment.AmountCents, res.AmountPending, s.currency, res.Payment.Method, res.Payment.PaidAt)
	if err := s.notifier.Enqueue(ctx, msg); err != nil {
		logger.Warn("receipt not queued", "payment_id", res.Payment.ID, "error", err)
	}
}

func (s *service) Refund(ctx context.Context, paymentID int, reason string) (*Result, error) {
	res, err := s.repo.Refund(ctx, paymentID, reason, s.now())
	if err != nil {
		return nil, err
	}

	metrics.RecordRefund()
	events.Emit(ctx, s.publisher, events.PaymentRefunded, res)
	logger.Info("payment refunded", "payment_id", paymentID, "amount_cents", res.Payment.AmountCents, "reason", reason)
	return res, nil
}

func (s *service) Get(ctx context.Context, id int) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Payment, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

// Summary covers the days from..to inclusive.
func (s *service) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	from, to = calendar.Day(from), calendar.Day(to)
	if to.Before(from) {
		from, to = to, from
	}

	sum, err := s.repo.Summary(ctx, from, calendar.AddDays(to, 1))
	if err != nil {
		return nil, err
	}
	sum.To = to
	return sum, nil
}
