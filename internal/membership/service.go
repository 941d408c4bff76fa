package membership

import (
	"context"
	"errors"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrPackageInactive    = errors.New("membership package is not available for sale")
	ErrMemberInactive     = errors.New("member is inactive")
	ErrTrialUnavailable   = errors.New("package does not offer a trial")
	ErrFreezeNotAllowed   = errors.New("package does not allow freezing")
	ErrFreezeExhausted    = errors.New("freeze allowance used up")
	ErrInvalidTransition  = errors.New("membership status does not allow this action")
	ErrVisitLimitReached  = errors.New("visit limit reached")
	ErrNoSessionsLeft     = errors.New("no training sessions left on membership")
)

// PackageSource resolves membership packages.
type PackageSource interface {
	Get(ctx context.Context, id int) (*catalog.Package, error)
}

// MemberSource resolves members.
type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Membership, error)
	Get(ctx context.Context, id int) (*Membership, error)
	GetDetail(ctx context.Context, id int) (*Detail, error)
	List(ctx context.Context, filter ListFilter) ([]Detail, error)
	ListByMember(ctx context.Context, memberID int) ([]Membership, error)
	ListExpiring(ctx context.Context, withinDays int) ([]Detail, error)
	Freeze(ctx context.Context, id int, reason string) (*Membership, error)
	Unfreeze(ctx context.Context, id int) (*Membership, error)
	Cancel(ctx context.Context, id int, reason string) error
	Renew(ctx context.Context, id int, startDate *time.Time) (*Membership, error)
	ExpireDue(ctx context.Context, today time.Time) (int, error)
	ConsumeVisit(ctx context.Context, id int) (*Membership, error)
	ConsumeSession(ctx context.Context, id int) (*Membership, error)
}

type service struct {
	repo      Repository
	packages  PackageSource
	members   MemberSource
	publisher events.Publisher
	notifier  notify.Notifier
	now       func() time.Time
}

func NewService(repo Repository, packages PackageSource, members MemberSource, publisher events.Publisher, notifier notify.Notifier) Service {
	return &service{
		repo:      repo,
		packages:  packages,
		members:   members,
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Membership, error) {
	mem, err := s.members.Get(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !mem.IsActive() {
		return nil, ErrMemberInactive
	}

	pkg, err := s.packages.Get(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, ErrPackageInactive
	}

	start := calendar.Day(s.now())
	if req.StartDate != nil {
		start = calendar.Day(*req.StartDate)
	}

	m, err := Build(pkg, req.MemberID, start, req.DiscountCents, req.Trial)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	kind := "paid"
	if req.Trial {
		kind = "trial"
	}
	metrics.RecordMembership(pkg.Name, kind)
	events.Emit(ctx, s.publisher, events.MembershipCreated, created)
	logger.Info("membership created", "membership_id", created.ID, "member_id", created.MemberID, "package", pkg.Name, "kind", kind)

	if email := mem.Contact(); email != "" {
		msg := notify.Welcome(email, mem.FirstName, pkg.Name, created.StartDate, created.EndDate)
		if err := s.notifier.Enqueue(ctx, msg); err != nil {
			logger.Warn("welcome message not queued", "member_id", mem.ID, "error", err)
		}
	}

	return created, nil
}

// Build derives a new membership from pkg. Trials are free and last
// trial_days; paid terms last duration_days and cost price minus discount.
func Build(pkg *catalog.Package, memberID int, start time.Time, discountCents int64, trial bool) (*Membership, error) {
	m := &Membership{
		MemberID:          memberID,
		PackageID:         pkg.ID,
		StartDate:         calendar.Day(start),
		VisitsLimit:       pkg.VisitsLimit,
		SessionsRemaining: pkg.SessionsIncluded,
	}

	if trial {
		if pkg.TrialDays <= 0 {
			return nil, ErrTrialUnavailable
		}
		m.Status = StatusTrial
		m.EndDate = EndDate(m.StartDate, pkg.TrialDays)
		m.SessionsRemaining = 0
	} else {
		m.Status = StatusActive
		m.EndDate = EndDate(m.StartDate, pkg.DurationDays)
		m.DiscountCents = discountCents
		m.AmountDueCents = pkg.PriceCents - discountCents
		if m.AmountDueCents < 0 {
			m.AmountDueCents = 0
			m.DiscountCents = pkg.PriceCents
		}
	}

	m.UpdateAmounts()
	return m, nil
}

func (s *service) Get(ctx context.Context, id int) (*Membership, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetDetail(ctx context.Context, id int) (*Detail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Detail, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Membership, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) ListExpiring(ctx context.Context, withinDays int) ([]Detail, error) {
	today := calendar.Day(s.now())
	return s.repo.ListExpiring(ctx, today, calendar.AddDays(today, withinDays))
}

func (s *service) Freeze(ctx context.Context, id int, reason string) (*Membership, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusActive {
		return nil, ErrInvalidTransition
	}

	pkg, err := s.packages.Get(ctx, m.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.FreezeAllowed {
		return nil, ErrFreezeNotAllowed
	}
	if m.FreezeDaysUsed >= pkg.MaxFreezeDays {
		return nil, ErrFreezeExhausted
	}

	today := calendar.Day(s.now())
	m.Status = StatusFrozen
	m.FrozenAt = &today
	if reason != "" {
		m.FreezeReason = &reason
	}

	if err := s.repo.SaveState(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("membership frozen", "membership_id", id, "reason", reason)
	return m, nil
}

// Unfreeze reactivates a frozen membership and pushes its end date out by
// the frozen days, capped at the package's remaining freeze allowance.
func (s *service) Unfreeze(ctx context.Context, id int) (*Membership, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusFrozen || m.FrozenAt == nil {
		return nil, ErrInvalidTransition
	}

	pkg, err := s.packages.Get(ctx, m.PackageID)
	if err != nil {
		return nil, err
	}

	days := FreezeCredit(*m.FrozenAt, s.now(), m.FreezeDaysUsed, pkg.MaxFreezeDays)
	m.EndDate = calendar.AddDays(m.EndDate, days)
	m.FreezeDaysUsed += days
	m.Status = StatusActive
	m.FrozenAt = nil
	m.FreezeReason = nil

	if err := s.repo.SaveState(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("membership unfrozen", "membership_id", id, "extended_days", days)
	return m, nil
}

// FreezeCredit returns how many days a freeze from frozenAt to now extends
// the membership.
func FreezeCredit(frozenAt, now time.Time, used, allowance int) int {
	days := calendar.DaysBetween(frozenAt, now)
	if days < 0 {
		days = 0
	}
	if remaining := allowance - used; days > remaining {
		days = remaining
	}
	if days < 0 {
		days = 0
	}
	return days
}

func (s *service) Cancel(ctx context.Context, id int, reason string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.Terminal() {
		return ErrInvalidTransition
	}

	if err := s.repo.Cancel(ctx, id, reason, s.now()); err != nil {
		return err
	}

	events.Emit(ctx, s.publisher, events.MembershipCancelled, map[string]interface{}{
		"membership_id": id,
		"member_id":     m.MemberID,
		"reason":        reason,
	})
	logger.Info("membership cancelled", "membership_id", id, "reason", reason)
	return nil
}

// Renew sells the same package again, starting the day after the current
// term ends unless a start date is given.
func (s *service) Renew(ctx context.Context, id int, startDate *time.Time) (*Membership, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status == StatusCancelled {
		return nil, ErrInvalidTransition
	}

	start := calendar.AddDays(m.EndDate, 1)
	if startDate != nil {
		start = calendar.Day(*startDate)
	}

	return s.Create(ctx, CreateRequest{
		MemberID:  m.MemberID,
		PackageID: m.PackageID,
		StartDate: &start,
	})
}

func (s *service) ExpireDue(ctx context.Context, today time.Time) (int, error) {
	expired, err := s.repo.ExpireDue(ctx, calendar.Day(today))
	if err != nil {
		return 0, err
	}

	for _, e := range expired {
		events.Emit(ctx, s.publisher, events.MembershipExpired, e)
	}
	metrics.RecordExpiredMemberships(len(expired))
	if len(expired) > 0 {
		logger.Info("memberships expired", "count", len(expired))
	}
	return len(expired), nil
}

func (s *service) ConsumeVisit(ctx context.Context, id int) (*Membership, error) {
	return s.repo.ConsumeVisit(ctx, id)
}

func (s *service) ConsumeSession(ctx context.Context, id int) (*Membership, error) {
	return s.repo.ConsumeSession(ctx, id)
}
