package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("member is already checked in")
	ErrAlreadyCheckedOut  = errors.New("attendance already checked out")
	ErrRangeTooLong       = errors.New("date range is too long")
)

const maxRangeDays = 366

type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
	GetByCheckinCode(ctx context.Context, code string) (*member.Member, error)
}

type MembershipSource interface {
	ListByMember(ctx context.Context, memberID int) ([]membership.Membership, error)
}

type Service interface {
	Scan(ctx context.Context, code string, recordedBy *int) (*Result, error)
	ManualCheckIn(ctx context.Context, memberID int, recordedBy *int) (*Result, error)
	CheckOut(ctx context.Context, id int) (*Attendance, error)
	ListByMember(ctx context.Context, memberID, limit, offset int) ([]Attendance, error)
	ListByDay(ctx context.Context, day time.Time) ([]Detail, error)
	CountByDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
}

type service struct {
	repo        Repository
	members     MemberSource
	memberships MembershipSource
	publisher   events.Publisher
	now         func() time.Time
}

func NewService(repo Repository, members MemberSource, memberships MembershipSource, publisher events.Publisher) Service {
	return &service{
		repo:        repo,
		members:     members,
		memberships: memberships,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Scan checks a member in by the code printed on their card.
func (s *service) Scan(ctx context.Context, code string, recordedBy *int) (*Result, error) {
	m, err := s.members.GetByCheckinCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			metrics.RecordCheckin("unknown_code")
		}
		return nil, err
	}
	return s.checkIn(ctx, m, MethodScan, recordedBy)
}

func (s *service) ManualCheckIn(ctx context.Context, memberID int, recordedBy *int) (*Result, error) {
	m, err := s.members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.checkIn(ctx, m, MethodManual, recordedBy)
}

func (s *service) checkIn(ctx context.Context, m *member.Member, method string, recordedBy *int) (*Result, error) {
	now := s.now()
	today := calendar.Day(now)
	res := &Result{MemberID: m.ID, MemberName: m.FullName()}

	if !m.IsActive() {
		return s.deny(res, ReasonMemberInactive), nil
	}

	list, err := s.memberships.ListByMember(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	ms, reason := pickMembership(list, today)
	if ms == nil {
		return s.deny(res, reason), nil
	}

	a, err := s.repo.CheckIn(ctx, &Attendance{
		MemberID:     m.ID,
		MembershipID: &ms.ID,
		CheckedInAt:  now,
		Method:       method,
		RecordedBy:   recordedBy,
	}, ms.VisitsLimit != nil, today)
	if err != nil {
		if errors.Is(err, membership.ErrVisitLimitReached) {
			return s.deny(res, ReasonVisitLimitReached), nil
		}
		if errors.Is(err, ErrAlreadyCheckedIn) {
			metrics.RecordCheckin("duplicate")
		}
		return nil, err
	}

	if ms.VisitsLimit != nil {
		ms.VisitsUsed++
		left := ms.VisitsLeft()
		res.VisitsLeft = &left
	}
	res.Granted = true
	res.Membership = ms
	res.Attendance = a

	metrics.RecordCheckin(ResultGranted)
	events.Emit(ctx, s.publisher, events.MemberCheckedIn, a)
	logger.Info("member checked in", "member_id", m.ID, "membership_id", ms.ID, "method", method)
	return res, nil
}

func (s *service) deny(res *Result, reason string) *Result {
	res.Granted = false
	res.Reason = reason
	metrics.RecordCheckin(reason)
	logger.Info("check-in denied", "member_id", res.MemberID, "reason", reason)
	return res
}

func (s *service) CheckOut(ctx context.Context, id int) (*Attendance, error) {
	return s.repo.CheckOut(ctx, id, s.now())
}

func (s *service) ListByMember(ctx context.Context, memberID, limit, offset int) ([]Attendance, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListByMember(ctx, memberID, limit, offset)
}

func (s *service) ListByDay(ctx context.Context, day time.Time) ([]Detail, error) {
	day = calendar.Day(day)
	return s.repo.ListBetween(ctx, day, calendar.AddDays(day, 1))
}

// CountByDay returns one entry per day from..to inclusive, zero-filled.
func (s *service) CountByDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	from, to = calendar.Day(from), calendar.Day(to)
	if to.Before(from) {
		from, to = to, from
	}
	if calendar.DaysBetween(from, to) >= maxRangeDays {
		return nil, ErrRangeTooLong
	}

	rows, err := s.repo.CountByDay(ctx, from, calendar.AddDays(to, 1))
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int, len(rows))
	for _, r := range rows {
		counts[calendar.Day(r.Day)] = r.Count
	}

	out := make([]DayCount, 0, calendar.DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = calendar.AddDays(d, 1) {
		out = append(out, DayCount{Day: d, Count: counts[d]})
	}
	return out, nil
}
