package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/attendance"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

const (
	summaryKey   = "dashboard:summary"
	expiringDays = 7
	maxMonths    = 24
)

// Cache is the subset of internal/cache used here.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type AttendanceSource interface {
	CountByDay(ctx context.Context, from, to time.Time) ([]attendance.DayCount, error)
}

type Service interface {
	Summary(ctx context.Context, fresh bool) (*Summary, error)
	RevenueByMonth(ctx context.Context, months int) ([]MonthRevenue, error)
	AttendanceByDay(ctx context.Context, from, to time.Time) ([]attendance.DayCount, error)
	PackagePopularity(ctx context.Context) ([]PackageStat, error)
}

type service struct {
	repo       Repository
	attendance AttendanceSource
	cache      Cache
	ttl        time.Duration
	now        func() time.Time
}

// NewService wires the dashboard. A nil cache disables caching.
func NewService(repo Repository, attendance AttendanceSource, cache Cache, ttl time.Duration) Service {
	return &service{
		repo:       repo,
		attendance: attendance,
		cache:      cache,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Summary serves the cached snapshot unless fresh is set. Cache failures are
// logged and the snapshot is computed from the database.
func (s *service) Summary(ctx context.Context, fresh bool) (*Summary, error) {
	if s.cache != nil && !fresh {
		var cached Summary
		ok, err := s.cache.Get(ctx, summaryKey, &cached)
		if err != nil {
			logger.Warn("dashboard cache read failed", "error", err)
		}
		if ok {
			return &cached, nil
		}
	}

	sum, err := s.compute(ctx, s.now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, summaryKey, sum, s.ttl); err != nil {
			logger.Warn("dashboard cache write failed", "error", err)
		}
	}
	return sum, nil
}

func (s *service) compute(ctx context.Context, now time.Time) (*Summary, error) {
	today := calendar.Day(now)
	tomorrow := calendar.AddDays(today, 1)
	month := calendar.MonthStart(today)
	nextMonth := calendar.AddMonths(month, 1)
	lastMonth := calendar.AddMonths(month, -1)

	sum := &Summary{GeneratedAt: now.UTC(), MembershipsByStatus: map[string]int{}}
	var byStatus []StatusCount
	var overdue *Overdue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sum.ActiveMembers, err = s.repo.CountActiveMembers(gctx)
		return err
	})
	g.Go(func() (err error) {
		sum.NewMembersThisMonth, err = s.repo.CountNewMembers(gctx, month, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.repo.MembershipsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		sum.RevenueThisMonth, err = s.repo.Revenue(gctx, month, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		sum.RevenueLastMonth, err = s.repo.Revenue(gctx, lastMonth, month)
		return err
	})
	g.Go(func() (err error) {
		sum.OutstandingCents, err = s.repo.Outstanding(gctx)
		return err
	})
	g.Go(func() (err error) {
		overdue, err = s.repo.Overdue(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		sum.CheckinsToday, err = s.repo.CountCheckins(gctx, today, tomorrow)
		return err
	})
	g.Go(func() (err error) {
		sum.ExpiringSoon, err = s.repo.CountExpiring(gctx, today, calendar.AddDays(today, expiringDays+1))
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("dashboard summary failed", "error", err)
		return nil, err
	}

	for _, sc := range byStatus {
		sum.MembershipsByStatus[sc.Status] = sc.Count
	}
	sum.OverdueInstallments = overdue.Count
	sum.OverdueCents = overdue.Cents
	return sum, nil
}

// RevenueByMonth returns the last n calendar months, oldest first, including
// months without payments.
func (s *service) RevenueByMonth(ctx context.Context, months int) ([]MonthRevenue, error) {
	if months <= 0 {
		months = 12
	}
	if months > maxMonths {
		months = maxMonths
	}

	current := calendar.MonthStart(s.now())
	from := calendar.AddMonths(current, -(months - 1))

	rows, err := s.repo.RevenueByMonth(ctx, from)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[time.Time]MonthRevenue, len(rows))
	for _, r := range rows {
		byMonth[calendar.MonthStart(r.Month)] = r
	}

	out := make([]MonthRevenue, 0, months)
	for m := from; !m.After(current); m = calendar.AddMonths(m, 1) {
		r := byMonth[m]
		r.Month = m
		out = append(out, r)
	}
	return out, nil
}

func (s *service) AttendanceByDay(ctx context.Context, from, to time.Time) ([]attendance.DayCount, error) {
	return s.attendance.CountByDay(ctx, from, to)
}

func (s *service) PackagePopularity(ctx context.Context) ([]PackageStat, error) {
	return s.repo.PackagePopularity(ctx)
}
