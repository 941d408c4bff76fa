package server

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/attendance"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/cache"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/config"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/dashboard"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/onboarding"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/payment"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/session"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/staff"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/user"
)

// Deps are the process-wide resources shared by every service.
type Deps struct {
	DB        *sqlx.DB
	Redis     *redis.Client
	Config    *config.Config
	Notifier  notify.Notifier
	Publisher events.Publisher
}

// Services holds one instance of every domain service.
type Services struct {
	Users       user.Service
	Members     member.Service
	Catalog     catalog.Service
	Memberships membership.Service
	Plans       paymentplan.Service
	Payments    payment.Service
	Onboarding  onboarding.Service
	Staff       staff.Service
	Sessions    session.Service
	Attendance  attendance.Service
	Dashboard   dashboard.Service
}

func NewServices(d Deps) *Services {
	cfg := d.Config

	publisher := d.Publisher
	var dashCache dashboard.Cache
	if d.Redis != nil {
		c := cache.New(d.Redis)
		dashCache = c
		publisher = dashboard.InvalidateOnChange(d.Publisher, c)
	}

	members := member.NewService(member.NewRepository(d.DB))
	packages := catalog.NewService(catalog.NewRepository(d.DB))
	memberships := membership.NewService(membership.NewRepository(d.DB), packages, members, publisher, d.Notifier)
	plans := paymentplan.NewService(paymentplan.NewRepository(d.DB), memberships, packages, publisher, d.Notifier, cfg.Currency)
	payments := payment.NewService(payment.NewRepository(d.DB), members, publisher, d.Notifier, cfg.Currency)
	staffSvc := staff.NewService(staff.NewRepository(d.DB), members)
	checkins := attendance.NewService(attendance.NewRepository(d.DB), members, memberships, publisher)

	return &Services{
		Users:       user.NewService(user.NewRepository(d.DB), cfg.JWTSecret),
		Members:     members,
		Catalog:     packages,
		Memberships: memberships,
		Plans:       plans,
		Payments:    payments,
		Onboarding:  onboarding.NewService(members, memberships, plans, payments),
		Staff:       staffSvc,
		Sessions:    session.NewService(session.NewRepository(d.DB), staffSvc, members, memberships),
		Attendance:  checkins,
		Dashboard:   dashboard.NewService(dashboard.NewRepository(d.DB), checkins, dashCache, cfg.DashboardCacheTTL),
	}
}
