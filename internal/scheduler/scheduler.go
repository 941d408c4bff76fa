package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
)

const expiringWithinDays = 7

type Plans interface {
	ApplyLateFees(ctx context.Context, now time.Time) (int, error)
	ListUpcoming(ctx context.Context, days int) ([]paymentplan.InstallmentDetail, error)
}

type Memberships interface {
	ExpireDue(ctx context.Context, today time.Time) (int, error)
	ListExpiring(ctx context.Context, withinDays int) ([]membership.Detail, error)
}

type Config struct {
	SweepSchedule     string
	ReminderSchedule  string
	ReminderDaysAhead int
	Currency          string
}

// SweepResult reports what one sweep changed.
type SweepResult struct {
	Overdue int `json:"overdue"`
	Expired int `json:"expired"`
}

type ReminderResult struct {
	Installments int `json:"installments"`
	Expiring     int `json:"expiring"`
}

type Scheduler struct {
	cron        *cron.Cron
	cfg         Config
	plans       Plans
	memberships Memberships
	notifier    notify.Notifier
	now         func() time.Time
}

func New(cfg Config, plans Plans, memberships Memberships, notifier notify.Notifier) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	return &Scheduler{
		cron:        c,
		cfg:         cfg,
		plans:       plans,
		memberships: memberships,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Start registers both jobs and starts the cron loop in the background.
func (s *Scheduler) Start(ctx context.Context) error {
	const op = "scheduler.Start"

	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, func() {
		if _, err := s.RunSweep(ctx, s.now()); err != nil {
			logger.Error("sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("%s: sweep schedule %q: %w", op, s.cfg.SweepSchedule, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.ReminderSchedule, func() {
		if _, err := s.SendReminders(ctx); err != nil {
			logger.Error("reminders failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("%s: reminder schedule %q: %w", op, s.cfg.ReminderSchedule, err)
	}

	s.cron.Start()
	logger.Info("scheduler started", "sweep", s.cfg.SweepSchedule, "reminders", s.cfg.ReminderSchedule)
	return nil
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		logger.Info("scheduler stopped")
	case <-ctx.Done():
		logger.Warn("scheduler stop timed out")
	}
}

// RunSweep assesses late fees and expires memberships. Both steps run even
// if the first one fails.
func (s *Scheduler) RunSweep(ctx context.Context, now time.Time) (SweepResult, error) {
	var res SweepResult
	var errs []error

	overdue, err := s.plans.ApplyLateFees(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("late fees: %w", err))
	}
	res.Overdue = overdue

	expired, err := s.memberships.ExpireDue(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("expire memberships: %w", err))
	}
	res.Expired = expired

	logger.Info("sweep finished", "overdue", res.Overdue, "expired", res.Expired)
	return res, errors.Join(errs...)
}

// SendReminders queues notices for installments coming due and memberships
// about to end. Members without an email are skipped.
func (s *Scheduler) SendReminders(ctx context.Context) (ReminderResult, error) {
	var res ReminderResult

	upcoming, err := s.plans.ListUpcoming(ctx, s.cfg.ReminderDaysAhead)
	if err != nil {
		return res, fmt.Errorf("upcoming installments: %w", err)
	}
	for _, inst := range upcoming {
		email := inst.Email()
		if email == "" {
			continue
		}
		msg := notify.InstallmentReminder(email, inst.MemberFirstName, inst.Sequence, inst.Outstanding(), s.cfg.Currency, inst.DueDate)
		if err := s.notifier.Enqueue(ctx, msg); err != nil {
			logger.Warn("installment reminder not queued", "installment_id", inst.ID, "error", err)
			continue
		}
		res.Installments++
	}

	expiring, err := s.memberships.ListExpiring(ctx, expiringWithinDays)
	if err != nil {
		return res, fmt.Errorf("expiring memberships: %w", err)
	}
	for _, m := range expiring {
		email := m.Email()
		if email == "" {
			continue
		}
		msg := notify.MembershipExpiring(email, m.MemberFirstName, m.PackageName, m.EndDate)
		if err := s.notifier.Enqueue(ctx, msg); err != nil {
			logger.Warn("expiry notice not queued", "membership_id", m.ID, "error", err)
			continue
		}
		res.Expiring++
	}

	logger.Info("reminders queued", "installments", res.Installments, "expiring", res.Expiring)
	return res, nil
}

// cronLogger routes cron's own messages to the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
