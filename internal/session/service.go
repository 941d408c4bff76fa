package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/staff"
)

var (
	ErrSessionNotFound     = errors.New("training session not found")
	ErrTrainerBusy         = errors.New("trainer already has a session at that time")
	ErrInvalidTransition   = errors.New("session is no longer scheduled")
	ErrInPast              = errors.New("session must be scheduled in the future")
	ErrNotStarted          = errors.New("session has not started yet")
	ErrMembershipMismatch  = errors.New("membership belongs to another member")
	ErrMembershipNotUsable = errors.New("membership does not cover the session date")
)

type TrainerSource interface {
	GetActiveTrainer(ctx context.Context, id int) (*staff.Staff, error)
}

type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
}

type MembershipSource interface {
	Get(ctx context.Context, id int) (*membership.Membership, error)
}

type Service interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*TrainingSession, error)
	Get(ctx context.Context, id int) (*TrainingSession, error)
	Complete(ctx context.Context, id int) (*TrainingSession, error)
	Cancel(ctx context.Context, id int, reason string) (*TrainingSession, error)
	MarkNoShow(ctx context.Context, id int) (*TrainingSession, error)
	ListByTrainer(ctx context.Context, trainerID int, from, to time.Time) ([]Detail, error)
	ListByMember(ctx context.Context, memberID int) ([]Detail, error)
}

type service struct {
	repo        Repository
	trainers    TrainerSource
	members     MemberSource
	memberships MembershipSource
	now         func() time.Time
}

func NewService(repo Repository, trainers TrainerSource, members MemberSource, memberships MembershipSource) Service {
	return &service{
		repo:        repo,
		trainers:    trainers,
		members:     members,
		memberships: memberships,
		now:         time.Now,
	}
}

func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (*TrainingSession, error) {
	if !req.ScheduledAt.After(s.now()) {
		return nil, ErrInPast
	}
	if _, err := s.trainers.GetActiveTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	m, err := s.members.Get(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !m.IsActive() {
		return nil, member.ErrMemberInactive
	}

	if req.MembershipID != nil {
		ms, err := s.memberships.Get(ctx, *req.MembershipID)
		if err != nil {
			return nil, err
		}
		if ms.MemberID != req.MemberID {
			return nil, ErrMembershipMismatch
		}
		if !ms.Usable(calendar.Day(req.ScheduledAt)) {
			return nil, ErrMembershipNotUsable
		}
		if ms.SessionsRemaining <= 0 {
			return nil, membership.ErrNoSessionsLeft
		}
	}

	ts := &TrainingSession{
		TrainerID:       req.TrainerID,
		MemberID:        req.MemberID,
		MembershipID:    req.MembershipID,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Notes:           strings.TrimSpace(req.Notes),
	}
	if ts.DurationMinutes == 0 {
		ts.DurationMinutes = defaultDuration
	}

	created, err := s.repo.Create(ctx, ts)
	if err != nil {
		return nil, err
	}

	logger.Info("session scheduled",
		"session_id", created.ID,
		"trainer_id", created.TrainerID,
		"member_id", created.MemberID,
		"at", created.ScheduledAt,
	)
	return created, nil
}

func (s *service) Get(ctx context.Context, id int) (*TrainingSession, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Complete(ctx context.Context, id int) (*TrainingSession, error) {
	ts, err := s.repo.Complete(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("session completed", "session_id", id, "membership_id", ts.MembershipID)
	return ts, nil
}

func (s *service) Cancel(ctx context.Context, id int, reason string) (*TrainingSession, error) {
	ts, err := s.repo.Transition(ctx, id, StatusCancelled, strings.TrimSpace(reason))
	if err != nil {
		return nil, err
	}
	logger.Info("session cancelled", "session_id", id)
	return ts, nil
}

func (s *service) MarkNoShow(ctx context.Context, id int) (*TrainingSession, error) {
	ts, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.now().Before(ts.ScheduledAt) {
		return nil, ErrNotStarted
	}

	ts, err = s.repo.Transition(ctx, id, StatusNoShow, "")
	if err != nil {
		return nil, err
	}
	logger.Info("session no-show", "session_id", id, "member_id", ts.MemberID)
	return ts, nil
}

// ListByTrainer covers the days from..to inclusive.
func (s *service) ListByTrainer(ctx context.Context, trainerID int, from, to time.Time) ([]Detail, error) {
	from, to = calendar.Day(from), calendar.Day(to)
	if to.Before(from) {
		from, to = to, from
	}
	return s.repo.ListByTrainer(ctx, trainerID, from, calendar.AddDays(to, 1))
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Detail, error) {
	return s.repo.ListByMember(ctx, memberID)
}
