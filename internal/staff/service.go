package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/calendar"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
)

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrEmailExists        = errors.New("staff email already exists")
	ErrStaffInactive      = errors.New("staff member is inactive")
	ErrNotTrainer         = errors.New("staff member is not a trainer")
	ErrInvalidShift       = errors.New("invalid shift")
	ErrShiftOverlap       = errors.New("shifts overlap")
	ErrClientAssigned     = errors.New("member already has an active trainer")
	ErrAssignmentNotFound = errors.New("client is not assigned to this trainer")
)

type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
}

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (*Staff, error)
	Get(ctx context.Context, id int) (*Staff, error)
	GetActiveTrainer(ctx context.Context, id int) (*Staff, error)
	List(ctx context.Context, filter ListFilter) ([]Staff, error)
	Update(ctx context.Context, id int, req UpdateStaffRequest) (*Staff, error)
	Deactivate(ctx context.Context, id int) error
	SetSchedule(ctx context.Context, id int, shifts []ShiftInput) ([]Shift, error)
	GetSchedule(ctx context.Context, id int) ([]Shift, error)
	AssignClient(ctx context.Context, trainerID, memberID int) (*Client, error)
	UnassignClient(ctx context.Context, trainerID, memberID int) error
	ListClients(ctx context.Context, trainerID int) ([]Client, error)
	CommissionReport(ctx context.Context, trainerID int, from, to time.Time) (*CommissionReport, error)
}

type service struct {
	repo    Repository
	members MemberSource
	now     func() time.Time
}

func NewService(repo Repository, members MemberSource) Service {
	return &service{repo: repo, members: members, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (*Staff, error) {
	st := &Staff{
		UserID:                    req.UserID,
		Name:                      strings.TrimSpace(req.Name),
		Phone:                     req.Phone,
		Role:                      req.Role,
		CompensationType:          req.CompensationType,
		BasePayCents:              req.BasePayCents,
		CommissionPerSessionCents: req.CommissionPerSessionCents,
		CommissionRateBps:         req.CommissionRateBps,
		HiredAt:                   calendar.Day(s.now()),
	}
	if req.HiredAt != nil {
		st.HiredAt = calendar.Day(*req.HiredAt)
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		st.Email = &email
	}

	created, err := s.repo.Create(ctx, st)
	if err != nil {
		return nil, err
	}

	logger.Info("staff created", "staff_id", created.ID, "role", created.Role)
	return created, nil
}

func (s *service) Get(ctx context.Context, id int) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

// GetActiveTrainer returns the staff record only if it can take sessions and clients.
func (s *service) GetActiveTrainer(ctx context.Context, id int) (*Staff, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.IsTrainer() {
		return nil, ErrNotTrainer
	}
	if !st.Active {
		return nil, ErrStaffInactive
	}
	return st, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Staff, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int, req UpdateStaffRequest) (*Staff, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(st)
	return s.repo.Update(ctx, st)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	logger.Info("staff deactivated", "staff_id", id)
	return nil
}

func (s *service) SetSchedule(ctx context.Context, id int, in []ShiftInput) ([]Shift, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	shifts, err := NormalizeShifts(id, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceShifts(ctx, id, shifts); err != nil {
		return nil, err
	}
	return s.repo.ListShifts(ctx, id)
}

func (s *service) GetSchedule(ctx context.Context, id int) ([]Shift, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListShifts(ctx, id)
}

func (s *service) AssignClient(ctx context.Context, trainerID, memberID int) (*Client, error) {
	if _, err := s.GetActiveTrainer(ctx, trainerID); err != nil {
		return nil, err
	}
	m, err := s.members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !m.IsActive() {
		return nil, member.ErrMemberInactive
	}

	c, err := s.repo.AssignClient(ctx, trainerID, memberID)
	if err != nil {
		return nil, err
	}

	logger.Info("client assigned", "trainer_id", trainerID, "member_id", memberID)
	return c, nil
}

func (s *service) UnassignClient(ctx context.Context, trainerID, memberID int) error {
	if err := s.repo.EndAssignment(ctx, trainerID, memberID, s.now()); err != nil {
		return err
	}
	logger.Info("client unassigned", "trainer_id", trainerID, "member_id", memberID)
	return nil
}

func (s *service) ListClients(ctx context.Context, trainerID int) ([]Client, error) {
	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.repo.ListClients(ctx, trainerID)
}

// CommissionReport covers the days from..to inclusive.
func (s *service) CommissionReport(ctx context.Context, trainerID int, from, to time.Time) (*CommissionReport, error) {
	st, err := s.repo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !st.IsTrainer() {
		return nil, ErrNotTrainer
	}

	from, to = calendar.Day(from), calendar.Day(to)
	if to.Before(from) {
		from, to = to, from
	}
	end := calendar.AddDays(to, 1)

	sessions, err := s.repo.CompletedSessions(ctx, trainerID, from, end)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ClientPayments(ctx, trainerID, from, end)
	if err != nil {
		return nil, err
	}

	report := Commission(st, sessions, payments)
	report.From, report.To = from, to
	return &report, nil
}
