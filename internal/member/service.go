package member

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailExists    = errors.New("member email already in use")
	ErrNameRequired   = errors.New("first and last name are required")
	ErrMemberInactive = errors.New("member is inactive")
)

type Service interface {
	Create(ctx context.Context, req CreateMemberRequest) (*Member, error)
	Get(ctx context.Context, id int) (*Member, error)
	GetByCheckinCode(ctx context.Context, code string) (*Member, error)
	List(ctx context.Context, filter ListFilter) ([]Member, error)
	Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	Deactivate(ctx context.Context, id int) error
	Reactivate(ctx context.Context, id int) error
	RegenerateCheckinCode(ctx context.Context, id int) (string, error)
}

type service struct {
	repo    Repository
	newCode func() string
}

func NewService(repo Repository) Service {
	return &service{repo: repo, newCode: func() string { return uuid.NewString() }}
}

func (s *service) Create(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	first, last := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return nil, ErrNameRequired
	}

	m := &Member{
		FirstName:             first,
		LastName:              last,
		Phone:                 strings.TrimSpace(req.Phone),
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalNotes:          req.MedicalNotes,
		Status:                StatusActive,
		CheckinCode:           s.newCode(),
	}

	if email := normalizeEmail(req.Email); email != "" {
		taken, err := s.repo.EmailTaken(ctx, email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailExists
		}
		m.Email = &email
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	logger.Info("member created", "member_id", created.ID)
	return created, nil
}

func (s *service) Get(ctx context.Context, id int) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCheckinCode(ctx context.Context, code string) (*Member, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMemberNotFound
	}
	return s.repo.GetByCheckinCode(ctx, code)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Member, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		m.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		m.LastName = strings.TrimSpace(*req.LastName)
	}
	if m.FirstName == "" || m.LastName == "" {
		return nil, ErrNameRequired
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			m.Email = nil
		} else {
			taken, err := s.repo.EmailTaken(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailExists
			}
			m.Email = &email
		}
	}
	if req.Phone != nil {
		m.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.DateOfBirth != nil {
		m.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		m.Gender = *req.Gender
	}
	if req.Address != nil {
		m.Address = *req.Address
	}
	if req.EmergencyContactName != nil {
		m.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		m.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.MedicalNotes != nil {
		m.MedicalNotes = *req.MedicalNotes
	}

	return s.repo.Update(ctx, m)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	if err := s.repo.SetStatus(ctx, id, StatusInactive); err != nil {
		return err
	}
	logger.Info("member deactivated", "member_id", id)
	return nil
}

func (s *service) Reactivate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusActive)
}

// RegenerateCheckinCode invalidates the member's current card or QR code.
func (s *service) RegenerateCheckinCode(ctx context.Context, id int) (string, error) {
	code := s.newCode()
	if err := s.repo.SetCheckinCode(ctx, id, code); err != nil {
		return "", err
	}
	return code, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
