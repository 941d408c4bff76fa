package catalog

import (
	"context"
	"errors"
)

var (
	ErrPackageNotFound = errors.New("membership package not found")
	ErrInvalidPackage  = errors.New("invalid membership package")
)

type Service interface {
	Create(ctx context.Context, req CreatePackageRequest) (*Package, error)
	Get(ctx context.Context, id int) (*Package, error)
	List(ctx context.Context, activeOnly bool) ([]Package, error)
	Update(ctx context.Context, id int, req UpdatePackageRequest) (*Package, error)
	SetActive(ctx context.Context, id int, active bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePackageRequest) (*Package, error) {
	p := &Package{
		Name:                req.Name,
		Description:         req.Description,
		DurationDays:        req.DurationDays,
		PriceCents:          req.PriceCents,
		VisitsLimit:         req.VisitsLimit,
		SessionsIncluded:    req.SessionsIncluded,
		TrialDays:           req.TrialDays,
		FreezeAllowed:       req.FreezeAllowed,
		MaxFreezeDays:       req.MaxFreezeDays,
		InstallmentsAllowed: req.InstallmentsAllowed,
		MaxInstallments:     req.MaxInstallments,
		Active:              true,
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Get(ctx context.Context, id int) (*Package, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]Package, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) Update(ctx context.Context, id int, req UpdatePackageRequest) (*Package, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(p)
	if err := Validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) SetActive(ctx context.Context, id int, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Validate checks the cross-field rules binding tags cannot express.
func Validate(p *Package) error {
	switch {
	case p.Name == "":
		return ErrInvalidPackage
	case p.DurationDays <= 0:
		return ErrInvalidPackage
	case p.PriceCents < 0:
		return ErrInvalidPackage
	case p.TrialDays > p.DurationDays:
		return ErrInvalidPackage
	case p.FreezeAllowed && p.MaxFreezeDays <= 0:
		return ErrInvalidPackage
	case p.InstallmentsAllowed && p.MaxInstallments < 2:
		return ErrInvalidPackage
	}
	return nil
}
