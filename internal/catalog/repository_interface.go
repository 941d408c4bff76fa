package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Package) (*Package, error)
	GetByID(ctx context.Context, id int) (*Package, error)
	List(ctx context.Context, activeOnly bool) ([]Package, error)
	Update(ctx context.Context, p *Package) (*Package, error)
	SetActive(ctx context.Context, id int, active bool) error
}
