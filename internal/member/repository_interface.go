package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetByCheckinCode(ctx context.Context, code string) (*Member, error)
	List(ctx context.Context, filter ListFilter) ([]Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	SetStatus(ctx context.Context, id int, status string) error
	SetCheckinCode(ctx context.Context, id int, code string) error
	EmailTaken(ctx context.Context, email string, exceptID int) (bool, error)
}
