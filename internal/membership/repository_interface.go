package membership

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m *Membership) (*Membership, error)
	GetByID(ctx context.Context, id int) (*Membership, error)
	GetDetail(ctx context.Context, id int) (*Detail, error)
	List(ctx context.Context, filter ListFilter) ([]Detail, error)
	ListByMember(ctx context.Context, memberID int) ([]Membership, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]Detail, error)
	SaveState(ctx context.Context, m *Membership) error
	Cancel(ctx context.Context, id int, reason string, at time.Time) error
	ExpireDue(ctx context.Context, today time.Time) ([]Expired, error)
	ConsumeVisit(ctx context.Context, id int) (*Membership, error)
	ConsumeSession(ctx context.Context, id int) (*Membership, error)
}
