package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateFirstOwner(ctx context.Context, name, email, passwordHash string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
