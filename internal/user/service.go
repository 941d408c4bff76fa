package user

import (
	"context"
	"errors"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/auth"
)

var (
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyBootstrapped = errors.New("an owner account already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrOwnerRequired       = errors.New("only an owner may create owner accounts")
)

type Service interface {
	Bootstrap(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	CreateUser(ctx context.Context, actorRole string, req CreateUserRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	List(ctx context.Context) ([]User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
}

type service struct {
	repo   Repository
	signer *auth.Signer
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:   repo,
		signer: auth.NewSigner(jwtSecret),
	}
}

func identity(u *User) auth.Identity {
	return auth.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// Bootstrap creates the first account of a fresh installation as owner.
// The emptiness check and the insert happen in one locked statement.
func (s *service) Bootstrap(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.CreateFirstOwner(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, "", "", err
	}

	pair, err := s.signer.IssuePair(identity(user))
	if err != nil {
		return nil, "", "", err
	}

	return user, pair.Access, pair.Refresh, nil
}

func (s *service) CreateUser(ctx context.Context, actorRole string, req CreateUserRequest) (*User, error) {
	if !auth.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	if req.Role == auth.RoleOwner && actorRole != auth.RoleOwner {
		return nil, ErrOwnerRequired
	}
	return s.create(ctx, req.Name, req.Email, req.Password, req.Role)
}

func (s *service) create(ctx context.Context, name, email, password, role string) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, name, email, passwordHash, role)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	pair, err := s.signer.IssuePair(identity(user))
	if err != nil {
		return nil, "", "", err
	}

	return user, pair.Access, pair.Refresh, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	claims, err := s.signer.Verify(refreshToken, auth.KindRefresh)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	// Re-issue from the stored record so role changes take effect on refresh.
	newAccessToken, err := s.signer.Issue(identity(user), auth.KindAccess)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}
