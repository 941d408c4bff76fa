package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer   = "gym-backoffice"
	audience = "gym-staff"

	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

// Token kinds.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Roles of back-office accounts.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleTrainer = "trainer"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongKind    = errors.New("wrong token kind")
	ErrEmptySecret  = errors.New("jwt secret cannot be empty")
)

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleStaff, RoleTrainer:
		return true
	}
	return false
}

// Identity is the account a token speaks for.
type Identity struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	Identity
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Signer issues and verifies HS256 tokens for one secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

func (s *Signer) Issue(id Identity, kind string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrEmptySecret
	}

	ttl := AccessTTL
	if kind == KindRefresh {
		ttl = RefreshTTL
	}

	now := s.now()
	claims := &Claims{
		Identity: id,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  []string{audience},
			Subject:   fmt.Sprint(id.UserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) IssuePair(id Identity) (TokenPair, error) {
	access, err := s.Issue(id, KindAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.Issue(id, KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Verify parses token and checks that it is of the given kind.
func (s *Signer) Verify(token, kind string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrEmptySecret
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrWrongKind
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
