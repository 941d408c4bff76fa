package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

var desk = Identity{UserID: 42, Email: "desk@gym.local", Role: RoleStaff}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("frontdesk-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "frontdesk-pass", hash)
	assert.True(t, CheckPassword(hash, "frontdesk-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(hash, ""))

	again, _ := HashPassword("frontdesk-pass")
	assert.NotEqual(t, hash, again)
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleOwner, RoleAdmin, RoleStaff, RoleTrainer} {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole("member"))
	assert.False(t, ValidRole(""))
}

func TestSigner_IssueVerify(t *testing.T) {
	s := NewSigner(testSecret)

	token, err := s.Issue(desk, KindAccess)
	require.NoError(t, err)

	claims, err := s.Verify(token, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, desk, claims.Identity)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)

	_, err = s.Verify(token, KindRefresh)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestSigner_IssuePair(t *testing.T) {
	s := NewSigner(testSecret)

	pair, err := s.IssuePair(desk)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := s.Verify(pair.Refresh, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, desk.UserID, claims.UserID)
}

func TestSigner_EmptySecret(t *testing.T) {
	s := NewSigner("")

	_, err := s.Issue(desk, KindAccess)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = s.Verify("whatever", KindAccess)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSigner_Rejects(t *testing.T) {
	s := NewSigner(testSecret)

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewSigner("other-secret").Issue(desk, KindAccess)
		_, err := s.Verify(token, KindAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Verify("not.a.jwt", KindAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewSigner(testSecret)
		old.now = func() time.Time { return time.Now().Add(-2 * AccessTTL) }
		token, err := old.Issue(desk, KindAccess)
		require.NoError(t, err)

		_, err = s.Verify(token, KindAccess)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := &Claims{
			Identity: desk,
			Kind:     KindAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  []string{"someone-else"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

		_, err := s.Verify(token, KindAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
