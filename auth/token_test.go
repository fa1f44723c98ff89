package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("user-123", "a@x.com", "user")
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.False(t, claims.IsAdmin())
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", 0)
	tok, err := svc.Issue("u1", "a@x.com", "admin")
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, DefaultTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", -1*time.Second)
	tok, err := svc.Issue("u1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("u1", "a@x.com", "user")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2", "b@x.com", "user")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k", time.Hour).Validate("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID: "u1",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := token.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1", Role: "user"})
	tok, err := token.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)
	tok, err := svc.Issue("u1", "a@x.com", "superuser")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
