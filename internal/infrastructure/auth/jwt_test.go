package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.IssueAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "wagate", claims.Issuer)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).IssueAdminToken()
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wagate",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 60).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hash)

	assert.NoError(t, CheckPassword("rahasia", hash))
	assert.ErrorIs(t, CheckPassword("salah", hash), ErrPasswordMismatch)
}
