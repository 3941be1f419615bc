package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateAccessToken("patient@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "patient@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken("patient@example.com")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	svc := NewJWTService("secret")

	a, err := svc.GenerateAccessToken("patient@example.com")
	assert.NoError(t, err)
	b, err := svc.GenerateAccessToken("patient@example.com")
	assert.NoError(t, err)

	claimsA, err := svc.ValidateToken(a)
	assert.NoError(t, err)
	claimsB, err := svc.ValidateToken(b)
	assert.NoError(t, err)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
