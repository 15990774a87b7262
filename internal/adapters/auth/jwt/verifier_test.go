package jwt

import (
	"context"
	"testing"
	"time"

	"pet-care-reminders/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, method gojwt.SigningMethod, c Claims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(method, c).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func claimsFor(sub, iss string, exp time.Time) Claims {
	return Claims{
		Email:    "owner@example.com",
		TenantID: "t-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    iss,
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	}
}

func TestVerifier_Valid(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret", Issuer: "odin"})
	require.NoError(t, err)

	tok := sign(t, "s3cret", gojwt.SigningMethodHS256, claimsFor("user-1", "odin", time.Now().Add(time.Hour)))

	c, err := v.Verify(context.Background(), "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "user-1", Email: "owner@example.com", TenantID: "t-1"}, c)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret", Issuer: "odin"})
	require.NoError(t, err)
	future := time.Now().Add(time.Hour)

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": sign(t, "other", gojwt.SigningMethodHS256, claimsFor("user-1", "odin", future)),
		"wrong issuer": sign(t, "s3cret", gojwt.SigningMethodHS256, claimsFor("user-1", "evil", future)),
		"expired":      sign(t, "s3cret", gojwt.SigningMethodHS256, claimsFor("user-1", "odin", time.Now().Add(-time.Hour))),
		"missing sub":  sign(t, "s3cret", gojwt.SigningMethodHS256, claimsFor("", "odin", future)),
		"wrong alg":    sign(t, "s3cret", gojwt.SigningMethodHS512, claimsFor("user-1", "odin", future)),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.Error(t, err)
}
