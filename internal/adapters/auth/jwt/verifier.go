package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-care-reminders/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims del token emitido por el IAM. sub es el userID.
type Claims struct {
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
	gojwt.RegisteredClaims
}

type Config struct {
	Secret string
	Issuer string // opcional; si se define, debe coincidir
}

// Verifier valida tokens HS256 localmente, sin llamar a Odin.
type Verifier struct {
	secret []byte
	parser *gojwt.Parser
}

func NewVerifier(cfg Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("jwt secret required")
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, gojwt.WithIssuer(iss))
	}

	return &Verifier{
		secret: []byte(secret),
		parser: gojwt.NewParser(opts...),
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var c Claims
	_, err := v.parser.ParseWithClaims(token, &c, func(t *gojwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	claims := auth.Claims{
		UserID:   strings.TrimSpace(c.Subject),
		Email:    strings.TrimSpace(c.Email),
		TenantID: strings.TrimSpace(c.TenantID),
	}
	if !claims.Authenticated() {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", auth.ErrInvalidToken)
	}
	return claims, nil
}
