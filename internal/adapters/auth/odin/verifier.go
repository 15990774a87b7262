package odin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-care-reminders/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier usando Odin.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrOdinNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrOdinUnauthorized) {
			return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
		}
		return auth.Claims{}, fmt.Errorf("odin verify failed: %w", err)
	}

	if !claims.Authenticated() {
		return auth.Claims{}, errors.New("odin claims missing user id")
	}
	return claims, nil
}
