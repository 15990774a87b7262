package plansfeatures

import (
	"context"
	"errors"
	"strings"

	"pet-care-reminders/internal/ports/capabilities"
)

// Resolver implementa capabilities.CapabilitiesResolver contra plans-features.
type Resolver struct {
	client   *Client
	allowAll bool
}

// NewResolver crea un resolver. allowAll=true (ALLOW_ALL_CAPABILITIES) responde true
// sin llamar a upstream; pensado para dev.
func NewResolver(client *Client, allowAll bool) *Resolver {
	return &Resolver{
		client:   client,
		allowAll: allowAll,
	}
}

// HasFeature responde si el plan del usuario incluye la capability.
func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	capability := strings.TrimSpace(in.Capability)
	if capability == "" {
		return false, errors.New("capability required")
	}

	if r.allowAll {
		return true, nil
	}

	if r.client == nil || !r.client.IsConfigured() {
		// Preferimos fallar explícito en vez de permitir sin control.
		return false, ErrPlansNotConfigured
	}

	resp, err := r.client.GetCapabilities(ctx, in.UserID)
	if err != nil {
		return false, err
	}
	return resp.Capabilities[capability], nil
}

var _ capabilities.CapabilitiesResolver = (*Resolver)(nil)
