package plansfeatures

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pet-care-reminders/internal/ports/capabilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_HasFeature(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/capabilities", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))

		switch r.URL.Query().Get("user_id") {
		case "premium":
			_ = json.NewEncoder(w).Encode(CapabilitiesResponse{
				Capabilities: map[string]bool{capabilities.ManualReminders: true},
			})
		case "revoked":
			w.WriteHeader(http.StatusForbidden)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{})
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)
	r := NewResolver(client, false)
	ctx := context.Background()

	ok, err := r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "premium", Capability: capabilities.ManualReminders})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "free", Capability: capabilities.ManualReminders})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "revoked", Capability: capabilities.ManualReminders})
	assert.ErrorIs(t, err, ErrPlansUnauthorized)

	assert.EqualValues(t, 3, calls.Load())
}

func TestResolver_AllowAllSkipsUpstream(t *testing.T) {
	r := NewResolver(nil, true)
	ok, err := r.HasFeature(context.Background(), capabilities.CapabilityCheck{UserID: "u", Capability: "anything"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.HasFeature(context.Background(), capabilities.CapabilityCheck{UserID: "u"})
	assert.Error(t, err)
}

func TestResolver_NotConfigured(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = NewResolver(client, false).HasFeature(context.Background(),
		capabilities.CapabilityCheck{UserID: "u", Capability: capabilities.ManualReminders})
	assert.ErrorIs(t, err, ErrPlansNotConfigured)
}
