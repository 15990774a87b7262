package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pet-care-reminders/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Notify(t *testing.T) {
	var got notification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/notifications", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d, err := New(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	err = d.Notify(context.Background(), "owner-1", "New care reminders", "3 reminders generated",
		map[string]string{"petId": "pet-1", "screen": "PetDetails"})
	require.NoError(t, err)

	assert.Equal(t, "owner-1", got.UserID)
	assert.Equal(t, "3 reminders generated", got.Message)
	assert.Equal(t, "PetDetails", got.Data["screen"])
}

func TestDispatcher_OpensCircuitWhenGatewayFails(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Error(t, d.Notify(context.Background(), "u", "t", "m", nil))
	}
	assert.Equal(t, "open", d.State())

	err = d.Notify(context.Background(), "u", "t", "m", nil)
	assert.ErrorIs(t, err, httpclient.ErrCircuitOpen)
	assert.EqualValues(t, 5, hits.Load(), "open circuit does not reach the gateway")
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrPushNotConfigured)
}
