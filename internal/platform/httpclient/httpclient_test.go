package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RelativePathAndHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"X-Api-Key": "secret"}

	var out struct {
		Echo string `json:"echo"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "v1/echo", nil, map[string]string{"msg": "hola"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hola", out.Echo)
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer ts.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "nope", he.Body)
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c := New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("::not a url", time.Second)
	require.Error(t, err)
}

func TestCircuitBreaker_OpensOn5xxAndShortCircuits(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	s := DefaultBreakerSettings("test")
	s.MinRequests = 2
	s.FailureThreshold = 0.5
	s.Timeout = time.Minute
	c := New(time.Second).WithCircuitBreaker(s)

	for i := 0; i < 2; i++ {
		err := c.DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)
		var he *HTTPError
		require.True(t, errors.As(err, &he))
	}
	assert.Equal(t, "open", c.BreakerState())

	err := c.DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestCircuitBreaker_4xxDoesNotTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	s := DefaultBreakerSettings("test-4xx")
	s.MinRequests = 1
	c := New(time.Second).WithCircuitBreaker(s)

	for i := 0; i < 5; i++ {
		_ = c.DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)
	}
	assert.Equal(t, "closed", c.BreakerState())
}
