package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-reminders/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil, nil))
	RegisterRoutes(r, svc, nil)
	return r
}

func get(t *testing.T, h http.Handler, path, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.DebugUserHeader, userID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListHandler_PagingHeaders(t *testing.T) {
	f := newFixture(t)
	seedLitter(t, f, "owner-1", 60)
	h := newTestHandler(f.svc)

	rec := get(t, h, "/reminders", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "600", rec.Header().Get(HeaderTotalCount))
	assert.Equal(t, "100", rec.Header().Get(HeaderNextOffset))

	var items []reminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, DefaultListLimit)

	rec = get(t, h, "/reminders?limit=500&offset=500", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 100)
	assert.Equal(t, "600", rec.Header().Get(HeaderTotalCount))
	assert.Empty(t, rec.Header().Get(HeaderNextOffset), "last page")

	rec = get(t, h, "/reminders?offset=-3", "owner-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryHandler_CountsEverything(t *testing.T) {
	f := newFixture(t)
	seedLitter(t, f, "owner-1", 60)

	rec := get(t, newTestHandler(f.svc), "/reminders/summary", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var s summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 600, s.Total)
	assert.Equal(t, 600, s.Pending)
}

func TestHandlers_PetLookupFailureIs500(t *testing.T) {
	svc := NewService(newTestRepo(testPets{}), brokenPets{err: errors.New("connection refused")}, Options{})
	h := newTestHandler(svc)

	for _, path := range []string{
		"/pets/pet-1/reminders",
		"/reminders?pet_id=pet-1",
		"/reminders/summary?pet_id=pet-1",
	} {
		rec := get(t, h, path, "owner-1")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}

	rec := get(t, newTestHandler(NewService(newTestRepo(testPets{}), testPets{}, Options{})), "/pets/ghost/reminders", "owner-1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
