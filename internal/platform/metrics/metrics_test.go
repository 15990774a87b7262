package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ScheduleFailures.Inc()
	a.RemindersGenerated.WithLabelValues("VACCINE").Add(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ScheduleFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ScheduleFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(a.RemindersGenerated.WithLabelValues("VACCINE")))
}

func TestCollector_HandlerExposesMetrics(t *testing.T) {
	c := New()
	c.NotificationFailures.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "petcare_notification_failures_total 1"))
}
