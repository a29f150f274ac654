package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	IncBookingCreated("suite")
	IncBookingCreated("suite")
	IncOrderCreated("restaurant", 19.65)
	AddTasksMarkedOverdue(3)
	IncLowStock()
	IncEventPublished("booking.created", true)
	IncEventPublished("booking.created", false)

	assert.InDelta(t, 2, testutil.ToFloat64(bookingCreated.WithLabelValues("suite")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(orderCreated.WithLabelValues("restaurant")), 0)
	assert.InDelta(t, 19.65, testutil.ToFloat64(orderRevenue.WithLabelValues("restaurant")), 0.0001)
	assert.InDelta(t, 3, testutil.ToFloat64(tasksMarkedOverdue), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(lowStockAlerts), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(eventsPublished.WithLabelValues("booking.created", "error")), 0)
}

func TestHandlerExposesHistogram(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/rooms", http.StatusOK, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "hotelops_http_request_duration_seconds"))
}
