package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelops"

var (
	once sync.Once

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by room type.",
		},
		[]string{"room_type"},
	)

	orderCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_created_total",
			Help:      "Count of orders created by order type.",
		},
		[]string{"order_type"},
	)

	orderRevenue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_total",
			Help:      "Sum of order totals by order type.",
		},
		[]string{"order_type"},
	)

	tasksMarkedOverdue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_marked_overdue_total",
			Help:      "Count of tasks moved to overdue by the sweeper.",
		},
	)

	lowStockAlerts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_low_stock_total",
			Help:      "Count of inventory writes that left an item at or below its minimum stock level.",
		},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_published_total",
			Help:      "Count of domain events by name and outcome.",
		},
		[]string{"event", "outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			bookingCreated,
			orderCreated,
			orderRevenue,
			tasksMarkedOverdue,
			lowStockAlerts,
			eventsPublished,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()

	return promhttp.Handler()
}

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func IncBookingCreated(roomType string) {
	bookingCreated.WithLabelValues(roomType).Inc()
}

func IncOrderCreated(orderType string, total float64) {
	orderCreated.WithLabelValues(orderType).Inc()
	orderRevenue.WithLabelValues(orderType).Add(total)
}

func AddTasksMarkedOverdue(count int64) {
	tasksMarkedOverdue.Add(float64(count))
}

func IncLowStock() {
	lowStockAlerts.Inc()
}

func IncEventPublished(event string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}

	eventsPublished.WithLabelValues(event, outcome).Inc()
}
