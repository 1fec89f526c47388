package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chairbook_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chairbook_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AvailabilityQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chairbook_availability_queries_total",
			Help: "Availability queries by outcome",
		},
		[]string{"outcome"},
	)

	AvailableSlots = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chairbook_available_slots",
			Help:    "Number of slots returned per successful availability query",
			Buckets: []float64{0, 1, 5, 10, 20, 30, 40, 50},
		},
	)

	AppointmentsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chairbook_appointments_total",
			Help: "Appointment write attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	EmailsQueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chairbook_emails_queued_total",
			Help: "Emails queued by kind",
		},
		[]string{"kind", "status"},
	)
)

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordAvailability records a query outcome and, on success, the slot count.
func RecordAvailability(outcome string, slots int) {
	AvailabilityQueries.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		AvailableSlots.Observe(float64(slots))
	}
}

func RecordAppointment(operation, outcome string) {
	AppointmentsBooked.WithLabelValues(operation, outcome).Inc()
}

func RecordEmail(kind, status string) {
	EmailsQueued.WithLabelValues(kind, status).Inc()
}
