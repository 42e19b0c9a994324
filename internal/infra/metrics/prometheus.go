// Package metrics exposes booking and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"reservation-book/internal/domain/reservation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type Metrics struct {
	registry *prometheus.Registry

	bookingsTotal    *prometheus.CounterVec
	bookingDuration  *prometheus.HistogramVec
	bookingFailures  prometheus.Counter
	slotConflicts    prometheus.Counter
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// NewMetrics registers every collector on a fresh registry, so separate instances never collide.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		bookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_bookings_total",
				Help: "Booking attempts by outcome",
			},
			[]string{"outcome"},
		),
		bookingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reservation_booking_duration_seconds",
				Help:    "Time to decide a booking attempt",
				Buckets: durationBuckets,
			},
			[]string{"outcome"},
		),
		bookingFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reservation_booking_failures_total",
				Help: "Booking attempts that ended in an infrastructure error",
			},
		),
		slotConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reservation_slot_conflicts_total",
				Help: "Bookings re-evaluated after losing a table to a concurrent booking",
			},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reservation_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: durationBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "reservation_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
	}
}

func (m *Metrics) ObserveOutcome(kind reservation.Kind, elapsed time.Duration) {
	m.bookingsTotal.WithLabelValues(kind.String()).Inc()
	m.bookingDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFailure(elapsed time.Duration) {
	m.bookingFailures.Inc()
	m.bookingDuration.WithLabelValues("error").Observe(elapsed.Seconds())
}

func (m *Metrics) ConflictRetried() {
	m.slotConflicts.Inc()
}

func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.requestsTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestsInFlight() { m.requestsInFlight.Inc() }
func (m *Metrics) DecRequestsInFlight() { m.requestsInFlight.Dec() }

// Handler serves this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
