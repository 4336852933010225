package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Buckets from a few milliseconds (form posts) up to the print timeout.
	RequestBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: RequestBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_submissions_total",
			Help: "Resume form submissions by result",
		},
		[]string{"result"},
	)

	PhotoDecodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_photo_decode_total",
			Help: "Photo decodes by status",
		},
		[]string{"status"},
	)

	PrintDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_print_duration_seconds",
			Help:    "Time to render a resume preview to PDF",
			Buckets: RequestBuckets,
		},
		[]string{"status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resume_active_sessions",
			Help: "Form sessions currently held in memory",
		},
	)
)

// MeasureDuration returns seconds elapsed since start.
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
