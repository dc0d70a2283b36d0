package observability

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce                sync.Once
	httpRequestsTotal           *prometheus.CounterVec
	httpLatencySeconds          *prometheus.HistogramVec
	notificationsPublishedTotal *prometheus.CounterVec
	drivesSharedTotal           *prometheus.CounterVec
	shareLatencySeconds         prometheus.Histogram
	applicationsSubmittedTotal  prometheus.Counter
	sseClientsActive            prometheus.Gauge
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "placement_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		notificationsPublishedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_notifications_published_total",
			Help: "Total notifications created, labelled by type.",
		}, []string{"type"})

		drivesSharedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_drives_shared_total",
			Help: "Students newly added to drive share lists, labelled by share mode.",
		}, []string{"mode"})

		shareLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "placement_drive_share_latency_seconds",
			Help:    "Latency distribution of the drive share operation.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		})

		applicationsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "placement_applications_submitted_total",
			Help: "Total drive applications submitted.",
		})

		sseClientsActive = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "placement_sse_clients_active",
			Help: "Currently connected notification stream clients.",
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			notificationsPublishedTotal,
			drivesSharedTotal,
			shareLatencySeconds,
			applicationsSubmittedTotal,
			sseClientsActive,
		)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// NotificationsPublishedTotal exposes the notification counter.
func NotificationsPublishedTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsPublishedTotal
}

// DrivesSharedTotal exposes the share-delta counter.
func DrivesSharedTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return drivesSharedTotal
}

// ShareLatency exposes the drive share latency histogram.
func ShareLatency() prometheus.Histogram {
	RegisterMetrics()
	return shareLatencySeconds
}

// ApplicationsSubmittedTotal exposes the application counter.
func ApplicationsSubmittedTotal() prometheus.Counter {
	RegisterMetrics()
	return applicationsSubmittedTotal
}

// SSEClientsActive exposes the live stream client gauge.
func SSEClientsActive() prometheus.Gauge {
	RegisterMetrics()
	return sseClientsActive
}

// MetricsHandler serves the Prometheus scrape endpoint through Fiber.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())
}
