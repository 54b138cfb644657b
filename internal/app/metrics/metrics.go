package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	accessEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "access",
			Name:      "evaluations_total",
			Help:      "Access status evaluations by resulting status.",
		},
		[]string{"status"},
	)

	restaurantsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "menu_app",
			Subsystem: "access",
			Name:      "restaurants",
			Help:      "Restaurants per access status at the last snapshot.",
		},
		[]string{"status"},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		},
		[]string{"path"},
	)

	menuViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "menu",
			Name:      "views_total",
			Help:      "Public menu pages served.",
		},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "stripe",
			Name:      "webhook_events_total",
			Help:      "Stripe webhook events by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		accessEvaluations,
		restaurantsByStatus,
		rateLimited,
		menuViews,
		webhookEvents,
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordAccessEvaluation(status string) {
	accessEvaluations.WithLabelValues(status).Inc()
}

// SetRestaurantsByStatus replaces the gauge values; statuses missing from
// counts are reset to zero.
func SetRestaurantsByStatus(counts map[string]int, statuses ...string) {
	for _, s := range statuses {
		restaurantsByStatus.WithLabelValues(s).Set(float64(counts[s]))
	}
}

func RecordRateLimited(path string) {
	rateLimited.WithLabelValues(path).Inc()
}

func RecordMenuView() {
	menuViews.Inc()
}

func RecordWebhookEvent(eventType, outcome string) {
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}
