package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "belanja_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "belanja_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	settlementOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "belanja_settlement_operations_total",
			Help: "Total number of settlement operations (checkout, pay, refund, cancel)",
		},
		[]string{"operation", "status"},
	)
)

// Prometheus collects request count and duration metrics per route.
func Prometheus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path, status).Observe(duration)

		return err
	}
}

// RecordSettlementOperation counts one money-movement operation by outcome.
func RecordSettlementOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	settlementOperations.WithLabelValues(operation, status).Inc()
}
