package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/telemetry/metric"
)

// Metrics records request counters and latencies.
type Metrics struct {
	metrics *metric.Metrics
}

// NewMetrics creates a new Metrics middleware.
func NewMetrics(metrics *metric.Metrics) *Metrics {
	return &Metrics{metrics: metrics}
}

// Handle observes each request under its route template.
func (m *Metrics) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.metrics.ObserveRequest(
			c.Request().Method,
			c.Path(),
			c.Response().Status,
			time.Since(start),
		)

		return nil
	}
}
