package middleware

import (
	"time"

	"dashboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records prometheus metrics per request
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Handle records request count and latency labeled by method, route and
// status class.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Resolve the final status before recording. The Committed guard
			// in the error handler prevents a double response.
			c.Error(err)
		}

		metrics.RecordRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))

		return err
	}
}
