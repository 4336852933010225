package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// Observability records request metrics and logs every request.
func Observability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// route template, not the raw path, keeps label cardinality bounded
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		duration := metrics.MeasureDuration(start)
		statusStr := strconv.Itoa(status)
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(c.Method(), route, statusStr).Inc()

		fields := []zap.Field{
			zap.String("route", route),
			zap.String("client_ip", c.IP()),
			zap.Int("response_size", len(c.Response().Body())),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.LogHTTPRequest(c.Method(), c.Path(), status, duration, fields...)
		return err
	}
}
