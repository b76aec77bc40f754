package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
)

// Logging logs every HTTP request with its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, status and duration for each request.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		l.logger.Info("HTTP request started",
			"method", c.Request().Method,
			"path", c.Path())

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		duration := time.Since(start)

		l.logger.Info("HTTP request completed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", c.Response().Status,
			"duration_ms", duration.Milliseconds())

		if err != nil {
			l.logger.Error("HTTP request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err.Error())
		}

		return nil
	}
}
