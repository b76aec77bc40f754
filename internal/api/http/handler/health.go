package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

// Check answers 200 while the database is reachable, 503 otherwise.
func (h *Health) Check(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		h.logger.Error("Health handler: database unreachable",
			"error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
