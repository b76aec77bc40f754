package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// CalculationService defines ownership-scoped calculation operations.
type CalculationService interface {
	Create(ctx context.Context, userID uuid.UUID, opType model.OperationType, inputs []float64) (model.Calculation, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Calculation, error)
	Get(ctx context.Context, userID, calculationID uuid.UUID) (model.Calculation, error)
	Update(ctx context.Context, userID, calculationID uuid.UUID, inputs []float64) (model.Calculation, error)
	Delete(ctx context.Context, userID, calculationID uuid.UUID) error
}

// Calculation handles HTTP endpoints for the calculation history.
type Calculation struct {
	calculationService CalculationService
	contextManager     model.ContextManager
	logger             *logger.Logger
}

// NewCalculation creates a new Calculation handler.
func NewCalculation(calculationService CalculationService, contextManager model.ContextManager, logger *logger.Logger) *Calculation {
	return &Calculation{
		calculationService: calculationService,
		contextManager:     contextManager,
		logger:             logger,
	}
}

type createCalculationRequest struct {
	Type   string    `json:"type"`
	Inputs []float64 `json:"inputs"`
}

type updateCalculationRequest struct {
	Inputs []float64 `json:"inputs"`
}

type calculationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCalculationResponse(calc model.Calculation) calculationResponse {
	return calculationResponse{
		ID:        calc.ID.String(),
		Type:      string(calc.Type),
		Inputs:    calc.Inputs,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
		UpdatedAt: calc.UpdatedAt,
	}
}

// Create computes and stores a new calculation for the caller.
func (h *Calculation) Create(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	var req createCalculationRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Calculation handler: processing create request",
		"user_id", userID,
		"type", req.Type)

	calc, err := h.calculationService.Create(c.Request().Context(), userID, model.OperationType(req.Type), req.Inputs)
	if err != nil {
		h.logger.Error("Calculation handler: create failed",
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Calculation handler: create completed",
		"calculation_id", calc.ID,
		"user_id", userID)

	return c.JSON(http.StatusCreated, newCalculationResponse(calc))
}

// List returns the caller's calculations, newest first.
func (h *Calculation) List(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	calculations, err := h.calculationService.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Calculation handler: list failed",
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	response := make([]calculationResponse, 0, len(calculations))
	for _, calc := range calculations {
		response = append(response, newCalculationResponse(calc))
	}

	return c.JSON(http.StatusOK, response)
}

// Get returns one owned calculation.
func (h *Calculation) Get(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	calculationID, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	calc, err := h.calculationService.Get(c.Request().Context(), userID, calculationID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newCalculationResponse(calc))
}

// Update replaces the inputs of an owned calculation and recomputes its
// result. The operation type cannot change.
func (h *Calculation) Update(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	calculationID, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	var req updateCalculationRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Calculation handler: processing update request",
		"calculation_id", calculationID,
		"user_id", userID)

	calc, err := h.calculationService.Update(c.Request().Context(), userID, calculationID, req.Inputs)
	if err != nil {
		h.logger.Error("Calculation handler: update failed",
			"calculation_id", calculationID,
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Calculation handler: update completed",
		"calculation_id", calculationID,
		"user_id", userID)

	return c.JSON(http.StatusOK, newCalculationResponse(calc))
}

// Delete removes an owned calculation.
func (h *Calculation) Delete(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	calculationID, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	if err := h.calculationService.Delete(c.Request().Context(), userID, calculationID); err != nil {
		h.logger.Error("Calculation handler: delete failed",
			"calculation_id", calculationID,
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Calculation handler: delete completed",
		"calculation_id", calculationID,
		"user_id", userID)

	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id path parameter. An id that is not a UUID can
// never name a calculation, so callers report it as not found.
func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
