package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps domain errors onto the HTTP error envelope. Anything
// unclassified is reported as a plain internal error, so wrapped
// infrastructure failures never leak detail to clients.
func writeError(c echo.Context, err error) error {
	code, status := classify(err)
	if status == http.StatusInternalServerError {
		return c.JSON(status, errorResponse{Error: code, Message: "internal server error"})
	}

	return c.JSON(status, errorResponse{Error: code, Message: err.Error()})
}

// writeInvalidBody reports a request that could not be decoded at all.
func writeInvalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "invalid_input",
		Message: "request body is malformed",
	})
}

func classify(err error) (string, int) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return "invalid_credentials", http.StatusUnauthorized
	case errors.Is(err, model.ErrTokenExpired):
		return "token_expired", http.StatusUnauthorized
	case errors.Is(err, model.ErrTokenRevoked):
		return "token_revoked", http.StatusUnauthorized
	case errors.Is(err, model.ErrTokenInvalid):
		return "token_invalid", http.StatusUnauthorized
	case errors.Is(err, model.ErrUnauthenticated):
		return "unauthenticated", http.StatusUnauthorized
	case errors.Is(err, model.ErrWeakPassword):
		return "weak_password", http.StatusBadRequest
	case errors.Is(err, model.ErrPasswordMismatch):
		return "password_mismatch", http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid_input", http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrDivisionByZero):
		return "division_by_zero", http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrUnknownOperation):
		return "unknown_operation", http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrDuplicateUser):
		return "duplicate_user", http.StatusConflict
	case errors.Is(err, model.ErrNotFound):
		return "not_found", http.StatusNotFound
	default:
		return "internal", http.StatusInternalServerError
	}
}
