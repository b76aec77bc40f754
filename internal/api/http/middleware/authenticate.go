package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// TokenVerifier verifies access tokens and returns their claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string, kind model.TokenKind) (model.TokenClaims, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokenService   TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, verifies the access token and
// passes a context carrying the user ID to the next handler.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return unauthorized(c, err)
		}

		claims, err := m.tokenService.Verify(c.Request().Context(), tokenString, model.TokenKindAccess)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"error", err.Error())
			return unauthorized(c, err)
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", model.ErrUnauthenticated
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", model.ErrUnauthenticated
	}

	return token, nil
}

// unauthorized writes the 401 envelope. The middleware cannot reach the
// handler package's mapping, so it carries the token error codes itself.
func unauthorized(c echo.Context, err error) error {
	code := "unauthenticated"
	switch {
	case errors.Is(err, model.ErrTokenExpired):
		code = "token_expired"
	case errors.Is(err, model.ErrTokenRevoked):
		code = "token_revoked"
	case errors.Is(err, model.ErrTokenInvalid):
		code = "token_invalid"
	}

	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":   code,
		"message": err.Error(),
	})
}
