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

// AuthService defines user registration, login and account operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (model.User, model.TokenPair, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword, confirm string) error
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	RevokeByToken(ctx context.Context, refreshToken string) error
}

// Auth handles HTTP endpoints for authentication and account management.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// userResponse is the public shape of a user. Password material never
// appears here.
type userResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type loginResponse struct {
	tokenResponse
	User userResponse `json:"user"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:         user.ID.String(),
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Username:   user.Username,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func newTokenResponse(pair model.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    pair.ExpiresAt,
	}
}

// Register creates a new user account.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Auth handler: processing register request",
		"username", req.Username)

	user, err := h.authService.Register(c.Request().Context(), model.RegisterParams{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"username", req.Username,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Auth handler: register completed",
		"username", user.Username,
		"user_id", user.ID)

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login verifies credentials and returns a fresh token pair.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	user, pair, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Auth handler: login completed",
		"username", user.Username,
		"user_id", user.ID)

	return c.JSON(http.StatusOK, loginResponse{
		tokenResponse: newTokenResponse(pair),
		User:          newUserResponse(user),
	})
}

// Refresh rotates a refresh token into a new pair.
func (h *Auth) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return writeError(c, model.ErrTokenInvalid)
	}

	pair, err := h.tokenService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Auth handler: token refresh completed")

	return c.JSON(http.StatusOK, newTokenResponse(pair))
}

// Logout revokes the presented refresh token.
func (h *Auth) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Auth handler: processing logout request")

	if req.RefreshToken == "" {
		return writeError(c, model.ErrTokenInvalid)
	}

	if err := h.tokenService.RevokeByToken(c.Request().Context(), req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Auth handler: logout completed")

	return c.NoContent(http.StatusNoContent)
}

// ChangePassword updates the authenticated user's password.
func (h *Auth) ChangePassword(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return writeInvalidBody(c)
	}

	h.logger.Debug("Auth handler: processing password change request",
		"user_id", userID)

	err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		h.logger.Error("Auth handler: password change failed",
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info("Auth handler: password change completed",
		"user_id", userID)

	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *Auth) Me(c echo.Context) error {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return writeError(c, model.ErrUnauthenticated)
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Auth handler: get user failed",
			"user_id", userID,
			"error", err.Error())
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
