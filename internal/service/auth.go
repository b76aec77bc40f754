package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

const minPasswordLength = 8

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	events       model.EventPublisher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	blacklist model.TokenBlacklist,
	events model.EventPublisher,
	logger *logger.Logger,
	tokenManager model.TokenManager,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		events:       events,
		tokenService: NewTokenService(tokenManager, blacklist, logger),
		logger:       logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"username", params.Username)

	if err := validatePassword(params.Password); err != nil {
		return model.User{}, err
	}
	if params.Password != params.ConfirmPassword {
		return model.User{}, model.ErrPasswordMismatch
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		Email:        normalizeIdentity(params.Email),
		Username:     normalizeIdentity(params.Username),
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness is enforced by the store; a lost registration race
	// surfaces here as ErrDuplicateUser.
	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			a.logger.Info("Auth service: duplicate registration",
				"username", user.Username)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"username", user.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	// Event delivery is best effort, registration already happened.
	if err := a.events.UserRegistered(ctx, savedUser); err != nil {
		a.logger.Error("Auth service: failed to publish registration event",
			"username", savedUser.Username,
			"error", err.Error())
	}

	a.logger.Info("Auth service: user registered",
		"username", savedUser.Username,
		"user_id", savedUser.ID)

	return savedUser, nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (model.User, model.TokenPair, error) {
	a.logger.Debug("Auth service: logging user in",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, normalizeIdentity(username))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"username", username,
			"error", err.Error())
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok || !user.IsActive {
		return model.User{}, model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", user.Username,
		"user_id", user.ID)

	return user, pair, nil
}

func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword, confirm string) error {
	a.logger.Debug("Auth service: changing password",
		"user_id", userID)

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	ok, err := a.hasher.Verify(current, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return model.ErrInvalidCredentials
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if newPassword != confirm {
		return model.ErrPasswordMismatch
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID)

	return nil
}

func (a *Auth) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func normalizeIdentity(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// validatePassword enforces the password policy: minimum length plus
// at least one upper, lower, digit and special character.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return model.ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return model.ErrWeakPassword
	}

	return nil
}
