package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// TokenService provides high-level operations for issuing, verifying,
// refreshing and revoking tokens. It composes the TokenManager and the
// TokenBlacklist.
type TokenService struct {
	manager   model.TokenManager
	blacklist model.TokenBlacklist
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, blacklist model.TokenBlacklist, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, blacklist: blacklist, logger: logger}
}

// Issue mints a fresh access/refresh pair for the user.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error) {
	access, accessClaims, err := s.manager.Generate(userID, model.TokenKindAccess)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, _, err := s.manager.Generate(userID, model.TokenKindRefresh)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessClaims.ExpiresAt,
	}, nil
}

// Verify checks signature, expiry and kind. Refresh tokens are also
// checked against the blacklist; access tokens are not, so a revoked
// access token keeps working until its own expiry.
func (s *TokenService) Verify(ctx context.Context, token string, kind model.TokenKind) (model.TokenClaims, error) {
	claims, err := s.manager.Parse(token, kind)
	if err != nil {
		return model.TokenClaims{}, err
	}

	if kind == model.TokenKindRefresh && s.blacklist.Contains(ctx, claims.JTI) {
		return model.TokenClaims{}, model.ErrTokenRevoked
	}

	return claims, nil
}

// Refresh rotates the presented refresh token: the old JTI is revoked
// before a new pair is minted, so each refresh token works exactly once.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (model.TokenPair, error) {
	claims, err := s.Verify(ctx, presentedRefresh, model.TokenKindRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := s.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return model.TokenPair{}, fmt.Errorf("revoke old refresh: %w", err)
	}

	return s.Issue(ctx, claims.UserID)
}

// Revoke blacklists a JTI until the token's own expiry.
func (s *TokenService) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.blacklist.Add(ctx, jti, expiresAt)
}

// RevokeByToken verifies the presented refresh token and revokes it.
func (s *TokenService) RevokeByToken(ctx context.Context, presentedRefresh string) error {
	claims, err := s.Verify(ctx, presentedRefresh, model.TokenKindRefresh)
	if err != nil {
		return err
	}

	return s.Revoke(ctx, claims.JTI, claims.ExpiresAt)
}
