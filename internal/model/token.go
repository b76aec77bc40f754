package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	// TokenKindAccess is a short-lived token presented on API requests.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is a long-lived, single-use token exchanged for new pairs.
	TokenKindRefresh TokenKind = "refresh"
)

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, kind TokenKind) (string, TokenClaims, error)
	Parse(token string, expected TokenKind) (TokenClaims, error)
}

// TokenClaims carries the verified contents of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Kind      TokenKind
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair bundles a freshly issued access/refresh pair.
// ExpiresAt is the access token expiry.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
