package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

// Claims represents JWT claims with the token kind alongside the
// registered set. The user ID travels in the subject, the unique
// token ID in the jti.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key
// and independent access/refresh lifetimes.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration) model.TokenManager {
	return &JWT{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Generate creates a signed token of the given kind with a fresh JTI.
func (j *JWT) Generate(userID uuid.UUID, kind model.TokenKind) (string, model.TokenClaims, error) {
	ttl, err := j.ttl(kind)
	if err != nil {
		return "", model.TokenClaims{}, err
	}

	now := time.Now()
	claims := model.TokenClaims{
		UserID:    userID,
		Kind:      kind,
		JTI:       uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        claims.JTI,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		TokenType: string(kind),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.TokenClaims{}, fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return tokenString, claims, nil
}

// Parse validates signature, expiry and kind. Failures map onto
// model.ErrTokenExpired or model.ErrTokenInvalid and never panic,
// whatever the input looks like.
func (j *JWT) Parse(tokenString string, expected model.TokenKind) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, model.ErrTokenInvalid
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}
	if claims.TokenType != string(expected) {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}
	if claims.ID == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	return model.TokenClaims{
		UserID:    userID,
		Kind:      expected,
		JTI:       claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *JWT) ttl(kind model.TokenKind) (time.Duration, error) {
	switch kind {
	case model.TokenKindAccess:
		return j.accessTTL, nil
	case model.TokenKindRefresh:
		return j.refreshTTL, nil
	default:
		return 0, fmt.Errorf("unknown token kind: %s", kind)
	}
}
