package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/27Chinedu/Module13Assignment/internal/mocks"
	"github.com/27Chinedu/Module13Assignment/internal/model"
	"github.com/27Chinedu/Module13Assignment/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		authHeader string
		verifyErr  error
		wantStatus int
		wantCode   string
		expectNext bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthenticated",
			expectNext: false,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthenticated",
			expectNext: false,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthenticated",
			expectNext: false,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			verifyErr:  model.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "token_expired",
			expectNext: false,
		},
		{
			name:       "revoked token",
			authHeader: "Bearer revoked",
			verifyErr:  model.ErrTokenRevoked,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "token_revoked",
			expectNext: false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			verifyErr:  model.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "token_invalid",
			expectNext: false,
		},
		{
			name:       "valid token",
			authHeader: "Bearer token",
			verifyErr:  nil,
			wantStatus: http.StatusOK,
			expectNext: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)
			svc := mocks.NewTokenVerifier(t)

			if tt.authHeader != "" && tt.authHeader != "Bearer " && tt.wantCode != "unauthenticated" {
				svc.On("Verify", mock.Anything, mock.AnythingOfType("string"), model.TokenKindAccess).
					Return(model.TokenClaims{UserID: userID, Kind: model.TokenKindAccess}, tt.verifyErr)
			}
			if tt.expectNext {
				cm.On("SetUserIDToContext", mock.Anything, userID).Return(context.Background())
			}

			m := NewAuthenticate(svc, cm, lg)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/calculations", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				return c.NoContent(http.StatusOK)
			}

			err := m.Handle(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestAuthenticate_Handle_SetsRequestContext(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	type key string
	marked := context.WithValue(context.Background(), key("marker"), userID)

	lg := testutil.MakeNoopLogger()
	cm := mocks.NewContextManager(t)
	cm.On("SetUserIDToContext", mock.Anything, userID).Return(marked)

	svc := mocks.NewTokenVerifier(t)
	svc.On("Verify", mock.Anything, "token", model.TokenKindAccess).
		Return(model.TokenClaims{UserID: userID, Kind: model.TokenKindAccess}, nil)

	m := NewAuthenticate(svc, cm, lg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotCtx context.Context
	next := func(c echo.Context) error {
		gotCtx = c.Request().Context()
		return c.NoContent(http.StatusOK)
	}

	err := m.Handle(next)(c)

	assert.NoError(t, err)
	assert.Equal(t, userID, gotCtx.Value(key("marker")))
}
