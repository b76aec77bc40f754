package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/27Chinedu/Module13Assignment/internal/mocks"
	"github.com/27Chinedu/Module13Assignment/internal/model"
	"github.com/27Chinedu/Module13Assignment/internal/testutil"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func makeUser() model.User {
	return model.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Username:     "ada",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func makeTokenPair() model.TokenPair {
	return model.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().UTC().Add(15 * time.Minute),
	}
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	user := makeUser()
	svc.On("Register", mock.Anything, model.RegisterParams{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	}).Return(user, nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","username":"ada","password":"Sup3r$ecret","confirm_password":"Sup3r$ecret"}`)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), `"username":"ada"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuth_Register_MalformedBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"username":`)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuth_Register_WeakPassword(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, model.ErrWeakPassword)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"ada","password":"short","confirm_password":"short"}`)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "weak_password")
}

func TestAuth_Register_Duplicate(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateUser)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"Sup3r$ecret","confirm_password":"Sup3r$ecret"}`)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate_user")
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	user := makeUser()
	pair := makeTokenPair()
	svc.On("Login", mock.Anything, "ada", "Sup3r$ecret").Return(user, pair, nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username":"ada","password":"Sup3r$ecret"}`)

	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.Contains(t, rec.Body.String(), `"username":"ada"`)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "ada", "wrong").
		Return(model.User{}, model.TokenPair{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username":"ada","password":"wrong"}`)

	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	pair := makeTokenPair()
	tokens.On("Refresh", mock.Anything, "old-refresh").Return(pair, nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh",
		`{"refresh_token":"old-refresh"}`)

	err := h.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
}

func TestAuth_Refresh_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token":""}`)

	err := h.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token_invalid")
	tokens.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestAuth_Refresh_Revoked(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	tokens.On("Refresh", mock.Anything, "revoked").
		Return(model.TokenPair{}, model.ErrTokenRevoked)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh",
		`{"refresh_token":"revoked"}`)

	err := h.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token_revoked")
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	tokens.On("RevokeByToken", mock.Anything, "refresh").Return(nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/logout",
		`{"refresh_token":"refresh"}`)

	err := h.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuth_Logout_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{}`)

	err := h.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokens.AssertNotCalled(t, "RevokeByToken", mock.Anything, mock.Anything)
}

func TestAuth_ChangePassword(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("ChangePassword", mock.Anything, userID, "Old$ecret1", "New$ecret2", "New$ecret2").Return(nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/password",
		`{"current_password":"Old$ecret1","new_password":"New$ecret2","confirm_password":"New$ecret2"}`)

	err := h.ChangePassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuth_ChangePassword_WrongCurrent(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("ChangePassword", mock.Anything, userID, "wrong", "New$ecret2", "New$ecret2").
		Return(model.ErrInvalidCredentials)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/password",
		`{"current_password":"wrong","new_password":"New$ecret2","confirm_password":"New$ecret2"}`)

	err := h.ChangePassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}

func TestAuth_ChangePassword_NoUserInContext(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodPost, "/auth/password",
		`{"current_password":"a","new_password":"b","confirm_password":"b"}`)

	err := h.ChangePassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthenticated")
	svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	user := makeUser()
	cm.On("GetUserIDFromContext", mock.Anything).Return(user.ID, true)
	svc.On("GetUser", mock.Anything, user.ID).Return(user, nil)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodGet, "/users/me", "")

	err := h.Me(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuth_Me_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	cm := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	cm.On("GetUserIDFromContext", mock.Anything).Return(userID, true)
	svc.On("GetUser", mock.Anything, userID).Return(model.User{}, assert.AnError)

	h := NewAuth(svc, tokens, cm, lg)
	c, rec := newJSONContext(http.MethodGet, "/users/me", "")

	err := h.Me(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
