package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	servermocks "github.com/27Chinedu/Module13Assignment/internal/mocks"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

type authMocks struct {
	userStore *servermocks.UserStore
	hasher    *servermocks.PasswordHasher
	blacklist *servermocks.TokenBlacklist
	events    *servermocks.EventPublisher
	manager   *servermocks.TokenManager
}

func newAuthWithMocks() (*Auth, authMocks) {
	m := authMocks{
		userStore: &servermocks.UserStore{},
		hasher:    &servermocks.PasswordHasher{},
		blacklist: &servermocks.TokenBlacklist{},
		events:    &servermocks.EventPublisher{},
		manager:   &servermocks.TokenManager{},
	}
	a := NewAuth(m.userStore, m.hasher, m.blacklist, m.events, logger.New(0), m.manager)
	return a, m
}

func validRegisterParams() model.RegisterParams {
	return model.RegisterParams{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	}
}

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.hasher.On("Hash", "Sup3r$ecret").Return("hashed", nil).Once()
	m.userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ada@example.com" &&
			u.Username == "ada" &&
			u.PasswordHash == "hashed" &&
			u.IsActive && !u.IsVerified &&
			u.ID != uuid.Nil
	})).Return(model.User{ID: uuid.New(), Email: "ada@example.com", Username: "ada", IsActive: true}, nil).Once()
	m.events.On("UserRegistered", mock.Anything, mock.Anything).Return(nil).Once()

	user, err := a.Register(ctx, validRegisterParams())
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	m.events.AssertExpectations(t)
}

func TestAuth_Register_NormalizesIdentity(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	params := validRegisterParams()
	params.Email = "  Ada@Example.COM "
	params.Username = " AdA "

	m.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	m.userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ada@example.com" && u.Username == "ada"
	})).Return(model.User{ID: uuid.New()}, nil).Once()
	m.events.On("UserRegistered", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := a.Register(ctx, params)
	require.NoError(t, err)
	m.userStore.AssertExpectations(t)
}

func TestAuth_Register_WeakPassword(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1$xyz"},
		{name: "no upper", password: "abcd1234$"},
		{name: "no lower", password: "ABCD1234$"},
		{name: "no digit", password: "Abcdefgh$"},
		{name: "no special", password: "Abcdefgh1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := newAuthWithMocks()

			params := validRegisterParams()
			params.Password = tt.password
			params.ConfirmPassword = tt.password

			_, err := a.Register(ctx, params)
			require.ErrorIs(t, err, model.ErrWeakPassword)
			m.userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuth_Register_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	params := validRegisterParams()
	params.ConfirmPassword = "Sup3r$ecret2"

	_, err := a.Register(ctx, params)
	require.ErrorIs(t, err, model.ErrPasswordMismatch)
	m.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuth_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	m.userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateUser).Once()

	_, err := a.Register(ctx, validRegisterParams())
	require.ErrorIs(t, err, model.ErrDuplicateUser)
	m.events.AssertNotCalled(t, "UserRegistered", mock.Anything, mock.Anything)
}

func TestAuth_Register_EventFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	m.userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: uuid.New()}, nil).Once()
	m.events.On("UserRegistered", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := a.Register(ctx, validRegisterParams())
	require.NoError(t, err)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	m.userStore.On("GetByUsername", mock.Anything, "ada").
		Return(model.User{ID: userID, Username: "ada", PasswordHash: "hashed", IsActive: true}, nil).Once()
	m.hasher.On("Verify", "Sup3r$ecret", "hashed").Return(true, nil).Once()
	m.manager.On("Generate", userID, model.TokenKindAccess).
		Return("access", model.TokenClaims{ExpiresAt: expiresAt}, nil).Once()
	m.manager.On("Generate", userID, model.TokenKindRefresh).
		Return("refresh", model.TokenClaims{}, nil).Once()

	user, pair, err := a.Login(ctx, " Ada ", "Sup3r$ecret")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	assert.Equal(t, expiresAt, pair.ExpiresAt)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.userStore.On("GetByUsername", mock.Anything, "ghost").
		Return(model.User{}, model.ErrNotFound).Once()

	_, _, err := a.Login(ctx, "ghost", "whatever")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.userStore.On("GetByUsername", mock.Anything, "ada").
		Return(model.User{ID: uuid.New(), PasswordHash: "hashed", IsActive: true}, nil).Once()
	m.hasher.On("Verify", "wrong", "hashed").Return(false, nil).Once()

	_, _, err := a.Login(ctx, "ada", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	m.manager.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAuth_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.userStore.On("GetByUsername", mock.Anything, "ada").
		Return(model.User{ID: uuid.New(), PasswordHash: "hashed", IsActive: false}, nil).Once()
	m.hasher.On("Verify", "Sup3r$ecret", "hashed").Return(true, nil).Once()

	_, _, err := a.Login(ctx, "ada", "Sup3r$ecret")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_CorruptHashIsNotCredentialsError(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()

	m.userStore.On("GetByUsername", mock.Anything, "ada").
		Return(model.User{ID: uuid.New(), PasswordHash: "garbage", IsActive: true}, nil).Once()
	m.hasher.On("Verify", "Sup3r$ecret", "garbage").Return(false, model.ErrCorruptCredential).Once()

	_, _, err := a.Login(ctx, "ada", "Sup3r$ecret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	assert.ErrorIs(t, err, model.ErrCorruptCredential)
}

func TestAuth_ChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()

	m.userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, PasswordHash: "old-hash"}, nil).Once()
	m.hasher.On("Verify", "Sup3r$ecret", "old-hash").Return(true, nil).Once()
	m.hasher.On("Hash", "N3w$ecret!").Return("new-hash", nil).Once()
	m.userStore.On("UpdatePassword", mock.Anything, userID, "new-hash").Return(nil).Once()

	err := a.ChangePassword(ctx, userID, "Sup3r$ecret", "N3w$ecret!", "N3w$ecret!")
	require.NoError(t, err)
	m.userStore.AssertExpectations(t)
}

func TestAuth_ChangePassword_WrongCurrent(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()

	m.userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, PasswordHash: "old-hash"}, nil).Once()
	m.hasher.On("Verify", "wrong", "old-hash").Return(false, nil).Once()

	err := a.ChangePassword(ctx, userID, "wrong", "N3w$ecret!", "N3w$ecret!")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	m.userStore.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_ChangePassword_WeakNewPassword(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()

	m.userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, PasswordHash: "old-hash"}, nil).Once()
	m.hasher.On("Verify", "Sup3r$ecret", "old-hash").Return(true, nil).Once()

	err := a.ChangePassword(ctx, userID, "Sup3r$ecret", "weak", "weak")
	require.ErrorIs(t, err, model.ErrWeakPassword)
}

func TestAuth_GetUser(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()

	m.userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Username: "ada"}, nil).Once()

	user, err := a.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
}

func TestAuth_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	a, m := newAuthWithMocks()
	userID := uuid.New()

	m.userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{}, model.ErrNotFound).Once()

	_, err := a.GetUser(ctx, userID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
