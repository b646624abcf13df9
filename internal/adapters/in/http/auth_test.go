package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/account"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/ports"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUoW serves a single user from memory for middleware tests.
type stubUserUoW struct {
	user *account.User
}

func (s *stubUserUoW) Create() commands.UserUoW           { return s }
func (s *stubUserUoW) Begin(_ context.Context) error      { return nil }
func (s *stubUserUoW) Commit(_ context.Context) error     { return nil }
func (s *stubUserUoW) Rollback(_ context.Context) error   { return nil }
func (s *stubUserUoW) UserRepository() ports.UserRepository {
	return &stubUserRepository{user: s.user}
}

type stubUserRepository struct {
	user *account.User
}

func (r *stubUserRepository) Add(_ context.Context, _ *account.User) error    { return nil }
func (r *stubUserRepository) Update(_ context.Context, _ *account.User) error { return nil }

func (r *stubUserRepository) Get(_ context.Context, id kernel.UUID) (*account.User, error) {
	if r.user != nil && r.user.ID().IsEqual(id) {
		return r.user, nil
	}
	return nil, errs.NewObjectNotFoundError("user", id.String())
}

func (r *stubUserRepository) GetByUsername(_ context.Context, username string) (*account.User, error) {
	return nil, errs.NewObjectNotFoundError("username", username)
}

func (r *stubUserRepository) GetByUsernameOrEmail(_ context.Context, username, _ string) (*account.User, error) {
	return nil, errs.NewObjectNotFoundError("username", username)
}

const stubHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func activeUser(t *testing.T) *account.User {
	t.Helper()
	user, err := account.NewUser(kernel.NewUUID(), "dispatcher", "dispatcher@example.com", stubHash)
	require.NoError(t, err)
	return user
}

func authRequest(t *testing.T, m *AuthMiddleware, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/warehouses", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := m.Require(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	return rec
}

func TestAuthMiddleware_AllowsActiveUser(t *testing.T) {
	user := activeUser(t)
	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	accessToken, err := maker.Mint(user.ID().String(), time.Now())
	require.NoError(t, err)

	m := NewAuthMiddleware(maker, &stubUserUoW{user: user})
	rec := authRequest(t, m, "Bearer "+accessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(maker, &stubUserUoW{})
	rec := authRequest(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(maker, &stubUserUoW{})
	rec := authRequest(t, m, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsForgedToken(t *testing.T) {
	user := activeUser(t)

	otherMaker, err := token.NewMaker("other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := otherMaker.Mint(user.ID().String(), time.Now())
	require.NoError(t, err)

	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(maker, &stubUserUoW{user: user})
	rec := authRequest(t, m, "Bearer "+forged)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsDeletedAccount(t *testing.T) {
	user := activeUser(t)
	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	accessToken, err := maker.Mint(user.ID().String(), time.Now())
	require.NoError(t, err)

	// Token is valid but the account no longer exists.
	m := NewAuthMiddleware(maker, &stubUserUoW{user: nil})
	rec := authRequest(t, m, "Bearer "+accessToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsDeactivatedAccount(t *testing.T) {
	user := activeUser(t)
	user.Deactivate()

	maker, err := token.NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	accessToken, err := maker.Mint(user.ID().String(), time.Now())
	require.NoError(t, err)

	m := NewAuthMiddleware(maker, &stubUserUoW{user: user})
	rec := authRequest(t, m, "Bearer "+accessToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStatusFor_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("warehouse", "x"), http.StatusNotFound},
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("latitude", 91.0, -90.0, 90.0), http.StatusBadRequest},
		{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", account.ErrUserIsNotActive, http.StatusForbidden},
		{"run in progress", commands.ErrAllocationInProgress, http.StatusConflict},
		{"duplicate warehouse", commands.ErrWarehouseAlreadyExists, http.StatusConflict},
		{"duplicate user", commands.ErrUserAlreadyExists, http.StatusConflict},
		{"short password", commands.ErrPasswordIsTooShort, http.StatusBadRequest},
		{"unexpected", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
