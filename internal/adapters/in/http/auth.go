package http

import (
	"net/http"
	"strings"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// userIDContextKey is the echo context key under which the authenticated
// user ID is stored by the auth middleware.
const userIDContextKey = "userID"

// TokenVerifier checks an access token and returns the user ID it was
// minted for.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// AuthMiddleware guards protected routes. It validates the Bearer token and
// confirms the account behind it has not been deactivated since the token
// was issued.
type AuthMiddleware struct {
	tokens     TokenVerifier
	uowFactory commands.UserUoWFactory
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(tokens TokenVerifier, uowFactory commands.UserUoWFactory) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		uowFactory: uowFactory,
	}
}

// Require is the echo middleware function enforcing authentication.
func (m *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing or malformed authorization header",
			})
		}

		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "token is invalid or expired",
			})
		}

		id, err := kernel.UUIDFromString(userID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "token is invalid or expired",
			})
		}

		user, err := m.uowFactory.Create().UserRepository().Get(ctx.Request().Context(), id)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "account no longer exists",
			})
		}

		if !user.IsActive() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "account has been deactivated",
			})
		}

		ctx.Set(userIDContextKey, id)
		return next(ctx)
	}
}
