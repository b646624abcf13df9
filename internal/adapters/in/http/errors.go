package http

import (
	"errors"
	"net/http"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/account"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates application and domain errors into HTTP responses.
// Validation failures map to 400, missing aggregates to 404, state conflicts
// to 409, and authentication failures to 401 or 403.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: messageFor(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, account.ErrUserIsNotActive):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrAllocationInProgress),
		errors.Is(err, commands.ErrWarehouseAlreadyExists),
		errors.Is(err, commands.ErrUserAlreadyExists),
		errors.Is(err, commands.ErrWarehouseIsNotOperational):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPasswordIsTooShort):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		// Do not leak driver or infrastructure details to clients.
		return "internal server error"
	}
	return err.Error()
}

// respondBadRequest is used for malformed request bodies and parameters
// before a command is even constructed.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
