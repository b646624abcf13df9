package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/account"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// ErrUserAlreadyExists is returned when signing up with a username or email
// already held by a live account.
var ErrUserAlreadyExists = errors.New("user with this username or email already exists")

// SignUpCommandHandler handles account registration. Signing up over an
// Inactive account reactivates it with the new password instead of creating
// a duplicate.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSignUpCommandHandler creates a handler for account registration.
func NewSignUpCommandHandler(uowFactory UserUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command and returns the account identifier.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	existing, err := userRepo.GetByUsernameOrEmail(ctx, cmd.Username(), cmd.Email())
	switch {
	case err == nil:
		if existing.Status() != account.Inactive {
			return kernel.UUID{}, ErrUserAlreadyExists
		}
		if err = existing.Reactivate(string(hash)); err != nil {
			return kernel.UUID{}, err
		}
		if err = userRepo.Update(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return existing.ID(), nil

	case errors.Is(err, errs.ErrObjectNotFound):
		// fresh credentials, fall through to creation

	default:
		return kernel.UUID{}, err
	}

	created, err := account.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Email(), string(hash))
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
