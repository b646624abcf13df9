package commands

import (
	"context"
)

// DeactivateUserCommandHandler handles account soft-deletion. The account
// keeps its row so a later signup with the same credentials reactivates it.
type DeactivateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeactivateUserCommandHandler creates a handler for account deactivation.
func NewDeactivateUserCommandHandler(uowFactory UserUoWFactory) DeactivateUserCommandHandler {
	return DeactivateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command. Deactivating an already
// inactive account is a no-op.
func (h *DeactivateUserCommandHandler) Handle(ctx context.Context, cmd DeactivateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	user.Deactivate()

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
