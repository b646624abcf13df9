package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var ErrDeactivateUserCommandIsNotConstructed = errors.New(
	"DeactivateUserCommand must be created via NewDeactivateUserCommand constructor",
)

// DeactivateUserCommand represents a request to soft-delete an account.
type DeactivateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateUserCommand creates a command to deactivate an account.
func NewDeactivateUserCommand(userID kernel.UUID) (DeactivateUserCommand, error) {
	cmd := DeactivateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeactivateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to deactivate.
func (c DeactivateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeactivateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
