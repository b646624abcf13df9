package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var ErrDeactivateWarehouseCommandIsNotConstructed = errors.New(
	"DeactivateWarehouseCommand must be created via NewDeactivateWarehouseCommand constructor",
)

// DeactivateWarehouseCommand represents a request to take a warehouse out of
// operation. Its agents and pending orders stop being eligible for
// allocation runs.
type DeactivateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateWarehouseCommand creates a command to deactivate a warehouse.
func NewDeactivateWarehouseCommand(warehouseID kernel.UUID) (DeactivateWarehouseCommand, error) {
	cmd := DeactivateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWarehouseID(warehouseID); err != nil {
		return DeactivateWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to deactivate.
func (c DeactivateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *DeactivateWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}
