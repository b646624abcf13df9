package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired  = errors.New("agent name is required")
	ErrAgentPhoneIsRequired = errors.New("agent phone is required")
)

// CreateAgentCommand represents a request to register a delivery agent at a
// warehouse. The agent starts Inactive and becomes eligible for allocation
// only after checking in.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	name        string
	phone       string
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a delivery agent.
func NewCreateAgentCommand(name, phone string, warehouseID kernel.UUID) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// Name returns the agent's name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact number.
func (c CreateAgentCommand) Phone() string {
	return c.phone
}

// WarehouseID returns the identifier of the agent's home warehouse.
func (c CreateAgentCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAgentCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrAgentPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateAgentCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}
