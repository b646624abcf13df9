package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrWarehouseNameIsRequired = errors.New("warehouse name is required")
)

// CreateWarehouseCommand represents a request to register a warehouse at the
// given coordinates, or to bring an inactive warehouse of the same name back
// into operation.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	name      string
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a warehouse.
// Coordinate ranges are validated later by the domain model; the command
// only requires a non-empty name.
func NewCreateWarehouseCommand(name string, latitude, longitude float64) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateWarehouseCommand{}, err
	}

	cmd.latitude = latitude
	cmd.longitude = longitude
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// Name returns the warehouse name.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// Latitude returns the warehouse latitude.
func (c CreateWarehouseCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the warehouse longitude.
func (c CreateWarehouseCommand) Longitude() float64 {
	return c.longitude
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrWarehouseNameIsRequired
	}

	c.name = name
	return nil
}
