package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrAddressIsRequired      = errors.New("address is required")
)

// CreateOrderCommand represents a request to accept a customer order for
// delivery from a warehouse to the given coordinates.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(warehouseID, "Asha Patel", "14 MG Road", 28.7, 77.1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s accepted and awaiting allocation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	warehouseID  kernel.UUID
	customerName string
	address      string
	latitude     float64
	longitude    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a customer order.
// Coordinate ranges are validated later by the domain model.
func NewCreateOrderCommand(
	warehouseID kernel.UUID,
	customerName, address string,
	latitude, longitude float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setCustomerName(customerName),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.latitude = latitude
	cmd.longitude = longitude
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the fulfilling warehouse.
func (c CreateOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery address text.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Latitude returns the destination latitude.
func (c CreateOrderCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the destination longitude.
func (c CreateOrderCommand) Longitude() float64 {
	return c.longitude
}

func (c *CreateOrderCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
