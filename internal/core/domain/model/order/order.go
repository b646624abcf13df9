package order

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrAddressIsRequired is returned when creating an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer delivery. It carries the
// destination coordinates the allocation engine measures distances against,
// and its status records the outcome of allocation runs.
//
// Invariants:
//   - Must have a valid identifier, warehouse reference, customer name,
//     address and destination
//   - Status transitions follow the Pending/Assigned/Delivered/Deferred
//     state machine; new orders start Pending with no agent
//   - An agent reference exists exactly when the order is Assigned or Delivered
type Order struct {
	id           kernel.UUID
	warehouseID  kernel.UUID
	customerName string
	address      string
	destination  kernel.GeoPoint
	agentID      *kernel.UUID
	status       Status
	guard        guard.ConstructorGuard
}

// NewOrder creates a Pending order for the given warehouse and destination.
func NewOrder(
	id kernel.UUID,
	warehouseID kernel.UUID,
	customerName, address string,
	destination kernel.GeoPoint,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWarehouseID(warehouseID),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, preserving its status
// and agent reference. The status/agent combination is validated: only
// Assigned and Delivered orders may carry an agent reference.
func RestoreOrder(
	id kernel.UUID,
	warehouseID kernel.UUID,
	customerName, address string,
	destination kernel.GeoPoint,
	status Status,
	agentID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWarehouseID(warehouseID),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setDestination(destination),
		o.setStatus(status),
		o.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// WarehouseID returns the identifier of the fulfilling warehouse.
func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the delivery address text.
func (o *Order) Address() string {
	return o.address
}

// Destination returns the delivery coordinates.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// Agent returns the assigned agent's ID, or nil if the order is unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// ValidateAssign reports whether the order may currently be assigned.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign attaches the order to an agent and moves it to Assigned.
// Only Pending orders can be assigned; within a run this is what makes a
// consumed order unassignable to a second agent.
func (o *Order) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// Defer marks a Pending order as unplaceable in the current run.
func (o *Order) Defer() error {
	newStatus, err := o.status.Defer()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reopen returns a Deferred order to the Pending pool.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks an Assigned order as delivered to the customer.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	o.warehouseID = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAgentID(agentID *kernel.UUID) error {
	hasAgent := agentID != nil
	if hasAgent {
		if err := agentID.Validate(); err != nil {
			return err
		}
	}

	if hasAgent && o.status != Assigned && o.status != Delivered {
		return errs.NewValueIsInvalidError("an unassigned order cannot reference an agent")
	}
	if !hasAgent && (o.status == Assigned || o.status == Delivered) {
		return errs.NewValueIsInvalidError("an assigned order must reference an agent")
	}

	o.agentID = agentID
	return nil
}
