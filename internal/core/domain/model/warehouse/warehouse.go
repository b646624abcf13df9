package warehouse

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a warehouse without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWarehouseIsNotConstructed is returned when using an improperly
	// initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	// ErrWarehouseIsNotInactive is returned when reactivating a warehouse
	// that is not in Inactive status.
	ErrWarehouseIsNotInactive = errors.New("only an inactive warehouse can be reactivated")
)

// Warehouse is the aggregate root for a dispatch location. Agents are based
// at a warehouse, and orders are fulfilled from the warehouse they were
// placed against. A warehouse's coordinates double as the start position of
// every agent based there.
//
// Invariants:
//   - Must have a valid identifier, non-empty name and valid location
//   - Status is Operational or Inactive; new warehouses start Operational
//   - Can only be created through NewWarehouse or RestoreWarehouse
type Warehouse struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	status   Status
	guard    guard.ConstructorGuard
}

// NewWarehouse creates an Operational warehouse with validated inputs.
func NewWarehouse(id kernel.UUID, name string, location kernel.GeoPoint) (*Warehouse, error) {
	w := &Warehouse{
		status: Operational,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence, preserving its
// persisted status.
func RestoreWarehouse(id kernel.UUID, name string, location kernel.GeoPoint, status Status) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
		w.setStatus(status),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares warehouses by identifier.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Location returns the warehouse coordinates.
func (w *Warehouse) Location() kernel.GeoPoint {
	return w.location
}

// Status returns the current warehouse status.
func (w *Warehouse) Status() Status {
	return w.status
}

// IsOperational reports whether the warehouse participates in allocation.
func (w *Warehouse) IsOperational() bool {
	return w.status == Operational
}

// Deactivate marks the warehouse Inactive, excluding it from future
// allocation runs. Deactivating an already inactive warehouse is a no-op.
func (w *Warehouse) Deactivate() {
	w.status = Inactive
}

// Reactivate returns an Inactive warehouse to Operational status with
// updated coordinates. Creating a warehouse over an existing inactive one of
// the same name is modeled as reactivation rather than duplication.
func (w *Warehouse) Reactivate(location kernel.GeoPoint) error {
	if w.status != Inactive {
		return ErrWarehouseIsNotInactive
	}

	if err := w.setLocation(location); err != nil {
		return err
	}

	w.status = Operational
	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}

func (w *Warehouse) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}
