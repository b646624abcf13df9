package agent

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating an agent without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent is the aggregate root for a delivery agent. An agent belongs to
// exactly one warehouse and starts every delivery from it, so the agent's
// position is approximated by the warehouse's coordinates.
//
// Invariants:
//   - Must have a valid identifier, non-empty name and phone
//   - Must reference a valid warehouse and carry that warehouse's location
//   - Status follows the CheckIn/Activate state machine; new agents start Inactive
type Agent struct {
	id          kernel.UUID
	name        string
	phone       string
	warehouseID kernel.UUID
	location    kernel.GeoPoint
	status      Status
	lastCheckIn *time.Time
	guard       guard.ConstructorGuard
}

// NewAgent creates an Inactive agent based at the given warehouse. The
// location is the warehouse's position, which the allocation planner uses as
// the agent's start point.
func NewAgent(id kernel.UUID, name, phone string, warehouseID kernel.UUID, location kernel.GeoPoint) (*Agent, error) {
	a := &Agent{
		status: Inactive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
		a.setWarehouseID(warehouseID),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an agent from persistence with its persisted
// status and last check-in timestamp.
func RestoreAgent(
	id kernel.UUID,
	name, phone string,
	warehouseID kernel.UUID,
	location kernel.GeoPoint,
	status Status,
	lastCheckIn *time.Time,
) (*Agent, error) {
	a := &Agent{
		lastCheckIn: lastCheckIn,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
		a.setWarehouseID(warehouseID),
		a.setLocation(location),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the agent was created through a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares agents by identifier.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Phone returns the agent's phone number.
func (a *Agent) Phone() string {
	return a.phone
}

// WarehouseID returns the identifier of the warehouse the agent is based at.
func (a *Agent) WarehouseID() kernel.UUID {
	return a.warehouseID
}

// Location returns the agent's start position (the warehouse coordinates).
func (a *Agent) Location() kernel.GeoPoint {
	return a.location
}

// Status returns the current agent status.
func (a *Agent) Status() Status {
	return a.status
}

// LastCheckIn returns the timestamp of the agent's most recent check-in,
// or nil if the agent has never checked in.
func (a *Agent) LastCheckIn() *time.Time {
	return a.lastCheckIn
}

// CheckIn marks the agent as reported for duty at the given time, making it
// eligible for the next allocation run.
func (a *Agent) CheckIn(at time.Time) error {
	newStatus, err := a.status.CheckIn()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.lastCheckIn = &at
	return nil
}

// Activate marks a checked-in agent as out on deliveries.
func (a *Agent) Activate() error {
	newStatus, err := a.status.Activate()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	a.phone = phone
	return nil
}

func (a *Agent) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	a.warehouseID = id
	return nil
}

func (a *Agent) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}

func (a *Agent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
