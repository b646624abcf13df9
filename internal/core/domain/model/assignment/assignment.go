package assignment

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	// ErrDateIsRequired is returned when creating an assignment without a run date.
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment records one order placed with one agent by an allocation run,
// together with the estimated travel distance and delivery time the planner
// computed for it.
type Assignment struct {
	id                  kernel.UUID
	date                time.Time
	agentID             kernel.UUID
	orderID             kernel.UUID
	deliveryTimeMinutes float64
	travelDistanceKm    float64
	status              Status
	guard               guard.ConstructorGuard
}

// NewAssignment creates an Assigned assignment for the given run date.
// The date is truncated to day precision in UTC.
func NewAssignment(
	id kernel.UUID,
	date time.Time,
	agentID, orderID kernel.UUID,
	deliveryTimeMinutes, travelDistanceKm float64,
) (*Assignment, error) {
	a := &Assignment{
		status: Assigned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDate(date),
		a.setAgentID(agentID),
		a.setOrderID(orderID),
		a.setDeliveryTimeMinutes(deliveryTimeMinutes),
		a.setTravelDistanceKm(travelDistanceKm),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	date time.Time,
	agentID, orderID kernel.UUID,
	deliveryTimeMinutes, travelDistanceKm float64,
	status Status,
) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDate(date),
		a.setAgentID(agentID),
		a.setOrderID(orderID),
		a.setDeliveryTimeMinutes(deliveryTimeMinutes),
		a.setTravelDistanceKm(travelDistanceKm),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// Date returns the allocation run date (day precision, UTC).
func (a *Assignment) Date() time.Time {
	return a.date
}

// AgentID returns the identifier of the agent carrying the order.
func (a *Assignment) AgentID() kernel.UUID {
	return a.agentID
}

// OrderID returns the identifier of the assigned order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DeliveryTimeMinutes returns the planner's delivery time estimate,
// travel plus handling, in minutes.
func (a *Assignment) DeliveryTimeMinutes() float64 {
	return a.deliveryTimeMinutes
}

// TravelDistanceKm returns the great-circle distance from the warehouse
// to the destination in kilometers.
func (a *Assignment) TravelDistanceKm() float64 {
	return a.travelDistanceKm
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// Complete marks the assignment as carried out.
func (a *Assignment) Complete() error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Cancel withdraws the assignment.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	a.date = date.UTC().Truncate(24 * time.Hour)
	return nil
}

func (a *Assignment) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	a.agentID = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setDeliveryTimeMinutes(minutes float64) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidError("deliveryTimeMinutes cannot be negative")
	}
	a.deliveryTimeMinutes = minutes
	return nil
}

func (a *Assignment) setTravelDistanceKm(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidError("travelDistanceKm cannot be negative")
	}
	a.travelDistanceKm = km
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
