package order

import (
	"fmt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──> Delivered
//	          │
//	          └──> Deferred ──> Pending  (requeued before the next run)
//
// Pending orders at operational warehouses are the input of an allocation
// run; a run moves each visited order to Assigned or Deferred. Deferred
// orders re-enter the Pending pool when the next run starts. Delivered is a
// final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a new order, waiting for allocation.
	Pending

	// Assigned indicates the order was matched with an agent by an
	// allocation run.
	Assigned

	// Delivered indicates the order reached its customer. Final state.
	Delivered

	// Deferred indicates an allocation run could not place the order;
	// it will be retried on a future run.
	Deferred
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		Delivered: "Delivered",
		Deferred:  "Deferred",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		Delivered: "Delivered",
		Deferred:  "Deferred",
	}
}

// Validate checks that the Status is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks that an order in this status may be assigned.
// Only Pending orders are assignable; an order already Assigned, Delivered
// or Deferred must never receive another assignment within a run.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()))
	}
	return nil
}

// Assign transitions Pending to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Assigned, nil
}

// Defer transitions Pending to Deferred.
func (s Status) Defer() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to defer", s.String()))
	}
	return Deferred, nil
}

// Reopen transitions Deferred back to Pending so the order re-enters the
// eligible pool of the next run.
func (s Status) Reopen() (Status, error) {
	if s != Deferred {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()))
	}
	return Pending, nil
}

// Deliver transitions Assigned to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}
