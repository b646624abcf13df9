package assignment

import (
	"fmt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
//
// State transitions:
//
//	Assigned ──┬──> Completed
//	           └──> Cancelled
//
// An assignment is created Assigned by an allocation run. Completed and
// Cancelled are final states recorded by downstream delivery tracking.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status of an assignment produced by an
	// allocation run.
	Assigned

	// Completed indicates the delivery was carried out. Final state.
	Completed

	// Cancelled indicates the assignment was withdrawn. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Assigned:  "Assigned",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "Assigned",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined assignment states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
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

// Complete transitions Assigned to Completed.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return Completed, nil
}

// Cancel transitions Assigned to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}
	return Cancelled, nil
}
