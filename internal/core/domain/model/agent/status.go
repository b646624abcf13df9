package agent

import (
	"fmt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// Status represents the availability state of a delivery agent.
//
// State transitions:
//
//	Inactive ──> CheckedIn ──> Active
//	                │
//	                └──> (CheckedIn again on a later day)
//
// Only CheckedIn agents are eligible for order allocation; Active marks an
// agent who is out delivering an assigned route.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Inactive is the initial status of a newly registered agent and the
	// status of an agent who has not checked in today.
	Inactive

	// CheckedIn marks an agent who reported for duty and is waiting for
	// the allocation run. Eligibility for allocation requires this status.
	CheckedIn

	// Active marks an agent who is out on deliveries.
	Active
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Inactive:  "Inactive",
		CheckedIn: "CheckedIn",
		Active:    "Active",
	}
}

// Validate checks that the Status is one of the defined agent states.
func (s Status) Validate() error {
	if s != Inactive && s != CheckedIn && s != Active {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid agent status", s))
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

// CheckIn transitions the status to CheckedIn. Any valid status may check
// in: an Inactive agent reports for duty, a CheckedIn or Active agent
// re-checks in on a later day.
func (s Status) CheckIn() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return CheckedIn, nil
}

// Activate transitions a CheckedIn agent to Active.
func (s Status) Activate() (Status, error) {
	if s != CheckedIn {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to activate", s.String()))
	}
	return Active, nil
}
