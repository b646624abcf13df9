package account

import (
	"fmt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// Status represents the lifecycle state of a user account.
//
// State transitions:
//
//	Pending ──> Active ──> Inactive ──> Pending
//
// Signup creates a Pending account; the first successful login activates it.
// Deleting an account marks it Inactive, and signing up again with the same
// credentials returns it to Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the status of a freshly registered account that has not
	// logged in yet.
	Pending

	// Active indicates the account has logged in at least once.
	Active

	// Inactive indicates the account was deleted and cannot authenticate.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Active:   "Active",
		Inactive: "Inactive",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Active:   "Active",
		Inactive: "Inactive",
	}
}

// Validate checks that the Status is one of the defined account states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid account status", s))
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
