package warehouse

import (
	"fmt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// Status represents the operational state of a warehouse.
// Only Operational warehouses participate in order allocation; agents and
// orders belonging to an Inactive warehouse are excluded from every run.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Operational marks a warehouse that accepts orders and dispatches agents.
	Operational

	// Inactive marks a deactivated warehouse. Its agents and orders are
	// excluded from allocation until it is reactivated.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Operational: "Operational",
		Inactive:    "Inactive",
	}
}

// Validate checks that the Status is one of the defined warehouse states.
func (s Status) Validate() error {
	if s != Operational && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid warehouse status", s))
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
