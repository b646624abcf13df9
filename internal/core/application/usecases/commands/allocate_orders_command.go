package commands

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrAllocateOrdersCommandIsNotConstructed = errors.New(
		"AllocateOrdersCommand must be created via NewAllocateOrdersCommand constructor",
	)
	ErrRunDateIsRequired = errors.New("run date is required")
)

// AllocateOrdersCommand represents a request to run order allocation for the
// given date. The scheduler issues one every morning; operators can also
// trigger a run manually.
type AllocateOrdersCommand struct { //nolint:recvcheck //using for validation
	runDate time.Time

	guard guard.ConstructorGuard
}

// NewAllocateOrdersCommand creates a command for an allocation run dated at
// the given time.
func NewAllocateOrdersCommand(runDate time.Time) (AllocateOrdersCommand, error) {
	cmd := AllocateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRunDate(runDate); err != nil {
		return AllocateOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrdersCommandIsNotConstructed)
}

// RunDate returns the date the run's assignments are recorded under.
func (c AllocateOrdersCommand) RunDate() time.Time {
	return c.runDate
}

func (c *AllocateOrdersCommand) setRunDate(runDate time.Time) error {
	if runDate.IsZero() {
		return ErrRunDateIsRequired
	}

	c.runDate = runDate
	return nil
}
