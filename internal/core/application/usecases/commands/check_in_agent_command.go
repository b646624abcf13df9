package commands

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrCheckInAgentCommandIsNotConstructed = errors.New(
		"CheckInAgentCommand must be created via NewCheckInAgentCommand constructor",
	)
	ErrCheckInTimeIsRequired = errors.New("check-in time is required")
)

// CheckInAgentCommand represents an agent reporting for work. Checked-in
// agents at operational warehouses form the eligible pool of the next
// allocation run.
type CheckInAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	at      time.Time

	guard guard.ConstructorGuard
}

// NewCheckInAgentCommand creates a command recording an agent check-in at
// the given time.
func NewCheckInAgentCommand(agentID kernel.UUID, at time.Time) (CheckInAgentCommand, error) {
	cmd := CheckInAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setAt(at),
	); err != nil {
		return CheckInAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInAgentCommand) Validate() error {
	return c.guard.Validate(ErrCheckInAgentCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent checking in.
func (c CheckInAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// At returns the check-in time.
func (c CheckInAgentCommand) At() time.Time {
	return c.at
}

func (c *CheckInAgentCommand) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.agentID = id
	return nil
}

func (c *CheckInAgentCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return ErrCheckInTimeIsRequired
	}

	c.at = at
	return nil
}
