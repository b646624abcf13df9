package commands

import (
	"context"
)

// CheckInAgentCommandHandler handles agent check-ins.
type CheckInAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCheckInAgentCommandHandler creates a handler for agent check-ins.
func NewCheckInAgentCommandHandler(uowFactory AgentUoWFactory) CheckInAgentCommandHandler {
	return CheckInAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the check-in command. Checking in again simply refreshes
// the check-in time.
func (h *CheckInAgentCommandHandler) Handle(ctx context.Context, cmd CheckInAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.CheckIn(cmd.At()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
