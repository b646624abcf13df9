package commands

import (
	"context"
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
)

// ErrWarehouseIsNotOperational is returned when registering an agent or an
// order against a deactivated warehouse.
var ErrWarehouseIsNotOperational = errors.New("warehouse is not operational")

// CreateAgentCommandHandler handles delivery agent registration.
// The agent's working location is its warehouse's location.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent registration.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command and returns the new
// agent's identifier.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	home, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if !home.IsOperational() {
		return kernel.UUID{}, ErrWarehouseIsNotOperational
	}

	created, err := agent.NewAgent(kernel.NewUUID(), cmd.Name(), cmd.Phone(), home.ID(), home.Location())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.AgentRepository().Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
