package commands

import (
	"context"
)

// DeactivateWarehouseCommandHandler handles taking a warehouse out of operation.
type DeactivateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewDeactivateWarehouseCommandHandler creates a handler for warehouse deactivation.
func NewDeactivateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) DeactivateWarehouseCommandHandler {
	return DeactivateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command. Deactivating an already
// inactive warehouse is a no-op.
func (h *DeactivateWarehouseCommandHandler) Handle(ctx context.Context, cmd DeactivateWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	aggregate.Deactivate()

	if err = warehouseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
