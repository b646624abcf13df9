package commands

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles customer order intake.
// Orders are accepted Pending and wait for the next allocation run.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command and returns the new order's
// identifier. Orders against a deactivated warehouse are rejected.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	destination, err := kernel.NewGeoPoint(cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	source, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if !source.IsOperational() {
		return kernel.UUID{}, ErrWarehouseIsNotOperational
	}

	created, err := order.NewOrder(kernel.NewUUID(), source.ID(), cmd.CustomerName(), cmd.Address(), destination)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
