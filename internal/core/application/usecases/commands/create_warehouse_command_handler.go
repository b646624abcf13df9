package commands

import (
	"context"
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// ErrWarehouseAlreadyExists is returned when registering a warehouse whose
// name is already taken by an operational warehouse.
var ErrWarehouseAlreadyExists = errors.New("warehouse with this name already exists")

// CreateWarehouseCommandHandler handles warehouse registration.
// A name collision with an inactive warehouse reactivates it at the new
// coordinates instead of creating a duplicate.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse registration command and returns the
// identifier of the created or reactivated warehouse.
func (h *CreateWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWarehouseCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	location, err := kernel.NewGeoPoint(cmd.Latitude(), cmd.Longitude())
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

	warehouseRepo := uow.WarehouseRepository()

	existing, err := warehouseRepo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		if existing.IsOperational() {
			return kernel.UUID{}, ErrWarehouseAlreadyExists
		}
		if err = existing.Reactivate(location); err != nil {
			return kernel.UUID{}, err
		}
		if err = warehouseRepo.Update(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return existing.ID(), nil

	case errors.Is(err, errs.ErrObjectNotFound):
		// fresh name, fall through to creation

	default:
		return kernel.UUID{}, err
	}

	created, err := warehouse.NewWarehouse(kernel.NewUUID(), cmd.Name(), location)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = warehouseRepo.Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
