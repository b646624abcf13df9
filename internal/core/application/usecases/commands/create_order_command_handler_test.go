package commands_test

import (
	"testing"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	location, _ := kernel.NewGeoPoint(28.6, 77.2)
	source, err := warehouse.NewWarehouse(kernel.NewUUID(), "Central Hub", location)
	require.NoError(t, err)

	cmd, _ := commands.NewCreateOrderCommand(source.ID(), "Asha Patel", "14 MG Road", 28.7, 77.1)

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", mock.Anything, source.ID()).Return(source, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	orderRepo.AssertExpectations(t)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveWarehouse(t *testing.T) {
	ctx := t.Context()

	location, _ := kernel.NewGeoPoint(28.6, 77.2)
	source, err := warehouse.RestoreWarehouse(kernel.NewUUID(), "Central Hub", location, warehouse.Inactive)
	require.NoError(t, err)

	cmd, _ := commands.NewCreateOrderCommand(source.ID(), "Asha Patel", "14 MG Road", 28.7, 77.1)

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", mock.Anything, source.ID()).Return(source, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWarehouseIsNotOperational)
}

func TestCreateOrderCommandHandler_Handle_WarehouseNotFound(t *testing.T) {
	ctx := t.Context()

	warehouseID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(warehouseID, "Asha Patel", "14 MG Road", 28.7, 77.1)

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", mock.Anything, warehouseID).
			Return(nil, errs.NewObjectNotFoundError("warehouseId", warehouseID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_InvalidDestination(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha Patel", "14 MG Road", 28.7, 200)

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
