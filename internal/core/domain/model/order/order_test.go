package order_test

import (
	"testing"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validWarehouseID := kernel.NewUUID()
	validDestination, _ := kernel.NewGeoPoint(28.7041, 77.1025)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road", validDestination)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.WarehouseID().IsEqual(validWarehouseID))
		assert.Equal(t, "Asha Patel", o.CustomerName())
		assert.Equal(t, "14 MG Road", o.Address())
		assert.Equal(t, validDestination, o.Destination())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Agent())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validWarehouseID, "Asha Patel", "14 MG Road", validDestination)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid warehouse UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(validID, invalidID, "Asha Patel", "14 MG Road", validDestination)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWarehouseID, "", "14 MG Road", validDestination)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWarehouseID, "Asha Patel", "", validDestination)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrAddressIsRequired)
	})

	t.Run("should fail with unconstructed destination", func(t *testing.T) {
		var invalidDestination kernel.GeoPoint

		o, err := order.NewOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road", invalidDestination)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWarehouseID, "", "", validDestination)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, order.ErrAddressIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validWarehouseID := kernel.NewUUID()
	validDestination, _ := kernel.NewGeoPoint(28.7041, 77.1025)

	t.Run("should restore assigned order with agent", func(t *testing.T) {
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road",
			validDestination, order.Assigned, &agentID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))
	})

	t.Run("should restore deferred order without agent", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road",
			validDestination, order.Deferred, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Deferred, o.Status())
		assert.Nil(t, o.Agent())
	})

	t.Run("should fail when pending order references agent", func(t *testing.T) {
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road",
			validDestination, order.Pending, &agentID)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail when assigned order has no agent", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road",
			validDestination, order.Assigned, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validWarehouseID, "Asha Patel", "14 MG Road",
			validDestination, order.Unknown, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Assign(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		destination, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Asha Patel", "14 MG Road", destination)
		require.NoError(t, err)
		return o
	}

	t.Run("should assign pending order to agent", func(t *testing.T) {
		o := newPendingOrder(t)
		agentID := kernel.NewUUID()

		err := o.Assign(agentID)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))
	})

	t.Run("should not assign the same order twice", func(t *testing.T) {
		o := newPendingOrder(t)
		firstAgent := kernel.NewUUID()
		secondAgent := kernel.NewUUID()

		require.NoError(t, o.Assign(firstAgent))
		err := o.Assign(secondAgent)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.Agent().IsEqual(firstAgent))
	})

	t.Run("should fail with unconstructed agent ID", func(t *testing.T) {
		o := newPendingOrder(t)
		var invalidAgentID kernel.UUID

		err := o.Assign(invalidAgentID)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Agent())
	})

	t.Run("should not assign a deferred order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Defer())

		err := o.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.Deferred, o.Status())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		destination, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Asha Patel", "14 MG Road", destination)
		require.NoError(t, err)
		return o
	}

	t.Run("should defer and reopen pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Defer())
		assert.Equal(t, order.Deferred, o.Status())

		require.NoError(t, o.Reopen())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Agent())
	})

	t.Run("should deliver assigned order", func(t *testing.T) {
		o := newPendingOrder(t)
		agentID := kernel.NewUUID()
		require.NoError(t, o.Assign(agentID))

		err := o.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Agent().IsEqual(agentID))
	})

	t.Run("should not deliver pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Deliver()

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should not defer assigned order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.Defer()

		require.Error(t, err)
		assert.Equal(t, order.Assigned, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
