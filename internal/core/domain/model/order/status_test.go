package order_test

import (
	"fmt"
	"testing"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Assigned))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Deferred))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Assigned,
			order.Delivered,
			order.Deferred,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string representations", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Assigned", order.Assigned.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Deferred", order.Deferred.String())
	})

	t.Run("should return Unknown for invalid status", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(99).String())
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should assign from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, newStatus)
	})

	t.Run("should fail from non-Pending statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.Delivered, order.Deferred} {
			t.Run(fmt.Sprintf("should fail from %s", status.String()), func(t *testing.T) {
				_, err := status.Assign()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_Defer(t *testing.T) {
	t.Run("should defer from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.Defer()

		require.NoError(t, err)
		assert.Equal(t, order.Deferred, newStatus)
	})

	t.Run("should fail from Assigned", func(t *testing.T) {
		_, err := order.Assigned.Defer()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("should reopen from Deferred", func(t *testing.T) {
		newStatus, err := order.Deferred.Reopen()

		require.NoError(t, err)
		assert.Equal(t, order.Pending, newStatus)
	})

	t.Run("should fail from Pending", func(t *testing.T) {
		_, err := order.Pending.Reopen()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should deliver from Assigned", func(t *testing.T) {
		newStatus, err := order.Assigned.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should fail from Pending", func(t *testing.T) {
		_, err := order.Pending.Deliver()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
