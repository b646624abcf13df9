package ports

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves the orders eligible for an allocation run:
	// status Pending and belonging to an Operational warehouse.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// RequeueDeferred moves every Deferred order back to Pending so it
	// re-enters the eligible pool. Called at the start of an allocation run
	// inside the run transaction. Returns the number of requeued orders.
	RequeueDeferred(ctx context.Context) (int, error)
}
