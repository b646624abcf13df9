package ports

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetByName retrieves a warehouse by its name regardless of status.
	// Used by warehouse creation to reactivate inactive warehouses instead
	// of duplicating them.
	GetByName(ctx context.Context, name string) (*warehouse.Warehouse, error)

	// GetAllOperational retrieves every warehouse in Operational status.
	GetAllOperational(ctx context.Context) ([]*warehouse.Warehouse, error)

	// GetNamesByIDs resolves warehouse names for reporting. Missing IDs are
	// simply absent from the result map.
	GetNamesByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error)
}
