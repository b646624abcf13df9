package queries

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehousesQueryHandler lists operational warehouses with raw SQL for
// optimal read performance in the CQRS pattern.
type GetWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehousesQueryHandler creates a handler for warehouse listing.
func NewGetWarehousesQueryHandler(db *gorm.DB) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for consistent output.
func (h GetWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehousesQuery,
) ([]GetWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location_latitude,
			location_longitude
		FROM warehouses
		WHERE status = ?
		ORDER BY name
	`, warehouse.Operational).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWarehousesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Latitude,
			&resp.Longitude,
		)
		if err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = warehouseID

		warehouses = append(warehouses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
