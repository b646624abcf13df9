package queries

import (
	"context"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCheckedInAgentsQueryHandler lists agents in CheckedIn status at
// operational warehouses, the pool the next allocation run will draw from.
type GetCheckedInAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetCheckedInAgentsQueryHandler creates a handler for checked-in agent queries.
func NewGetCheckedInAgentsQueryHandler(db *gorm.DB) GetCheckedInAgentsQueryHandler {
	return GetCheckedInAgentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by agent name.
func (h GetCheckedInAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetCheckedInAgentsQuery,
) ([]GetCheckedInAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetCheckedInAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.name,
			a.phone,
			w.name,
			a.last_check_in
		FROM agents a
		JOIN warehouses w ON w.id = a.warehouse_id
		WHERE a.status = ? AND w.status = ?
		ORDER BY a.name
	`, agent.CheckedIn, warehouse.Operational).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCheckedInAgentsQueryResponse
		var id uuid.UUID
		var lastCheckIn *time.Time

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.WarehouseName,
			&lastCheckIn,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = agentID

		if lastCheckIn != nil {
			resp.LastCheckIn = *lastCheckIn
		}

		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
