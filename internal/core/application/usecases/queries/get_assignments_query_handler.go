package queries

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/assignment"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler reads the assignment history with one joined
// query instead of walking the aggregates.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for assignment history queries.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest run first, then by
// agent name.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) ([]GetAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			asg.id,
			asg.date,
			ag.name,
			o.customer_name,
			w.name,
			asg.travel_distance_km,
			asg.delivery_time_minutes,
			asg.status
		FROM assignments asg
		JOIN agents ag ON ag.id = asg.agent_id
		JOIN orders o ON o.id = asg.order_id
		JOIN warehouses w ON w.id = o.warehouse_id
	`
	args := make([]any, 0, 1)
	if query.Date() != nil {
		sql += ` WHERE asg.date = ?`
		args = append(args, *query.Date())
	}
	sql += ` ORDER BY asg.date DESC, ag.name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]GetAssignmentsQueryResponse, 0)

	for rows.Next() {
		var resp GetAssignmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Date,
			&resp.AgentName,
			&resp.CustomerName,
			&resp.WarehouseName,
			&resp.TravelDistanceKm,
			&resp.DeliveryTimeMinutes,
			&status,
		)
		if err != nil {
			return nil, err
		}

		assignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = assignmentID
		resp.Status = assignment.Status(status).String()

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
