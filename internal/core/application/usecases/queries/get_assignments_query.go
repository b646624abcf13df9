package queries

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery retrieves the assignment history joined with agent,
// customer and warehouse names, optionally filtered by run date.
//
// Example:
//
//	query := NewGetAssignmentsQuery(nil)
//	handler := NewGetAssignmentsQueryHandler(db)
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get assignments: %w", err)
//	}
//	fmt.Printf("Found %d assignments\n", len(assignments))
type GetAssignmentsQuery struct {
	date *time.Time

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query for assignment history. A nil date
// returns every assignment; otherwise only the given run date's.
func NewGetAssignmentsQuery(date *time.Time) GetAssignmentsQuery {
	return GetAssignmentsQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// Date returns the run-date filter, or nil for no filter.
func (q GetAssignmentsQuery) Date() *time.Time {
	return q.date
}

// GetAssignmentsQueryResponse represents one assignment row of the joined
// read model.
type GetAssignmentsQueryResponse struct {
	ID                  kernel.UUID
	Date                time.Time
	AgentName           string
	CustomerName        string
	WarehouseName       string
	TravelDistanceKm    float64
	DeliveryTimeMinutes float64
	Status              string
}
