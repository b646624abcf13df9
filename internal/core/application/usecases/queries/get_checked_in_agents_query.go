package queries

import (
	"errors"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var ErrGetCheckedInAgentsQueryIsNotConstructed = errors.New(
	"GetCheckedInAgentsQuery must be created via NewGetCheckedInAgentsQuery constructor",
)

// GetCheckedInAgentsQuery retrieves the agents eligible for the next
// allocation run, with their warehouse names for display.
type GetCheckedInAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCheckedInAgentsQuery creates a query to list checked-in agents.
func NewGetCheckedInAgentsQuery() GetCheckedInAgentsQuery {
	return GetCheckedInAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCheckedInAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckedInAgentsQueryIsNotConstructed)
}

// GetCheckedInAgentsQueryResponse represents one checked-in agent row.
type GetCheckedInAgentsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	WarehouseName string
	LastCheckIn   time.Time
}
