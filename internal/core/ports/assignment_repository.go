package ports

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/assignment"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates. Joined reads for reporting live in the query handlers.
type AssignmentRepository interface {
	// Add persists a new assignment produced by an allocation run.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)
}
