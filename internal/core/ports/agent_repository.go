package ports

import (
	"context"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAllCheckedIn retrieves the agents eligible for an allocation run:
	// status CheckedIn and attached to an Operational warehouse. Each
	// agent's location is the location of its warehouse.
	GetAllCheckedIn(ctx context.Context) ([]*agent.Agent, error)

	// GetNamesByIDs resolves agent names for reporting. Missing IDs are
	// simply absent from the result map.
	GetNamesByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error)
}
