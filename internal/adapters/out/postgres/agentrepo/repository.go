package agentrepo

import (
	"context"
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing agent to the database.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCheckedIn retrieves the agents eligible for an allocation run:
// CheckedIn status at an Operational warehouse. The agent's stored location
// is refreshed from the warehouse row in case the warehouse moved on
// reactivation.
func (r *GormAgentRepository) GetAllCheckedIn(ctx context.Context) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN warehouses w ON w.id = agents.warehouse_id").
		Where("agents.status = ? AND w.status = ?", agent.CheckedIn, warehouse.Operational).
		Select("agents.id", "agents.name", "agents.phone", "agents.warehouse_id",
			"w.location_latitude AS location_latitude",
			"w.location_longitude AS location_longitude",
			"agents.status", "agents.last_check_in").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}

// GetNamesByIDs resolves agent names for the given identifiers.
func (r *GormAgentRepository) GetNamesByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]string, error) {
	names := make(map[kernel.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).
		Raw("SELECT id, name FROM agents WHERE id = ANY(?)", pq.Array(raw)).
		Scan(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		names[id] = dto.Name
	}

	return names, nil
}
