// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence.
package agentrepo

import (
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/agent"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// Indexed by warehouse and status for the allocation run's eligibility query.
type AgentDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	WarehouseID uuid.UUID   `gorm:"type:uuid;index"`
	Location    GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status      int         `gorm:"index"`
	LastCheckIn *time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		WarehouseID: aggregate.WarehouseID().Bytes(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Status:      int(aggregate.Status()),
		LastCheckIn: aggregate.LastCheckIn(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, dto.Phone, warehouseID, location,
		agent.Status(dto.Status), dto.LastCheckIn)
}
