package assignmentrepo

import (
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/assignment"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is a data transfer object for the Assignment aggregate.
type AssignmentDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date                time.Time `gorm:"type:date;index"`
	AgentID             uuid.UUID `gorm:"type:uuid;index"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	DeliveryTimeMinutes float64
	TravelDistanceKm    float64
	Status              int `gorm:"index"`
}

// TableName overrides the table name used by GORM.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                  aggregate.ID().Bytes(),
		Date:                aggregate.Date(),
		AgentID:             aggregate.AgentID().Bytes(),
		OrderID:             aggregate.OrderID().Bytes(),
		DeliveryTimeMinutes: aggregate.DeliveryTimeMinutes(),
		TravelDistanceKm:    aggregate.TravelDistanceKm(),
		Status:              int(aggregate.Status()),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		dto.Date,
		agentID,
		orderID,
		dto.DeliveryTimeMinutes,
		dto.TravelDistanceKm,
		assignment.Status(dto.Status),
	)
}
