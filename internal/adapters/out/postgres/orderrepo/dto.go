package orderrepo

import (
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a data transfer object for the Order aggregate.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	WarehouseID  uuid.UUID   `gorm:"type:uuid;index"`
	CustomerName string      `gorm:"type:varchar(255)"`
	Address      string      `gorm:"type:varchar(512)"`
	Destination  GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	AgentID      *uuid.UUID  `gorm:"type:uuid;index"`
	Status       int         `gorm:"index"`
}

// TableName overrides the table name used by GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO is a data transfer object for a geographic coordinate.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		WarehouseID:  aggregate.WarehouseID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Address:      aggregate.Address(),
		Destination: GeoPointDTO{
			Latitude:  aggregate.Destination().Latitude(),
			Longitude: aggregate.Destination().Longitude(),
		},
		Status: int(aggregate.Status()),
	}

	if aggregate.Agent() != nil {
		raw := aggregate.Agent().Bytes()
		dto.AgentID = &raw
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aid, err := kernel.UUIDFromBytes(dto.AgentID[:])
		if err != nil {
			return nil, err
		}
		agentID = &aid
	}

	return order.RestoreOrder(
		id,
		warehouseID,
		dto.CustomerName,
		dto.Address,
		destination,
		order.Status(dto.Status),
		agentID,
	)
}
