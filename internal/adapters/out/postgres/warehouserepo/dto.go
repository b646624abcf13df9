// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. It implements the repository pattern for the
// warehouse aggregate, converting between domain entities and database rows.
package warehouserepo

import (
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates. Names are unique so reactivation can find soft-deleted rows.
type WarehouseDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"uniqueIndex"`
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status   int         `gorm:"index"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, location, warehouse.Status(dto.Status))
}
