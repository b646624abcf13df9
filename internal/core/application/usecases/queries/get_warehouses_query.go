// Package queries contains read models for the CQRS read side.
// Query handlers go straight to the database with raw SQL and return flat
// response structs, bypassing the domain aggregates.
package queries

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var ErrGetWarehousesQueryIsNotConstructed = errors.New(
	"GetWarehousesQuery must be created via NewGetWarehousesQuery constructor",
)

// GetWarehousesQuery retrieves every operational warehouse.
type GetWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehousesQuery creates a query to list operational warehouses.
func NewGetWarehousesQuery() GetWarehousesQuery {
	return GetWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehousesQueryIsNotConstructed)
}

// GetWarehousesQueryResponse represents one warehouse row.
type GetWarehousesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Latitude  float64
	Longitude float64
}
