package orderrepo

import (
	"context"
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/order"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/warehouse"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("warehouse_id", "customer_name", "address",
			"destination_latitude", "destination_longitude", "agent_id", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves the orders eligible for an allocation run:
// Pending status at an Operational warehouse.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN warehouses w ON w.id = orders.warehouse_id").
		Where("orders.status = ? AND w.status = ?", order.Pending, warehouse.Operational).
		Select("orders.*").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// RequeueDeferred moves all deferred orders back to pending so the next
// allocation run considers them again. Returns the number of orders moved.
func (r *GormOrderRepository) RequeueDeferred(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ?", order.Deferred).
		Update("status", order.Pending)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
