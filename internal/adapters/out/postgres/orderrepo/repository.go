package orderrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the orders whose events must reach the outbox.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its items and writes the generated IDs back to the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Restaurant").Create(&dto).Error; err != nil {
		return err
	}

	itemIDs := make([]kernel.ID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemIDs = append(itemIDs, kernel.ID(item.ID))
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID), itemIDs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withAssociations(ctx).First(&dto, "orders.id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.withAssociations(ctx)

	switch filter.Scope() {
	case ports.ScopeCustomer:
		query = query.Where("orders.customer_id = ?", filter.PartyID().Int64())
	case ports.ScopeRestaurant:
		query = query.Where("orders.restaurant_id = ?", filter.PartyID().Int64())
	case ports.ScopeDeliverer:
		query = query.Where("orders.deliverer_id = ?", filter.PartyID().Int64())
	default:
		return nil, errs.NewValueIsRequiredError("order filter scope")
	}

	if status, ok := filter.Status(); ok {
		query = query.Where("orders.status = ?", int(status))
	}

	var dtos []OrderDTO
	if err := query.Order("orders.id ASC").Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	return r.updateColumn(ctx, aggregate, "status", int(aggregate.Status()))
}

func (r *GormOrderRepository) UpdateDeliverer(ctx context.Context, aggregate *order.Order) error {
	return r.updateColumn(ctx, aggregate, "deliverer_id", delivererPtr(aggregate))
}

func (r *GormOrderRepository) updateColumn(ctx context.Context, aggregate *order.Order, column string, value any) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("Restaurant").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		})
}
