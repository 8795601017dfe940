// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Not-found conditions are reported as errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add inserts the order and all its items and assigns their IDs.
	// Within a unit of work the insert is all-or-nothing.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its restaurant owner and items.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns the orders selected by filter in ascending ID order.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// UpdateStatus persists the status of an existing order and nothing else.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdateDeliverer persists the deliverer of an existing order and nothing else.
	UpdateDeliverer(ctx context.Context, aggregate *order.Order) error
}
