package order

import (
	"time"

	"eats/internal/core/domain/model/kernel"
)

// EventName doubles as the routing key of the published message.
type EventName string

const (
	EventCreated       EventName = "order.created"
	EventStatusChanged EventName = "order.status_changed"
	EventTaken         EventName = "order.taken"
)

// Event is a snapshot of the order taken when something happened to it.
type Event struct {
	ID           kernel.UUID
	Name         EventName
	OrderID      kernel.ID
	CustomerID   kernel.ID
	RestaurantID kernel.ID
	DelivererID  kernel.Optional[kernel.ID]
	Status       Status
	Total        kernel.Price
	OccurredAt   time.Time
}

func (o *Order) record(name EventName) {
	o.events = append(o.events, Event{
		ID:           kernel.NewUUID(),
		Name:         name,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurant.id,
		DelivererID:  o.deliverer,
		Status:       o.status,
		Total:        o.total,
		OccurredAt:   time.Now().UTC(),
	})
}

// PullDomainEvents returns the recorded events and forgets them. The order ID is
// stamped at pull time because a new order only gets its ID when the store
// inserts it.
func (o *Order) PullDomainEvents() []Event {
	events := o.events
	o.events = nil
	for i := range events {
		events[i].OrderID = o.id
	}
	return events
}
