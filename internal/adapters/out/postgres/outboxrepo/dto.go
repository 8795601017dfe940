// Package outboxrepo stores order events until the relay publishes them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is a pending or published event. ProcessedAt stays NULL until
// the relay has handed the message to the broker.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index;not null"`
	Payload     string    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"index;not null"`
	ProcessedAt *time.Time
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// EventPayload is the JSON body of a published order event.
type EventPayload struct {
	EventID      string    `json:"eventId"`
	Name         string    `json:"name"`
	OrderID      int64     `json:"orderId"`
	CustomerID   int64     `json:"customerId"`
	RestaurantID int64     `json:"restaurantId"`
	DelivererID  *int64    `json:"delivererId"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// FromEvent serializes an order event into an outbox row.
func FromEvent(e order.Event) (OutboxMessageDTO, error) {
	payload := EventPayload{
		EventID:      e.ID.String(),
		Name:         string(e.Name),
		OrderID:      e.OrderID.Int64(),
		CustomerID:   e.CustomerID.Int64(),
		RestaurantID: e.RestaurantID.Int64(),
		Status:       e.Status.String(),
		Total:        e.Total.Int64(),
		OccurredAt:   e.OccurredAt,
	}
	if id, ok := e.DelivererID.Get(); ok {
		raw := id.Int64()
		payload.DelivererID = &raw
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessageDTO{}, err
	}

	return OutboxMessageDTO{
		ID:         e.ID.Bytes(),
		Name:       string(e.Name),
		Payload:    string(body),
		OccurredAt: e.OccurredAt,
	}, nil
}

func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:         id,
		Name:       dto.Name,
		Payload:    []byte(dto.Payload),
		OccurredAt: dto.OccurredAt,
	}, nil
}
