package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
)

// OutboxMessage is an order event waiting to be published.
type OutboxMessage struct {
	ID         kernel.UUID
	Name       string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges messages written by the unit of work.
type OutboxRepository interface {
	// GetUnprocessed returns up to limit messages, oldest first, locking them
	// against concurrent relays for the rest of the transaction.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed stamps the message as published.
	MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
