package rabbitmq

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestNewPublishing(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	msg := ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		Name:       "order.taken",
		Payload:    []byte(`{"orderId":1}`),
		OccurredAt: at,
	}

	p := newPublishing(msg)

	assert.Equal(t, msg.ID.String(), p.MessageId)
	assert.Equal(t, "order.taken", p.Type)
	assert.Equal(t, "application/json", p.ContentType)
	assert.Equal(t, amqp.Persistent, p.DeliveryMode)
	assert.Equal(t, at, p.Timestamp)
	assert.Equal(t, msg.Payload, p.Body)
}
