// Package rabbitmq publishes order events to a topic exchange. The routing key
// of every message is the event name, so consumers bind with patterns such as
// "order.*" or "order.taken".
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eats/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("broker did not acknowledge the message")

// Publisher implements ports.EventPublisher with publisher confirms. Publish
// calls are serialized because confirms arrive in publish order on one channel.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	acks     <-chan amqp.Confirmation
	mu       sync.Mutex
}

// Dial connects to url, declares a durable topic exchange and switches the
// channel to confirm mode.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		acks:     ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// Publish sends msg and waits for the broker confirm or ctx cancellation.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, msg.Name, false, false, newPublishing(msg)); err != nil {
		return fmt.Errorf("publish %s: %w", msg.ID, err)
	}

	select {
	case conf, ok := <-p.acks:
		if !ok {
			return amqp.ErrClosed
		}
		if !conf.Ack {
			return ErrPublishNacked
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ping reports whether the connection is still usable.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() || p.ch.IsClosed() {
		return amqp.ErrClosed
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

func newPublishing(msg ports.OutboxMessage) amqp.Publishing {
	return amqp.Publishing{
		MessageId:    msg.ID.String(),
		Type:         msg.Name,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.OccurredAt,
		Body:         msg.Payload,
	}
}
