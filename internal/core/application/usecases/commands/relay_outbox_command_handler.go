package commands

import (
	"context"
	"time"

	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

const opRelayOutbox = "relay outbox"

// RelayOutboxCommandHandler moves order events from the outbox to the broker.
//
// Messages are published one by one and marked processed in the same transaction
// that locked them. When a publish fails the messages already sent are still
// committed, and the failed one stays pending for the next run, so delivery is
// at least once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	n, err := h.handle(ctx, cmd)
	return n, errs.Normalize(opRelayOutbox, err)
}

func (h RelayOutboxCommandHandler) handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := 0
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			break
		}
		if err = outbox.MarkProcessed(ctx, msg.ID, h.now()); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return published, publishErr
}
