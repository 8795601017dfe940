package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, isolating
// concurrent requests from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events of the aggregates its
// repositories touched are written to the outbox in the same transaction on Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes pending events to the outbox and commits.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CatalogRepository returns a CatalogRepository bound to the current transaction.
	CatalogRepository() CatalogRepository

	// OutboxRepository returns an OutboxRepository bound to the current transaction.
	OutboxRepository() OutboxRepository
}
