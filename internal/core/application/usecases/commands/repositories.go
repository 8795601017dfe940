// Package commands contains the business operations that modify order state.
// Every command follows one pattern: a guarded command value, a handler that opens
// a unit of work, runs the domain logic, and commits or rolls back.
// Handler errors are always classified by errs.KindOf: anything coming from the
// store is wrapped in errs.StorageFailureError.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for commands that read the catalog and
	// write orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW manages transactions for relaying outbox messages.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
