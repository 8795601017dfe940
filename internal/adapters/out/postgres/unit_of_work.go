// Package postgres implements the unit of work over GORM and owns the schema.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction and report every order they write back to it, so
// that Commit can append the recorded order events to the outbox before the
// transaction is committed:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each request must create its own unit of work; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/outboxrepo"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []*order.Order
}

// Begin opens a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending events of tracked aggregates to the outbox and
// commits. If the outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		_ = uow.tx.Rollback()
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	return err
}

// Rollback discards the transaction and forgets tracked aggregates. It returns
// gorm.ErrInvalidTransaction when nothing is open, which is the normal case for
// a deferred rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an order written in this unit of work. Tracking the
// same order twice is harmless.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	var messages []outboxrepo.OutboxMessageDTO
	for _, aggregate := range uow.trackedAggregates {
		for _, event := range aggregate.PullDomainEvents() {
			msg, err := outboxrepo.FromEvent(event)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
		}
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = nil
}
