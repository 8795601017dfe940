package cmd

import (
	"log/slog"

	"eats/api"
	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/postgres"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
	"eats/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires handlers on top of gormDB. A nil publisher leaves
// events in the outbox, no relay job is created.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

// Queries read outside a transaction: the unit of work is never begun.
func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrdersQueryHandler(uow.OrderRepository(), uow.CatalogRepository())
}

func (c *CompositionRoot) CreateFindOrderQueryHandler() queries.FindOrderQueryHandler {
	return queries.NewFindOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

// CreateRouter builds the echo instance serving the order API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateTakeOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateFindOrderQueryHandler(),
	)
	return httpin.NewRouter(server, doc, c.logger)
}

// CreateJobManager returns the background jobs. Without a publisher there is
// nothing to run.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.publisher == nil {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(),
			c.cfg.OutboxRelaySchedule,
			c.cfg.OutboxRelayBatch,
			c.logger,
		),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
