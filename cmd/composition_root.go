package cmd

import (
	"log/slog"
	"os"

	"orderstate/internal/adapters/out/audit"
	"orderstate/internal/adapters/out/natsstan"
	"orderstate/internal/adapters/out/postgres"
	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/application/usecases/queries"
	"orderstate/internal/core/ports"
	"orderstate/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sink       ports.StateChangeSink
	publisher  *natsstan.Publisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. When NATS is configured, state
// change notifications go to the broker; otherwise they land in the
// structured log.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if config.NatsURL != "" {
		publisher, err := natsstan.Connect(
			config.StanClusterID, config.StanClientID, config.NatsURL, config.StanSubject, logger,
		)
		if err != nil {
			logger.Error("failed to connect to NATS Streaming, falling back to log sink", "error", err)
			root.sink = audit.NewLogSink(logger)
			return root
		}
		root.publisher = publisher
		root.sink = publisher
		return root
	}

	root.sink = audit.NewLogSink(logger)
	return root
}

// Close releases externally held resources.
func (c *CompositionRoot) Close() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Error("failed to close NATS Streaming connection", "error", err)
		}
	}
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateAddShipmentCommandHandler() commands.AddShipmentCommandHandler {
	return commands.NewAddShipmentCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateShipShipmentCommandHandler() commands.ShipShipmentCommandHandler {
	return commands.NewShipShipmentCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateRecalculateOrderCommandHandler() commands.RecalculateOrderCommandHandler {
	return commands.NewRecalculateOrderCommandHandler(c.commandUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersWithBalanceDueQueryHandler() queries.GetOrdersWithBalanceDueQueryHandler {
	return queries.NewGetOrdersWithBalanceDueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	touchedOrders := c.uowFactory.Create().OrderRepository()
	return jobs.NewJobManager(touchedOrders, c.CreateRecalculateOrderCommandHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
