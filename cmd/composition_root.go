package cmd

import (
	"log/slog"
	"time"

	httpin "fasttechfoods/internal/adapters/in/http"
	"fasttechfoods/internal/adapters/in/queue"
	"fasttechfoods/internal/adapters/out/identityhttp"
	"fasttechfoods/internal/adapters/out/menuhttp"
	"fasttechfoods/internal/adapters/out/orderapi"
	"fasttechfoods/internal/adapters/out/postgres"
	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/application/usecases/queries"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/core/services/kitchenops"
	"fasttechfoods/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        ports.MessageBus
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, bus ports.MessageBus, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		logger:     logger,
	}
}

func (c *CompositionRoot) remoteTimeout() time.Duration {
	return time.Duration(c.config.RemoteTimeoutSecs) * time.Second
}

func (c *CompositionRoot) CreateMenuClient() ports.MenuClient {
	return menuhttp.NewClient(c.config.MenuServiceURL, c.remoteTimeout())
}

func (c *CompositionRoot) CreateIdentityClient() *identityhttp.Client {
	return identityhttp.NewClient(c.config.AuthServiceURL, c.remoteTimeout())
}

func (c *CompositionRoot) CreateOrderServiceClient() ports.OrderServiceClient {
	return orderapi.NewClient(c.config.OrderServiceURL, c.remoteTimeout())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.CreateMenuClient(), c.CreateIdentityClient())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateKitchenWorkflow() *kitchenops.Workflow {
	return kitchenops.NewWorkflow(c.CreateOrderServiceClient(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateKitchenWorkflow(),
	)
}

// CreateJobManager wires the outbox relay and the three event consumers into
// one lifecycle.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orderUoWs := FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	kitchenUoWs := FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})

	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), c.logger),
		queue.NewConsumerGroup(c.bus,
			queue.NewOrderProjectionConsumer(orderUoWs, c.logger),
			c.config.ConsumerWorkers, c.logger),
		queue.NewConsumerGroup(c.bus,
			queue.NewKitchenTicketConsumer(kitchenUoWs, c.logger),
			c.config.ConsumerWorkers, c.logger),
		queue.NewConsumerGroup(c.bus,
			queue.NewMenuNotificationConsumer(c.logger),
			c.config.ConsumerWorkers, c.logger),
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

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}
