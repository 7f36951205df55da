package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "agrirent/internal/adapters/in/http"
	"agrirent/internal/adapters/out/eventbus"
	"agrirent/internal/adapters/out/natsforwarder"
	"agrirent/internal/adapters/out/postgres"
	"agrirent/internal/adapters/out/postgres/auditrepo"
	"agrirent/internal/adapters/out/postgres/pricingrepo"
	"agrirent/internal/adapters/out/redisnotifier"
	"agrirent/internal/core/application/eventhandlers"
	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/ports"
	"agrirent/internal/jobs"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Infrastructure carries the connections opened by main. NATS may be nil.
type Infrastructure struct {
	DB     *gorm.DB
	Redis  redis.Cmdable
	NATS   natsforwarder.Publisher
	Logger *slog.Logger
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	bus        *eventbus.Bus
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
}

// NewCompositionRoot wires the event bus subscribers and the unit of work
// factory. Close releases the bus.
func NewCompositionRoot(cfg Config, infra Infrastructure) (*CompositionRoot, error) {
	bus := eventbus.New(infra.Logger, cfg.EventQueueSize)

	audit := eventhandlers.NewAuditSubscriber(auditrepo.NewGormAuditLogRepository(infra.DB))
	if err := bus.Subscribe("audit", audit.Handle); err != nil {
		return nil, err
	}

	notifier := redisnotifier.NewNotifier(infra.Redis, cfg.NotificationStream, cfg.NotificationStreamMaxLen)
	notifications := eventhandlers.NewNotificationSubscriber(notifier)
	if err := bus.Subscribe("notifications", notifications.Handle); err != nil {
		return nil, err
	}

	if infra.NATS != nil {
		forwarder := natsforwarder.New(infra.NATS, cfg.NATSSubjectPrefix)
		if err := bus.Subscribe("nats", forwarder.Handle); err != nil {
			return nil, err
		}
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     infra.DB,
		logger:     infra.Logger,
		bus:        bus,
		uowFactory: postgres.NewGormUnitOfWorkFactory(infra.DB, bus),
		clock:      commands.SystemClock{},
	}, nil
}

// Close drains the event bus.
func (c *CompositionRoot) Close() {
	c.bus.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) leaseUoWFactory() commands.LeaseUoWFactory {
	return FuncLeaseUoWFactory(func() commands.LeaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateLeaseFromOrderCommandHandler() commands.CreateLeaseFromOrderCommandHandler {
	return commands.NewCreateLeaseFromOrderCommandHandler(c.leaseUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	return commands.NewAssignOperatorCommandHandler(c.leaseUoWFactory(), c.clock, commands.LeasePolicy{
		EnforceSinglePrimaryOperator: c.cfg.EnforceSinglePrimaryOperator,
	})
}

func (c *CompositionRoot) CreateCompleteLeaseCommandHandler() commands.CompleteLeaseCommandHandler {
	return commands.NewCompleteLeaseCommandHandler(c.leaseUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAttachLeaseDocumentCommandHandler() commands.AttachLeaseDocumentCommandHandler {
	return commands.NewAttachLeaseDocumentCommandHandler(c.leaseUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateActivateLeasesCommandHandler() commands.ActivateLeasesCommandHandler {
	return commands.NewActivateLeasesCommandHandler(c.leaseUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePricingRuleCommandHandler() commands.CreatePricingRuleCommandHandler {
	return commands.NewCreatePricingRuleCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeactivatePricingRuleCommandHandler() commands.DeactivatePricingRuleCommandHandler {
	return commands.NewDeactivatePricingRuleCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpirePricingRulesCommandHandler() commands.ExpirePricingRulesCommandHandler {
	return commands.NewExpirePricingRulesCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetThresholdConfigCommandHandler() commands.SetThresholdConfigCommandHandler {
	return commands.NewSetThresholdConfigCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePublishDeviceCommandHandler() commands.PublishDeviceCommandHandler {
	return commands.NewPublishDeviceCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivePricingRuleQueryHandler() (queries.GetActivePricingRuleQueryHandler, error) {
	return queries.NewGetActivePricingRuleQueryHandler(pricingrepo.NewGormPricingRuleRepository(c.gormDB, readOnly{}))
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(auditrepo.NewGormAuditLogRepository(c.gormDB))
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	activeRule, err := c.CreateGetActivePricingRuleQueryHandler()
	if err != nil {
		return nil, fmt.Errorf("active pricing rule query: %w", err)
	}

	handlers := httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		RejectOrder:       c.CreateRejectOrderCommandHandler(),

		CreateLease:         c.CreateCreateLeaseFromOrderCommandHandler(),
		AssignOperator:      c.CreateAssignOperatorCommandHandler(),
		CompleteLease:       c.CreateCompleteLeaseCommandHandler(),
		AttachLeaseDocument: c.CreateAttachLeaseDocumentCommandHandler(),

		CreatePricingRule:     c.CreateCreatePricingRuleCommandHandler(),
		DeactivatePricingRule: c.CreateDeactivatePricingRuleCommandHandler(),
		SetThresholdConfig:    c.CreateSetThresholdConfigCommandHandler(),
		PublishDevice:         c.CreatePublishDeviceCommandHandler(),

		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetActivePricingRule: activeRule,
		GetAuditTrail:        c.CreateGetAuditTrailQueryHandler(),

		Health: c.ping,
		Clock:  c.clock,
	}
	return httpin.NewServer(handlers, httpin.NewAuthenticator(c.cfg.JWTSecret), c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePricingRulesCommandHandler(),
		c.CreateActivateLeasesCommandHandler(),
		jobs.Schedules{
			PricingRuleExpiry: c.cfg.PricingRuleExpirySchedule,
			LeaseActivation:   c.cfg.LeaseActivationSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// readOnly is the tracker of repositories used outside a unit of work.
type readOnly struct{}

func (readOnly) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLeaseUoWFactory func() commands.LeaseUoW

func (f FuncLeaseUoWFactory) Create() commands.LeaseUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
