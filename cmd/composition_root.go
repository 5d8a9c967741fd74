package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		clock:      clock.NewSystem(),
		logger:     logger,
	}
}

func (c *CompositionRoot) placementUoWFactory() commands.PlacementUoWFactory {
	return FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.placementUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReconcileDeliveryStatusesCommandHandler() commands.ReconcileDeliveryStatusesCommandHandler {
	return commands.NewReconcileDeliveryStatusesCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMostOrderedQueryHandler() queries.GetMostOrderedQueryHandler {
	return queries.NewGetMostOrderedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMonthlyRevenueQueryHandler() queries.GetMonthlyRevenueQueryHandler {
	return queries.NewGetMonthlyRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersReportQueryHandler() queries.GetOrdersReportQueryHandler {
	return queries.NewGetOrdersReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMostOrderedByRestaurantQueryHandler() queries.GetMostOrderedByRestaurantQueryHandler {
	return queries.NewGetMostOrderedByRestaurantQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceOrder:                 c.CreatePlaceOrderCommandHandler(),
		CancelOrder:                c.CreateCancelOrderCommandHandler(),
		AssignDelivery:             c.CreateAssignDeliveryCommandHandler(),
		UpdateDeliveryStatus:       c.CreateUpdateDeliveryStatusCommandHandler(),
		GetOrder:                   c.CreateGetOrderQueryHandler(),
		ListOrders:                 c.CreateListOrdersQueryHandler(),
		GetDelivery:                c.CreateGetDeliveryQueryHandler(),
		GetRevenue:                 c.CreateGetRevenueQueryHandler(),
		GetMostOrdered:             c.CreateGetMostOrderedQueryHandler(),
		GetMonthlyRevenue:          c.CreateGetMonthlyRevenueQueryHandler(),
		GetOrdersReport:            c.CreateGetOrdersReportQueryHandler(),
		GetMostOrderedByRestaurant: c.CreateGetMostOrderedByRestaurantQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileDeliveryStatusesCommandHandler(), c.configs.ReconcileSchedule, c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
