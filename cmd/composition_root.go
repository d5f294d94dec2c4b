package cmd

import (
	"log/slog"

	"farmmarket/internal/adapters/in/http"
	"farmmarket/internal/adapters/out/notify"
	"farmmarket/internal/adapters/out/postgres"
	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notify.NewSlogNotificationDispatcher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePickupCommandHandler() commands.CreatePickupCommandHandler {
	var f commands.OrderPickupUoWFactory = FuncOrderPickupUoWFactory(func() commands.OrderPickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePickupCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.PickupDriverUoWFactory = FuncPickupDriverUoWFactory(func() commands.PickupDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateTransitionPickupStatusCommandHandler() commands.TransitionPickupStatusCommandHandler {
	var f commands.PickupDriverUoWFactory = FuncPickupDriverUoWFactory(func() commands.PickupDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionPickupStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeletePickupCommandHandler() commands.DeletePickupCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverAvailabilityCommandHandler() commands.UpdateDriverAvailabilityCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDriverCompletionCommandHandler() commands.RecordDriverCompletionCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDriverCompletionCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCategoriesCommandHandler() commands.AssignCategoriesCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCategoriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupsByStatusQueryHandler() queries.GetPickupsByStatusQueryHandler {
	return queries.NewGetPickupsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		TransitionOrderStatus:    c.CreateTransitionOrderStatusCommandHandler(),
		DeleteOrder:              c.CreateDeleteOrderCommandHandler(),
		CreatePickup:             c.CreateCreatePickupCommandHandler(),
		AssignDriver:             c.CreateAssignDriverCommandHandler(),
		TransitionPickupStatus:   c.CreateTransitionPickupStatusCommandHandler(),
		DeletePickup:             c.CreateDeletePickupCommandHandler(),
		RegisterDriver:           c.CreateRegisterDriverCommandHandler(),
		UpdateDriverAvailability: c.CreateUpdateDriverAvailabilityCommandHandler(),
		RecordDriverCompletion:   c.CreateRecordDriverCompletionCommandHandler(),
		CreateProduct:            c.CreateCreateProductCommandHandler(),
		UpdateProduct:            c.CreateUpdateProductCommandHandler(),
		DeleteProduct:            c.CreateDeleteProductCommandHandler(),
		AssignCategories:         c.CreateAssignCategoriesCommandHandler(),
		GetOrdersByStatus:        c.CreateGetOrdersByStatusQueryHandler(),
		GetOrderDetails:          c.CreateGetOrderDetailsQueryHandler(),
		GetPickupsByStatus:       c.CreateGetPickupsByStatusQueryHandler(),
		GetAvailableDrivers:      c.CreateGetAvailableDriversQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager(digestSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, digestSchedule, c.logger)
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}

type FuncOrderPickupUoWFactory func() commands.OrderPickupUoW

func (f FuncOrderPickupUoWFactory) Create() commands.OrderPickupUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncPickupDriverUoWFactory func() commands.PickupDriverUoW

func (f FuncPickupDriverUoWFactory) Create() commands.PickupDriverUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
