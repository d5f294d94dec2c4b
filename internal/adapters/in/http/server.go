package http

import (
	"net/http"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/core/domain/model/product"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground validation to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks a bound request body against its struct tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Handlers carries every use case the server exposes.
type Handlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	TransitionOrderStatus    commands.TransitionOrderStatusCommandHandler
	DeleteOrder              commands.DeleteOrderCommandHandler
	CreatePickup             commands.CreatePickupCommandHandler
	AssignDriver             commands.AssignDriverCommandHandler
	TransitionPickupStatus   commands.TransitionPickupStatusCommandHandler
	DeletePickup             commands.DeletePickupCommandHandler
	RegisterDriver           commands.RegisterDriverCommandHandler
	UpdateDriverAvailability commands.UpdateDriverAvailabilityCommandHandler
	RecordDriverCompletion   commands.RecordDriverCompletionCommandHandler
	CreateProduct            commands.CreateProductCommandHandler
	UpdateProduct            commands.UpdateProductCommandHandler
	DeleteProduct            commands.DeleteProductCommandHandler
	AssignCategories         commands.AssignCategoriesCommandHandler

	GetOrdersByStatus   queries.GetOrdersByStatusQueryHandler
	GetOrderDetails     queries.GetOrderDetailsQueryHandler
	GetPickupsByStatus  queries.GetPickupsByStatusQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.TransitionOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderDetails)

	api.POST("/pickups", s.CreatePickup)
	api.POST("/pickups/:id/assign", s.AssignDriver)
	api.POST("/pickups/:id/status", s.TransitionPickupStatus)
	api.DELETE("/pickups/:id", s.DeletePickup)
	api.GET("/pickups", s.GetPickups)

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/:id/availability", s.UpdateDriverAvailability)
	api.POST("/drivers/:id/completions", s.RecordDriverCompletion)
	api.GET("/drivers/available", s.GetAvailableDrivers)

	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.PUT("/products/:id/categories", s.AssignCategories)

	e.GET("/health", s.Health)
}

// Health reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	consumerID, err := kernel.NewUserID(req.ConsumerID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return respondBadRequest(ctx, idErr.Error())
		}
		items = append(items, commands.OrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, consumerID, req.PickupDetails, items)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// TransitionOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req TransitionOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders with optional status, from, and to
// query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, err.Error())
		}
		statusFilter = &status
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(statusFilter, from, to)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	orders, err := s.handlers.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:         o.ID.String(),
			ConsumerID: o.ConsumerID,
			Status:     o.Status.String(),
			OrderDate:  o.OrderDate,
			Total:      o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderLineItemResponse, len(details.Items))
	for i, item := range details.Items {
		var productID *string
		if item.ProductID != nil {
			id := item.ProductID.String()
			productID = &id
		}
		items[i] = OrderLineItemResponse{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetailsResponse{
		ID:            details.ID.String(),
		ConsumerID:    details.ConsumerID,
		Status:        details.Status.String(),
		OrderDate:     details.OrderDate,
		PickupDetails: details.PickupDetails,
		Items:         items,
		Total:         details.Total,
	})
}

// CreatePickup handles POST /api/v1/pickups.
func (s *Server) CreatePickup(ctx echo.Context) error {
	var req CreatePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var orderID *kernel.UUID
	if req.OrderID != nil {
		id, err := kernel.UUIDFromString(*req.OrderID)
		if err != nil {
			return respondBadRequest(ctx, err.Error())
		}
		orderID = &id
	}

	pickupDate := timeOrZero(req.PickupDate)
	pickupID := kernel.NewUUID()

	cmd, err := commands.NewCreatePickupCommand(pickupID, orderID, req.Location, req.Notes, pickupDate)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.CreatePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: pickupID.String()})
}

// AssignDriver handles POST /api/v1/pickups/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	driverID, err := kernel.NewUserID(req.DriverID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(pickupID, driverID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionPickupStatus handles POST /api/v1/pickups/:id/status.
func (s *Server) TransitionPickupStatus(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req TransitionPickupStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	status, err := pickup.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewTransitionPickupStatusCommand(pickupID, status, req.Rating)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.TransitionPickupStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePickup handles DELETE /api/v1/pickups/:id. The staff_override query
// parameter permits deleting pickups already in progress.
func (s *Server) DeletePickup(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	staffOverride := ctx.QueryParam("staff_override") == "true"

	cmd, err := commands.NewDeletePickupCommand(pickupID, staffOverride)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.DeletePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPickups handles GET /api/v1/pickups with an optional status parameter.
func (s *Server) GetPickups(ctx echo.Context) error {
	var statusFilter *pickup.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := pickup.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, err.Error())
		}
		statusFilter = &status
	}

	query, err := queries.NewGetPickupsByStatusQuery(statusFilter)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	pickups, err := s.handlers.GetPickupsByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PickupResponse, len(pickups))
	for i, p := range pickups {
		var orderID *string
		if p.OrderID != nil {
			id := p.OrderID.String()
			orderID = &id
		}
		response[i] = PickupResponse{
			ID:         p.ID.String(),
			OrderID:    orderID,
			Status:     p.Status.String(),
			PickupDate: p.PickupDate,
			Location:   p.Location,
			AssignedTo: p.AssignedTo,
			Notes:      p.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, err := kernel.NewUserID(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRegisterDriverCommand(userID, req.VehicleType, req.MaxLoadCapacity)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateDriverAvailability handles POST /api/v1/drivers/:id/availability.
func (s *Server) UpdateDriverAvailability(ctx echo.Context) error {
	userID, err := parseUserIDParam(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req UpdateDriverAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	availability, err := driver.AvailabilityFromString(req.Availability)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(userID, availability, req.Location)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateDriverAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDriverCompletion handles POST /api/v1/drivers/:id/completions.
func (s *Server) RecordDriverCompletion(ctx echo.Context) error {
	userID, err := parseUserIDParam(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req RecordDriverCompletionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRecordDriverCompletionCommand(userID, req.Rating)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.RecordDriverCompletion.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAvailableDrivers.Handle(
		ctx.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			UserID:           d.UserID,
			VehicleType:      d.VehicleType,
			MaxLoadCapacity:  d.MaxLoadCapacity,
			CurrentLocation:  d.CurrentLocation,
			CompletedPickups: d.CompletedPickups,
			Rating:           d.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	farmerID, err := kernel.NewUserID(req.FarmerID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, farmerID, price, req.Stock, req.UnitType, req.ImageRef, categoryIDs)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PATCH /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	var price *kernel.Money
	if req.Price != nil {
		money, priceErr := kernel.NewMoney(*req.Price)
		if priceErr != nil {
			return respondBadRequest(ctx, priceErr.Error())
		}
		price = &money
	}

	var status *product.Status
	if req.Status != nil {
		parsed, statusErr := product.StatusFromString(*req.Status)
		if statusErr != nil {
			return respondBadRequest(ctx, statusErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, price, req.Stock, status, req.UnitType, req.ImageRef)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCategories handles PUT /api/v1/products/:id/categories.
func (s *Server) AssignCategories(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req AssignCategoriesRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignCategoriesCommand(productID, categoryIDs)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignCategories.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
