// Package http exposes the order lifecycle over a REST API.
// Routes follow the /api/v1 prefix; status transitions are modeled as PUT
// sub-resources of an order.
package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	serveOrderHandler       commands.ServeOrderCommandHandler
	startDeliveryHandler    commands.StartOrderDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteOrderDeliveryCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
}

// NewServer creates an HTTP server backed by the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	startDeliveryHandler commands.StartOrderDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteOrderDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		serveOrderHandler:       serveOrderHandler,
		startDeliveryHandler:    startDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		completeOrderHandler:    completeOrderHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
	}
}

// RegisterRoutes mounts the order API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:orderId/accept", s.AcceptOrder)
	api.PUT("/orders/:orderId/serve", s.ServeOrder)
	api.PUT("/orders/:orderId/start-delivery", s.StartOrderDelivery)
	api.PUT("/orders/:orderId/complete-delivery", s.CompleteOrderDelivery)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := order.TypeFromString(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]commands.LineItemSpec, 0, len(request.LineItems))
	for _, item := range request.LineItems {
		menuID, idErr := kernel.UUIDFromBytes(item.MenuID[:])
		if idErr != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("menuId", idErr))
		}

		items = append(items, commands.LineItemSpec{
			MenuID:   menuID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	var tableID *kernel.UUID
	if request.OrderTableID != nil {
		id, idErr := kernel.UUIDFromBytes((*request.OrderTableID)[:])
		if idErr != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderTableId", idErr))
		}
		tableID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, orderType, items, request.DeliveryAddress, tableID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items := make([]LineItemResponse, len(o.LineItems))
		for j, item := range o.LineItems {
			items[j] = LineItemResponse{
				MenuID:   item.MenuID.Bytes(),
				Quantity: item.Quantity,
				Price:    item.Price,
			}
		}

		response[i] = OrderResponse{
			ID:              o.ID.Bytes(),
			Type:            o.OrderType,
			Status:          o.Status,
			DeliveryAddress: o.DeliveryAddress,
			Total:           o.Total,
			LineItems:       items,
		}
		if o.OrderTableID != nil {
			raw := o.OrderTableID.Bytes()
			response[i].OrderTableID = &raw
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ServeOrder handles PUT /api/v1/orders/:orderId/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartOrderDelivery handles PUT /api/v1/orders/:orderId/start-delivery.
func (s *Server) StartOrderDelivery(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrderDelivery handles PUT /api/v1/orders/:orderId/complete-delivery.
func (s *Server) CompleteOrderDelivery(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderDeliveryCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles PUT /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return orderID, nil
}

func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
