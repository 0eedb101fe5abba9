// Package http exposes the order surface and the kitchen workflow surface
// over echo. Every route sits behind bearer authentication; authorization
// decisions stay in the use cases, which receive the caller's claims
// explicitly.
package http

import (
	"net/http"
	"strconv"

	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/application/usecases/queries"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/core/services/kitchenops"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler

	// Kitchen workflow facade
	kitchen *kitchenops.Workflow
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the kitchen workflow facade.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	kitchen *kitchenops.Workflow,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrdersHandler:         getOrdersHandler,
		kitchen:                  kitchen,
	}
}

// RegisterRoutes mounts every route behind the bearer middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier ports.TokenVerifier) {
	api := e.Group("/api", BearerAuth(verifier))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.GET("/kitchen/orders/pending", s.GetKitchenPending)
	api.GET("/kitchen/orders/accepted", s.GetKitchenAccepted)
	api.GET("/kitchen/orders/active", s.GetKitchenActive)
	api.POST("/kitchen/orders/:id/accept", s.AcceptKitchenOrder)
	api.POST("/kitchen/orders/:id/reject", s.RejectKitchenOrder)
	api.POST("/kitchen/orders/:id/prepare", s.PrepareKitchenOrder)
	api.POST("/kitchen/orders/:id/ready", s.ReadyKitchenOrder)
}

// CreateOrder handles POST /api/orders - places a new order.
// Returns 202: the order view is immediate but persistence is asynchronous,
// so the view carries id 0 until the creation event is consumed.
func (s *Server) CreateOrder(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	channel, err := order.ChannelFromString(req.DeliveryChannel)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.ItemSelection, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemSelection{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(claims, req.CustomerID, channel, items)
	if err != nil {
		return writeBadRequest(ctx, "invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, viewFromAggregate(created))
}

// GetOrders handles GET /api/orders - lists orders, optionally filtered by
// ?status=. Staff only.
func (s *Server) GetOrders(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = parsed
	}

	query, err := queries.NewGetOrdersQuery(claims, status)
	if err != nil {
		return writeBadRequest(ctx, "invalid listing request: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsFromQueryResponses(orders))
}

// GetOrderByID handles GET /api/orders/:id - retrieves a single order.
// Owner or staff.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(claims, orderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid order request: "+err.Error())
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewFromQueryResponse(view))
}

// GetCustomerOrders handles GET /api/customers/:id/orders - the order
// history of one customer. Owner or staff.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	customerID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(claims, customerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid history request: "+err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsFromQueryResponses(orders))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - transitions an
// order. Staff only.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(claims, orderID, target, req.Reason)
	if err != nil {
		return writeBadRequest(ctx, "invalid transition data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewFromAggregate(updated))
}

// CancelOrder handles POST /api/orders/:id/cancel - cancels an order with a
// reason. Owner or staff.
func (s *Server) CancelOrder(ctx echo.Context) error {
	claims, ok := callerClaims(ctx)
	if !ok {
		return writeBadRequest(ctx, "missing caller claims")
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(claims, orderID, req.Reason)
	if err != nil {
		return writeBadRequest(ctx, "invalid cancellation data: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewFromAggregate(cancelled))
}

// GetKitchenPending handles GET /api/kitchen/orders/pending.
func (s *Server) GetKitchenPending(ctx echo.Context) error {
	orders, err := s.kitchen.GetPendingOrders(ctx.Request().Context(), callerToken(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetKitchenAccepted handles GET /api/kitchen/orders/accepted.
func (s *Server) GetKitchenAccepted(ctx echo.Context) error {
	orders, err := s.kitchen.GetAcceptedOrders(ctx.Request().Context(), callerToken(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetKitchenActive handles GET /api/kitchen/orders/active.
func (s *Server) GetKitchenActive(ctx echo.Context) error {
	orders, err := s.kitchen.GetActiveOrders(ctx.Request().Context(), callerToken(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// AcceptKitchenOrder handles POST /api/kitchen/orders/:id/accept.
func (s *Server) AcceptKitchenOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	snapshot, err := s.kitchen.Accept(ctx.Request().Context(), callerToken(ctx), orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// RejectKitchenOrder handles POST /api/kitchen/orders/:id/reject.
func (s *Server) RejectKitchenOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	snapshot, err := s.kitchen.Reject(ctx.Request().Context(), callerToken(ctx), orderID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// PrepareKitchenOrder handles POST /api/kitchen/orders/:id/prepare.
func (s *Server) PrepareKitchenOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	snapshot, err := s.kitchen.StartPreparing(ctx.Request().Context(), callerToken(ctx), orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

// ReadyKitchenOrder handles POST /api/kitchen/orders/:id/ready.
func (s *Server) ReadyKitchenOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	snapshot, err := s.kitchen.Finish(ctx.Request().Context(), callerToken(ctx), orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

func pathID(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}
