// Package http exposes the order state engine over a REST API.
// Every mutating endpoint delegates to a command handler, so each child
// mutation triggers recalculation inside the command's transaction.
package http

import (
	"errors"
	"net/http"

	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/application/usecases/queries"
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	addLineItemHandler      commands.AddLineItemCommandHandler
	recordPaymentHandler    commands.RecordPaymentCommandHandler
	addShipmentHandler      commands.AddShipmentCommandHandler
	shipShipmentHandler     commands.ShipShipmentCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	recalculateOrderHandler commands.RecalculateOrderCommandHandler

	// Query handlers
	getOrderSummaryHandler         queries.GetOrderSummaryQueryHandler
	getOrdersWithBalanceDueHandler queries.GetOrdersWithBalanceDueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	addShipmentHandler commands.AddShipmentCommandHandler,
	shipShipmentHandler commands.ShipShipmentCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	recalculateOrderHandler commands.RecalculateOrderCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrdersWithBalanceDueHandler queries.GetOrdersWithBalanceDueQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		addLineItemHandler:             addLineItemHandler,
		recordPaymentHandler:           recordPaymentHandler,
		addShipmentHandler:             addShipmentHandler,
		shipShipmentHandler:            shipShipmentHandler,
		completeOrderHandler:           completeOrderHandler,
		recalculateOrderHandler:        recalculateOrderHandler,
		getOrderSummaryHandler:         getOrderSummaryHandler,
		getOrdersWithBalanceDueHandler: getOrdersWithBalanceDueHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/balance-due", s.GetOrdersWithBalanceDue)
	v1.GET("/orders/:orderID", s.GetOrderSummary)
	v1.POST("/orders/:orderID/line-items", s.AddLineItem)
	v1.POST("/orders/:orderID/payments", s.RecordPayment)
	v1.POST("/orders/:orderID/shipments", s.AddShipment)
	v1.POST("/orders/:orderID/shipments/:shipmentID/ship", s.ShipShipment)
	v1.POST("/orders/:orderID/complete", s.CompleteOrder)
	v1.POST("/orders/:orderID/recalculate", s.RecalculateOrder)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func commandError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

type newLineItemRequest struct {
	Amount      string `json:"amount"`
	Adjustments []struct {
		Amount   string `json:"amount"`
		Eligible bool   `json:"eligible"`
	} `json:"adjustments"`
}

// AddLineItem handles POST /api/v1/orders/:orderID/line-items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req newLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	adjustments := make([]commands.AdjustmentInput, 0, len(req.Adjustments))
	for _, adjustment := range req.Adjustments {
		adjustmentAmount, amountErr := kernel.NewMoneyFromString(adjustment.Amount)
		if amountErr != nil {
			return badRequest(ctx, "Invalid adjustment amount: "+amountErr.Error())
		}
		adjustments = append(adjustments, commands.AdjustmentInput{
			ID:       kernel.NewUUID(),
			Amount:   adjustmentAmount,
			Eligible: adjustment.Eligible,
		})
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, kernel.NewUUID(), amount, adjustments)
	if err != nil {
		return badRequest(ctx, "Invalid line item data: "+err.Error())
	}

	if err = s.addLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.LineItemID().String()})
}

type newPaymentRequest struct {
	Amount string `json:"amount"`
	Status string `json:"status"`
}

// RecordPayment handles POST /api/v1/orders/:orderID/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req newPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	status, err := order.PaymentStatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, kernel.NewUUID(), amount, status)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.PaymentID().String()})
}

type newShipmentRequest struct {
	Cost string `json:"cost"`
}

// AddShipment handles POST /api/v1/orders/:orderID/shipments.
func (s *Server) AddShipment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req newShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cost, err := kernel.NewMoneyFromString(req.Cost)
	if err != nil {
		return badRequest(ctx, "Invalid cost: "+err.Error())
	}

	cmd, err := commands.NewAddShipmentCommand(orderID, kernel.NewUUID(), cost)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.addShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ShipmentID().String()})
}

// ShipShipment handles POST /api/v1/orders/:orderID/shipments/:shipmentID/ship.
func (s *Server) ShipShipment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	cmd, err := commands.NewShipShipmentCommand(orderID, shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.shipShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecalculateOrder handles POST /api/v1/orders/:orderID/recalculate.
func (s *Server) RecalculateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRecalculateOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.recalculateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderSummaryResponse struct {
	ID              string `json:"id"`
	Completed       bool   `json:"completed"`
	Backordered     bool   `json:"backordered"`
	ItemTotal       string `json:"item_total"`
	ShipmentTotal   string `json:"shipment_total"`
	AdjustmentTotal string `json:"adjustment_total"`
	PaymentTotal    string `json:"payment_total"`
	Total           string `json:"total"`
	PaymentState    string `json:"payment_state"`
	ShipmentState   string `json:"shipment_state"`
}

// GetOrderSummary handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaryResponse{
		ID:              summary.ID.String(),
		Completed:       summary.Completed,
		Backordered:     summary.Backordered,
		ItemTotal:       summary.ItemTotal.String(),
		ShipmentTotal:   summary.ShipmentTotal.String(),
		AdjustmentTotal: summary.AdjustmentTotal.String(),
		PaymentTotal:    summary.PaymentTotal.String(),
		Total:           summary.Total.String(),
		PaymentState:    summary.PaymentState.String(),
		ShipmentState:   summary.ShipmentState.String(),
	})
}

type balanceDueResponse struct {
	ID                 string `json:"id"`
	Total              string `json:"total"`
	PaymentTotal       string `json:"payment_total"`
	OutstandingBalance string `json:"outstanding_balance"`
}

// GetOrdersWithBalanceDue handles GET /api/v1/orders/balance-due.
func (s *Server) GetOrdersWithBalanceDue(ctx echo.Context) error {
	query := queries.NewGetOrdersWithBalanceDueQuery()

	orders, err := s.getOrdersWithBalanceDueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]balanceDueResponse, len(orders))
	for i, item := range orders {
		response[i] = balanceDueResponse{
			ID:                 item.ID.String(),
			Total:              item.Total.String(),
			PaymentTotal:       item.PaymentTotal.String(),
			OutstandingBalance: item.OutstandingBalance.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
