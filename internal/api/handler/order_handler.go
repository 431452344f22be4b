package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/api/metrics"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Place handles POST /v1/orders.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      placeOrderRequest  true   "Order lines"
// @Success      201              {object}  placeOrderResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, ports.OrderLineInput{SKU: l.SKU, Quantity: l.Quantity})
	}

	result, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		CustomerEmail:  identity.Email,
		Lines:          lines,
		DeliveryNotes:  req.DeliveryNotes,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if !result.AlreadyExisted {
		metrics.OrdersPlacedTotal.Inc()
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, placeOrderResponse{
		OrderNumber: result.OrderNumber,
		Status:      result.Status,
		Total:       result.Total,
		CreatedAt:   result.CreatedAt,
		Links:       orderLinks{Self: "/orders/" + result.OrderNumber},
	})
}

// Get handles GET /v1/orders/:order_number.
//
// @Summary      Get an order by number
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_number  path      string  true  "Order number (e.g. NSY-7A8B9C2D)"
// @Success      200           {object}  orderResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /v1/orders/{order_number} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.GetOrder(c.Request().Context(), ports.GetOrderInput{
		OrderNumber: c.Param("order_number"),
		Identity:    identity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /v1/orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by order status"
// @Param        search     query     string  false  "Partial match on order number"
// @Param        date_from  query     string  false  "created_at >= date_from (RFC 3339)"
// @Param        date_to    query     string  false  "created_at <= date_to (RFC 3339)"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listOrdersResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	dateFrom, _ := time.Parse(time.RFC3339, c.QueryParam("date_from"))
	dateTo, _ := time.Parse(time.RFC3339, c.QueryParam("date_to"))

	result, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Identity: identity,
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	data := make([]orderSummaryResponse, 0, len(result.Items))
	for _, o := range result.Items {
		data = append(data, toOrderSummary(o))
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// UpdateStatus handles PATCH /v1/orders/:order_number/status.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_number  path      string                    true  "Order number"
// @Param        body          body      updateOrderStatusRequest  true  "New status"
// @Success      204           "status updated"
// @Failure      404           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/orders/{order_number}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateOrderStatusInput{
		OrderNumber: c.Param("order_number"),
		Status:      req.Status,
		Notes:       req.Notes,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
