package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/core/ports"
)

type stockEventRequest struct {
	SKU       string    `json:"sku"       validate:"required"`
	Delta     int       `json:"delta"     validate:"required"`
	Reason    string    `json:"reason"    validate:"required,oneof=restock sale damage correction return"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source"    validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// StockDispatcher is the interface the handler uses to enqueue events.
type StockDispatcher interface {
	Enqueue(event ports.StockEventInput)
	EnqueueBatch(events []ports.StockEventInput)
}

// StockHandler handles stock adjustment event ingestion.
type StockHandler struct {
	dispatcher StockDispatcher
}

// NewStockHandler creates a StockHandler backed by the given dispatcher.
func NewStockHandler(dispatcher StockDispatcher) *StockHandler {
	return &StockHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/stock/events: enqueues a single event, returns 202.
//
// @Summary      Ingest a single stock adjustment event
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      stockEventRequest  true  "Stock event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/stock/events [post]
func (h *StockHandler) Receive(c echo.Context) error {
	var req stockEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toStockInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/stock/events/batch: enqueues a batch, returns 202.
//
// @Summary      Ingest a batch of stock adjustment events
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []stockEventRequest  true  "Array of stock events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/stock/events/batch [post]
func (h *StockHandler) ReceiveBatch(c echo.Context) error {
	var reqs []stockEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.StockEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toStockInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toStockInput maps the HTTP request to the service DTO.
func toStockInput(r stockEventRequest) ports.StockEventInput {
	return ports.StockEventInput{
		SKU:       r.SKU,
		Delta:     r.Delta,
		Reason:    r.Reason,
		Timestamp: r.Timestamp,
		Source:    r.Source,
	}
}
