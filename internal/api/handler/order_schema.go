package handler

import (
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

type orderLineRequest struct {
	SKU      string `json:"sku"      validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Lines         []orderLineRequest `json:"lines"          validate:"required,min=1,dive"`
	DeliveryNotes string             `json:"delivery_notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed preparing out_for_delivery delivered cancelled"`
	Notes  string `json:"notes"`
}

type orderLinks struct {
	Self string `json:"self"`
}

type placeOrderResponse struct {
	OrderNumber string     `json:"order_number"`
	Status      string     `json:"status"`
	Total       float64    `json:"total"`
	CreatedAt   time.Time  `json:"created_at"`
	Links       orderLinks `json:"_links"`
}

type orderLineResponse struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type orderResponse struct {
	OrderNumber   string                      `json:"order_number"`
	CustomerEmail string                      `json:"customer_email"`
	Status        string                      `json:"status"`
	Total         float64                     `json:"total"`
	DeliveryNotes string                      `json:"delivery_notes,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	Lines         []orderLineResponse         `json:"lines"`
	StatusHistory []statusHistoryItemResponse `json:"status_history"`
	Links         orderLinks                  `json:"_links"`
}

// orderSummaryResponse is the lightweight item used in list responses.
// It intentionally omits lines and status_history to keep payloads small.
type orderSummaryResponse struct {
	OrderNumber   string     `json:"order_number"`
	CustomerEmail string     `json:"customer_email"`
	Status        string     `json:"status"`
	Total         float64    `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
	Links         orderLinks `json:"_links"`
}

type listOrdersResponse struct {
	Data       []orderSummaryResponse `json:"data"`
	Pagination paginationResponse     `json:"pagination"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineResponse{
			SKU:       l.SKU,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	history := make([]statusHistoryItemResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, statusHistoryItemResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Notes:     h.Notes,
		})
	}
	return orderResponse{
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		Total:         o.Total,
		DeliveryNotes: o.DeliveryNotes,
		CreatedAt:     o.CreatedAt,
		Lines:         lines,
		StatusHistory: history,
		Links:         orderLinks{Self: "/orders/" + o.OrderNumber},
	}
}

func toOrderSummary(o *domain.Order) orderSummaryResponse {
	return orderSummaryResponse{
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		Links:         orderLinks{Self: "/orders/" + o.OrderNumber},
	}
}
