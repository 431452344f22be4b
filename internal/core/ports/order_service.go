package ports

import (
	"context"
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// OrderLineInput is a single requested position within a new order.
type OrderLineInput struct {
	SKU      string
	Quantity int
}

// PlaceOrderInput carries all data needed to place an order.
type PlaceOrderInput struct {
	CustomerEmail  string
	Lines          []OrderLineInput
	DeliveryNotes  string
	IdempotencyKey string
}

// OrderResult is returned by the service after placing an order.
type OrderResult struct {
	OrderNumber string
	Status      string
	Total       float64
	CreatedAt   time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing order.
	AlreadyExisted bool
}

// GetOrderInput carries the parameters needed to retrieve a single order.
type GetOrderInput struct {
	OrderNumber string
	// Identity scopes the query: customers only see their own orders.
	Identity *domain.Identity
}

// ListOrdersInput carries all parameters for the list endpoint.
type ListOrdersInput struct {
	Identity *domain.Identity
	Status   string
	Search   string
	DateFrom time.Time
	DateTo   time.Time
	Page     int
	Limit    int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateOrderStatusInput carries a status transition request.
type UpdateOrderStatusInput struct {
	OrderNumber string
	Status      string
	Notes       string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, input GetOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) error
}
