package ports

import (
	"context"
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
// CustomerEmail is enforced by the service layer for customer-scoped views.
type ListOrdersFilter struct {
	CustomerEmail string // empty = no filter (manager); non-empty = scoped to customer
	Status        string // optional: filter by order status
	Search        string // optional: partial match on order_number
	DateFrom      time.Time
	DateTo        time.Time
	Page          int // 1-based
	Limit         int // capped at 100 by service
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// FindByOrderNumber retrieves an order. When customerEmail is non-empty,
	// the query is additionally scoped to that customer.
	FindByOrderNumber(ctx context.Context, orderNumber, customerEmail string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	// UpdateStatus atomically sets the order's new status and appends a
	// history entry.
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus, ts time.Time, notes string) error
}
