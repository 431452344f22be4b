package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	plants ports.PlantRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, plants ports.PlantRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, plants: plants, logger: log}
}

// PlaceOrder creates a new order, reserving stock for every line. If an
// idempotency key is provided and already seen, the previously created order
// is returned without side effects.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*ports.OrderResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_number", existing.OrderNumber).Msg("idempotent replay")
			return &ports.OrderResult{
				OrderNumber:    existing.OrderNumber,
				Status:         string(existing.Status),
				Total:          existing.Total,
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber:    generateOrderNumber(),
		CustomerEmail:  input.CustomerEmail,
		Status:         domain.OrderPending,
		DeliveryNotes:  input.DeliveryNotes,
		CreatedAt:      now,
		IdempotencyKey: input.IdempotencyKey,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.OrderPending, Timestamp: now, Notes: "order placed"},
		},
	}

	// Reserve stock line by line; a failed line rolls back the ones before it.
	reserved := make([]domain.OrderLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		plant, err := s.plants.AdjustStock(ctx, line.SKU, -line.Quantity)
		if err != nil {
			s.rollbackReservations(ctx, reserved)
			return nil, fmt.Errorf("reserve %s: %w", line.SKU, err)
		}
		reserved = append(reserved, domain.OrderLine{
			SKU:       plant.SKU,
			Name:      plant.Name,
			Quantity:  line.Quantity,
			UnitPrice: plant.Price,
		})
		order.Total += plant.Price * float64(line.Quantity)
	}
	order.Lines = reserved

	if err := s.repo.Create(ctx, order); err != nil {
		s.rollbackReservations(ctx, reserved)
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_number", order.OrderNumber).Str("customer", input.CustomerEmail).Float64("total", order.Total).Msg("order placed")

	return &ports.OrderResult{
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Total:       order.Total,
		CreatedAt:   order.CreatedAt,
	}, nil
}

func (s *OrderService) rollbackReservations(ctx context.Context, lines []domain.OrderLine) {
	for _, line := range lines {
		if _, err := s.plants.AdjustStock(ctx, line.SKU, line.Quantity); err != nil {
			s.logger.Error().Err(err).Str("sku", line.SKU).Msg("failed to roll back stock reservation")
		}
	}
}

// GetOrder retrieves a single order. Customers only see their own orders; the
// repository query is scoped by email so a foreign order number behaves like a
// missing one.
func (s *OrderService) GetOrder(ctx context.Context, input ports.GetOrderInput) (*domain.Order, error) {
	if input.Identity == nil {
		return nil, domain.ErrForbidden
	}

	scope := ""
	if input.Identity.HasRole(domain.RoleCustomer) && !input.Identity.HasRole(domain.RoleManager) {
		scope = input.Identity.Email
	}

	return s.repo.FindByOrderNumber(ctx, input.OrderNumber, scope)
}

func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	if input.Identity == nil {
		return nil, domain.ErrForbidden
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListOrdersFilter{
		Status:   input.Status,
		Search:   input.Search,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	}

	switch {
	case input.Identity.HasRole(domain.RoleManager):
		// unrestricted
	case input.Identity.HasRole(domain.RoleDeliveryCompany):
		// the delivery portal only ever works the out-for-delivery queue
		filter.Status = string(domain.OrderOutForDelivery)
	default:
		filter.CustomerEmail = input.Identity.Email
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateStatus applies a status transition after validating it against the
// order state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.UpdateOrderStatusInput) error {
	order, err := s.repo.FindByOrderNumber(ctx, input.OrderNumber, "")
	if err != nil {
		return err
	}

	next := domain.OrderStatus(input.Status)
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, input.OrderNumber, next, time.Now().UTC(), input.Notes); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info().Str("order_number", input.OrderNumber).Str("status", input.Status).Msg("order status updated")
	return nil
}

// generateOrderNumber returns a unique order number in the format NSY-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("NSY-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("NSY-%08X", b)
}
