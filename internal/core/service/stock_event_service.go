package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, sku, reason string, ts time.Time) (bool, error)
	Mark(ctx context.Context, sku, reason string, ts time.Time) error
}

type stockEventService struct {
	plants ports.PlantRepository
	audit  ports.StockAuditRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewStockEventService returns a StockEventService implementation.
func NewStockEventService(
	plants ports.PlantRepository,
	audit ports.StockAuditRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.StockEventService {
	return &stockEventService{
		plants: plants,
		audit:  audit,
		dedup:  dedup,
		log:    log,
	}
}

// Process validates, deduplicates, and applies a single stock adjustment event.
func (s *stockEventService) Process(ctx context.Context, in ports.StockEventInput) error {
	// 1. Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.SKU, in.Reason, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("sku", in.SKU).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("sku", in.SKU).Str("reason", in.Reason).Msg("duplicate stock event skipped")
		return nil
	}

	// 2. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.SKU, in.Reason, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("sku", in.SKU).Msg("failed to set dedup key")
	}

	// 3. Atomically apply the delta; the repository rejects adjustments that
	// would push stock below zero.
	plant, err := s.plants.AdjustStock(ctx, in.SKU, in.Delta)
	if err != nil {
		return fmt.Errorf("process stock event: %w", err)
	}

	// 4. Insert into audit trail (non-fatal on failure).
	auditEvent := &domain.StockEvent{
		SKU:       in.SKU,
		Delta:     in.Delta,
		Reason:    in.Reason,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if err := s.audit.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Str("sku", in.SKU).Msg("failed to insert stock audit event")
	}

	s.log.Info().
		Str("sku", in.SKU).
		Int("delta", in.Delta).
		Int("stock", plant.Stock).
		Str("source", in.Source).
		Msg("stock event processed")

	return nil
}
