package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

func (s *FeedbackService) Submit(ctx context.Context, input ports.SubmitFeedbackInput) (*domain.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	f := &domain.Feedback{
		CustomerEmail: input.CustomerEmail,
		Rating:        input.Rating,
		Comment:       input.Comment,
		OrderNumber:   input.OrderNumber,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, f); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert feedback")
		return nil, err
	}

	s.logger.Info().Str("customer", input.CustomerEmail).Int("rating", input.Rating).Msg("feedback submitted")
	return f, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context, page, limit int) (*ports.ListFeedbackResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListFeedbackResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *FeedbackService) Stats(ctx context.Context) (*domain.FeedbackStats, error) {
	return s.repo.Stats(ctx)
}
