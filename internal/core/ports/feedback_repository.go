package ports

import (
	"context"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// FeedbackRepository defines persistence operations for customer feedback.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) error
	// List returns a page of feedback ordered newest-first plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Feedback, int64, error)
	// Stats aggregates count, average rating, and the per-rating histogram.
	Stats(ctx context.Context) (*domain.FeedbackStats, error)
}
