package ports

import (
	"context"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// SubmitFeedbackInput carries a customer review.
type SubmitFeedbackInput struct {
	CustomerEmail string
	Rating        int
	Comment       string
	OrderNumber   string
}

// ListFeedbackResult is returned by ListFeedback.
type ListFeedbackResult struct {
	Items      []*domain.Feedback
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// FeedbackService defines use-case operations for customer feedback.
type FeedbackService interface {
	Submit(ctx context.Context, input SubmitFeedbackInput) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, page, limit int) (*ListFeedbackResult, error)
	Stats(ctx context.Context) (*domain.FeedbackStats, error)
}
