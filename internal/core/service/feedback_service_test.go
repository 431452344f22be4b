package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

type stubFeedbackRepo struct {
	items []*domain.Feedback
}

func (r *stubFeedbackRepo) Insert(_ context.Context, f *domain.Feedback) error {
	r.items = append(r.items, f)
	return nil
}

func (r *stubFeedbackRepo) List(_ context.Context, _, _ int) ([]*domain.Feedback, int64, error) {
	return r.items, int64(len(r.items)), nil
}

func (r *stubFeedbackRepo) Stats(_ context.Context) (*domain.FeedbackStats, error) {
	stats := &domain.FeedbackStats{ByRating: map[int]int64{}}
	var sum int64
	for _, f := range r.items {
		stats.Count++
		stats.ByRating[f.Rating]++
		sum += int64(f.Rating)
	}
	if stats.Count > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Count)
	}
	return stats, nil
}

func TestFeedbackService_SubmitValidRating(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())

	f, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
		CustomerEmail: "mia@example.com",
		Rating:        4,
		Comment:       "healthy plants, fast delivery",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if len(repo.items) != 1 {
		t.Fatalf("feedback not persisted")
	}
}

func TestFeedbackService_SubmitRejectsOutOfRangeRating(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, zerolog.Nop())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
			CustomerEmail: "mia@example.com",
			Rating:        rating,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestFeedbackService_Stats(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())

	for _, rating := range []int{5, 5, 3} {
		if _, err := svc.Submit(context.Background(), ports.SubmitFeedbackInput{
			CustomerEmail: "mia@example.com",
			Rating:        rating,
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 3 {
		t.Errorf("count = %d", stats.Count)
	}
	if stats.ByRating[5] != 2 {
		t.Errorf("five-star count = %d", stats.ByRating[5])
	}
}
