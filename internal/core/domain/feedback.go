package domain

import (
	"errors"
	"time"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Feedback is a single customer review, optionally tied to an order.
type Feedback struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	CustomerEmail string    `json:"customer_email" bson:"customer_email"`
	Rating        int       `json:"rating" bson:"rating"`
	Comment       string    `json:"comment,omitempty" bson:"comment,omitempty"`
	OrderNumber   string    `json:"order_number,omitempty" bson:"order_number,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// FeedbackStats is the aggregated view shown on the manager dashboard.
type FeedbackStats struct {
	Count         int64         `json:"count"`
	AverageRating float64       `json:"average_rating"`
	ByRating      map[int]int64 `json:"by_rating"`
}
