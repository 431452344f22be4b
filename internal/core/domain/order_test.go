package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderPending, OrderConfirmed},
		{OrderPending, OrderCancelled},
		{OrderConfirmed, OrderPreparing},
		{OrderConfirmed, OrderCancelled},
		{OrderPreparing, OrderOutForDelivery},
		{OrderPreparing, OrderCancelled},
		{OrderOutForDelivery, OrderDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderPending, OrderDelivered},
		{OrderOutForDelivery, OrderCancelled},
		{OrderDelivered, OrderPending},
		{OrderCancelled, OrderConfirmed},
		{OrderDelivered, OrderDelivered},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}
