package entity

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderDelivered, false},
		{OrderConfirmed, OrderPreparing, true},
		{OrderPreparing, OrderReady, true},
		{OrderPreparing, OrderConfirmed, false},
		{OrderReady, OrderOnDelivery, true},
		{OrderReady, OrderDelivered, true},
		{OrderOnDelivery, OrderDelivered, true},
		{OrderDelivered, OrderRefunded, true},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderConfirmed, false},
		{OrderRefunded, OrderPending, false},
		{"bogus", OrderConfirmed, false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrder(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionOrder(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanCancelOrder(t *testing.T) {
	for _, status := range []string{OrderPending, OrderConfirmed} {
		if !CanCancelOrder(status) {
			t.Errorf("CanCancelOrder(%q) = false, want true", status)
		}
	}
	for _, status := range []string{OrderPreparing, OrderReady, OrderOnDelivery, OrderDelivered, OrderCancelled, OrderRefunded} {
		if CanCancelOrder(status) {
			t.Errorf("CanCancelOrder(%q) = true, want false", status)
		}
	}
}

func TestCanRateOrder(t *testing.T) {
	if !CanRateOrder(OrderDelivered) {
		t.Errorf("delivered orders must be rateable")
	}
	for _, status := range []string{OrderPending, OrderConfirmed, OrderPreparing, OrderCancelled} {
		if CanRateOrder(status) {
			t.Errorf("CanRateOrder(%q) = true, want false", status)
		}
	}
}
