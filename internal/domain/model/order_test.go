package model

import "testing"

func TestOrderStatusDeletable(t *testing.T) {
	cases := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderStatusNew, true},
		{OrderStatusInProgress, true},
		{OrderStatusDeliveredUnpaid, false},
		{OrderStatusDeliveredPaid, false},
		{OrderStatusUndeliveredPaid, false},
		{OrderStatus("unknown"), false},
	}
	for _, tc := range cases {
		if got := tc.status.Deletable(); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusNew, OrderStatusInProgress, OrderStatusDeliveredUnpaid,
		OrderStatusDeliveredPaid, OrderStatusUndeliveredPaid,
	} {
		if !s.IsValid() {
			t.Errorf("%s: expected valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "banana", "NEW", "delivered"} {
		if s.IsValid() {
			t.Errorf("%q: expected invalid", s)
		}
	}
}
