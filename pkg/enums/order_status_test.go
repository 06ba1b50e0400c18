package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusPreparing},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusPreparing, OrderStatusReady},
		{OrderStatusReady, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusReady},
		{OrderStatusPreparing, OrderStatusCancelled},
		{OrderStatusReady, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusConfirmed},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if !status.IsTerminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady} {
		if status.IsTerminal() {
			t.Fatalf("expected %s to be non-terminal", status)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if status != OrderStatusPreparing {
		t.Fatalf("unexpected status %s", status)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}
