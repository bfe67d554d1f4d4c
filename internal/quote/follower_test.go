package quote

import (
	"testing"

	"github.com/408adamelb/IMCPROSPERITY/internal/book"
)

func TestFollowerTakesOnlyMispricedLevels(t *testing.T) {
	follower := NewSignalFollower(0)
	depth := book.Depth{
		Asks: map[int]int{9: -5, 10: -3},
		Bids: map[int]int{11: 4, 10: 2},
	}
	orders, err := follower.ComputeOrders(inputFrom("BANANAS", depth, 0, 10))
	if err != nil {
		t.Fatalf("ComputeOrders returned error: %v", err)
	}

	want := []Order{
		{Product: "BANANAS", Price: 9, Quantity: 5},
		{Product: "BANANAS", Price: 11, Quantity: -4},
	}
	if len(orders) != len(want) {
		t.Fatalf("expected %d orders, got %d: %+v", len(want), len(orders), orders)
	}
	for i, order := range orders {
		if order != want[i] {
			t.Fatalf("order %d mismatch: want %+v got %+v", i, want[i], order)
		}
	}
}

func TestFollowerRespectsPositionBound(t *testing.T) {
	follower := NewSignalFollower(0)
	depth := book.Depth{
		Asks: map[int]int{8: -50},
		Bids: map[int]int{12: 50},
	}
	orders, err := follower.ComputeOrders(inputFrom("BANANAS", depth, 5, 10))
	if err != nil {
		t.Fatalf("ComputeOrders returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %+v", orders)
	}
	if orders[0].Quantity != 15 {
		t.Fatalf("expected buy capped at 15, got %d", orders[0].Quantity)
	}
	if orders[1].Quantity != -25 {
		t.Fatalf("expected sell capped at -25, got %d", orders[1].Quantity)
	}
}

func TestFollowerQuotesNothingAtFair(t *testing.T) {
	follower := NewSignalFollower(0)
	depth := book.Depth{
		Asks: map[int]int{10: -3},
		Bids: map[int]int{10: 3},
	}
	orders, err := follower.ComputeOrders(inputFrom("BANANAS", depth, -5, 10))
	if err != nil {
		t.Fatalf("ComputeOrders returned error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders at fair value, got %+v", orders)
	}
}
