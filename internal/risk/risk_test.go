package risk

import (
	"errors"
	"testing"

	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
)

func TestCheckWithinLimit(t *testing.T) {
	limits := Limits{MaxPosition: 20}
	orders := []quote.Order{
		{Product: "PEARLS", Price: 9, Quantity: 15},
		{Product: "PEARLS", Price: 11, Quantity: -25},
	}
	if err := limits.Check(5, orders); err != nil {
		t.Fatalf("expected bounded orders to pass: %v", err)
	}
}

func TestCheckBuyOverrun(t *testing.T) {
	limits := Limits{MaxPosition: 20}
	orders := []quote.Order{
		{Product: "PEARLS", Price: 9, Quantity: 15},
		{Product: "PEARLS", Price: 9, Quantity: 10},
	}
	if err := limits.Check(0, orders); !errors.Is(err, ErrPositionLimit) {
		t.Fatalf("expected ErrPositionLimit, got %v", err)
	}
}

func TestCheckSellOverrun(t *testing.T) {
	limits := Limits{MaxPosition: 20}
	orders := []quote.Order{
		{Product: "PEARLS", Price: 11, Quantity: -30},
	}
	if err := limits.Check(5, orders); !errors.Is(err, ErrPositionLimit) {
		t.Fatalf("expected ErrPositionLimit, got %v", err)
	}
}

func TestCheckSidesAccumulateIndependently(t *testing.T) {
	// Buys and sells each run from the tick-start position; a big buy does
	// not create sell headroom within the same tick.
	limits := Limits{MaxPosition: 20}
	orders := []quote.Order{
		{Product: "PEARLS", Price: 9, Quantity: 20},
		{Product: "PEARLS", Price: 11, Quantity: -21},
	}
	if err := limits.Check(0, orders); !errors.Is(err, ErrPositionLimit) {
		t.Fatalf("expected ErrPositionLimit, got %v", err)
	}
}
