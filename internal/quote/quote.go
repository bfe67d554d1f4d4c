// Package quote turns one product's book view, position, and fair value
// into the order list for the next tick.
package quote

import (
	"github.com/408adamelb/IMCPROSPERITY/internal/book"
)

// Order is a single placement request handed back to the host. Positive
// quantity buys, negative sells. Same-price orders are accumulated as
// emitted, never merged.
type Order struct {
	Product  string `json:"product"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Input is the per-product working record for one tick. It is built once by
// the engine and passed through the pipeline; nothing in it is shared across
// products.
type Input struct {
	Product   string
	Asks      book.Ladder
	Bids      book.Ladder
	Position  int // host-reported position at tick start
	FairValue int
}

// Strategy converts a working record into orders.
type Strategy interface {
	ComputeOrders(in Input) ([]Order, error)
	Name() string
}
