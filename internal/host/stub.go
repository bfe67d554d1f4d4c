package host

import (
	"context"
	"math/rand"

	"github.com/408adamelb/IMCPROSPERITY/internal/book"
	"github.com/408adamelb/IMCPROSPERITY/internal/engine"
)

// stubSeed keeps stub sessions reproducible run to run.
const stubSeed = 1

// Stub generates a bounded random-walk market for a fixed product list.
// Seeded deterministically, so a given configuration always replays the
// same session.
type Stub struct {
	products  []string
	tickCount int
}

// NewStub builds a stub source. tickCount <= 0 streams until the context is
// canceled.
func NewStub(products []string, tickCount int) *Stub {
	if len(products) == 0 {
		products = []string{"AMETHYSTS", "STARFRUIT"}
	}
	return &Stub{products: products, tickCount: tickCount}
}

// Run emits snapshots with two-sided books around a drifting mid price and a
// bounded random-walk position per product.
func (s *Stub) Run(ctx context.Context, out chan<- engine.TickState) error {
	rng := rand.New(rand.NewSource(stubSeed))

	mids := make(map[string]int, len(s.products))
	positions := make(map[string]int, len(s.products))
	for _, product := range s.products {
		mids[product] = 10000
		positions[product] = 0
	}

	for tick := 0; s.tickCount <= 0 || tick < s.tickCount; tick++ {
		state := engine.TickState{
			Timestamp:   int64(tick) * 100,
			OrderDepths: make(map[string]book.Depth, len(s.products)),
			Positions:   make(map[string]int, len(s.products)),
		}
		for _, product := range s.products {
			mid := mids[product] + rng.Intn(5) - 2
			mids[product] = mid

			pos := positions[product] + rng.Intn(9) - 4
			if pos > 20 {
				pos = 20
			}
			if pos < -20 {
				pos = -20
			}
			positions[product] = pos

			spread := 1 + rng.Intn(3)
			state.OrderDepths[product] = book.Depth{
				Asks: map[int]int{
					mid + spread:     -(1 + rng.Intn(10)),
					mid + spread + 2: -(1 + rng.Intn(20)),
				},
				Bids: map[int]int{
					mid - spread:     1 + rng.Intn(10),
					mid - spread - 2: 1 + rng.Intn(20),
				},
			}
			state.Positions[product] = pos
		}

		select {
		case out <- state:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
