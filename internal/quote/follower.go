package quote

// SignalFollower is the one-shot variant: it only takes resting orders that
// are strictly mispriced against fair value and rests nothing. Same hard
// position bound as the layered strategy, no passive layers, no
// at-fair-value exceptions.
type SignalFollower struct {
	limit int
}

// NewSignalFollower builds the follower with the given position bound,
// defaulting to ±20.
func NewSignalFollower(limit int) *SignalFollower {
	if limit <= 0 {
		limit = 20
	}
	return &SignalFollower{limit: limit}
}

// Name returns the identifier for the strategy implementation.
func (f *SignalFollower) Name() string { return "SignalFollower" }

// ComputeOrders buys every ask below fair value and sells every bid above
// it, each side capped independently at the position bound.
func (f *SignalFollower) ComputeOrders(in Input) ([]Order, error) {
	var orders []Order

	runPos := in.Position
	for _, level := range in.Asks {
		if level.Price >= in.FairValue {
			continue
		}
		qty := min(-level.Volume, f.limit-runPos)
		if qty <= 0 {
			continue
		}
		runPos += qty
		orders = append(orders, Order{Product: in.Product, Price: level.Price, Quantity: qty})
	}

	runPos = in.Position
	for _, level := range in.Bids {
		if level.Price <= in.FairValue {
			continue
		}
		qty := max(-level.Volume, -f.limit-runPos)
		if qty >= 0 {
			continue
		}
		runPos += qty
		orders = append(orders, Order{Product: in.Product, Price: level.Price, Quantity: qty})
	}

	return orders, nil
}
