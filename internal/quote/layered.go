package quote

import (
	"github.com/408adamelb/IMCPROSPERITY/internal/book"
)

// LayeredMaker is the full market-making strategy: it lifts mispriced
// resting orders on both sides of fair value, then rests up to three
// passive layers per side, never letting the running position leave
// [-limit, limit].
type LayeredMaker struct {
	limit       int // hard position bound, applied as ±limit
	layerSize   int // per-layer quote cap
	skewTrigger int // tick-start |position| beyond which the unwind layer fires
}

// NewLayeredMaker builds the layered strategy. Non-positive arguments fall
// back to the standard limits (±20 position, 40-lot layers, trigger 15).
func NewLayeredMaker(limit, layerSize, skewTrigger int) *LayeredMaker {
	if limit <= 0 {
		limit = 20
	}
	if layerSize <= 0 {
		layerSize = 40
	}
	if skewTrigger <= 0 {
		skewTrigger = 15
	}
	return &LayeredMaker{limit: limit, layerSize: layerSize, skewTrigger: skewTrigger}
}

// Name returns the identifier for the strategy implementation.
func (m *LayeredMaker) Name() string { return "LayeredMaker" }

// ComputeOrders runs the buy pass then the sell pass. Each pass seeds its
// running position from the tick-start position: the two sides quote
// independently and the host nets whatever actually fills.
func (m *LayeredMaker) ComputeOrders(in Input) ([]Order, error) {
	bestSell, err := book.BestValue(in.Asks, false)
	if err != nil {
		return nil, err
	}
	bestBuy, err := book.BestValue(in.Bids, true)
	if err != nil {
		return nil, err
	}

	fair := in.FairValue
	startPos := in.Position

	undercutBuy := bestBuy + 1
	undercutSell := bestSell - 1
	ourBid := min(undercutBuy, fair-1)
	ourAsk := min(undercutSell, fair+1)

	var orders []Order

	// Buy pass: lift asks priced below fair value, or at fair value when
	// the tick started short and headroom remains.
	runPos := startPos
	for _, level := range in.Asks {
		take := level.Price < fair ||
			(startPos < 0 && level.Price == fair && runPos < m.limit)
		if !take {
			continue
		}
		qty := min(-level.Volume, m.limit-runPos)
		if qty <= 0 {
			continue
		}
		runPos += qty
		orders = append(orders, Order{Product: in.Product, Price: level.Price, Quantity: qty})
	}

	// Passive buy layers, highest priority first. A firing layer consumes
	// all remaining headroom up to layerSize, so at most one usually fires.
	if runPos < m.limit && startPos < 0 {
		qty := min(m.layerSize, m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: min(undercutBuy+1, fair-1), Quantity: qty})
		runPos += qty
	}
	if runPos < m.limit && startPos > m.skewTrigger {
		qty := min(m.layerSize, m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: min(undercutBuy-1, fair-1), Quantity: qty})
		runPos += qty
	}
	if runPos < m.limit {
		qty := min(m.layerSize, m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: ourBid, Quantity: qty})
		runPos += qty
	}

	// Sell pass, mirrored: hit bids priced above fair value, or at fair
	// value when the tick started long.
	runPos = startPos
	for _, level := range in.Bids {
		take := level.Price > fair ||
			(startPos > 0 && level.Price == fair && runPos > -m.limit)
		if !take {
			continue
		}
		qty := max(-level.Volume, -m.limit-runPos)
		if qty >= 0 {
			continue
		}
		runPos += qty
		orders = append(orders, Order{Product: in.Product, Price: level.Price, Quantity: qty})
	}

	if runPos > -m.limit && startPos > 0 {
		qty := max(-m.layerSize, -m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: max(undercutSell-1, fair+1), Quantity: qty})
		runPos += qty
	}
	if runPos > -m.limit && startPos < -m.skewTrigger {
		qty := max(-m.layerSize, -m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: max(undercutSell+1, fair+1), Quantity: qty})
		runPos += qty
	}
	if runPos > -m.limit {
		qty := max(-m.layerSize, -m.limit-runPos)
		orders = append(orders, Order{Product: in.Product, Price: ourAsk, Quantity: qty})
		runPos += qty
	}

	return orders, nil
}
