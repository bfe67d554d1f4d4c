// Package risk holds the defensive guard-rails applied to strategy output.
package risk

import (
	"fmt"

	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
)

// ErrPositionLimit reports a strategy whose orders would push the running
// position outside the hard bound. The quoting logic caps every step, so
// this firing means an internal invariant broke; it is never clamped away.
var ErrPositionLimit = fmt.Errorf("risk: position limit violated")

// Limits bounds the exposure a strategy may request in one tick.
type Limits struct {
	MaxPosition int // hard bound, applied as ±MaxPosition
}

// Check replays the orders against the tick-start position, buys and sells
// each accumulated from the start as the quoting passes do, and fails if
// either running total leaves [-MaxPosition, MaxPosition].
func (l Limits) Check(startPosition int, orders []quote.Order) error {
	buyRun, sellRun := startPosition, startPosition
	for _, order := range orders {
		if order.Quantity > 0 {
			buyRun += order.Quantity
			if buyRun > l.MaxPosition {
				return fmt.Errorf("%w: %s buy run reached %d (limit %d)",
					ErrPositionLimit, order.Product, buyRun, l.MaxPosition)
			}
			continue
		}
		sellRun += order.Quantity
		if sellRun < -l.MaxPosition {
			return fmt.Errorf("%w: %s sell run reached %d (limit %d)",
				ErrPositionLimit, order.Product, sellRun, l.MaxPosition)
		}
	}
	return nil
}
