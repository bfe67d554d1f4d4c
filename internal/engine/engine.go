// Package engine orchestrates one decision tick: it turns the host snapshot
// into per-product working records, prices each product, runs the configured
// strategy, and assembles the result handed back to the host.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/408adamelb/IMCPROSPERITY/internal/book"
	"github.com/408adamelb/IMCPROSPERITY/internal/metrics"
	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
	"github.com/408adamelb/IMCPROSPERITY/internal/risk"
)

// conversions is a fixed external-settlement signal; its meaning is
// host-defined and constant in this design.
const conversions = 1

// TickState is the full per-tick snapshot supplied by the host. Products
// absent from Positions hold a zero position.
type TickState struct {
	Timestamp   int64                 `json:"timestamp"`
	OrderDepths map[string]book.Depth `json:"order_depths"`
	Positions   map[string]int        `json:"positions"`
	CarryState  string                `json:"carry_state"`
}

// Result is everything the host consumes after a tick. CarryState is always
// the input value, byte for byte.
type Result struct {
	Orders      map[string][]quote.Order `json:"orders"`
	Conversions int                      `json:"conversions"`
	CarryState  string                   `json:"carry_state"`
}

// Engine evaluates ticks. It holds no per-product state of its own; the
// optional refiner keeps harness-side fair-value history across ticks.
type Engine struct {
	strategy      quote.Strategy
	limits        risk.Limits
	log           zerolog.Logger
	stableProduct string
	stablePrice   int
	refiner       *Refiner
}

// Option configures Engine construction parameters.
type Option func(*Engine)

// WithStableProduct pins one product to a fixed fair value regardless of its
// book.
func WithStableProduct(product string, price int) Option {
	return func(e *Engine) {
		e.stableProduct = product
		e.stablePrice = price
	}
}

// WithRefiner enables wavelet denoising of the raw fair-value series.
func WithRefiner(r *Refiner) Option {
	return func(e *Engine) {
		e.refiner = r
	}
}

// New builds an engine around a strategy and a hard position limit.
func New(strategy quote.Strategy, limits risk.Limits, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{strategy: strategy, limits: limits, log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates one tick. Products are independent; any product failing
// (empty book side, broken invariant) fails the whole invocation, since a
// masked failure would corrupt the host's position accounting next tick.
func (e *Engine) Run(state TickState) (Result, error) {
	result := Result{
		Orders:      make(map[string][]quote.Order, len(state.OrderDepths)),
		Conversions: conversions,
		CarryState:  state.CarryState,
	}

	products := make([]string, 0, len(state.OrderDepths))
	for product := range state.OrderDepths {
		products = append(products, product)
	}
	sort.Strings(products)

	for _, product := range products {
		orders, err := e.runProduct(product, state.OrderDepths[product], state.Positions[product])
		if err != nil {
			metrics.TickErrorsTotal.WithLabelValues(product, reason(err)).Inc()
			return Result{}, fmt.Errorf("product %s: %w", product, err)
		}
		result.Orders[product] = orders
	}

	metrics.TicksTotal.Inc()
	return result, nil
}

func (e *Engine) runProduct(product string, depth book.Depth, position int) ([]quote.Order, error) {
	fair, err := e.fairValue(product, depth)
	if err != nil {
		return nil, err
	}
	metrics.FairValue.WithLabelValues(product).Set(float64(fair))

	in := quote.Input{
		Product:   product,
		Asks:      depth.AskLadder(),
		Bids:      depth.BidLadder(),
		Position:  position,
		FairValue: fair,
	}
	orders, err := e.strategy.ComputeOrders(in)
	if err != nil {
		return nil, err
	}
	if err := e.limits.Check(position, orders); err != nil {
		return nil, err
	}

	for _, order := range orders {
		metrics.RecordOrder(order.Product, order.Quantity)
	}
	e.log.Debug().Str("product", product).Int("fair", fair).
		Int("position", position).Int("orders", len(orders)).Msg("tick evaluated")
	return orders, nil
}

func (e *Engine) fairValue(product string, depth book.Depth) (int, error) {
	if e.stableProduct != "" && product == e.stableProduct {
		return e.stablePrice, nil
	}
	fair, err := book.WeightedMid(depth)
	if err != nil {
		return 0, err
	}
	if e.refiner != nil {
		fair = e.refiner.Refine(product, fair)
	}
	return fair, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, book.ErrEmptyBookSide):
		return "empty_book_side"
	case errors.Is(err, risk.ErrPositionLimit):
		return "position_limit"
	default:
		return "internal"
	}
}
