// Package book models one product's resting order book for a single tick
// and derives the read-only views the quoting engine consumes: sorted
// ladders, the best-value levels, and a volume-weighted fair value.
package book

import (
	"errors"
	"sort"
)

// ErrEmptyBookSide reports a book whose ask or bid side has no levels. A
// weighted average over an empty side is undefined, so the tick fails for
// that product rather than quoting off a garbage price.
var ErrEmptyBookSide = errors.New("book: empty book side")

// Depth is the raw per-tick snapshot of one product's book as the host
// reports it. Ask volumes are stored negative (quantity available to buy),
// bid volumes positive.
type Depth struct {
	Asks map[int]int `json:"asks"`
	Bids map[int]int `json:"bids"`
}

// Level is one rung of a sorted ladder, volume kept in its stored sign.
type Level struct {
	Price  int
	Volume int
}

// Ladder is a price-sorted view of one book side.
type Ladder []Level

// AskLadder returns the ask side sorted ascending, cheapest first.
func (d Depth) AskLadder() Ladder {
	return sortSide(d.Asks, false)
}

// BidLadder returns the bid side sorted descending, highest first.
func (d Depth) BidLadder() Ladder {
	return sortSide(d.Bids, true)
}

func sortSide(side map[int]int, descending bool) Ladder {
	ladder := make(Ladder, 0, len(side))
	for price, volume := range side {
		ladder = append(ladder, Level{Price: price, Volume: volume})
	}
	sort.Slice(ladder, func(i, j int) bool {
		if descending {
			return ladder[i].Price > ladder[j].Price
		}
		return ladder[i].Price < ladder[j].Price
	})
	return ladder
}

// BestValue scans a ladder for the most economically favorable resting level.
// It accumulates a running volume total (sign-flipped for asks so quantities
// are positive) and records a level whenever the running total exceeds the
// step volume recorded at the last winner. First match wins on ties. This is
// a volume-weighted heuristic, deliberately not top-of-book.
func BestValue(ladder Ladder, buySide bool) (int, error) {
	if len(ladder) == 0 {
		return 0, ErrEmptyBookSide
	}

	totalVolume := 0
	bestPrice := -1
	maxStepVolume := -1
	for _, level := range ladder {
		volume := level.Volume
		if !buySide {
			volume = -volume
		}
		totalVolume += volume
		if totalVolume > maxStepVolume {
			maxStepVolume = volume
			bestPrice = level.Price
		}
	}
	return bestPrice, nil
}

// WeightedMid returns floor((vwapAsk + vwapBid) / 2) over the raw depth.
// Either side being empty is fatal.
func WeightedMid(d Depth) (int, error) {
	if len(d.Asks) == 0 || len(d.Bids) == 0 {
		return 0, ErrEmptyBookSide
	}

	var askPriceVolume, askVolume float64
	for price, volume := range d.Asks {
		askPriceVolume += float64(price) * float64(-volume)
		askVolume += float64(-volume)
	}
	var bidPriceVolume, bidVolume float64
	for price, volume := range d.Bids {
		bidPriceVolume += float64(price) * float64(volume)
		bidVolume += float64(volume)
	}
	if askVolume == 0 || bidVolume == 0 {
		return 0, ErrEmptyBookSide
	}

	weightedAsk := askPriceVolume / askVolume
	weightedBid := bidPriceVolume / bidVolume
	return int((weightedAsk + weightedBid) / 2), nil
}
