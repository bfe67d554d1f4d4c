package engine

import (
	"math"

	"github.com/408adamelb/IMCPROSPERITY/internal/wavelet"
)

// Refiner smooths the raw fair-value series with the wavelet kernel. It
// keeps a rolling window per product; until a window fills, values pass
// through untouched. This state lives in the harness, not in the per-tick
// core: the engine itself stays stateless across ticks.
type Refiner struct {
	window int
	series map[string][]float64
}

// NewRefiner builds a refiner with the given window size. The size is
// clamped to the transform's precondition: even and at least 8.
func NewRefiner(window int) *Refiner {
	if window < 8 {
		window = 16
	}
	if window%2 != 0 {
		window++
	}
	return &Refiner{window: window, series: make(map[string][]float64)}
}

// Refine records the latest raw fair value and, once the product's window
// is full, returns the denoised latest value instead.
func (r *Refiner) Refine(product string, fair int) int {
	series := append(r.series[product], float64(fair))
	if len(series) > r.window {
		series = series[len(series)-r.window:]
	}
	r.series[product] = series

	if len(series) < r.window {
		return fair
	}
	smoothed, err := wavelet.Denoise(series)
	if err != nil {
		return fair
	}
	// Round to the nearest tick; truncation would bias the smoothed value
	// down whenever reconstruction lands a hair under the integer.
	return int(math.Round(smoothed[len(smoothed)-1]))
}
