// Package metrics exposes prometheus instrumentation for the decision engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "ticks_total", Help: "Count of tick snapshots processed"},
	)
	OrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "orders_total", Help: "Orders emitted by product and side"},
		[]string{"product", "side"},
	)
	OrderVolumeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "order_volume_total", Help: "Absolute order quantity emitted by product and side"},
		[]string{"product", "side"},
	)
	TickErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tick_errors_total", Help: "Per-product tick failures by reason"},
		[]string{"product", "reason"},
	)
	FairValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "fair_value", Help: "Fair value used for quoting, per product"},
		[]string{"product"},
	)
)

func init() {
	prometheus.MustRegister(TicksTotal, OrdersTotal, OrderVolumeTotal, TickErrorsTotal, FairValue)
}

// RecordOrder bumps the order counters for one emitted order.
func RecordOrder(product string, quantity int) {
	side := "buy"
	if quantity < 0 {
		side = "sell"
		quantity = -quantity
	}
	OrdersTotal.WithLabelValues(product, side).Inc()
	OrderVolumeTotal.WithLabelValues(product, side).Add(float64(quantity))
}

// Serve exposes /metrics on addr in the background.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
