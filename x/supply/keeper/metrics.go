package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the supply module.
type Metrics struct {
	CurrentPrice *prometheus.GaugeVec
	SupplyGauge  *prometheus.GaugeVec
	MintedTotal  *prometheus.CounterVec
	BurnedTotal  *prometheus.CounterVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// NewMetrics returns the process-wide supply metrics. Collectors register with
// the default registry exactly once no matter how many keepers are built.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			CurrentPrice: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "supply",
				Name:      "current_price_usd",
				Help:      "Current controller price in USD",
			}, []string{"denom"}),
			SupplyGauge: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "supply",
				Name:      "current_supply",
				Help:      "Controller-tracked supply in base units",
			}, []string{"denom"}),
			MintedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "supply",
				Name:      "minted_total",
				Help:      "Base units minted by the autonomous policy",
			}, []string{"denom"}),
			BurnedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "supply",
				Name:      "burned_total",
				Help:      "Base units burned by the autonomous policy",
			}, []string{"denom"}),
		}
	})
	return sharedMetrics
}
