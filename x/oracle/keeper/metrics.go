package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the oracle module.
type Metrics struct {
	ConsensusPrice    *prometheus.GaugeVec
	ConsensusRounds   *prometheus.CounterVec
	SourceFailures    *prometheus.CounterVec
	SourcesRegistered *prometheus.CounterVec
	BreakerEngaged    *prometheus.GaugeVec
	EmergencyOverride *prometheus.GaugeVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// NewMetrics returns the process-wide oracle metrics. Collectors register with
// the default registry exactly once no matter how many keepers are built.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			ConsensusPrice: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "consensus_price_usd",
				Help:      "Latest consensus price in USD",
			}, []string{"asset"}),
			ConsensusRounds: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "consensus_rounds_total",
				Help:      "Successful consensus rounds",
			}, []string{"asset"}),
			SourceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "source_failures_total",
				Help:      "Failed source reads by source",
			}, []string{"asset", "source"}),
			SourcesRegistered: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "sources_registered_total",
				Help:      "Sources registered by provider",
			}, []string{"asset", "provider"}),
			BreakerEngaged: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "circuit_breaker_engaged",
				Help:      "1 while the circuit breaker is engaged",
			}, []string{"asset"}),
			EmergencyOverride: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "oracle",
				Name:      "emergency_override_active",
				Help:      "1 while an emergency price override is set",
			}, []string{"asset"}),
		}
	})
	return sharedMetrics
}
