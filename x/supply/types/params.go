package types

import (
	"fmt"
)

// Params are the governance-tunable execution gates of the supply module.
type Params struct {
	// StrictFreshnessSeconds is the execution-time price freshness bound.
	// Stricter than ingestion staleness: mint/burn refuse older prices.
	// The boundary itself succeeds.
	StrictFreshnessSeconds int64 `json:"strict_freshness_seconds"`

	// MaxPriceChangeBps caps the step accepted by the oracle price update.
	MaxPriceChangeBps uint32 `json:"max_price_change_bps"`

	// MaxConfidenceBps rejects feed readings whose confidence interval
	// exceeds this fraction of the price.
	MaxConfidenceBps uint32 `json:"max_confidence_bps"`

	// CriticalStalenessSeconds is the hard ingestion ceiling for feed reads.
	CriticalStalenessSeconds int64 `json:"critical_staleness_seconds"`
}

// DefaultParams returns the documented policy defaults.
func DefaultParams() Params {
	return Params{
		StrictFreshnessSeconds:   3_600,  // 1h execution gate
		MaxPriceChangeBps:        5_000,  // 50% manipulation guard
		MaxConfidenceBps:         500,    // 5% confidence ceiling
		CriticalStalenessSeconds: 86_400, // 24h ingestion ceiling
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.StrictFreshnessSeconds <= 0 {
		return fmt.Errorf("strict freshness must be positive, got %d", p.StrictFreshnessSeconds)
	}
	if p.MaxPriceChangeBps == 0 || p.MaxPriceChangeBps > BpsBase {
		return fmt.Errorf("max price change must be in (0, %d] bps, got %d", BpsBase, p.MaxPriceChangeBps)
	}
	if p.MaxConfidenceBps == 0 || p.MaxConfidenceBps > BpsBase {
		return fmt.Errorf("max confidence must be in (0, %d] bps, got %d", BpsBase, p.MaxConfidenceBps)
	}
	if p.CriticalStalenessSeconds < p.StrictFreshnessSeconds {
		return fmt.Errorf("critical staleness (%d) cannot be below strict freshness (%d)",
			p.CriticalStalenessSeconds, p.StrictFreshnessSeconds)
	}
	return nil
}
