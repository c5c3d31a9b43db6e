package types

import (
	"fmt"
)

// Params are the governance-tunable limits of the consensus path. The staleness
// and confidence bounds default to the documented policy and should only move
// by governance proposal.
type Params struct {
	// MaxPriceChangeBps caps the step between two stored consensus prices.
	// 5000 bps = 50%; the boundary itself is accepted.
	MaxPriceChangeBps uint32 `json:"max_price_change_bps"`

	// MaxConfidenceBps rejects readings whose confidence interval exceeds this
	// fraction of the price. 500 bps = 5%.
	MaxConfidenceBps uint32 `json:"max_confidence_bps"`

	// ModerateStalenessSeconds marks a reading as moderately stale
	// (informational; the reading is still ingested).
	ModerateStalenessSeconds int64 `json:"moderate_staleness_seconds"`

	// CriticalStalenessSeconds is the hard ingestion ceiling.
	CriticalStalenessSeconds int64 `json:"critical_staleness_seconds"`

	// MaxSourcesPerController bounds registry growth.
	MaxSourcesPerController uint32 `json:"max_sources_per_controller"`

	// DefaultCooldownSeconds seeds new controllers' breaker cooldown.
	DefaultCooldownSeconds int64 `json:"default_cooldown_seconds"`
}

// DefaultParams returns the documented policy defaults.
func DefaultParams() Params {
	return Params{
		MaxPriceChangeBps:        5_000,  // 50% manipulation guard
		MaxConfidenceBps:         500,    // 5% confidence ceiling
		ModerateStalenessSeconds: 10_800, // 3h standard freshness
		CriticalStalenessSeconds: 86_400, // 24h hard ceiling
		MaxSourcesPerController:  16,
		DefaultCooldownSeconds:   3_600,
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.MaxPriceChangeBps == 0 || p.MaxPriceChangeBps > BpsBase {
		return fmt.Errorf("max price change must be in (0, %d] bps, got %d", BpsBase, p.MaxPriceChangeBps)
	}
	if p.MaxConfidenceBps == 0 || p.MaxConfidenceBps > BpsBase {
		return fmt.Errorf("max confidence must be in (0, %d] bps, got %d", BpsBase, p.MaxConfidenceBps)
	}
	if p.ModerateStalenessSeconds <= 0 {
		return fmt.Errorf("moderate staleness must be positive, got %d", p.ModerateStalenessSeconds)
	}
	if p.CriticalStalenessSeconds < p.ModerateStalenessSeconds {
		return fmt.Errorf("critical staleness (%d) cannot be below moderate staleness (%d)",
			p.CriticalStalenessSeconds, p.ModerateStalenessSeconds)
	}
	if p.MaxSourcesPerController == 0 {
		return fmt.Errorf("max sources per controller must be positive")
	}
	if p.DefaultCooldownSeconds <= 0 {
		return fmt.Errorf("default cooldown must be positive, got %d", p.DefaultCooldownSeconds)
	}
	return nil
}
