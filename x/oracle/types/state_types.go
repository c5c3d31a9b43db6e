package types

// OracleSource is one registered price feed for a controller's asset. Sources
// are deactivated rather than deleted so their failure history survives.
type OracleSource struct {
	SourceId            string       `json:"source_id"`
	Provider            ProviderKind `json:"provider"`
	IsActive            bool         `json:"is_active"`
	// Weight is stored and validated (0-100) but deliberately not consumed by
	// the aggregation arithmetic, which uses an unweighted mean.
	Weight              uint32 `json:"weight"`
	MaxDeviationBps     uint32 `json:"max_deviation_bps"`
	MaxStalenessSeconds int64  `json:"max_staleness_seconds"`
	LastValidPrice      uint64 `json:"last_valid_price"`
	LastUpdateTimestamp int64  `json:"last_update_timestamp"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
	IsRequired          bool   `json:"is_required"`
}

// RecordSuccess updates the source bookkeeping after a valid read.
func (s *OracleSource) RecordSuccess(price uint64, now int64) {
	s.LastValidPrice = price
	s.LastUpdateTimestamp = now
	s.ConsecutiveFailures = 0
}

// RecordFailure increments the failure counter, saturating at 255.
func (s *OracleSource) RecordFailure() {
	if s.ConsecutiveFailures < MaxConsecutiveFailures {
		s.ConsecutiveFailures++
	}
}

// ConsensusSnapshot is the last successful aggregation result.
type ConsensusSnapshot struct {
	Price      uint64 `json:"price"`
	NumSources uint32 `json:"num_sources"`
	Timestamp  int64  `json:"timestamp"`
}

// HealthSnapshot summarizes registry health after the latest state change.
type HealthSnapshot struct {
	ActiveOracles uint32 `json:"active_oracles"`
	TotalOracles  uint32 `json:"total_oracles"`
	Degraded      bool   `json:"degraded"`
	// Score is active/total in basis points; 10000 when every source is live.
	Score uint32 `json:"score"`
}

// CircuitBreaker is the manual pause state layered on the registry.
type CircuitBreaker struct {
	Active          bool   `json:"active"`
	ActivatedAt     int64  `json:"activated_at"`
	Reason          string `json:"reason,omitempty"`
	CooldownSeconds int64  `json:"cooldown_seconds"`
}

// CanReset reports whether the cooldown has elapsed.
func (cb CircuitBreaker) CanReset(now int64) bool {
	return cb.Active && now >= cb.ActivatedAt+cb.CooldownSeconds
}

// EmergencyPrice is the manual override channel. It lapses by expiry but is
// never auto-cleared: consumers must call Valid before trusting it.
type EmergencyPrice struct {
	Price             uint64 `json:"price"`
	Timestamp         int64  `json:"timestamp"`
	ExpirationSeconds int64  `json:"expiration_seconds"`
}

// Valid reports whether the override is still within its expiry window.
func (ep EmergencyPrice) Valid(now int64) bool {
	return ep.Price > 0 && now < ep.Timestamp+ep.ExpirationSeconds
}

// Controller is the per-asset oracle registry plus its safety state.
type Controller struct {
	Authority          string          `json:"authority"`
	AssetId            string          `json:"asset_id"`
	Sources            []OracleSource  `json:"sources"`
	MinRequiredOracles uint32          `json:"min_required_oracles"`
	Breaker            CircuitBreaker  `json:"breaker"`
	LastConsensus      ConsensusSnapshot `json:"last_consensus"`
	Health             HealthSnapshot  `json:"health"`
	Emergency          *EmergencyPrice `json:"emergency,omitempty"`

	// Year-anchored reference used by consumers measuring growth/decline.
	YearStartPrice     uint64 `json:"year_start_price"`
	YearStartTimestamp int64  `json:"year_start_timestamp"`
}

// Source returns the registered source with the given id, if any.
func (c *Controller) Source(sourceId string) (*OracleSource, bool) {
	for i := range c.Sources {
		if c.Sources[i].SourceId == sourceId {
			return &c.Sources[i], true
		}
	}
	return nil, false
}

// ActiveSourceCount counts sources currently marked active.
func (c Controller) ActiveSourceCount() uint32 {
	var n uint32
	for _, s := range c.Sources {
		if s.IsActive {
			n++
		}
	}
	return n
}

// RecalcHealth refreshes the health snapshot. The registry is degraded when
// the breaker is engaged or fewer than MinRequiredOracles sources are active.
func (c *Controller) RecalcHealth() {
	active := c.ActiveSourceCount()
	total := uint32(len(c.Sources))
	score := uint32(0)
	if total > 0 {
		score = active * BpsBase / total
	}
	c.Health = HealthSnapshot{
		ActiveOracles: active,
		TotalOracles:  total,
		Degraded:      c.Breaker.Active || active < c.MinRequiredOracles,
		Score:         score,
	}
}
