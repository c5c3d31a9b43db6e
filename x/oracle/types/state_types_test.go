package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// TestRecordFailureSaturates validates the failure counter ceiling
func TestRecordFailureSaturates(t *testing.T) {
	source := types.OracleSource{SourceId: "s", Provider: types.ProviderCustom}

	for i := 0; i < types.MaxConsecutiveFailures+10; i++ {
		source.RecordFailure()
	}
	require.Equal(t, uint32(types.MaxConsecutiveFailures), source.ConsecutiveFailures)

	// A success resets the counter entirely
	source.RecordSuccess(1_000_000, 1_800_000_000)
	require.Zero(t, source.ConsecutiveFailures)
	require.Equal(t, uint64(1_000_000), source.LastValidPrice)
	require.Equal(t, int64(1_800_000_000), source.LastUpdateTimestamp)
}

// TestCircuitBreakerCanReset validates the cooldown boundary
func TestCircuitBreakerCanReset(t *testing.T) {
	cb := types.CircuitBreaker{
		Active:          true,
		ActivatedAt:     1_000,
		CooldownSeconds: 600,
	}

	require.False(t, cb.CanReset(1_599))
	require.True(t, cb.CanReset(1_600))

	cb.Active = false
	require.False(t, cb.CanReset(2_000))
}

// TestEmergencyPriceValid validates the expiry window boundary
func TestEmergencyPriceValid(t *testing.T) {
	ep := types.EmergencyPrice{
		Price:             2_000_000,
		Timestamp:         1_000,
		ExpirationSeconds: 600,
	}

	require.True(t, ep.Valid(1_599))
	require.False(t, ep.Valid(1_600))

	zero := types.EmergencyPrice{Timestamp: 1_000, ExpirationSeconds: 600}
	require.False(t, zero.Valid(1_100))
}

// TestRecalcHealth validates the degraded flag and the score
func TestRecalcHealth(t *testing.T) {
	c := types.Controller{
		AssetId:            "MERUSD",
		MinRequiredOracles: 2,
		Sources: []types.OracleSource{
			{SourceId: "a", Provider: types.ProviderCustom, IsActive: true},
			{SourceId: "b", Provider: types.ProviderCustom, IsActive: true},
			{SourceId: "c", Provider: types.ProviderCustom, IsActive: false},
		},
	}

	c.RecalcHealth()
	require.Equal(t, uint32(2), c.Health.ActiveOracles)
	require.Equal(t, uint32(3), c.Health.TotalOracles)
	require.False(t, c.Health.Degraded)
	require.Equal(t, uint32(6_666), c.Health.Score)

	// Dropping below the minimum degrades the registry
	c.Sources[0].IsActive = false
	c.RecalcHealth()
	require.True(t, c.Health.Degraded)

	// An engaged breaker degrades regardless of source counts
	c.Sources[0].IsActive = true
	c.Breaker.Active = true
	c.RecalcHealth()
	require.True(t, c.Health.Degraded)
}

// TestProviderKindRoundtrip validates the string mapping for the closed set
func TestProviderKindRoundtrip(t *testing.T) {
	for _, p := range []types.ProviderKind{
		types.ProviderPyth, types.ProviderChainlink, types.ProviderBand, types.ProviderCustom,
	} {
		require.True(t, p.Valid())
		require.Equal(t, p, types.ProviderKindFromString(p.String()))
	}

	require.False(t, types.ProviderUnspecified.Valid())
	require.Equal(t, types.ProviderUnspecified, types.ProviderKindFromString("bogus"))
}
