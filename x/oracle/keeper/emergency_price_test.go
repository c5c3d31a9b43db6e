package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// TestSetEmergencyPrice validates the override install path
func TestSetEmergencyPrice(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))

	require.ErrorIs(t, k.SetEmergencyPrice(ctx, testAsset, 0, 3600), types.ErrInvalidParams)
	require.ErrorIs(t, k.SetEmergencyPrice(ctx, testAsset, 1_000_000, 0), types.ErrInvalidParams)
	require.ErrorIs(t, k.SetEmergencyPrice(ctx, "UNKNOWN", 1_000_000, 3600), types.ErrControllerNotFound)

	require.NoError(t, k.SetEmergencyPrice(ctx, testAsset, 2_000_000, 3600))

	price, ok := k.GetValidEmergencyPrice(ctx, testAsset)
	require.True(t, ok)
	require.Equal(t, uint64(2_000_000), price)
}

// TestEmergencyPriceLazyExpiry validates that the override lapses by time but
// is never auto-cleared from state
func TestEmergencyPriceLazyExpiry(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	require.NoError(t, k.SetEmergencyPrice(ctx, testAsset, 2_000_000, 3600))

	// One second before expiry the override is still valid
	almost := ctx.WithBlockTime(ctx.BlockTime().Add(3599 * time.Second))
	_, ok := k.GetValidEmergencyPrice(almost, testAsset)
	require.True(t, ok)

	// At expiry it stops being returned
	expired := ctx.WithBlockTime(ctx.BlockTime().Add(3600 * time.Second))
	_, ok = k.GetValidEmergencyPrice(expired, testAsset)
	require.False(t, ok)

	// The record itself stays in state until explicitly cleared
	controller, _ := k.GetController(expired, testAsset)
	require.NotNil(t, controller.Emergency)

	require.NoError(t, k.ClearEmergencyPrice(expired, testAsset))
	controller, _ = k.GetController(expired, testAsset)
	require.Nil(t, controller.Emergency)

	// Clearing twice fails
	require.ErrorIs(t, k.ClearEmergencyPrice(expired, testAsset), types.ErrOracleDataNotFound)
}

// TestGetEffectivePrice validates the resolution order: emergency override,
// then breaker, then fresh consensus
func TestGetEffectivePrice(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	now := ctx.BlockTime().Unix()

	// No data at all
	_, _, err := k.GetEffectivePrice(ctx, testAsset, 0)
	require.ErrorIs(t, err, types.ErrOracleDataNotFound)

	_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_000_000, now),
	})
	require.NoError(t, err)

	price, ts, err := k.GetEffectivePrice(ctx, testAsset, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), price)
	require.Equal(t, now, ts)

	// Stale consensus rejected when a freshness bound is given
	stale := ctx.WithBlockTime(ctx.BlockTime().Add(7200 * time.Second))
	_, _, err = k.GetEffectivePrice(stale, testAsset, 3600)
	require.ErrorIs(t, err, types.ErrStaleOracleData)

	// Engaged breaker blocks consensus reads
	require.NoError(t, k.ActivateCircuitBreaker(ctx, testAsset, "halt"))
	_, _, err = k.GetEffectivePrice(ctx, testAsset, 0)
	require.ErrorIs(t, err, types.ErrCircuitBreakerActive)

	// A valid override outranks the engaged breaker
	require.NoError(t, k.SetEmergencyPrice(ctx, testAsset, 3_000_000, 3600))
	price, _, err = k.GetEffectivePrice(ctx, testAsset, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(3_000_000), price)

	// Once the override lapses the breaker blocks again
	lapsed := ctx.WithBlockTime(ctx.BlockTime().Add(3600 * time.Second))
	_, _, err = k.GetEffectivePrice(lapsed, testAsset, 0)
	require.ErrorIs(t, err, types.ErrCircuitBreakerActive)
}

// TestGetYearAnchor validates the anchor accessor
func TestGetYearAnchor(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	now := ctx.BlockTime().Unix()

	_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_200_000, now),
	})
	require.NoError(t, err)

	price, ts, err := k.GetYearAnchor(ctx, testAsset)
	require.NoError(t, err)
	require.Equal(t, uint64(1_200_000), price)
	require.Equal(t, now, ts)

	_, _, err = k.GetYearAnchor(ctx, "UNKNOWN")
	require.ErrorIs(t, err, types.ErrControllerNotFound)
}
