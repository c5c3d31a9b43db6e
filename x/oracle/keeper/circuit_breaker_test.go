package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// TestActivateCircuitBreaker validates breaker engagement
func TestActivateCircuitBreaker(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))

	require.NoError(t, k.ActivateCircuitBreaker(ctx, testAsset, "oracle divergence"))

	controller, _ := k.GetController(ctx, testAsset)
	require.True(t, controller.Breaker.Active)
	require.Equal(t, "oracle divergence", controller.Breaker.Reason)
	require.Equal(t, ctx.BlockTime().Unix(), controller.Breaker.ActivatedAt)
	require.True(t, controller.Health.Degraded)

	// Double engagement rejected
	require.ErrorIs(t, k.ActivateCircuitBreaker(ctx, testAsset, "again"), types.ErrCircuitBreakerActive)

	require.ErrorIs(t, k.ActivateCircuitBreaker(ctx, "UNKNOWN", "x"), types.ErrControllerNotFound)
}

// TestResetCircuitBreaker validates the cooldown-gated reset, boundary inclusive
func TestResetCircuitBreaker(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))

	// Idle breaker cannot be reset
	require.ErrorIs(t, k.ResetCircuitBreaker(ctx, testAsset), types.ErrCircuitBreakerIdle)

	require.NoError(t, k.ActivateCircuitBreaker(ctx, testAsset, "volatility"))

	controller, _ := k.GetController(ctx, testAsset)
	cooldown := controller.Breaker.CooldownSeconds

	// One second before the cooldown elapses
	early := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(cooldown-1) * time.Second))
	require.ErrorIs(t, k.ResetCircuitBreaker(early, testAsset), types.ErrCooldownNotElapsed)

	// Exactly at the cooldown boundary
	due := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(cooldown) * time.Second))
	require.NoError(t, k.ResetCircuitBreaker(due, testAsset))

	controller, _ = k.GetController(due, testAsset)
	require.False(t, controller.Breaker.Active)
	require.Empty(t, controller.Breaker.Reason)
}

// TestBreakerReengageAfterReset validates the engage/reset cycle repeats
func TestBreakerReengageAfterReset(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))

	require.NoError(t, k.ActivateCircuitBreaker(ctx, testAsset, "first"))

	controller, _ := k.GetController(ctx, testAsset)
	later := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(controller.Breaker.CooldownSeconds) * time.Second))
	require.NoError(t, k.ResetCircuitBreaker(later, testAsset))

	require.NoError(t, k.ActivateCircuitBreaker(later, testAsset, "second"))
	controller, _ = k.GetController(later, testAsset)
	require.True(t, controller.Breaker.Active)
	require.Equal(t, "second", controller.Breaker.Reason)
	require.Equal(t, later.BlockTime().Unix(), controller.Breaker.ActivatedAt)
}
