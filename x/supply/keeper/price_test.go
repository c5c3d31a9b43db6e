package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
	"github.com/meridian-chain/meridian/x/supply/types"
)

func oracleFeed(id string, price uint64, publishedAt int64) oracletypes.FeedRecord {
	return oracletypes.FeedRecord{
		SourceId: id,
		Provider: oracletypes.ProviderCustom,
		Custom:   &oracletypes.CustomRecord{Price: price, PublishedAt: publishedAt},
	}
}

// TestUpdateOraclePrice validates the consensus variant of the price update
func TestUpdateOraclePrice(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	price, numSources, err := k.UpdateOraclePrice(ctx, testDenom, []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 1_020_000, now),
		oracleFeed("chainlink-main", 1_040_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_030_000), price)
	require.Equal(t, uint32(2), numSources)

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(1_030_000), controller.CurrentPrice)
	require.Equal(t, now, controller.LastPriceUpdate)

	// The year anchor stays at the initialization price
	require.Equal(t, uint64(1_000_000), controller.YearStartPrice)
}

// TestUpdateOraclePriceFallback validates that failed feeds are skipped and
// survivors carry the update
func TestUpdateOraclePriceFallback(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	price, numSources, err := k.UpdateOraclePrice(ctx, testDenom, []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 0, now), // fails normalization
		oracleFeed("chainlink-main", 1_040_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_040_000), price)
	require.Equal(t, uint32(1), numSources)
}

// TestUpdateOraclePriceAllFail validates the no-consensus error
func TestUpdateOraclePriceAllFail(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	_, _, err := k.UpdateOraclePrice(ctx, testDenom, []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 0, now),
		oracleFeed("chainlink-main", 0, now),
	})
	require.ErrorIs(t, err, types.ErrNoConsensus)

	_, _, err = k.UpdateOraclePrice(ctx, testDenom, nil)
	require.ErrorIs(t, err, types.ErrNoConsensus)

	_, _, err = k.UpdateOraclePrice(ctx, "unknown", []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 1_000_000, now),
	})
	require.ErrorIs(t, err, types.ErrControllerNotFound)
}

// TestUpdateOraclePriceManipulationGuard validates the 50% step limit,
// boundary inclusive
func TestUpdateOraclePriceManipulationGuard(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	// Exactly 5000 bps from the 1.000000 baseline is accepted
	price, _, err := k.UpdateOraclePrice(ctx, testDenom, []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 1_500_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_500_000), price)

	// A fresh controller rejects the 5100 bps step
	k2, _, ctx2 := setupSupply(t, 0, 0)
	_, _, err = k2.UpdateOraclePrice(ctx2, testDenom, []oracletypes.FeedRecord{
		oracleFeed("pyth-main", 1_510_000, ctx2.BlockTime().Unix()),
	})
	require.ErrorIs(t, err, types.ErrExcessivePriceChange)
}

// TestUpdatePriceDirectly validates the authority override path
func TestUpdatePriceDirectly(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)

	// No manipulation guard on the direct path
	require.NoError(t, k.UpdatePriceDirectly(ctx, testDenom, 5_000_000))

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(5_000_000), controller.CurrentPrice)

	require.ErrorIs(t, k.UpdatePriceDirectly(ctx, testDenom, 0), types.ErrInvalidParams)
	require.ErrorIs(t, k.UpdatePriceDirectly(ctx, "unknown", 1_000_000), types.ErrControllerNotFound)
}

// TestPriceUpdateRollsYearAnchor validates the 365-day anchor roll on the
// price path
func TestPriceUpdateRollsYearAnchor(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	controller, _ := k.GetController(ctx, testDenom)
	controller.YearStartTimestamp = now - types.YearSeconds
	require.NoError(t, k.SetController(ctx, controller))

	require.NoError(t, k.UpdatePriceDirectly(ctx, testDenom, 1_100_000))

	controller, _ = k.GetController(ctx, testDenom)
	require.Equal(t, uint64(1_100_000), controller.YearStartPrice)
	require.Equal(t, now, controller.YearStartTimestamp)
}

// TestRecoverState validates the emergency anchor reset and supply re-sync
func TestRecoverState(t *testing.T) {
	k, bk, ctx := setupSupply(t, 0, 0)
	now := ctx.BlockTime().Unix()

	// Drift the bookkeeping away from the bank
	controller, _ := k.GetController(ctx, testDenom)
	controller.CurrentSupply = 123
	controller.YearStartPrice = 9_999_999
	require.NoError(t, k.SetController(ctx, controller))

	// Extra coins minted outside the controller's view
	keepertest.FundAccount(t, ctx, bk, holderAddr, testDenom, 500_000_000)

	require.NoError(t, k.RecoverState(ctx, testDenom, 2_000_000))

	controller, _ = k.GetController(ctx, testDenom)
	require.Equal(t, uint64(2_000_000), controller.CurrentPrice)
	require.Equal(t, uint64(2_000_000), controller.YearStartPrice)
	require.Equal(t, now, controller.YearStartTimestamp)
	require.Equal(t, now, controller.LastPriceUpdate)
	require.Equal(t, uint64(2_500_000_000), controller.CurrentSupply)

	require.ErrorIs(t, k.RecoverState(ctx, "unknown", 1_000_000), types.ErrControllerNotFound)
}
