package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

// TestInitializeSupplyController validates controller creation
func TestInitializeSupplyController(t *testing.T) {
	k, bk, ctx := keepertest.SupplyKeeper(t)
	keepertest.SeedDenom(t, ctx, bk, testDenom, 6)
	keepertest.FundAccount(t, ctx, bk, holderAddr, testDenom, 3_000_000_000_000_000)

	controller, err := k.InitializeController(ctx, supplyAuthority, testDenom, "MERUSD", 1_000_000, 0)
	require.NoError(t, err)

	require.Equal(t, supplyAuthority, controller.Authority)
	require.Equal(t, testDenom, controller.Denom)
	require.Equal(t, "MERUSD", controller.PriceOracleAssetId)
	require.Equal(t, uint32(6), controller.TokenDecimals)

	// Supply is seeded from the bank, thresholds from the decimals
	require.Equal(t, uint64(3_000_000_000_000_000), controller.CurrentSupply)
	require.Equal(t, uint64(1_000_000_000_000_000_000), controller.MinSupply)
	require.Equal(t, uint64(5_000_000_000_000_000_000), controller.HighSupplyThreshold)

	// All price anchors start at the initial price
	require.Equal(t, uint64(1_000_000), controller.InitialPrice)
	require.Equal(t, uint64(1_000_000), controller.YearStartPrice)
	require.Equal(t, uint64(1_000_000), controller.CurrentPrice)
	require.Equal(t, ctx.BlockTime().Unix(), controller.LastPriceUpdate)

	// Derived authorities recorded for callers
	require.Equal(t, types.DeriveMintAuthority(testDenom).String(), controller.MintAuthority)
	require.Equal(t, types.DeriveBurnTreasury(testDenom).String(), controller.BurnTreasury)

	require.Equal(t, types.DefaultPolicyParams(), controller.Policy)

	// Duplicate initialization rejected
	_, err = k.InitializeController(ctx, supplyAuthority, testDenom, "MERUSD", 1_000_000, 0)
	require.ErrorIs(t, err, types.ErrControllerExists)
}

// TestInitializeControllerMissingMetadata validates the metadata requirement
func TestInitializeControllerMissingMetadata(t *testing.T) {
	k, _, ctx := keepertest.SupplyKeeper(t)

	_, err := k.InitializeController(ctx, supplyAuthority, "unregistered", "MERUSD", 1_000_000, 0)
	require.ErrorIs(t, err, types.ErrInvalidDenom)
}

// TestSupplyGenesisRoundtrip validates init and export of module state
func TestSupplyGenesisRoundtrip(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Len(t, exported.Controllers, 1)
	require.NoError(t, exported.Validate())

	// Re-import into a fresh keeper
	k2, _, ctx2 := keepertest.SupplyKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	controller, found := k2.GetController(ctx2, testDenom)
	require.True(t, found)
	require.Equal(t, exported.Controllers[0], controller)
}
