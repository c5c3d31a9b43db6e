package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/supply/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

const testDenom = "umer"

var (
	supplyAuthority = sdk.AccAddress([]byte("supply_authority____")).String()
	holderAddr      = sdk.AccAddress([]byte("token_holder________"))
	destAddr        = sdk.AccAddress([]byte("mint_destination____"))
)

// setupSupply seeds metadata and circulating supply, then initializes the
// controller. treasuryBalance coins land in the derived burn treasury; the
// remainder of the 2B total goes to a plain holder. Metadata uses zero
// decimals so the 1B floor and 5B threshold stay in base units.
func setupSupply(t *testing.T, treasuryBalance, maxSupply uint64) (keeper.Keeper, bankkeeper.BaseKeeper, sdk.Context) {
	t.Helper()

	k, bk, ctx := keepertest.SupplyKeeper(t)
	keepertest.SeedDenom(t, ctx, bk, testDenom, 0)

	const total = 2_000_000_000
	if treasuryBalance > 0 {
		keepertest.FundAccount(t, ctx, bk, types.DeriveBurnTreasury(testDenom), testDenom, treasuryBalance)
	}
	keepertest.FundAccount(t, ctx, bk, holderAddr, testDenom, total-treasuryBalance)

	_, err := k.InitializeController(ctx, supplyAuthority, testDenom, "MERUSD", 1_000_000, maxSupply)
	require.NoError(t, err)

	return k, bk, ctx
}

// setPrice moves the controller's current price through the authority override
func setPrice(t *testing.T, k keeper.Keeper, ctx sdk.Context, price uint64) {
	t.Helper()
	require.NoError(t, k.UpdatePriceDirectly(ctx, testDenom, price))
}

// TestExecuteMint validates the policy-driven mint path
func TestExecuteMint(t *testing.T) {
	k, bk, ctx := setupSupply(t, 0, 0)
	setPrice(t, k, ctx, 1_060_000) // 6% growth against the 1.000000 anchor

	minted, err := k.ExecuteMint(ctx, testDenom, types.DeriveMintAuthority(testDenom).String(), destAddr.String())
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), minted)

	require.Equal(t, int64(100_000_000), bk.GetBalance(ctx, destAddr, testDenom).Amount.Int64())

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(2_100_000_000), controller.CurrentSupply)
	require.Equal(t, ctx.BlockTime().Unix(), controller.LastMintTimestamp)

	// Bank supply moved with the bookkeeping
	require.Equal(t, int64(2_100_000_000), bk.GetSupply(ctx, testDenom).Amount.Int64())
}

// TestExecuteMintAuthorityCheck validates the derived-address gate
func TestExecuteMintAuthorityCheck(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	setPrice(t, k, ctx, 1_060_000)

	wrong := sdk.AccAddress([]byte("impostor_authority__")).String()
	_, err := k.ExecuteMint(ctx, testDenom, wrong, destAddr.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// The burn treasury derivation does not pass the mint gate either
	_, err = k.ExecuteMint(ctx, testDenom, types.DeriveBurnTreasury(testDenom).String(), destAddr.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = k.ExecuteMint(ctx, "unknown", types.DeriveMintAuthority("unknown").String(), destAddr.String())
	require.ErrorIs(t, err, types.ErrControllerNotFound)
}

// TestExecuteMintFreshnessGate validates the strict execution bound, boundary
// inclusive
func TestExecuteMintFreshnessGate(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	authority := types.DeriveMintAuthority(testDenom).String()

	// Exactly at the bound succeeds (no growth yet, so a clean no-op)
	atBound := ctx.WithBlockTime(ctx.BlockTime().Add(3600 * time.Second))
	minted, err := k.ExecuteMint(atBound, testDenom, authority, destAddr.String())
	require.NoError(t, err)
	require.Zero(t, minted)

	// One second past fails
	past := ctx.WithBlockTime(ctx.BlockTime().Add(3601 * time.Second))
	_, err = k.ExecuteMint(past, testDenom, authority, destAddr.String())
	require.ErrorIs(t, err, types.ErrStaleOracleData)

	// A controller that never recorded a price fails distinctly
	controller, _ := k.GetController(ctx, testDenom)
	controller.LastPriceUpdate = 0
	require.NoError(t, k.SetController(ctx, controller))
	_, err = k.ExecuteMint(ctx, testDenom, authority, destAddr.String())
	require.ErrorIs(t, err, types.ErrNoPriceRecorded)
}

// TestExecuteMintSupplyCap validates the max-supply clamp
func TestExecuteMintSupplyCap(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 2_050_000_000)
	setPrice(t, k, ctx, 1_060_000)

	minted, err := k.ExecuteMint(ctx, testDenom, types.DeriveMintAuthority(testDenom).String(), destAddr.String())
	require.NoError(t, err)
	require.Equal(t, uint64(50_000_000), minted) // clamped from the policy's 100M

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, controller.MaxSupply, controller.CurrentSupply)

	// At the cap further mints are no-ops
	minted, err = k.ExecuteMint(ctx, testDenom, types.DeriveMintAuthority(testDenom).String(), destAddr.String())
	require.NoError(t, err)
	require.Zero(t, minted)
}

// TestExecuteBurn validates the policy-driven burn path
func TestExecuteBurn(t *testing.T) {
	k, bk, ctx := setupSupply(t, 150_000_000, 0)
	setPrice(t, k, ctx, 940_000) // 6% decline

	burned, requested, err := k.ExecuteBurn(ctx, testDenom, types.DeriveBurnTreasury(testDenom).String())
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), requested)
	require.Equal(t, uint64(100_000_000), burned)

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(1_900_000_000), controller.CurrentSupply)
	require.Equal(t, int64(1_900_000_000), bk.GetSupply(ctx, testDenom).Amount.Int64())

	// Treasury keeps whatever the burn did not need
	treasury := types.DeriveBurnTreasury(testDenom)
	require.Equal(t, int64(50_000_000), bk.GetBalance(ctx, treasury, testDenom).Amount.Int64())
}

// TestExecuteBurnPartial validates the shortfall fallback
func TestExecuteBurnPartial(t *testing.T) {
	k, bk, ctx := setupSupply(t, 40_000_000, 0)
	setPrice(t, k, ctx, 940_000)

	burned, requested, err := k.ExecuteBurn(ctx, testDenom, types.DeriveBurnTreasury(testDenom).String())
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), requested)
	require.Equal(t, uint64(40_000_000), burned)

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(1_960_000_000), controller.CurrentSupply)

	treasury := types.DeriveBurnTreasury(testDenom)
	require.True(t, bk.GetBalance(ctx, treasury, testDenom).Amount.IsZero())
}

// TestExecuteBurnEmptyTreasury validates the designed no-op on a drained
// treasury
func TestExecuteBurnEmptyTreasury(t *testing.T) {
	k, _, ctx := setupSupply(t, 0, 0)
	setPrice(t, k, ctx, 940_000)

	burned, requested, err := k.ExecuteBurn(ctx, testDenom, types.DeriveBurnTreasury(testDenom).String())
	require.NoError(t, err)
	require.Zero(t, burned)
	require.Equal(t, uint64(100_000_000), requested)

	controller, _ := k.GetController(ctx, testDenom)
	require.Equal(t, uint64(2_000_000_000), controller.CurrentSupply)
}

// TestExecuteBurnSourceCheck validates that only the derived treasury may feed
// a burn
func TestExecuteBurnSourceCheck(t *testing.T) {
	k, _, ctx := setupSupply(t, 150_000_000, 0)
	setPrice(t, k, ctx, 940_000)

	_, _, err := k.ExecuteBurn(ctx, testDenom, holderAddr.String())
	require.ErrorIs(t, err, types.ErrUnauthorizedBurnSource)

	_, _, err = k.ExecuteBurn(ctx, testDenom, types.DeriveMintAuthority(testDenom).String())
	require.ErrorIs(t, err, types.ErrUnauthorizedBurnSource)
}

// TestExecuteBurnNoAction validates the no-op when decline is below threshold
func TestExecuteBurnNoAction(t *testing.T) {
	k, _, ctx := setupSupply(t, 150_000_000, 0)
	setPrice(t, k, ctx, 990_000) // 1% decline, below the 5% minimum

	burned, requested, err := k.ExecuteBurn(ctx, testDenom, types.DeriveBurnTreasury(testDenom).String())
	require.NoError(t, err)
	require.Zero(t, burned)
	require.Zero(t, requested)
}
