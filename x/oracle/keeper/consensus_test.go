package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/oracle/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

const testAsset = "MERUSD"

var testAuthority = sdk.AccAddress([]byte("controller_authority")).String()

func setupController(t *testing.T, sources ...types.OracleSource) (keeper.Keeper, sdk.Context) {
	t.Helper()

	k, ctx := keepertest.OracleKeeper(t)
	_, err := k.InitializeController(ctx, testAuthority, testAsset, 1, 0)
	require.NoError(t, err)

	for _, s := range sources {
		require.NoError(t, k.AddSource(ctx, testAsset, s))
	}
	return k, ctx
}

func customSource(id string) types.OracleSource {
	return types.OracleSource{
		SourceId: id,
		Provider: types.ProviderCustom,
		IsActive: true,
		Weight:   50,
	}
}

func customFeed(id string, price uint64, publishedAt int64) types.FeedRecord {
	return types.FeedRecord{
		SourceId: id,
		Provider: types.ProviderCustom,
		Custom:   &types.CustomRecord{Price: price, PublishedAt: publishedAt},
	}
}

// TestUpdateConsensusMean validates the unweighted mean over all successful reads
func TestUpdateConsensusMean(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"), customSource("backup-1"), customSource("backup-2"))
	now := ctx.BlockTime().Unix()

	snapshot, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_000_000, now),
		customFeed("backup-1", 1_100_000, now),
		customFeed("backup-2", 1_200_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_100_000), snapshot.Price)
	require.Equal(t, uint32(3), snapshot.NumSources)
	require.Equal(t, now, snapshot.Timestamp)

	controller, found := k.GetController(ctx, testAsset)
	require.True(t, found)
	require.Equal(t, snapshot, controller.LastConsensus)

	// First consensus anchors the year window
	require.Equal(t, uint64(1_100_000), controller.YearStartPrice)

	// Source bookkeeping persisted with the round
	primary, ok := controller.Source("primary")
	require.True(t, ok)
	require.Equal(t, uint64(1_000_000), primary.LastValidPrice)
	require.Equal(t, now, primary.LastUpdateTimestamp)
	require.Zero(t, primary.ConsecutiveFailures)
}

// TestUpdateConsensusFallback validates that a failed primary does not sink
// the round when a backup survives
func TestUpdateConsensusFallback(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"), customSource("backup-1"))
	now := ctx.BlockTime().Unix()

	snapshot, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 0, now), // zero price fails normalization
		customFeed("backup-1", 1_250_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_250_000), snapshot.Price)
	require.Equal(t, uint32(1), snapshot.NumSources)

	controller, _ := k.GetController(ctx, testAsset)
	primary, _ := controller.Source("primary")
	require.Equal(t, uint32(1), primary.ConsecutiveFailures)
	backup, _ := controller.Source("backup-1")
	require.Zero(t, backup.ConsecutiveFailures)
	require.Equal(t, uint64(1_250_000), backup.LastValidPrice)
}

// TestUpdateConsensusUnknownSources validates the skip-versus-fail split for
// unregistered feeds
func TestUpdateConsensusUnknownSources(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	now := ctx.BlockTime().Unix()

	// An unknown feed alongside a valid one is skipped, not fatal
	snapshot, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("ghost", 9_000_000, now),
		customFeed("primary", 1_000_000, now),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), snapshot.Price)

	// Nothing but unknown feeds means no data, not failed consensus
	_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("ghost", 9_000_000, now),
	})
	require.ErrorIs(t, err, types.ErrOracleDataNotFound)
}

// TestUpdateConsensusAllReadsFail validates the no-consensus error when every
// registered source fails
func TestUpdateConsensusAllReadsFail(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"), customSource("backup-1"))
	now := ctx.BlockTime().Unix()

	_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 0, now),
		customFeed("backup-1", 0, now),
	})
	require.ErrorIs(t, err, types.ErrNoConsensus)
}

// TestUpdateConsensusEmptyFeeds validates the empty submission rejection
func TestUpdateConsensusEmptyFeeds(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))

	_, err := k.UpdateConsensus(ctx, testAsset, nil)
	require.ErrorIs(t, err, types.ErrInvalidOracleData)
}

// TestUpdateConsensusMissingController validates the unknown-asset error
func TestUpdateConsensusMissingController(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)

	_, err := k.UpdateConsensus(ctx, "UNKNOWN", []types.FeedRecord{
		customFeed("primary", 1_000_000, ctx.BlockTime().Unix()),
	})
	require.ErrorIs(t, err, types.ErrControllerNotFound)
}

// TestUpdateConsensusManipulationGuard validates the 50% step limit against
// the stored consensus, boundary inclusive
func TestUpdateConsensusManipulationGuard(t *testing.T) {
	tests := []struct {
		name     string
		newPrice uint64
		wantErr  error
	}{
		{name: "exactly 5000 bps accepted", newPrice: 1_500_000},
		{name: "5100 bps rejected", newPrice: 1_510_000, wantErr: types.ErrExcessivePriceChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ctx := setupController(t, customSource("primary"))
			now := ctx.BlockTime().Unix()

			_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
				customFeed("primary", 1_000_000, now),
			})
			require.NoError(t, err)

			_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
				customFeed("primary", tt.newPrice, now),
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestUpdateConsensusBreakerBlocks validates that an engaged breaker halts
// the consensus path
func TestUpdateConsensusBreakerBlocks(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	now := ctx.BlockTime().Unix()

	require.NoError(t, k.ActivateCircuitBreaker(ctx, testAsset, "volatility"))

	_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_000_000, now),
	})
	require.ErrorIs(t, err, types.ErrCircuitBreakerActive)
}

// TestUpdateConsensusYearAnchorRolls validates the 365-day anchor rollover
func TestUpdateConsensusYearAnchorRolls(t *testing.T) {
	k, ctx := setupController(t, customSource("primary"))
	now := ctx.BlockTime().Unix()

	_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_000_000, now),
	})
	require.NoError(t, err)

	// Age the anchor a full year back, then run another round
	controller, _ := k.GetController(ctx, testAsset)
	controller.YearStartTimestamp = now - types.YearSeconds
	require.NoError(t, k.SetController(ctx, controller))

	_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
		customFeed("primary", 1_040_000, now),
	})
	require.NoError(t, err)

	controller, _ = k.GetController(ctx, testAsset)
	require.Equal(t, uint64(1_040_000), controller.YearStartPrice)
	require.Equal(t, now, controller.YearStartTimestamp)
}

// TestUpdateConsensusPerSourceGates validates the per-source staleness,
// deviation and provider-tag gates layered on the global ones
func TestUpdateConsensusPerSourceGates(t *testing.T) {
	t.Run("per-source staleness tighter than critical", func(t *testing.T) {
		source := customSource("primary")
		source.MaxStalenessSeconds = 600
		k, ctx := setupController(t, source)
		now := ctx.BlockTime().Unix()

		_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
			customFeed("primary", 1_000_000, now-601),
		})
		require.ErrorIs(t, err, types.ErrNoConsensus)

		_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
			customFeed("primary", 1_000_000, now-600),
		})
		require.NoError(t, err)
	})

	t.Run("per-source deviation from last valid price", func(t *testing.T) {
		source := customSource("primary")
		source.MaxDeviationBps = 100
		k, ctx := setupController(t, source)
		now := ctx.BlockTime().Unix()

		_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
			customFeed("primary", 1_000_000, now),
		})
		require.NoError(t, err)

		// 200 bps deviation against a 100 bps source limit
		_, err = k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
			customFeed("primary", 1_020_000, now),
		})
		require.ErrorIs(t, err, types.ErrNoConsensus)
	})

	t.Run("provider tag mismatch", func(t *testing.T) {
		k, ctx := setupController(t, customSource("primary"))
		now := ctx.BlockTime().Unix()

		mismatch := types.FeedRecord{
			SourceId: "primary",
			Provider: types.ProviderPyth,
			Pyth: &types.PythRecord{
				Price: 1_000_000, Expo: -6, Status: types.PythStatusTrading, PublishTime: now,
			},
		}
		_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{mismatch})
		require.ErrorIs(t, err, types.ErrNoConsensus)
	})

	t.Run("inactive source is skipped", func(t *testing.T) {
		inactive := customSource("primary")
		inactive.IsActive = false
		k, ctx := setupController(t, inactive)
		now := ctx.BlockTime().Unix()

		_, err := k.UpdateConsensus(ctx, testAsset, []types.FeedRecord{
			customFeed("primary", 1_000_000, now),
		})
		require.ErrorIs(t, err, types.ErrOracleDataNotFound)
	})
}
