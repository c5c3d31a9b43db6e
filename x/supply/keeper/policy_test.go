package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/meridian-chain/meridian/x/supply/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

// policyController builds a controller fixture in base units with a 1B floor
// and 5B cap-regime threshold.
func policyController(supply, currentPrice, yearStartPrice uint64) types.Controller {
	return types.Controller{
		Denom:               "umer",
		CurrentPrice:        currentPrice,
		YearStartPrice:      yearStartPrice,
		CurrentSupply:       supply,
		MinSupply:           1_000_000_000,
		HighSupplyThreshold: 5_000_000_000,
		Policy:              types.DefaultPolicyParams(),
	}
}

// TestGrowthBps validates the year-over-year measurement
func TestGrowthBps(t *testing.T) {
	growth, ok := keeper.GrowthBps(1_060_000, 1_000_000)
	require.True(t, ok)
	require.Equal(t, int64(600), growth)

	decline, ok := keeper.GrowthBps(940_000, 1_000_000)
	require.True(t, ok)
	require.Equal(t, int64(-600), decline)

	flat, ok := keeper.GrowthBps(1_000_000, 1_000_000)
	require.True(t, ok)
	require.Zero(t, flat)

	// Undefined without a year anchor
	_, ok = keeper.GrowthBps(1_000_000, 0)
	require.False(t, ok)
}

// TestCalculateMintAmount validates the tiered mint table
func TestCalculateMintAmount(t *testing.T) {
	tests := []struct {
		name string
		c    types.Controller
		want uint64
	}{
		{
			name: "medium growth mints 5%",
			c:    policyController(2_000_000_000, 1_060_000, 1_000_000),
			want: 100_000_000,
		},
		{
			name: "exactly at the minimum threshold mints",
			c:    policyController(2_000_000_000, 1_050_000, 1_000_000),
			want: 100_000_000,
		},
		{
			name: "just below the minimum threshold does nothing",
			c:    policyController(2_000_000_000, 1_049_900, 1_000_000),
			want: 0,
		},
		{
			name: "high growth mints 10%",
			c:    policyController(2_000_000_000, 1_100_000, 1_000_000),
			want: 200_000_000,
		},
		{
			name: "extreme growth below the cap still uses the high rate",
			c:    policyController(2_000_000_000, 1_300_000, 1_000_000),
			want: 200_000_000,
		},
		{
			name: "above the cap only extreme growth mints, at 2%",
			c:    policyController(6_000_000_000, 1_300_000, 1_000_000),
			want: 120_000_000,
		},
		{
			name: "above the cap high growth does nothing",
			c:    policyController(6_000_000_000, 1_100_000, 1_000_000),
			want: 0,
		},
		{
			name: "decline never mints",
			c:    policyController(2_000_000_000, 900_000, 1_000_000),
			want: 0,
		},
		{
			name: "no year anchor means no action",
			c:    policyController(2_000_000_000, 1_100_000, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keeper.CalculateMintAmount(tt.c)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// TestCalculateBurnAmount validates the tiered burn table and the floor rules
func TestCalculateBurnAmount(t *testing.T) {
	tests := []struct {
		name string
		c    types.Controller
		want uint64
	}{
		{
			name: "medium decline burns 5%",
			c:    policyController(2_000_000_000, 940_000, 1_000_000),
			want: 100_000_000,
		},
		{
			name: "just below the minimum decline does nothing",
			c:    policyController(2_000_000_000, 950_100, 1_000_000),
			want: 0,
		},
		{
			name: "high decline burns 10%",
			c:    policyController(2_000_000_000, 900_000, 1_000_000),
			want: 200_000_000,
		},
		{
			name: "within the 5% floor buffer no burn happens",
			c:    policyController(1_040_000_000, 900_000, 1_000_000),
			want: 0,
		},
		{
			name: "exactly at the buffer no burn happens",
			c:    policyController(1_050_000_000, 900_000, 1_000_000),
			want: 0,
		},
		{
			name: "burn dipping into the buffer reruns at the post-floor rate",
			c:    policyController(1_100_000_000, 940_000, 1_000_000),
			want: 22_000_000, // 2% instead of the 5% that would breach the buffer
		},
		{
			name: "growth never burns",
			c:    policyController(2_000_000_000, 1_100_000, 1_000_000),
			want: 0,
		},
		{
			name: "no year anchor means no action",
			c:    policyController(2_000_000_000, 900_000, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keeper.CalculateBurnAmount(tt.c)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// TestCalculateBurnAmountHardClamp validates the final floor clamp when even
// the post-floor rate would breach the minimum supply
func TestCalculateBurnAmountHardClamp(t *testing.T) {
	c := policyController(1_060_000_000, 940_000, 1_000_000)
	c.Policy.PostFloorBurnRateBps = 9_000

	got, err := keeper.CalculateBurnAmount(c)
	require.NoError(t, err)
	require.Equal(t, uint64(60_000_000), got)
	require.Equal(t, c.MinSupply, c.CurrentSupply-got)
}

// TestBurnNeverBreachesFloor property-checks the floor invariant across the
// whole input space
func TestBurnNeverBreachesFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		minSupply := rapid.Uint64Range(1, 1_000_000_000_000).Draw(rt, "min_supply")
		supply := rapid.Uint64Range(minSupply, 4_000_000_000_000_000).Draw(rt, "supply")
		yearStart := rapid.Uint64Range(1, 100_000_000).Draw(rt, "year_start")
		current := rapid.Uint64Range(1, 100_000_000).Draw(rt, "current")

		c := types.Controller{
			Denom:               "umer",
			CurrentPrice:        current,
			YearStartPrice:      yearStart,
			CurrentSupply:       supply,
			MinSupply:           minSupply,
			HighSupplyThreshold: 5 * minSupply,
			Policy:              types.DefaultPolicyParams(),
		}

		amount, err := keeper.CalculateBurnAmount(c)
		require.NoError(rt, err)
		require.LessOrEqual(rt, amount, supply)
		require.GreaterOrEqual(rt, supply-amount, minSupply)
	})
}

// TestAdvisoryTimePredicates validates the annual-window helpers
func TestAdvisoryTimePredicates(t *testing.T) {
	c := types.Controller{
		YearStartTimestamp: 1_800_000_000,
		LastMintTimestamp:  1_800_000_000,
	}

	require.False(t, keeper.IsAnnualEvaluationTime(c, 1_800_000_000+types.YearSeconds-1))
	require.True(t, keeper.IsAnnualEvaluationTime(c, 1_800_000_000+types.YearSeconds))

	require.False(t, keeper.CanMintBasedOnTime(c, 1_800_000_000+types.YearSeconds-1))
	require.True(t, keeper.CanMintBasedOnTime(c, 1_800_000_000+types.YearSeconds))

	// A controller that never minted can always mint
	c.LastMintTimestamp = 0
	require.True(t, keeper.CanMintBasedOnTime(c, 1_800_000_000))
}
