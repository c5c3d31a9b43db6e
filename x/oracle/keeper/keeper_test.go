package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

// TestParamsRoundtrip validates params storage and validation
func TestParamsRoundtrip(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.DefaultParams()
	params.MaxPriceChangeBps = 2_500
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	invalid := types.DefaultParams()
	invalid.MaxConfidenceBps = 0
	require.ErrorIs(t, k.SetParams(ctx, invalid), types.ErrInvalidParams)
}

// TestGenesisRoundtrip validates init and export of module state
func TestGenesisRoundtrip(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)

	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Controllers: []types.Controller{
			{
				AssetId:            testAsset,
				Authority:          testAuthority,
				MinRequiredOracles: 1,
				Sources: []types.OracleSource{
					{SourceId: "primary", Provider: types.ProviderCustom, IsActive: true, Weight: 50},
				},
			},
		},
	}
	require.NoError(t, genState.Validate())

	k.InitGenesis(ctx, genState)

	// Health is recalculated on import
	controller, found := k.GetController(ctx, testAsset)
	require.True(t, found)
	require.Equal(t, uint32(1), controller.Health.ActiveOracles)
	require.False(t, controller.Health.Degraded)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, genState.Params, exported.Params)
	require.Len(t, exported.Controllers, 1)
	require.Equal(t, testAsset, exported.Controllers[0].AssetId)
}
