package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// TestGenesisStateValidate validates genesis well-formedness checks
func TestGenesisStateValidate(t *testing.T) {
	controller := func(assetId string) types.Controller {
		return types.Controller{
			AssetId:            assetId,
			Authority:          validAddr,
			MinRequiredOracles: 1,
			Sources: []types.OracleSource{
				{SourceId: "primary", Provider: types.ProviderCustom, IsActive: true, Weight: 50},
			},
		}
	}

	tests := []struct {
		name     string
		genState types.GenesisState
		wantErr  string
	}{
		{
			name:     "default is valid",
			genState: *types.DefaultGenesis(),
		},
		{
			name: "valid with controller",
			genState: types.GenesisState{
				Params:      types.DefaultParams(),
				Controllers: []types.Controller{controller("MERUSD")},
			},
		},
		{
			name: "duplicate asset",
			genState: types.GenesisState{
				Params:      types.DefaultParams(),
				Controllers: []types.Controller{controller("MERUSD"), controller("MERUSD")},
			},
			wantErr: "duplicate controller",
		},
		{
			name: "invalid params",
			genState: types.GenesisState{
				Params: types.Params{},
			},
			wantErr: "max price change",
		},
		{
			name: "duplicate source within controller",
			genState: types.GenesisState{
				Params: types.DefaultParams(),
				Controllers: []types.Controller{{
					AssetId:            "MERUSD",
					Authority:          validAddr,
					MinRequiredOracles: 1,
					Sources: []types.OracleSource{
						{SourceId: "primary", Provider: types.ProviderCustom},
						{SourceId: "primary", Provider: types.ProviderPyth},
					},
				}},
			},
			wantErr: "duplicate source",
		},
		{
			name: "source weight over cap",
			genState: types.GenesisState{
				Params: types.DefaultParams(),
				Controllers: []types.Controller{{
					AssetId:            "MERUSD",
					Authority:          validAddr,
					MinRequiredOracles: 1,
					Sources: []types.OracleSource{
						{SourceId: "primary", Provider: types.ProviderCustom, Weight: 101},
					},
				}},
			},
			wantErr: "weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genState.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestParamsValidate validates the parameter sanity checks
func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.MaxPriceChangeBps = types.BpsBase + 1
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MaxConfidenceBps = 0
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.CriticalStalenessSeconds = p.ModerateStalenessSeconds - 1
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MaxSourcesPerController = 0
	require.Error(t, p.Validate())
}
