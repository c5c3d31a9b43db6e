package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// GenesisState represents the genesis state of the blockchain.
// It is a map from module name to module genesis state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
// Module defaults are overridden with the Meridian network parameters: umer
// as the staking and deposit denom, and no base inflation (supply only moves
// through the x/supply policy engine).
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	genesis := ModuleBasics.DefaultGenesis(cdc)

	stakingGenesis := stakingtypes.DefaultGenesisState()
	stakingGenesis.Params.BondDenom = BondDenom
	stakingGenesis.Params.UnbondingTime = 21 * 24 * time.Hour
	genesis[stakingtypes.ModuleName] = mustMarshalJSON(stakingGenesis)

	mintGenesis := minttypes.DefaultGenesisState()
	mintGenesis.Params.MintDenom = BondDenom
	mintGenesis.Params.InflationRateChange = math.LegacyZeroDec()
	mintGenesis.Params.InflationMax = math.LegacyZeroDec()
	mintGenesis.Params.InflationMin = math.LegacyZeroDec()
	mintGenesis.Minter.Inflation = math.LegacyZeroDec()
	mintGenesis.Minter.AnnualProvisions = math.LegacyZeroDec()
	genesis[minttypes.ModuleName] = mustMarshalJSON(mintGenesis)

	govGenesis := govtypes.DefaultGenesisState()
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, 10_000_000_000))
	genesis["gov"] = mustMarshalJSON(govGenesis)

	bankGenesis := banktypes.DefaultGenesisState()
	bankGenesis.DenomMetadata = append(bankGenesis.DenomMetadata, banktypes.Metadata{
		Description: "The native token of the Meridian network.",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: BondDenom, Exponent: 0},
			{Denom: DisplayDenom, Exponent: 6},
		},
		Base:    BondDenom,
		Display: DisplayDenom,
		Name:    "Meridian",
		Symbol:  DisplayDenom,
	})
	genesis[banktypes.ModuleName] = mustMarshalJSON(bankGenesis)

	return genesis
}

func mustMarshalJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
