package keeper

import (
	"strings"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/supply/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

// SupplyKeeper creates a test keeper for the supply module with real auth and
// bank keepers behind it, so mint, burn and balance moves hit actual bank
// state. The returned bank keeper lets tests seed denom metadata and balances.
func SupplyKeeper(t testing.TB) (keeper.Keeper, bankkeeper.BaseKeeper, sdk.Context) {
	supplyStoreKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(supplyStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	protoCdc := codec.NewProtoCodec(registry)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		govtypes.ModuleName:        nil,
		types.ModuleName:           {authtypes.Minter, authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		protoCdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		protoCdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		runtime.NewKVStoreService(supplyStoreKey),
		bankKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(BaseTime)
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, bankKeeper, ctx
}

// SeedDenom registers bank metadata for a test denom so controller
// initialization can read its decimals off the display unit.
func SeedDenom(t testing.TB, ctx sdk.Context, bankKeeper bankkeeper.BaseKeeper, denom string, decimals uint32) {
	t.Helper()

	display := strings.TrimPrefix(denom, "u")
	bankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: "test token",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: display, Exponent: decimals},
		},
		Base:    denom,
		Display: display,
		Name:    display,
		Symbol:  strings.ToUpper(display),
	})
}

// FundAccount mints coins through the supply module account and moves them to
// addr. Tests use it to seed circulating supply and treasury balances.
func FundAccount(t testing.TB, ctx sdk.Context, bankKeeper bankkeeper.BaseKeeper, addr sdk.AccAddress, denom string, amount uint64) {
	t.Helper()

	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	require.NoError(t, bankKeeper.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins))
}
