package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
	"github.com/meridian-chain/meridian/x/shared/guard"
)

// Keeper maintains the state of the oracle module
type Keeper struct {
	cdc          *codec.LegacyAmino
	storeService store.KVStoreService
	authority    string // module authority (usually governance module account)
	locks        guard.Guard
	metrics      *Metrics
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	storeService store.KVStoreService,
	authority string,
) Keeper {
	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		locks:        guard.New(storeService),
	}
}

// WithMetrics attaches Prometheus metrics to the keeper.
func (k Keeper) WithMetrics(m *Metrics) Keeper {
	k.metrics = m
	return k
}

// GetAuthority returns the module's authority (governance account)
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore adapts the store service to the KVStore interface.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}

// GetParams gets all parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}

	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	store.Set(ParamsKey, bz)
	return nil
}

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set oracle params: %s", err))
	}

	for _, controller := range genState.Controllers {
		c := controller
		c.RecalcHealth()
		if err := k.SetController(ctx, c); err != nil {
			k.Logger(ctx).Error("failed to set controller during genesis", "asset", c.AssetId, "error", err)
		}
	}

	k.Logger(ctx).Info("oracle module genesis initialized", "controllers", len(genState.Controllers))
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:      k.GetParams(ctx),
		Controllers: k.GetAllControllers(ctx),
	}
}
