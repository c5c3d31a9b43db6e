package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetController retrieves the controller for an asset
func (k Keeper) GetController(ctx context.Context, assetId string) (types.Controller, bool) {
	store := k.getStore(ctx)
	bz := store.Get(GetControllerKey(assetId))
	if bz == nil {
		return types.Controller{}, false
	}

	var controller types.Controller
	if err := k.cdc.Unmarshal(bz, &controller); err != nil {
		k.Logger(ctx).Error("failed to unmarshal controller", "asset", assetId, "error", err)
		return types.Controller{}, false
	}

	return controller, true
}

// SetController persists the controller for an asset
func (k Keeper) SetController(ctx context.Context, controller types.Controller) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&controller)
	if err != nil {
		return fmt.Errorf("failed to marshal controller: %w", err)
	}

	store.Set(GetControllerKey(controller.AssetId), bz)
	return nil
}

// GetAllControllers returns every controller in the store
func (k Keeper) GetAllControllers(ctx context.Context) []types.Controller {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ControllerKeyPrefix)
	defer iterator.Close()

	var controllers []types.Controller
	for ; iterator.Valid(); iterator.Next() {
		var controller types.Controller
		if err := k.cdc.Unmarshal(iterator.Value(), &controller); err != nil {
			k.Logger(ctx).Error("failed to unmarshal controller during iteration", "error", err)
			continue
		}
		controllers = append(controllers, controller)
	}

	return controllers
}

// InitializeController creates the multi-source controller for an asset.
// Fails if a controller for the asset already exists.
func (k Keeper) InitializeController(
	ctx context.Context,
	authority string,
	assetId string,
	minRequiredOracles uint32,
	cooldownSeconds int64,
) (types.Controller, error) {
	if _, found := k.GetController(ctx, assetId); found {
		return types.Controller{}, types.ErrControllerExists.Wrapf("asset %s", assetId)
	}

	if minRequiredOracles == 0 {
		return types.Controller{}, types.ErrInvalidParams.Wrap("min required oracles must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if cooldownSeconds <= 0 {
		cooldownSeconds = int64(k.GetParams(ctx).DefaultCooldownSeconds)
	}

	controller := types.Controller{
		Authority:          authority,
		AssetId:            assetId,
		Sources:            []types.OracleSource{},
		MinRequiredOracles: minRequiredOracles,
		Breaker: types.CircuitBreaker{
			Active:          false,
			CooldownSeconds: cooldownSeconds,
		},
		YearStartTimestamp: now,
	}
	controller.RecalcHealth()

	if err := k.SetController(ctx, controller); err != nil {
		return types.Controller{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeControllerInitialized,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeyActor, authority),
			sdk.NewAttribute(types.AttributeKeyMinRequired, fmt.Sprintf("%d", minRequiredOracles)),
		),
	)

	k.Logger(ctx).Info("oracle controller initialized",
		"asset", assetId,
		"authority", authority,
		"min_required", minRequiredOracles,
	)

	return controller, nil
}

// AddSource registers a new price-feed source on an existing controller.
// Duplicate source ids are rejected, as are weights above the cap.
func (k Keeper) AddSource(ctx context.Context, assetId string, source types.OracleSource) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if source.SourceId == "" {
		return types.ErrInvalidParams.Wrap("source id cannot be empty")
	}
	if !source.Provider.Valid() {
		return types.ErrInvalidProvider.Wrapf("provider %d", source.Provider)
	}
	if source.Weight > types.MaxSourceWeight {
		return types.ErrInvalidSourceWeight.Wrapf("weight %d exceeds maximum %d", source.Weight, types.MaxSourceWeight)
	}
	if _, dup := controller.Source(source.SourceId); dup {
		return types.ErrDuplicateSource.Wrapf("source %s already registered for asset %s", source.SourceId, assetId)
	}

	params := k.GetParams(ctx)
	if uint32(len(controller.Sources)) >= params.MaxSourcesPerController {
		return types.ErrInvalidParams.Wrapf("controller already holds %d sources", len(controller.Sources))
	}

	// New sources start clean regardless of what the caller supplied
	source.ConsecutiveFailures = 0
	source.LastValidPrice = 0
	source.LastUpdateTimestamp = 0

	controller.Sources = append(controller.Sources, source)
	controller.RecalcHealth()

	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceAdded,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeySource, source.SourceId),
			sdk.NewAttribute(types.AttributeKeyProvider, source.Provider.String()),
			sdk.NewAttribute(types.AttributeKeyWeight, fmt.Sprintf("%d", source.Weight)),
		),
	)

	k.Logger(ctx).Info("oracle source added",
		"asset", assetId,
		"source", source.SourceId,
		"provider", source.Provider.String(),
		"required", source.IsRequired,
	)

	if k.metrics != nil {
		k.metrics.SourcesRegistered.WithLabelValues(assetId, source.Provider.String()).Inc()
	}

	return nil
}
