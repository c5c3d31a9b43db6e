package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// SetEmergencyPrice installs the manual override price. The override outranks
// both consensus and the circuit breaker until it expires or is cleared.
func (k Keeper) SetEmergencyPrice(
	ctx context.Context,
	assetId string,
	price uint64,
	expirationSeconds int64,
) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if price == 0 {
		return types.ErrInvalidParams.Wrap("emergency price must be positive")
	}
	if expirationSeconds <= 0 {
		return types.ErrInvalidParams.Wrapf("expiration must be positive, got %d", expirationSeconds)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	controller.Emergency = &types.EmergencyPrice{
		Price:             price,
		Timestamp:         now,
		ExpirationSeconds: expirationSeconds,
	}

	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyPriceSet,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
			sdk.NewAttribute(types.AttributeKeyExpiry, fmt.Sprintf("%d", now+expirationSeconds)),
		),
	)

	k.Logger(ctx).Error("emergency price set",
		"asset", assetId,
		"price", price,
		"expires_in", expirationSeconds,
	)

	if k.metrics != nil {
		k.metrics.EmergencyOverride.WithLabelValues(assetId).Set(1)
	}

	return nil
}

// ClearEmergencyPrice removes the manual override.
func (k Keeper) ClearEmergencyPrice(ctx context.Context, assetId string) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if controller.Emergency == nil {
		return types.ErrOracleDataNotFound.Wrapf("asset %s: no emergency price set", assetId)
	}

	controller.Emergency = nil
	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyPriceClear,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
		),
	)

	k.Logger(ctx).Info("emergency price cleared", "asset", assetId)

	if k.metrics != nil {
		k.metrics.EmergencyOverride.WithLabelValues(assetId).Set(0)
	}

	return nil
}

// GetValidEmergencyPrice returns the override price if one is set and still
// within its expiry window. Expired overrides stay in state until cleared;
// they are simply never returned.
func (k Keeper) GetValidEmergencyPrice(ctx context.Context, assetId string) (uint64, bool) {
	controller, found := k.GetController(ctx, assetId)
	if !found || controller.Emergency == nil {
		return 0, false
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if !controller.Emergency.Valid(now) {
		return 0, false
	}
	return controller.Emergency.Price, true
}
