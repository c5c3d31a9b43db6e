package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// ActivateCircuitBreaker engages the breaker, halting the consensus path for
// the asset until a cooldown-gated reset.
func (k Keeper) ActivateCircuitBreaker(ctx context.Context, assetId, reason string) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if controller.Breaker.Active {
		return types.ErrCircuitBreakerActive.Wrapf("asset %s: breaker already engaged", assetId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	controller.Breaker.Active = true
	controller.Breaker.ActivatedAt = now
	controller.Breaker.Reason = reason
	controller.RecalcHealth()

	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCircuitBreakerOpen,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)

	k.Logger(ctx).Error("circuit breaker engaged",
		"asset", assetId,
		"reason", reason,
		"cooldown", controller.Breaker.CooldownSeconds,
	)

	if k.metrics != nil {
		k.metrics.BreakerEngaged.WithLabelValues(assetId).Set(1)
	}

	return nil
}

// ResetCircuitBreaker lifts an engaged breaker once its cooldown has elapsed.
func (k Keeper) ResetCircuitBreaker(ctx context.Context, assetId string) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if !controller.Breaker.Active {
		return types.ErrCircuitBreakerIdle.Wrapf("asset %s", assetId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if !controller.Breaker.CanReset(now) {
		remaining := controller.Breaker.ActivatedAt + controller.Breaker.CooldownSeconds - now
		return types.ErrCooldownNotElapsed.Wrapf("asset %s: %ds remaining", assetId, remaining)
	}

	controller.Breaker.Active = false
	controller.Breaker.Reason = ""
	controller.RecalcHealth()

	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCircuitBreakerReset,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)

	k.Logger(ctx).Info("circuit breaker reset", "asset", assetId)

	if k.metrics != nil {
		k.metrics.BreakerEngaged.WithLabelValues(assetId).Set(0)
	}

	return nil
}
