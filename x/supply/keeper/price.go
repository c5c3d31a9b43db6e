package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	oraclekeeper "github.com/meridian-chain/meridian/x/oracle/keeper"
	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
	"github.com/meridian-chain/meridian/x/supply/types"
)

// UpdateOraclePrice runs the single-controller consensus variant: every
// submitted feed is normalized through the oracle adapter, successes are
// averaged, and the result passes the manipulation guard before being stored
// as the controller's current price.
func (k Keeper) UpdateOraclePrice(
	ctx context.Context,
	denom string,
	feeds []oracletypes.FeedRecord,
) (uint64, uint32, error) {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return 0, 0, types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}
	if len(feeds) == 0 {
		return 0, 0, types.ErrNoConsensus.Wrap("no feeds submitted")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	params := k.GetParams(ctx)
	gates := k.adapterGates(params)

	var prices []uint64
	for i, feed := range feeds {
		data, err := oraclekeeper.NormalizeFeed(feed, now, gates)
		if err != nil {
			k.Logger(ctx).Warn("feed read failed",
				"denom", denom,
				"source", feed.SourceId,
				"primary", i == 0,
				"error", err,
			)
			continue
		}
		prices = append(prices, data.Price)
	}

	if len(prices) == 0 {
		return 0, 0, types.ErrNoConsensus.Wrapf("denom %s: all %d feed reads failed", denom, len(feeds))
	}

	sum := sdkmath.ZeroInt()
	for _, p := range prices {
		sum = sum.Add(sdkmath.NewIntFromUint64(p))
	}
	avg := sum.QuoRaw(int64(len(prices)))
	if !avg.IsUint64() {
		return 0, 0, types.ErrCalculation.Wrap("aggregated price out of range")
	}
	price := avg.Uint64()
	if price == 0 {
		return 0, 0, types.ErrNoConsensus.Wrap("aggregated price is zero")
	}

	if old := controller.CurrentPrice; old > 0 {
		if exceedsChangeLimit(old, price, params.MaxPriceChangeBps) {
			return 0, 0, types.ErrExcessivePriceChange.Wrapf(
				"price step from %d to %d exceeds %d bps", old, price, params.MaxPriceChangeBps)
		}
	}

	k.storePrice(sdkCtx, &controller, price, now)
	if err := k.SetController(ctx, controller); err != nil {
		return 0, 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
			sdk.NewAttribute(types.AttributeKeyNumSources, fmt.Sprintf("%d", len(prices))),
		),
	)

	k.Logger(ctx).Info("oracle price updated",
		"denom", denom,
		"price", price,
		"sources", len(prices),
	)

	if k.metrics != nil {
		k.metrics.CurrentPrice.WithLabelValues(denom).Set(float64(price) / float64(types.PriceScale))
	}

	return price, uint32(len(prices)), nil
}

// UpdatePriceDirectly is the authority override. Bookkeeping only: the
// manipulation guard does not apply.
func (k Keeper) UpdatePriceDirectly(ctx context.Context, denom string, newPrice uint64) error {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}
	if newPrice == 0 {
		return types.ErrInvalidParams.Wrap("price must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	k.storePrice(sdkCtx, &controller, newPrice, now)
	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceOverridden,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", newPrice)),
		),
	)

	k.Logger(ctx).Info("price overridden by authority", "denom", denom, "price", newPrice)

	if k.metrics != nil {
		k.metrics.CurrentPrice.WithLabelValues(denom).Set(float64(newPrice) / float64(types.PriceScale))
	}

	return nil
}

// RecoverState resets the controller's price anchors and re-syncs supply from
// the bank without deleting the record. Emergency path.
func (k Keeper) RecoverState(ctx context.Context, denom string, newPrice uint64) error {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	supplyCoin := k.bankKeeper.GetSupply(ctx, denom)
	if !supplyCoin.Amount.IsUint64() {
		return types.ErrCalculation.Wrapf("bank supply %s does not fit the supply counter", supplyCoin.Amount)
	}

	controller.CurrentPrice = newPrice
	controller.YearStartPrice = newPrice
	controller.YearStartTimestamp = now
	controller.LastPriceUpdate = now
	controller.CurrentSupply = supplyCoin.Amount.Uint64()

	if err := k.SetController(ctx, controller); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStateRecovered,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", newPrice)),
			sdk.NewAttribute(types.AttributeKeySupply, fmt.Sprintf("%d", controller.CurrentSupply)),
		),
	)

	k.Logger(ctx).Error("controller state recovered",
		"denom", denom,
		"price", newPrice,
		"supply", controller.CurrentSupply,
	)

	return nil
}

// storePrice records a new current price and rolls the year anchor when the
// 365-day window has elapsed.
func (k Keeper) storePrice(sdkCtx sdk.Context, controller *types.Controller, price uint64, now int64) {
	controller.CurrentPrice = price
	controller.LastPriceUpdate = now

	if controller.YearStartPrice == 0 {
		controller.YearStartPrice = price
		controller.YearStartTimestamp = now
		return
	}

	if now >= controller.YearStartTimestamp+types.YearSeconds {
		controller.YearStartPrice = price
		controller.YearStartTimestamp = now
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeYearAnchorRolled,
				sdk.NewAttribute(types.AttributeKeyDenom, controller.Denom),
				sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
				sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
			),
		)
	}
}

// adapterGates maps the module's execution params onto the oracle adapter's
// ingestion gates.
func (k Keeper) adapterGates(params types.Params) oracletypes.Params {
	gates := oracletypes.DefaultParams()
	gates.MaxConfidenceBps = params.MaxConfidenceBps
	gates.CriticalStalenessSeconds = params.CriticalStalenessSeconds
	gates.MaxPriceChangeBps = params.MaxPriceChangeBps
	return gates
}

// exceedsChangeLimit reports whether |newPrice - oldPrice| relative to
// oldPrice is strictly above limitBps.
func exceedsChangeLimit(oldPrice, newPrice uint64, limitBps uint32) bool {
	var diff uint64
	if newPrice > oldPrice {
		diff = newPrice - oldPrice
	} else {
		diff = oldPrice - newPrice
	}

	changeBps := sdkmath.NewIntFromUint64(diff).
		MulRaw(types.BpsBase).
		Quo(sdkmath.NewIntFromUint64(oldPrice))
	return changeBps.GT(sdkmath.NewInt(int64(limitBps)))
}
