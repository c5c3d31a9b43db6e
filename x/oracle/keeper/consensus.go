package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// UpdateConsensus runs one consensus round over the submitted feed records.
// feeds[0] is the primary source; the remainder are backups in fallback order.
// Every submitted feed that matches a registered active source is read, so a
// healthy primary does not short-circuit the backups.
func (k Keeper) UpdateConsensus(
	ctx context.Context,
	assetId string,
	feeds []types.FeedRecord,
) (types.ConsensusSnapshot, error) {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ConsensusSnapshot{}, types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	if controller.Breaker.Active {
		return types.ConsensusSnapshot{}, types.ErrCircuitBreakerActive.Wrapf(
			"asset %s: %s", assetId, controller.Breaker.Reason)
	}

	if len(feeds) == 0 {
		return types.ConsensusSnapshot{}, types.ErrInvalidOracleData.Wrap("no feeds submitted")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	params := k.GetParams(ctx)

	var readings []types.PriceData
	attempted := 0

	for i, feed := range feeds {
		source, ok := controller.Source(feed.SourceId)
		if !ok || !source.IsActive {
			// Unknown or deactivated sources are skipped, not fatal
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeSourceSkipped,
					sdk.NewAttribute(types.AttributeKeyAsset, assetId),
					sdk.NewAttribute(types.AttributeKeySource, feed.SourceId),
				),
			)
			k.Logger(ctx).Debug("skipping unregistered or inactive source",
				"asset", assetId, "source", feed.SourceId)
			continue
		}
		attempted++

		data, err := k.readSource(feed, source, now, params)
		if err != nil {
			source.RecordFailure()
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeSourceFailed,
					sdk.NewAttribute(types.AttributeKeyAsset, assetId),
					sdk.NewAttribute(types.AttributeKeySource, feed.SourceId),
					sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
					sdk.NewAttribute(types.AttributeKeyFailures, fmt.Sprintf("%d", source.ConsecutiveFailures)),
				),
			)
			k.Logger(ctx).Warn("oracle source read failed",
				"asset", assetId,
				"source", feed.SourceId,
				"primary", i == 0,
				"failures", source.ConsecutiveFailures,
				"error", err,
			)
			if k.metrics != nil {
				k.metrics.SourceFailures.WithLabelValues(assetId, feed.SourceId).Inc()
			}
			continue
		}

		if IsModeratelyStale(data.PublishedAt, now, params) {
			k.Logger(ctx).Info("ingesting moderately stale reading",
				"asset", assetId, "source", feed.SourceId, "age", now-data.PublishedAt)
		}

		source.RecordSuccess(data.Price, now)
		readings = append(readings, data)
	}

	if attempted == 0 {
		return types.ConsensusSnapshot{}, types.ErrOracleDataNotFound.Wrapf(
			"asset %s: no submitted feed matches a registered active source", assetId)
	}
	if len(readings) == 0 {
		return types.ConsensusSnapshot{}, types.ErrNoConsensus.Wrapf(
			"asset %s: all %d source reads failed", assetId, attempted)
	}

	// Unweighted arithmetic mean over every successful reading. A lone
	// survivor (primary or backup) carries the round by itself.
	sum := sdkmath.ZeroInt()
	for _, r := range readings {
		sum = sum.Add(sdkmath.NewIntFromUint64(r.Price))
	}
	avg := sum.QuoRaw(int64(len(readings)))
	if !avg.IsUint64() {
		return types.ConsensusSnapshot{}, types.ErrCalculation.Wrap("aggregated price out of range")
	}
	price := avg.Uint64()
	if price == 0 {
		return types.ConsensusSnapshot{}, types.ErrNoConsensus.Wrap("aggregated price is zero")
	}

	// Manipulation guard against the previously stored consensus. The
	// boundary itself is accepted; only a strictly larger step rejects.
	if old := controller.LastConsensus.Price; old > 0 {
		if exceedsChangeLimit(old, price, params.MaxPriceChangeBps) {
			return types.ConsensusSnapshot{}, types.ErrExcessivePriceChange.Wrapf(
				"consensus step from %d to %d exceeds %d bps", old, price, params.MaxPriceChangeBps)
		}
	}

	snapshot := types.ConsensusSnapshot{
		Price:      price,
		NumSources: uint32(len(readings)),
		Timestamp:  now,
	}
	controller.LastConsensus = snapshot

	// First consensus anchors the year window; afterwards the anchor rolls
	// forward once a full year has elapsed.
	if controller.YearStartPrice == 0 {
		controller.YearStartPrice = price
		if controller.YearStartTimestamp == 0 {
			controller.YearStartTimestamp = now
		}
	} else if now >= controller.YearStartTimestamp+types.YearSeconds {
		controller.YearStartPrice = price
		controller.YearStartTimestamp = now
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeYearAnchorRolled,
				sdk.NewAttribute(types.AttributeKeyAsset, assetId),
				sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
				sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
			),
		)
		k.Logger(ctx).Info("year anchor rolled", "asset", assetId, "price", price)
	}

	controller.RecalcHealth()
	if err := k.SetController(ctx, controller); err != nil {
		return types.ConsensusSnapshot{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConsensusReached,
			sdk.NewAttribute(types.AttributeKeyAsset, assetId),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
			sdk.NewAttribute(types.AttributeKeyNumSources, fmt.Sprintf("%d", len(readings))),
		),
	)

	k.Logger(ctx).Info("oracle consensus reached",
		"asset", assetId,
		"price", price,
		"sources", len(readings),
	)

	if k.metrics != nil {
		k.metrics.ConsensusPrice.WithLabelValues(assetId).Set(float64(price) / float64(types.PriceScale))
		k.metrics.ConsensusRounds.WithLabelValues(assetId).Inc()
	}

	return snapshot, nil
}

// readSource normalizes one feed and applies the per-source gates layered on
// top of the global ones.
func (k Keeper) readSource(
	feed types.FeedRecord,
	source *types.OracleSource,
	now int64,
	params types.Params,
) (types.PriceData, error) {
	if feed.Provider != source.Provider {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrapf(
			"provider tag %s does not match registered provider %s",
			feed.Provider, source.Provider)
	}

	data, err := NormalizeFeed(feed, now, params)
	if err != nil {
		return types.PriceData{}, err
	}

	if source.MaxStalenessSeconds > 0 {
		age := now - data.PublishedAt
		if age < 0 {
			age = 0
		}
		if age > source.MaxStalenessSeconds {
			return types.PriceData{}, types.ErrStaleOracleData.Wrapf(
				"feed age %ds exceeds source limit %ds", age, source.MaxStalenessSeconds)
		}
	}

	if source.MaxDeviationBps > 0 && source.LastValidPrice > 0 {
		if exceedsChangeLimit(source.LastValidPrice, data.Price, source.MaxDeviationBps) {
			return types.PriceData{}, types.ErrExcessivePriceChange.Wrapf(
				"reading %d deviates more than %d bps from last valid %d",
				data.Price, source.MaxDeviationBps, source.LastValidPrice)
		}
	}

	return data, nil
}

// exceedsChangeLimit reports whether |newPrice - oldPrice| relative to
// oldPrice is strictly above limitBps. Wide arithmetic avoids overflow.
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
