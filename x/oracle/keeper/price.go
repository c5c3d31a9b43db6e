package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetEffectivePrice resolves the price consumers should act on. A valid
// emergency override wins outright, even while the breaker is engaged. With
// no override, the breaker blocks reads, and the stored consensus must be
// fresher than maxAgeSeconds (0 disables the freshness check).
func (k Keeper) GetEffectivePrice(ctx context.Context, assetId string, maxAgeSeconds int64) (uint64, int64, error) {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return 0, 0, types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if controller.Emergency != nil && controller.Emergency.Valid(now) {
		return controller.Emergency.Price, controller.Emergency.Timestamp, nil
	}

	if controller.Breaker.Active {
		return 0, 0, types.ErrCircuitBreakerActive.Wrapf("asset %s: %s", assetId, controller.Breaker.Reason)
	}

	if controller.LastConsensus.Price == 0 {
		return 0, 0, types.ErrOracleDataNotFound.Wrapf("asset %s: no consensus recorded", assetId)
	}

	if maxAgeSeconds > 0 {
		age := now - controller.LastConsensus.Timestamp
		if age > maxAgeSeconds {
			return 0, 0, types.ErrStaleOracleData.Wrapf(
				"asset %s: consensus age %ds exceeds limit %ds", assetId, age, maxAgeSeconds)
		}
	}

	return controller.LastConsensus.Price, controller.LastConsensus.Timestamp, nil
}

// GetYearAnchor returns the year-start reference price and timestamp for
// growth measurement.
func (k Keeper) GetYearAnchor(ctx context.Context, assetId string) (uint64, int64, error) {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return 0, 0, types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}
	return controller.YearStartPrice, controller.YearStartTimestamp, nil
}
