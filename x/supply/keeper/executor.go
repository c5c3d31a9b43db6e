package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/supply/types"
)

// ExecuteMint runs the mint policy and, when it yields an amount, mints to
// the destination under the derived mint authority. The caller supplies the
// authority address it believes is correct; execution verifies it against the
// deterministic derivation before any value moves.
func (k Keeper) ExecuteMint(
	ctx context.Context,
	denom string,
	suppliedAuthority string,
	destination string,
) (uint64, error) {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return 0, types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}

	derived := types.DeriveMintAuthority(denom)
	if suppliedAuthority != derived.String() {
		return 0, types.ErrUnauthorized.Wrapf(
			"supplied mint authority %s does not match derived %s", suppliedAuthority, derived)
	}

	destAddr, err := sdk.AccAddressFromBech32(destination)
	if err != nil {
		return 0, types.ErrInvalidParams.Wrapf("invalid destination address: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if err := k.requireFreshPrice(ctx, controller, now); err != nil {
		return 0, err
	}

	amount, err := CalculateMintAmount(controller)
	if err != nil {
		return 0, err
	}

	// The cap bounds every mint: never push supply past max_supply.
	if controller.MaxSupply > 0 && controller.CurrentSupply+amount > controller.MaxSupply {
		amount = controller.MaxSupply - controller.CurrentSupply
	}

	if amount == 0 {
		k.Logger(ctx).Info("mint policy yielded no action",
			"denom", denom,
			"supply", controller.CurrentSupply,
			"price", controller.CurrentPrice,
			"year_start_price", controller.YearStartPrice,
		)
		return 0, nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return 0, fmt.Errorf("bank mint failed: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, destAddr, coins); err != nil {
		return 0, fmt.Errorf("mint payout failed: %w", err)
	}

	controller.CurrentSupply += amount
	controller.LastMintTimestamp = now
	if err := k.SetController(ctx, controller); err != nil {
		return 0, err
	}

	growth, _ := GrowthBps(controller.CurrentPrice, controller.YearStartPrice)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintExecuted,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", amount)),
			sdk.NewAttribute(types.AttributeKeySupply, fmt.Sprintf("%d", controller.CurrentSupply)),
			sdk.NewAttribute(types.AttributeKeyGrowthBps, fmt.Sprintf("%d", growth)),
			sdk.NewAttribute(types.AttributeKeyRecipient, destination),
		),
	)

	k.Logger(ctx).Info("autonomous mint executed",
		"denom", denom,
		"amount", amount,
		"supply", controller.CurrentSupply,
		"growth_bps", growth,
	)

	if k.metrics != nil {
		k.metrics.MintedTotal.WithLabelValues(denom).Add(float64(amount))
		k.metrics.SupplyGauge.WithLabelValues(denom).Set(float64(controller.CurrentSupply))
	}

	return amount, nil
}

// ExecuteBurn runs the burn policy and, when it yields an amount, burns from
// the derived burn treasury. Any other source is rejected. A treasury
// shortfall burns the available balance instead of failing; a zero balance is
// a successful no-op.
func (k Keeper) ExecuteBurn(
	ctx context.Context,
	denom string,
	suppliedTreasury string,
) (burned uint64, requested uint64, err error) {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return 0, 0, types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}

	derived := types.DeriveBurnTreasury(denom)
	if suppliedTreasury != derived.String() {
		return 0, 0, types.ErrUnauthorizedBurnSource.Wrapf(
			"supplied treasury %s does not match derived %s", suppliedTreasury, derived)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if err := k.requireFreshPrice(ctx, controller, now); err != nil {
		return 0, 0, err
	}

	requested, err = CalculateBurnAmount(controller)
	if err != nil {
		return 0, 0, err
	}
	if requested == 0 {
		k.Logger(ctx).Info("burn policy yielded no action",
			"denom", denom,
			"supply", controller.CurrentSupply,
			"price", controller.CurrentPrice,
			"year_start_price", controller.YearStartPrice,
		)
		return 0, 0, nil
	}

	balance := k.bankKeeper.GetBalance(ctx, derived, denom)
	if balance.Amount.IsZero() {
		// Nothing in the treasury: designed no-op, not an error
		k.Logger(ctx).Info("burn treasury empty, skipping burn",
			"denom", denom, "requested", requested)
		return 0, requested, nil
	}

	amount := requested
	if balance.Amount.LT(sdkmath.NewIntFromUint64(requested)) {
		// Partial-burn fallback: burn what the treasury holds
		amount = balance.Amount.Uint64()
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBurnPartial,
				sdk.NewAttribute(types.AttributeKeyDenom, denom),
				sdk.NewAttribute(types.AttributeKeyRequested, fmt.Sprintf("%d", requested)),
				sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", amount)),
			),
		)
		k.Logger(ctx).Warn("treasury shortfall, executing partial burn",
			"denom", denom, "requested", requested, "available", amount)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, derived, types.ModuleName, coins); err != nil {
		return 0, requested, fmt.Errorf("treasury withdrawal failed: %w", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return 0, requested, fmt.Errorf("bank burn failed: %w", err)
	}

	controller.CurrentSupply -= amount
	if err := k.SetController(ctx, controller); err != nil {
		return 0, requested, err
	}

	growth, _ := GrowthBps(controller.CurrentPrice, controller.YearStartPrice)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurnExecuted,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", amount)),
			sdk.NewAttribute(types.AttributeKeySupply, fmt.Sprintf("%d", controller.CurrentSupply)),
			sdk.NewAttribute(types.AttributeKeyGrowthBps, fmt.Sprintf("%d", growth)),
		),
	)

	k.Logger(ctx).Info("autonomous burn executed",
		"denom", denom,
		"amount", amount,
		"requested", requested,
		"supply", controller.CurrentSupply,
	)

	if k.metrics != nil {
		k.metrics.BurnedTotal.WithLabelValues(denom).Add(float64(amount))
		k.metrics.SupplyGauge.WithLabelValues(denom).Set(float64(controller.CurrentSupply))
	}

	return amount, requested, nil
}

// requireFreshPrice enforces the strict execution-time freshness bound.
// Exactly at the bound succeeds; one second past fails.
func (k Keeper) requireFreshPrice(ctx context.Context, controller types.Controller, now int64) error {
	if controller.LastPriceUpdate == 0 {
		return types.ErrNoPriceRecorded.Wrapf("denom %s", controller.Denom)
	}

	limit := k.GetParams(ctx).StrictFreshnessSeconds
	age := now - controller.LastPriceUpdate
	if age > limit {
		return types.ErrStaleOracleData.Wrapf(
			"price age %ds exceeds execution bound %ds", age, limit)
	}
	return nil
}
