package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/supply/types"
)

// GetController retrieves the controller for a denom
func (k Keeper) GetController(ctx context.Context, denom string) (types.Controller, bool) {
	store := k.getStore(ctx)
	bz := store.Get(GetControllerKey(denom))
	if bz == nil {
		return types.Controller{}, false
	}

	var controller types.Controller
	if err := k.cdc.Unmarshal(bz, &controller); err != nil {
		k.Logger(ctx).Error("failed to unmarshal controller", "denom", denom, "error", err)
		return types.Controller{}, false
	}

	return controller, true
}

// SetController persists the controller for a denom
func (k Keeper) SetController(ctx context.Context, controller types.Controller) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&controller)
	if err != nil {
		return fmt.Errorf("failed to marshal controller: %w", err)
	}

	store.Set(GetControllerKey(controller.Denom), bz)
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

// InitializeController creates the autonomous supply controller for a denom.
// The two signing authorities are derived deterministically, the current
// supply is seeded from the bank, and the floor/ceiling thresholds are seeded
// at 1B/5B whole tokens scaled by the denom's decimals.
func (k Keeper) InitializeController(
	ctx context.Context,
	authority string,
	denom string,
	priceOracleAssetId string,
	initialPrice uint64,
	maxSupply uint64,
) (types.Controller, error) {
	if _, found := k.GetController(ctx, denom); found {
		return types.Controller{}, types.ErrControllerExists.Wrapf("denom %s", denom)
	}

	decimals, err := k.denomDecimals(ctx, denom)
	if err != nil {
		return types.Controller{}, err
	}

	supplyCoin := k.bankKeeper.GetSupply(ctx, denom)
	if !supplyCoin.Amount.IsUint64() {
		return types.Controller{}, types.ErrCalculation.Wrapf(
			"bank supply %s does not fit the supply counter", supplyCoin.Amount)
	}
	currentSupply := supplyCoin.Amount.Uint64()

	minSupply, err := scaleWholeTokens(types.MinSupplyBaseUnits, decimals)
	if err != nil {
		return types.Controller{}, err
	}
	highThreshold, err := scaleWholeTokens(types.HighSupplyBaseUnits, decimals)
	if err != nil {
		return types.Controller{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	mintAuthority := types.DeriveMintAuthority(denom)
	burnTreasury := types.DeriveBurnTreasury(denom)

	controller := types.Controller{
		Authority:          authority,
		Denom:              denom,
		PriceOracleAssetId: priceOracleAssetId,

		InitialPrice:       initialPrice,
		YearStartPrice:     initialPrice,
		YearStartTimestamp: now,
		CurrentPrice:       initialPrice,
		LastPriceUpdate:    now,

		CurrentSupply: currentSupply,
		TokenDecimals: decimals,

		MinSupply:           minSupply,
		HighSupplyThreshold: highThreshold,
		MaxSupply:           maxSupply,

		MintAuthority: mintAuthority.String(),
		BurnTreasury:  burnTreasury.String(),

		Policy: types.DefaultPolicyParams(),
	}

	if err := k.SetController(ctx, controller); err != nil {
		return types.Controller{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeControllerInitialized,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyActor, authority),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", initialPrice)),
			sdk.NewAttribute(types.AttributeKeySupply, fmt.Sprintf("%d", currentSupply)),
		),
	)

	k.Logger(ctx).Info("supply controller initialized",
		"denom", denom,
		"authority", authority,
		"supply", currentSupply,
		"decimals", decimals,
		"mint_authority", controller.MintAuthority,
		"burn_treasury", controller.BurnTreasury,
	)

	return controller, nil
}

// denomDecimals reads the decimal count from the bank's denom metadata. The
// exponent of the display unit is the token's decimal precision.
func (k Keeper) denomDecimals(ctx context.Context, denom string) (uint32, error) {
	metadata, found := k.bankKeeper.GetDenomMetaData(ctx, denom)
	if !found {
		return 0, types.ErrInvalidDenom.Wrapf("no denom metadata registered for %s", denom)
	}

	for _, unit := range metadata.DenomUnits {
		if unit.Denom == metadata.Display {
			return unit.Exponent, nil
		}
	}
	return 0, types.ErrInvalidDenom.Wrapf("denom metadata for %s lacks a display unit", denom)
}

// scaleWholeTokens converts a whole-token count into base units, failing on
// uint64 overflow.
func scaleWholeTokens(whole uint64, decimals uint32) (uint64, error) {
	scaled := sdkmath.NewIntFromUint64(whole)
	for i := uint32(0); i < decimals; i++ {
		scaled = scaled.MulRaw(10)
	}
	if !scaled.IsUint64() {
		return 0, types.ErrCalculation.Wrapf(
			"%d whole tokens at %d decimals overflows the supply counter", whole, decimals)
	}
	return scaled.Uint64(), nil
}
