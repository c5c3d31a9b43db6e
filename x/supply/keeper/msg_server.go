package keeper

import (
	"context"

	sharedkeeper "github.com/meridian-chain/meridian/x/shared/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// lockScope is the per-denom execution lock shared by every value-moving
// operation of the module, so none of them can nest inside another.
func lockScope(denom string) string {
	return "supply/" + denom
}

// InitializeController creates the controller; the signer becomes its
// authority.
func (k msgServer) InitializeController(goCtx context.Context, msg *types.MsgInitializeController) (*types.MsgInitializeControllerResponse, error) {
	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	controller, err := k.Keeper.InitializeController(
		goCtx, msg.Authority, msg.Denom, msg.PriceOracleAssetId, msg.InitialPrice, msg.MaxSupply)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeControllerResponse{
		MintAuthority: controller.MintAuthority,
		BurnTreasury:  controller.BurnTreasury,
	}, nil
}

// UpdateOraclePrice runs the consensus variant. Submission is permissionless.
func (k msgServer) UpdateOraclePrice(goCtx context.Context, msg *types.MsgUpdateOraclePrice) (*types.MsgUpdateOraclePriceResponse, error) {
	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	price, numSources, err := k.Keeper.UpdateOraclePrice(goCtx, msg.Denom, msg.Feeds)
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateOraclePriceResponse{
		Price:      price,
		NumSources: numSources,
	}, nil
}

// UpdatePriceDirectly is the authority override.
func (k msgServer) UpdatePriceDirectly(goCtx context.Context, msg *types.MsgUpdatePriceDirectly) (*types.MsgUpdatePriceDirectlyResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.Denom, msg.Authority); err != nil {
		return nil, err
	}

	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	if err := k.Keeper.UpdatePriceDirectly(goCtx, msg.Denom, msg.NewPrice); err != nil {
		return nil, err
	}
	return &types.MsgUpdatePriceDirectlyResponse{}, nil
}

// ExecuteMint runs the mint policy. Execution is permissionless; authority is
// proven by the derived-address check inside the executor.
func (k msgServer) ExecuteMint(goCtx context.Context, msg *types.MsgExecuteMint) (*types.MsgExecuteMintResponse, error) {
	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	minted, err := k.Keeper.ExecuteMint(goCtx, msg.Denom, msg.MintAuthority, msg.Destination)
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteMintResponse{Minted: minted}, nil
}

// ExecuteBurn runs the burn policy. Execution is permissionless; the burn
// source must be the derived treasury.
func (k msgServer) ExecuteBurn(goCtx context.Context, msg *types.MsgExecuteBurn) (*types.MsgExecuteBurnResponse, error) {
	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	burned, requested, err := k.Keeper.ExecuteBurn(goCtx, msg.Denom, msg.BurnTreasury)
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteBurnResponse{Burned: burned, Requested: requested}, nil
}

// RecoverState resets the price anchors. Only the controller authority or the
// module authority may call.
func (k msgServer) RecoverState(goCtx context.Context, msg *types.MsgRecoverState) (*types.MsgRecoverStateResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.Denom, msg.Authority); err != nil {
		return nil, err
	}

	release, err := k.locks.Acquire(goCtx, lockScope(msg.Denom))
	if err != nil {
		return nil, err
	}
	defer release()

	if err := k.Keeper.RecoverState(goCtx, msg.Denom, msg.NewPrice); err != nil {
		return nil, err
	}
	return &types.MsgRecoverStateResponse{}, nil
}

// UpdateParams replaces the module parameters. Only the module authority
// (governance) may call.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := sharedkeeper.ValidateAuthority(k.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}
	if err := k.SetParams(goCtx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

// requireControllerAuthority fails unless the actor is the controller's
// authority or the module authority.
func (k msgServer) requireControllerAuthority(ctx context.Context, denom, actor string) error {
	controller, found := k.GetController(ctx, denom)
	if !found {
		return types.ErrControllerNotFound.Wrapf("denom %s", denom)
	}
	if actor != controller.Authority && actor != k.GetAuthority() {
		return types.ErrUnauthorized.Wrapf(
			"actor %s is not the controller authority for denom %s", actor, denom)
	}
	return nil
}
