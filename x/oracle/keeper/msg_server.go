package keeper

import (
	"context"

	"github.com/meridian-chain/meridian/x/oracle/types"
	sharedkeeper "github.com/meridian-chain/meridian/x/shared/keeper"
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

// InitializeController creates the controller; the signer becomes its
// authority.
func (k msgServer) InitializeController(goCtx context.Context, msg *types.MsgInitializeController) (*types.MsgInitializeControllerResponse, error) {
	_, err := k.Keeper.InitializeController(goCtx, msg.Authority, msg.AssetId, msg.MinRequiredOracles, 0)
	if err != nil {
		return nil, err
	}
	return &types.MsgInitializeControllerResponse{}, nil
}

// AddOracleSource registers a source. Only the controller authority may call.
func (k msgServer) AddOracleSource(goCtx context.Context, msg *types.MsgAddOracleSource) (*types.MsgAddOracleSourceResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.AssetId, msg.Authority); err != nil {
		return nil, err
	}

	source := types.OracleSource{
		SourceId:            msg.SourceId,
		Provider:            msg.Provider,
		IsActive:            true,
		Weight:              msg.Weight,
		MaxDeviationBps:     msg.MaxDeviationBps,
		MaxStalenessSeconds: msg.MaxStalenessSeconds,
		IsRequired:          msg.IsRequired,
	}
	if err := k.Keeper.AddSource(goCtx, msg.AssetId, source); err != nil {
		return nil, err
	}
	return &types.MsgAddOracleSourceResponse{}, nil
}

// UpdateConsensus runs a consensus round. Submission is permissionless; the
// safety gates live in the consensus pipeline itself. The round holds the
// asset's execution lock so a nested update cannot re-enter.
func (k msgServer) UpdateConsensus(goCtx context.Context, msg *types.MsgUpdateConsensus) (*types.MsgUpdateConsensusResponse, error) {
	release, err := k.locks.Acquire(goCtx, "oracle/consensus/"+msg.AssetId)
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := k.Keeper.UpdateConsensus(goCtx, msg.AssetId, msg.Feeds)
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateConsensusResponse{
		Price:      snapshot.Price,
		NumSources: snapshot.NumSources,
	}, nil
}

// SetEmergencyPrice installs the override. Only the controller authority may
// call.
func (k msgServer) SetEmergencyPrice(goCtx context.Context, msg *types.MsgSetEmergencyPrice) (*types.MsgSetEmergencyPriceResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.AssetId, msg.Authority); err != nil {
		return nil, err
	}
	if err := k.Keeper.SetEmergencyPrice(goCtx, msg.AssetId, msg.Price, msg.ExpirationSeconds); err != nil {
		return nil, err
	}
	return &types.MsgSetEmergencyPriceResponse{}, nil
}

// ClearEmergencyPrice removes the override. Only the controller authority may
// call.
func (k msgServer) ClearEmergencyPrice(goCtx context.Context, msg *types.MsgClearEmergencyPrice) (*types.MsgClearEmergencyPriceResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.AssetId, msg.Authority); err != nil {
		return nil, err
	}
	if err := k.Keeper.ClearEmergencyPrice(goCtx, msg.AssetId); err != nil {
		return nil, err
	}
	return &types.MsgClearEmergencyPriceResponse{}, nil
}

// ActivateCircuitBreaker engages the breaker. Only the controller authority
// may call.
func (k msgServer) ActivateCircuitBreaker(goCtx context.Context, msg *types.MsgActivateCircuitBreaker) (*types.MsgActivateCircuitBreakerResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.AssetId, msg.Authority); err != nil {
		return nil, err
	}
	if err := k.Keeper.ActivateCircuitBreaker(goCtx, msg.AssetId, msg.Reason); err != nil {
		return nil, err
	}
	return &types.MsgActivateCircuitBreakerResponse{}, nil
}

// ResetCircuitBreaker lifts the breaker once the cooldown elapsed. Only the
// controller authority may call.
func (k msgServer) ResetCircuitBreaker(goCtx context.Context, msg *types.MsgResetCircuitBreaker) (*types.MsgResetCircuitBreakerResponse, error) {
	if err := k.requireControllerAuthority(goCtx, msg.AssetId, msg.Authority); err != nil {
		return nil, err
	}
	if err := k.Keeper.ResetCircuitBreaker(goCtx, msg.AssetId); err != nil {
		return nil, err
	}
	return &types.MsgResetCircuitBreakerResponse{}, nil
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
func (k msgServer) requireControllerAuthority(ctx context.Context, assetId, actor string) error {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}
	if actor != controller.Authority && actor != k.GetAuthority() {
		return types.ErrUnauthorized.Wrapf(
			"actor %s is not the controller authority for asset %s", actor, assetId)
	}
	return nil
}
