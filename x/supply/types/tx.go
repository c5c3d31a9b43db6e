package types

import (
	"context"
)

// MsgServer is the server API for the supply module's messages.
type MsgServer interface {
	// InitializeController creates the autonomous supply controller for a
	// denom, deriving its signing authorities and seeding supply thresholds.
	InitializeController(context.Context, *MsgInitializeController) (*MsgInitializeControllerResponse, error)

	// UpdateOraclePrice runs the single-controller consensus variant.
	UpdateOraclePrice(context.Context, *MsgUpdateOraclePrice) (*MsgUpdateOraclePriceResponse, error)

	// UpdatePriceDirectly is the authority override, bookkeeping only.
	UpdatePriceDirectly(context.Context, *MsgUpdatePriceDirectly) (*MsgUpdatePriceDirectlyResponse, error)

	// ExecuteMint runs the mint policy and executes under the derived
	// mint authority.
	ExecuteMint(context.Context, *MsgExecuteMint) (*MsgExecuteMintResponse, error)

	// ExecuteBurn runs the burn policy and executes from the derived
	// burn treasury, with the partial-burn fallback.
	ExecuteBurn(context.Context, *MsgExecuteBurn) (*MsgExecuteBurnResponse, error)

	// RecoverState resets the price anchors without deleting the record.
	RecoverState(context.Context, *MsgRecoverState) (*MsgRecoverStateResponse, error)

	// UpdateParams replaces the module parameters.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
