package types

import (
	"context"
)

// MsgServer is the server API for the oracle module's messages.
type MsgServer interface {
	// InitializeController creates the multi-source controller for an asset.
	InitializeController(context.Context, *MsgInitializeController) (*MsgInitializeControllerResponse, error)

	// AddOracleSource registers a price-feed source; fails if duplicate or
	// unauthorized.
	AddOracleSource(context.Context, *MsgAddOracleSource) (*MsgAddOracleSourceResponse, error)

	// UpdateConsensus runs the consensus pipeline over the submitted feeds.
	UpdateConsensus(context.Context, *MsgUpdateConsensus) (*MsgUpdateConsensusResponse, error)

	// SetEmergencyPrice installs the manual override price.
	SetEmergencyPrice(context.Context, *MsgSetEmergencyPrice) (*MsgSetEmergencyPriceResponse, error)

	// ClearEmergencyPrice removes the manual override.
	ClearEmergencyPrice(context.Context, *MsgClearEmergencyPrice) (*MsgClearEmergencyPriceResponse, error)

	// ActivateCircuitBreaker engages the breaker.
	ActivateCircuitBreaker(context.Context, *MsgActivateCircuitBreaker) (*MsgActivateCircuitBreakerResponse, error)

	// ResetCircuitBreaker lifts the breaker once the cooldown elapsed.
	ResetCircuitBreaker(context.Context, *MsgResetCircuitBreaker) (*MsgResetCircuitBreakerResponse, error)

	// UpdateParams replaces the module parameters.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
