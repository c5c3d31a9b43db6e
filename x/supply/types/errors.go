package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Supply module sentinel errors
var (
	// Validation errors
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrControllerExists   = sdkerrors.Register(ModuleName, 3, "supply controller already initialized")
	ErrControllerNotFound = sdkerrors.Register(ModuleName, 4, "supply controller not found")
	ErrInvalidDenom       = sdkerrors.Register(ModuleName, 5, "invalid or unknown denom")

	// Oracle data errors
	ErrStaleOracleData = sdkerrors.Register(ModuleName, 10, "price too stale for execution")
	ErrNoConsensus     = sdkerrors.Register(ModuleName, 11, "insufficient oracle consensus")
	ErrNoPriceRecorded = sdkerrors.Register(ModuleName, 12, "no price recorded")

	// Economic safety errors
	ErrExcessivePriceChange   = sdkerrors.Register(ModuleName, 20, "price change exceeds manipulation threshold")
	ErrUnauthorizedBurnSource = sdkerrors.Register(ModuleName, 21, "burn source is not the derived treasury")
	ErrSupplyFloor            = sdkerrors.Register(ModuleName, 22, "operation would breach the supply floor")

	// Arithmetic errors
	ErrCalculation = sdkerrors.Register(ModuleName, 30, "calculation overflow or underflow")

	// Parameter errors
	ErrInvalidParams = sdkerrors.Register(ModuleName, 40, "invalid supply params")
)
