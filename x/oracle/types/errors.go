package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	// Validation errors
	ErrUnauthorized          = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrControllerExists      = sdkerrors.Register(ModuleName, 3, "oracle controller already initialized")
	ErrControllerNotFound    = sdkerrors.Register(ModuleName, 4, "oracle controller not found")
	ErrDuplicateSource       = sdkerrors.Register(ModuleName, 5, "oracle source already registered")
	ErrSourceNotFound        = sdkerrors.Register(ModuleName, 6, "oracle source not found")
	ErrInvalidSourceWeight   = sdkerrors.Register(ModuleName, 7, "oracle source weight out of range")
	ErrInvalidProvider       = sdkerrors.Register(ModuleName, 8, "unsupported oracle provider")

	// Oracle data errors
	ErrInvalidOracleData     = sdkerrors.Register(ModuleName, 10, "invalid oracle data")
	ErrLowConfidence         = sdkerrors.Register(ModuleName, 11, "oracle confidence interval too wide")
	ErrStaleOracleData       = sdkerrors.Register(ModuleName, 12, "oracle data is stale")
	ErrCriticallyStale       = sdkerrors.Register(ModuleName, 13, "oracle data is critically stale")
	ErrOracleDataNotFound    = sdkerrors.Register(ModuleName, 14, "no oracle data available")
	ErrNoConsensus           = sdkerrors.Register(ModuleName, 15, "insufficient oracle consensus")

	// Economic safety errors
	ErrExcessivePriceChange  = sdkerrors.Register(ModuleName, 20, "price change exceeds manipulation threshold")
	ErrCircuitBreakerActive  = sdkerrors.Register(ModuleName, 21, "circuit breaker is active")
	ErrCircuitBreakerIdle    = sdkerrors.Register(ModuleName, 22, "circuit breaker is not active")
	ErrCooldownNotElapsed    = sdkerrors.Register(ModuleName, 23, "circuit breaker cooldown has not elapsed")
	ErrSystemDegraded        = sdkerrors.Register(ModuleName, 24, "oracle system is degraded")
	ErrEmergencyPriceExpired = sdkerrors.Register(ModuleName, 25, "emergency price expired or unset")

	// Arithmetic errors
	ErrCalculation           = sdkerrors.Register(ModuleName, 30, "calculation overflow or underflow")

	// Parameter errors
	ErrInvalidParams         = sdkerrors.Register(ModuleName, 40, "invalid oracle params")
)
