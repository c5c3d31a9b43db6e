package types

// Event types for the oracle module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeControllerInitialized = "oracle_controller_initialized"
	EventTypeSourceAdded           = "oracle_source_added"
	EventTypeConsensusReached      = "oracle_consensus_reached"
	EventTypeSourceFailed          = "oracle_source_failed"
	EventTypeSourceSkipped         = "oracle_source_skipped"
	EventTypeYearAnchorRolled      = "oracle_year_anchor_rolled"

	EventTypeCircuitBreakerOpen  = "oracle_circuit_breaker_open"
	EventTypeCircuitBreakerClose = "oracle_circuit_breaker_close"
	EventTypeCircuitBreakerReset = "oracle_circuit_breaker_reset"
	EventTypeEmergencyPriceSet   = "oracle_emergency_price_set"
	EventTypeEmergencyPriceClear = "oracle_emergency_price_clear"

	EventTypeParamsUpdated = "oracle_params_updated"
)

// Event attribute keys for the oracle module
const (
	AttributeKeyAsset      = "asset"
	AttributeKeyPrice      = "price"
	AttributeKeySource     = "source"
	AttributeKeyProvider   = "provider"
	AttributeKeyNumSources = "num_sources"
	AttributeKeyReason     = "reason"
	AttributeKeyActor      = "actor"
	AttributeKeyTimestamp  = "timestamp"
	AttributeKeyExpiry     = "expiry"
	AttributeKeyFailures   = "failures"
	AttributeKeyDegraded   = "degraded"
	AttributeKeyWeight     = "weight"
	AttributeKeyMinRequired = "min_required"
)
