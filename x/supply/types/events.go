package types

// Event types for the supply module
const (
	EventTypeControllerInitialized = "supply_controller_initialized"
	EventTypePriceUpdated          = "supply_price_updated"
	EventTypePriceOverridden       = "supply_price_overridden"
	EventTypeYearAnchorRolled      = "supply_year_anchor_rolled"
	EventTypeMintExecuted          = "supply_mint_executed"
	EventTypeBurnExecuted          = "supply_burn_executed"
	EventTypeBurnPartial           = "supply_burn_partial"
	EventTypeStateRecovered        = "supply_state_recovered"
	EventTypeParamsUpdated         = "supply_params_updated"
)

// Event attribute keys for the supply module
const (
	AttributeKeyDenom      = "denom"
	AttributeKeyPrice      = "price"
	AttributeKeyAmount     = "amount"
	AttributeKeyRequested  = "requested"
	AttributeKeySupply     = "supply"
	AttributeKeyGrowthBps  = "growth_bps"
	AttributeKeyActor      = "actor"
	AttributeKeyTimestamp  = "timestamp"
	AttributeKeyNumSources = "num_sources"
	AttributeKeyRecipient  = "recipient"
)
