package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitializeController   = "initialize_controller"
	TypeMsgAddOracleSource        = "add_oracle_source"
	TypeMsgUpdateConsensus        = "update_consensus"
	TypeMsgSetEmergencyPrice      = "set_emergency_price"
	TypeMsgClearEmergencyPrice    = "clear_emergency_price"
	TypeMsgActivateCircuitBreaker = "activate_circuit_breaker"
	TypeMsgResetCircuitBreaker    = "reset_circuit_breaker"
	TypeMsgUpdateParams           = "update_params"
)

var (
	_ sdk.Msg = &MsgInitializeController{}
	_ sdk.Msg = &MsgAddOracleSource{}
	_ sdk.Msg = &MsgUpdateConsensus{}
	_ sdk.Msg = &MsgSetEmergencyPrice{}
	_ sdk.Msg = &MsgClearEmergencyPrice{}
	_ sdk.Msg = &MsgActivateCircuitBreaker{}
	_ sdk.Msg = &MsgResetCircuitBreaker{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgInitializeController creates the multi-source controller for an asset.
type MsgInitializeController struct {
	Authority          string `json:"authority"`
	AssetId            string `json:"asset_id"`
	MinRequiredOracles uint32 `json:"min_required_oracles"`
}

// MsgInitializeControllerResponse is the response of MsgInitializeController.
type MsgInitializeControllerResponse struct{}

// NewMsgInitializeController creates a new MsgInitializeController instance
func NewMsgInitializeController(authority, assetId string, minRequired uint32) *MsgInitializeController {
	return &MsgInitializeController{
		Authority:          authority,
		AssetId:            assetId,
		MinRequiredOracles: minRequired,
	}
}

// Route implements sdk.Msg
func (msg *MsgInitializeController) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgInitializeController) Type() string { return TypeMsgInitializeController }

// GetSigners implements sdk.Msg
func (msg *MsgInitializeController) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgInitializeController) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgInitializeController) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	if msg.MinRequiredOracles == 0 {
		return ErrInvalidParams.Wrap("min required oracles must be positive")
	}
	return nil
}

// MsgAddOracleSource registers a price-feed source with a controller.
type MsgAddOracleSource struct {
	Authority           string       `json:"authority"`
	AssetId             string       `json:"asset_id"`
	SourceId            string       `json:"source_id"`
	Provider            ProviderKind `json:"provider"`
	Weight              uint32       `json:"weight"`
	MaxDeviationBps     uint32       `json:"max_deviation_bps"`
	MaxStalenessSeconds int64        `json:"max_staleness_seconds"`
	IsRequired          bool         `json:"is_required"`
}

// MsgAddOracleSourceResponse is the response of MsgAddOracleSource.
type MsgAddOracleSourceResponse struct{}

// Route implements sdk.Msg
func (msg *MsgAddOracleSource) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgAddOracleSource) Type() string { return TypeMsgAddOracleSource }

// GetSigners implements sdk.Msg
func (msg *MsgAddOracleSource) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAddOracleSource) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAddOracleSource) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	if strings.TrimSpace(msg.SourceId) == "" {
		return ErrInvalidOracleData.Wrap("source id cannot be empty")
	}
	if !msg.Provider.Valid() {
		return ErrInvalidProvider.Wrapf("unknown provider tag %d", msg.Provider)
	}
	if msg.Weight > MaxSourceWeight {
		return ErrInvalidSourceWeight.Wrapf("weight must be in [0, %d], got %d", MaxSourceWeight, msg.Weight)
	}
	if msg.MaxStalenessSeconds <= 0 {
		return ErrInvalidParams.Wrap("max staleness must be positive")
	}
	return nil
}

// MsgUpdateConsensus submits a primary feed record plus zero or more backups.
// The first entry is the primary; order is the fallback order.
type MsgUpdateConsensus struct {
	Submitter string       `json:"submitter"`
	AssetId   string       `json:"asset_id"`
	Feeds     []FeedRecord `json:"feeds"`
}

// MsgUpdateConsensusResponse reports the aggregated price.
type MsgUpdateConsensusResponse struct {
	Price      uint64 `json:"price"`
	NumSources uint32 `json:"num_sources"`
}

// Route implements sdk.Msg
func (msg *MsgUpdateConsensus) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateConsensus) Type() string { return TypeMsgUpdateConsensus }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateConsensus) GetSigners() []sdk.AccAddress {
	submitter, _ := sdk.AccAddressFromBech32(msg.Submitter)
	return []sdk.AccAddress{submitter}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateConsensus) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateConsensus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return ErrUnauthorized.Wrapf("invalid submitter address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	if len(msg.Feeds) == 0 {
		return ErrOracleDataNotFound.Wrap("at least one feed record is required")
	}
	for i, feed := range msg.Feeds {
		if strings.TrimSpace(feed.SourceId) == "" {
			return ErrInvalidOracleData.Wrapf("feed %d: source id cannot be empty", i)
		}
		if !feed.Provider.Valid() {
			return ErrInvalidProvider.Wrapf("feed %d: unknown provider tag %d", i, feed.Provider)
		}
	}
	return nil
}

// MsgSetEmergencyPrice installs the manual override price.
type MsgSetEmergencyPrice struct {
	Authority         string `json:"authority"`
	AssetId           string `json:"asset_id"`
	Price             uint64 `json:"price"`
	ExpirationSeconds int64  `json:"expiration_seconds"`
}

// MsgSetEmergencyPriceResponse is the response of MsgSetEmergencyPrice.
type MsgSetEmergencyPriceResponse struct{}

// Route implements sdk.Msg
func (msg *MsgSetEmergencyPrice) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetEmergencyPrice) Type() string { return TypeMsgSetEmergencyPrice }

// GetSigners implements sdk.Msg
func (msg *MsgSetEmergencyPrice) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetEmergencyPrice) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetEmergencyPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	if msg.Price == 0 {
		return ErrInvalidOracleData.Wrap("emergency price must be positive")
	}
	if msg.ExpirationSeconds <= 0 {
		return ErrInvalidParams.Wrap("expiration must be positive")
	}
	return nil
}

// MsgClearEmergencyPrice removes the manual override.
type MsgClearEmergencyPrice struct {
	Authority string `json:"authority"`
	AssetId   string `json:"asset_id"`
}

// MsgClearEmergencyPriceResponse is the response of MsgClearEmergencyPrice.
type MsgClearEmergencyPriceResponse struct{}

// Route implements sdk.Msg
func (msg *MsgClearEmergencyPrice) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgClearEmergencyPrice) Type() string { return TypeMsgClearEmergencyPrice }

// GetSigners implements sdk.Msg
func (msg *MsgClearEmergencyPrice) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgClearEmergencyPrice) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgClearEmergencyPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	return nil
}

// MsgActivateCircuitBreaker engages the breaker with a reason.
type MsgActivateCircuitBreaker struct {
	Authority string `json:"authority"`
	AssetId   string `json:"asset_id"`
	Reason    string `json:"reason"`
}

// MsgActivateCircuitBreakerResponse is the response of MsgActivateCircuitBreaker.
type MsgActivateCircuitBreakerResponse struct{}

// Route implements sdk.Msg
func (msg *MsgActivateCircuitBreaker) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgActivateCircuitBreaker) Type() string { return TypeMsgActivateCircuitBreaker }

// GetSigners implements sdk.Msg
func (msg *MsgActivateCircuitBreaker) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgActivateCircuitBreaker) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgActivateCircuitBreaker) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	return nil
}

// MsgResetCircuitBreaker lifts the breaker after its cooldown elapsed.
type MsgResetCircuitBreaker struct {
	Authority string `json:"authority"`
	AssetId   string `json:"asset_id"`
}

// MsgResetCircuitBreakerResponse is the response of MsgResetCircuitBreaker.
type MsgResetCircuitBreakerResponse struct{}

// Route implements sdk.Msg
func (msg *MsgResetCircuitBreaker) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgResetCircuitBreaker) Type() string { return TypeMsgResetCircuitBreaker }

// GetSigners implements sdk.Msg
func (msg *MsgResetCircuitBreaker) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgResetCircuitBreaker) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgResetCircuitBreaker) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if strings.TrimSpace(msg.AssetId) == "" {
		return ErrInvalidOracleData.Wrap("asset id cannot be empty")
	}
	return nil
}

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response of MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
