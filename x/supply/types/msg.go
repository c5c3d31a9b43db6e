package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
)

// Message type URLs
const (
	TypeMsgInitializeController = "initialize_controller"
	TypeMsgUpdateOraclePrice    = "update_oracle_price"
	TypeMsgUpdatePriceDirectly  = "update_price_directly"
	TypeMsgExecuteMint          = "execute_mint"
	TypeMsgExecuteBurn          = "execute_burn"
	TypeMsgRecoverState         = "recover_state"
	TypeMsgUpdateParams         = "update_params"
)

var (
	_ sdk.Msg = &MsgInitializeController{}
	_ sdk.Msg = &MsgUpdateOraclePrice{}
	_ sdk.Msg = &MsgUpdatePriceDirectly{}
	_ sdk.Msg = &MsgExecuteMint{}
	_ sdk.Msg = &MsgExecuteBurn{}
	_ sdk.Msg = &MsgRecoverState{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgInitializeController creates the autonomous supply controller for a
// denom. The signer becomes the controller authority; signing authorities are
// derived, supply is seeded from the bank, and the floor/ceiling thresholds
// are seeded from the denom's decimals.
type MsgInitializeController struct {
	Authority          string `json:"authority"`
	Denom              string `json:"denom"`
	PriceOracleAssetId string `json:"price_oracle_asset_id"`
	InitialPrice       uint64 `json:"initial_price"`
	MaxSupply          uint64 `json:"max_supply"`
}

// MsgInitializeControllerResponse is the response of MsgInitializeController.
type MsgInitializeControllerResponse struct {
	MintAuthority string `json:"mint_authority"`
	BurnTreasury  string `json:"burn_treasury"`
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
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if strings.TrimSpace(msg.PriceOracleAssetId) == "" {
		return ErrInvalidParams.Wrap("price oracle asset id cannot be empty")
	}
	if msg.InitialPrice == 0 {
		return ErrInvalidParams.Wrap("initial price must be positive")
	}
	if msg.MaxSupply == 0 {
		return ErrInvalidParams.Wrap("max supply must be positive")
	}
	return nil
}

// MsgUpdateOraclePrice runs the single-controller consensus variant over the
// submitted feeds. feeds[0] is the primary, the remainder backups in fallback
// order.
type MsgUpdateOraclePrice struct {
	Submitter string                    `json:"submitter"`
	Denom     string                    `json:"denom"`
	Feeds     []oracletypes.FeedRecord  `json:"feeds"`
}

// MsgUpdateOraclePriceResponse reports the accepted price.
type MsgUpdateOraclePriceResponse struct {
	Price      uint64 `json:"price"`
	NumSources uint32 `json:"num_sources"`
}

// Route implements sdk.Msg
func (msg *MsgUpdateOraclePrice) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateOraclePrice) Type() string { return TypeMsgUpdateOraclePrice }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateOraclePrice) GetSigners() []sdk.AccAddress {
	submitter, _ := sdk.AccAddressFromBech32(msg.Submitter)
	return []sdk.AccAddress{submitter}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateOraclePrice) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateOraclePrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return ErrUnauthorized.Wrapf("invalid submitter address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if len(msg.Feeds) == 0 {
		return ErrNoConsensus.Wrap("at least one feed record is required")
	}
	for i, feed := range msg.Feeds {
		if !feed.Provider.Valid() {
			return ErrInvalidParams.Wrapf("feed %d: unknown provider tag %d", i, feed.Provider)
		}
	}
	return nil
}

// MsgUpdatePriceDirectly is the authority override bypassing oracle reads.
// Bookkeeping only: no manipulation guard is applied.
type MsgUpdatePriceDirectly struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
	NewPrice  uint64 `json:"new_price"`
}

// MsgUpdatePriceDirectlyResponse is the response of MsgUpdatePriceDirectly.
type MsgUpdatePriceDirectlyResponse struct{}

// Route implements sdk.Msg
func (msg *MsgUpdatePriceDirectly) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdatePriceDirectly) Type() string { return TypeMsgUpdatePriceDirectly }

// GetSigners implements sdk.Msg
func (msg *MsgUpdatePriceDirectly) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdatePriceDirectly) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdatePriceDirectly) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if msg.NewPrice == 0 {
		return ErrInvalidParams.Wrap("price must be positive")
	}
	return nil
}

// MsgExecuteMint runs the mint policy and, if it yields an amount, mints to
// the destination under the derived mint authority. The caller supplies the
// authority address it believes is correct; execution verifies the derivation.
type MsgExecuteMint struct {
	Executor      string `json:"executor"`
	Denom         string `json:"denom"`
	MintAuthority string `json:"mint_authority"`
	Destination   string `json:"destination"`
}

// MsgExecuteMintResponse reports the minted amount.
type MsgExecuteMintResponse struct {
	Minted uint64 `json:"minted"`
}

// Route implements sdk.Msg
func (msg *MsgExecuteMint) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgExecuteMint) Type() string { return TypeMsgExecuteMint }

// GetSigners implements sdk.Msg
func (msg *MsgExecuteMint) GetSigners() []sdk.AccAddress {
	executor, _ := sdk.AccAddressFromBech32(msg.Executor)
	return []sdk.AccAddress{executor}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgExecuteMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgExecuteMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrUnauthorized.Wrapf("invalid executor address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if _, err := sdk.AccAddressFromBech32(msg.MintAuthority); err != nil {
		return ErrUnauthorized.Wrapf("invalid mint authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Destination); err != nil {
		return ErrInvalidParams.Wrapf("invalid destination address: %s", err)
	}
	return nil
}

// MsgExecuteBurn runs the burn policy and, if it yields an amount, burns from
// the derived burn treasury. The caller supplies the treasury address it
// believes is correct; execution verifies the derivation.
type MsgExecuteBurn struct {
	Executor     string `json:"executor"`
	Denom        string `json:"denom"`
	BurnTreasury string `json:"burn_treasury"`
}

// MsgExecuteBurnResponse reports the burned amount, which may be less than
// the policy amount under the partial-burn fallback.
type MsgExecuteBurnResponse struct {
	Burned    uint64 `json:"burned"`
	Requested uint64 `json:"requested"`
}

// Route implements sdk.Msg
func (msg *MsgExecuteBurn) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgExecuteBurn) Type() string { return TypeMsgExecuteBurn }

// GetSigners implements sdk.Msg
func (msg *MsgExecuteBurn) GetSigners() []sdk.AccAddress {
	executor, _ := sdk.AccAddressFromBech32(msg.Executor)
	return []sdk.AccAddress{executor}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgExecuteBurn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgExecuteBurn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrUnauthorized.Wrapf("invalid executor address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if _, err := sdk.AccAddressFromBech32(msg.BurnTreasury); err != nil {
		return ErrUnauthorized.Wrapf("invalid burn treasury address: %s", err)
	}
	return nil
}

// MsgRecoverState resets the controller's price anchors without deleting the
// record. Emergency path, authority-gated.
type MsgRecoverState struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
	NewPrice  uint64 `json:"new_price"`
}

// MsgRecoverStateResponse is the response of MsgRecoverState.
type MsgRecoverStateResponse struct{}

// Route implements sdk.Msg
func (msg *MsgRecoverState) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRecoverState) Type() string { return TypeMsgRecoverState }

// GetSigners implements sdk.Msg
func (msg *MsgRecoverState) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRecoverState) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRecoverState) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if msg.NewPrice == 0 {
		return ErrInvalidParams.Wrap("recovery price must be positive")
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
