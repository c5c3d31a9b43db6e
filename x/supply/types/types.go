package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "supply"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Derivation seeds for the module's signing authorities. The derived addresses
// are deterministic functions of (module, seed, denom); no private key controls
// them.
const (
	MintAuthoritySeed = "mint_authority"
	BurnTreasurySeed  = "burn_treasury"
)

const (
	// BpsBase is the basis-point denominator (10,000 bps = 100%).
	BpsBase = 10_000

	// PriceDecimals is the canonical fixed-point precision for prices (microUSD).
	PriceDecimals = 6

	// PriceScale is 10^PriceDecimals.
	PriceScale = 1_000_000

	// YearSeconds is the 365-day evaluation window.
	YearSeconds = 31_536_000

	// MinSupplyBaseUnits seeds the supply floor at initialization: 1B whole
	// tokens, scaled by the mint's decimals.
	MinSupplyBaseUnits = 1_000_000_000

	// HighSupplyBaseUnits seeds the cap-regime threshold: 5B whole tokens,
	// scaled by the mint's decimals.
	HighSupplyBaseUnits = 5_000_000_000

	// FloorBufferBps is the 5% buffer above the supply floor below which no
	// burn is permitted.
	FloorBufferBps = 500
)

// DeriveMintAuthority returns the deterministic mint-authority address for a
// denom.
func DeriveMintAuthority(denom string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(MintAuthoritySeed), []byte(denom)))
}

// DeriveBurnTreasury returns the deterministic burn-treasury address for a
// denom. Automated burns may only draw from this account.
func DeriveBurnTreasury(denom string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(BurnTreasurySeed), []byte(denom)))
}

// PolicyParams are the fourteen tiered policy knobs, all in basis points.
// Thresholds classify the year-over-year growth or decline; rates size the
// resulting mint or burn relative to current supply.
type PolicyParams struct {
	// Growth / mint side
	MinGrowthForMintBps       uint32 `json:"min_growth_for_mint_bps"`
	MediumGrowthThresholdBps  uint32 `json:"medium_growth_threshold_bps"`
	HighGrowthThresholdBps    uint32 `json:"high_growth_threshold_bps"`
	ExtremeGrowthThresholdBps uint32 `json:"extreme_growth_threshold_bps"`
	MediumGrowthMintRateBps   uint32 `json:"medium_growth_mint_rate_bps"`
	HighGrowthMintRateBps     uint32 `json:"high_growth_mint_rate_bps"`
	PostCapMintRateBps        uint32 `json:"post_cap_mint_rate_bps"`

	// Decline / burn side
	MinDeclineForBurnBps       uint32 `json:"min_decline_for_burn_bps"`
	MediumDeclineThresholdBps  uint32 `json:"medium_decline_threshold_bps"`
	HighDeclineThresholdBps    uint32 `json:"high_decline_threshold_bps"`
	ExtremeDeclineThresholdBps uint32 `json:"extreme_decline_threshold_bps"`
	MediumDeclineBurnRateBps   uint32 `json:"medium_decline_burn_rate_bps"`
	HighDeclineBurnRateBps     uint32 `json:"high_decline_burn_rate_bps"`
	PostFloorBurnRateBps       uint32 `json:"post_floor_burn_rate_bps"`
}

// DefaultPolicyParams returns the documented tier table.
func DefaultPolicyParams() PolicyParams {
	return PolicyParams{
		MinGrowthForMintBps:       500,
		MediumGrowthThresholdBps:  500,
		HighGrowthThresholdBps:    1_000,
		ExtremeGrowthThresholdBps: 3_000,
		MediumGrowthMintRateBps:   500,
		HighGrowthMintRateBps:     1_000,
		PostCapMintRateBps:        200,

		MinDeclineForBurnBps:       500,
		MediumDeclineThresholdBps:  500,
		HighDeclineThresholdBps:    1_000,
		ExtremeDeclineThresholdBps: 3_000,
		MediumDeclineBurnRateBps:   500,
		HighDeclineBurnRateBps:     1_000,
		PostFloorBurnRateBps:       200,
	}
}

// Validate checks the tier table for internal consistency.
func (p PolicyParams) Validate() error {
	for _, v := range []struct {
		name string
		bps  uint32
	}{
		{"min_growth_for_mint_bps", p.MinGrowthForMintBps},
		{"medium_growth_threshold_bps", p.MediumGrowthThresholdBps},
		{"high_growth_threshold_bps", p.HighGrowthThresholdBps},
		{"extreme_growth_threshold_bps", p.ExtremeGrowthThresholdBps},
		{"medium_growth_mint_rate_bps", p.MediumGrowthMintRateBps},
		{"high_growth_mint_rate_bps", p.HighGrowthMintRateBps},
		{"post_cap_mint_rate_bps", p.PostCapMintRateBps},
		{"min_decline_for_burn_bps", p.MinDeclineForBurnBps},
		{"medium_decline_threshold_bps", p.MediumDeclineThresholdBps},
		{"high_decline_threshold_bps", p.HighDeclineThresholdBps},
		{"extreme_decline_threshold_bps", p.ExtremeDeclineThresholdBps},
		{"medium_decline_burn_rate_bps", p.MediumDeclineBurnRateBps},
		{"high_decline_burn_rate_bps", p.HighDeclineBurnRateBps},
		{"post_floor_burn_rate_bps", p.PostFloorBurnRateBps},
	} {
		if v.bps > BpsBase {
			return ErrInvalidParams.Wrapf("%s exceeds %d bps", v.name, BpsBase)
		}
	}
	if p.HighGrowthThresholdBps < p.MediumGrowthThresholdBps ||
		p.ExtremeGrowthThresholdBps < p.HighGrowthThresholdBps {
		return ErrInvalidParams.Wrap("growth thresholds must be non-decreasing")
	}
	if p.HighDeclineThresholdBps < p.MediumDeclineThresholdBps ||
		p.ExtremeDeclineThresholdBps < p.HighDeclineThresholdBps {
		return ErrInvalidParams.Wrap("decline thresholds must be non-decreasing")
	}
	return nil
}

// Controller is the autonomous supply controller for one denom.
type Controller struct {
	Authority          string `json:"authority"`
	Denom              string `json:"denom"`
	PriceOracleAssetId string `json:"price_oracle_asset_id"`

	// Price state, all prices in microUSD
	InitialPrice       uint64 `json:"initial_price"`
	YearStartPrice     uint64 `json:"year_start_price"`
	YearStartTimestamp int64  `json:"year_start_timestamp"`
	CurrentPrice       uint64 `json:"current_price"`
	LastPriceUpdate    int64  `json:"last_price_update"`

	// Mint bookkeeping
	LastMintTimestamp int64  `json:"last_mint_timestamp"`
	CurrentSupply     uint64 `json:"current_supply"`
	TokenDecimals     uint32 `json:"token_decimals"`

	// Floor and ceiling
	MinSupply           uint64 `json:"min_supply"`
	HighSupplyThreshold uint64 `json:"high_supply_threshold"`
	MaxSupply           uint64 `json:"max_supply"`

	// Derived signing authorities, recorded at initialization
	MintAuthority string `json:"mint_authority"`
	BurnTreasury  string `json:"burn_treasury"`

	Policy PolicyParams `json:"policy"`
}
