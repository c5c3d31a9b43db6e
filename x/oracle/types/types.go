package types

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Basis point and fixed-point constants shared across the consensus path.
const (
	// BpsBase is the basis-point denominator (10,000 bps = 100%).
	BpsBase = 10_000

	// PriceDecimals is the canonical fixed-point precision for prices and
	// confidence intervals: 6 decimal places (microUSD).
	PriceDecimals = 6

	// PriceScale is 10^PriceDecimals.
	PriceScale = 1_000_000

	// MaxSourceWeight bounds the stored per-source weight.
	MaxSourceWeight = 100

	// MaxConsecutiveFailures is the saturation ceiling for the per-source
	// failure counter.
	MaxConsecutiveFailures = 255

	// YearSeconds is the evaluation window anchoring growth measurement.
	YearSeconds = 31_536_000
)

// ProviderKind identifies the wire format of a raw price-feed record. The set
// is closed: dispatch is by explicit tag, never inferred from account
// ownership.
type ProviderKind int32

const (
	// ProviderUnspecified is the zero value and always invalid.
	ProviderUnspecified ProviderKind = iota

	// ProviderPyth exposes price/exponent/confidence/status/publish-time.
	ProviderPyth

	// ProviderChainlink exposes a decimal answer, a standard-deviation field
	// and a round-open timestamp.
	ProviderChainlink

	// ProviderBand is reserved; records carrying it are rejected until an
	// adapter lands.
	ProviderBand

	// ProviderCustom carries values already in canonical 6-decimal form.
	ProviderCustom
)

// String implements fmt.Stringer.
func (p ProviderKind) String() string {
	switch p {
	case ProviderPyth:
		return "pyth"
	case ProviderChainlink:
		return "chainlink"
	case ProviderBand:
		return "band"
	case ProviderCustom:
		return "custom"
	default:
		return "unspecified"
	}
}

// Valid reports whether the kind is a known provider tag.
func (p ProviderKind) Valid() bool {
	switch p {
	case ProviderPyth, ProviderChainlink, ProviderBand, ProviderCustom:
		return true
	default:
		return false
	}
}

// ProviderKindFromString parses the CLI/genesis spelling of a provider tag.
func ProviderKindFromString(s string) ProviderKind {
	switch s {
	case "pyth":
		return ProviderPyth
	case "chainlink":
		return ProviderChainlink
	case "band":
		return ProviderBand
	case "custom":
		return ProviderCustom
	default:
		return ProviderUnspecified
	}
}

// PythStatus values for the Pyth-shaped record. Only Trading is usable.
const (
	PythStatusUnknown int32 = iota
	PythStatusTrading
	PythStatusHalted
	PythStatusAuction
)

// PythRecord is the raw Pyth-shaped feed payload.
type PythRecord struct {
	Price       int64  `json:"price"`
	Conf        uint64 `json:"conf"`
	Expo        int32  `json:"expo"`
	Status      int32  `json:"status"`
	PublishTime int64  `json:"publish_time"`
}

// ChainlinkRecord is the raw Chainlink-shaped feed payload.
type ChainlinkRecord struct {
	Answer        int64  `json:"answer"`
	Decimals      uint32 `json:"decimals"`
	StdDev        uint64 `json:"std_dev"`
	RoundOpenedAt int64  `json:"round_opened_at"`
}

// CustomRecord carries a reading already expressed in canonical microUSD.
type CustomRecord struct {
	Price       uint64 `json:"price"`
	Confidence  uint64 `json:"confidence"`
	PublishedAt int64  `json:"published_at"`
}

// FeedRecord is the tagged union submitted for one registered source. Exactly
// one payload pointer matching Provider must be set.
type FeedRecord struct {
	SourceId  string           `json:"source_id"`
	Provider  ProviderKind     `json:"provider"`
	Pyth      *PythRecord      `json:"pyth,omitempty"`
	Chainlink *ChainlinkRecord `json:"chainlink,omitempty"`
	Custom    *CustomRecord    `json:"custom,omitempty"`
}

// PriceData is the canonical normalized output of the adapter: price and
// confidence in microUSD plus the upstream publish timestamp.
type PriceData struct {
	Price       uint64 `json:"price"`
	Confidence  uint64 `json:"confidence"`
	PublishedAt int64  `json:"published_at"`
}
