package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/supply interfaces and
// concrete types on the provided LegacyAmino codec. These types are used for
// Amino JSON serialization and for the module's KV state encoding.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeController{}, "meridian/supply/MsgInitializeController", nil)
	cdc.RegisterConcrete(&MsgUpdateOraclePrice{}, "meridian/supply/MsgUpdateOraclePrice", nil)
	cdc.RegisterConcrete(&MsgUpdatePriceDirectly{}, "meridian/supply/MsgUpdatePriceDirectly", nil)
	cdc.RegisterConcrete(&MsgExecuteMint{}, "meridian/supply/MsgExecuteMint", nil)
	cdc.RegisterConcrete(&MsgExecuteBurn{}, "meridian/supply/MsgExecuteBurn", nil)
	cdc.RegisterConcrete(&MsgRecoverState{}, "meridian/supply/MsgRecoverState", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "meridian/supply/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/supply message types with the interface
// registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializeController{},
		&MsgUpdateOraclePrice{},
		&MsgUpdatePriceDirectly{},
		&MsgExecuteMint{},
		&MsgExecuteBurn{},
		&MsgRecoverState{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc is the module codec. State and sign bytes are amino-encoded; the
// message structs are hand-written rather than protoc-generated.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
