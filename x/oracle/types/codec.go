package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle interfaces and
// concrete types on the provided LegacyAmino codec. These types are used for
// Amino JSON serialization and for the module's KV state encoding.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeController{}, "meridian/oracle/MsgInitializeController", nil)
	cdc.RegisterConcrete(&MsgAddOracleSource{}, "meridian/oracle/MsgAddOracleSource", nil)
	cdc.RegisterConcrete(&MsgUpdateConsensus{}, "meridian/oracle/MsgUpdateConsensus", nil)
	cdc.RegisterConcrete(&MsgSetEmergencyPrice{}, "meridian/oracle/MsgSetEmergencyPrice", nil)
	cdc.RegisterConcrete(&MsgClearEmergencyPrice{}, "meridian/oracle/MsgClearEmergencyPrice", nil)
	cdc.RegisterConcrete(&MsgActivateCircuitBreaker{}, "meridian/oracle/MsgActivateCircuitBreaker", nil)
	cdc.RegisterConcrete(&MsgResetCircuitBreaker{}, "meridian/oracle/MsgResetCircuitBreaker", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "meridian/oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/oracle message types with the interface
// registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializeController{},
		&MsgAddOracleSource{},
		&MsgUpdateConsensus{},
		&MsgSetEmergencyPrice{},
		&MsgClearEmergencyPrice{},
		&MsgActivateCircuitBreaker{},
		&MsgResetCircuitBreaker{},
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
