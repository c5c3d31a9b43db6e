package types

import (
	"github.com/cosmos/gogoproto/proto"
)

// Hand-rolled proto.Message implementations for the module's messages. The
// module serializes with the amino codec; these stubs satisfy the sdk.Msg
// contract and register stable type names for the interface registry.

func (m *MsgInitializeController) Reset()         { *m = MsgInitializeController{} }
func (m *MsgInitializeController) String() string { return proto.CompactTextString(m) }
func (*MsgInitializeController) ProtoMessage()    {}

func (m *MsgInitializeControllerResponse) Reset()         { *m = MsgInitializeControllerResponse{} }
func (m *MsgInitializeControllerResponse) String() string { return proto.CompactTextString(m) }
func (*MsgInitializeControllerResponse) ProtoMessage()    {}

func (m *MsgAddOracleSource) Reset()         { *m = MsgAddOracleSource{} }
func (m *MsgAddOracleSource) String() string { return proto.CompactTextString(m) }
func (*MsgAddOracleSource) ProtoMessage()    {}

func (m *MsgAddOracleSourceResponse) Reset()         { *m = MsgAddOracleSourceResponse{} }
func (m *MsgAddOracleSourceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgAddOracleSourceResponse) ProtoMessage()    {}

func (m *MsgUpdateConsensus) Reset()         { *m = MsgUpdateConsensus{} }
func (m *MsgUpdateConsensus) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateConsensus) ProtoMessage()    {}

func (m *MsgUpdateConsensusResponse) Reset()         { *m = MsgUpdateConsensusResponse{} }
func (m *MsgUpdateConsensusResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateConsensusResponse) ProtoMessage()    {}

func (m *MsgSetEmergencyPrice) Reset()         { *m = MsgSetEmergencyPrice{} }
func (m *MsgSetEmergencyPrice) String() string { return proto.CompactTextString(m) }
func (*MsgSetEmergencyPrice) ProtoMessage()    {}

func (m *MsgSetEmergencyPriceResponse) Reset()         { *m = MsgSetEmergencyPriceResponse{} }
func (m *MsgSetEmergencyPriceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSetEmergencyPriceResponse) ProtoMessage()    {}

func (m *MsgClearEmergencyPrice) Reset()         { *m = MsgClearEmergencyPrice{} }
func (m *MsgClearEmergencyPrice) String() string { return proto.CompactTextString(m) }
func (*MsgClearEmergencyPrice) ProtoMessage()    {}

func (m *MsgClearEmergencyPriceResponse) Reset()         { *m = MsgClearEmergencyPriceResponse{} }
func (m *MsgClearEmergencyPriceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgClearEmergencyPriceResponse) ProtoMessage()    {}

func (m *MsgActivateCircuitBreaker) Reset()         { *m = MsgActivateCircuitBreaker{} }
func (m *MsgActivateCircuitBreaker) String() string { return proto.CompactTextString(m) }
func (*MsgActivateCircuitBreaker) ProtoMessage()    {}

func (m *MsgActivateCircuitBreakerResponse) Reset()         { *m = MsgActivateCircuitBreakerResponse{} }
func (m *MsgActivateCircuitBreakerResponse) String() string { return proto.CompactTextString(m) }
func (*MsgActivateCircuitBreakerResponse) ProtoMessage()    {}

func (m *MsgResetCircuitBreaker) Reset()         { *m = MsgResetCircuitBreaker{} }
func (m *MsgResetCircuitBreaker) String() string { return proto.CompactTextString(m) }
func (*MsgResetCircuitBreaker) ProtoMessage()    {}

func (m *MsgResetCircuitBreakerResponse) Reset()         { *m = MsgResetCircuitBreakerResponse{} }
func (m *MsgResetCircuitBreakerResponse) String() string { return proto.CompactTextString(m) }
func (*MsgResetCircuitBreakerResponse) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MsgInitializeController)(nil), "meridian.oracle.v1.MsgInitializeController")
	proto.RegisterType((*MsgInitializeControllerResponse)(nil), "meridian.oracle.v1.MsgInitializeControllerResponse")
	proto.RegisterType((*MsgAddOracleSource)(nil), "meridian.oracle.v1.MsgAddOracleSource")
	proto.RegisterType((*MsgAddOracleSourceResponse)(nil), "meridian.oracle.v1.MsgAddOracleSourceResponse")
	proto.RegisterType((*MsgUpdateConsensus)(nil), "meridian.oracle.v1.MsgUpdateConsensus")
	proto.RegisterType((*MsgUpdateConsensusResponse)(nil), "meridian.oracle.v1.MsgUpdateConsensusResponse")
	proto.RegisterType((*MsgSetEmergencyPrice)(nil), "meridian.oracle.v1.MsgSetEmergencyPrice")
	proto.RegisterType((*MsgSetEmergencyPriceResponse)(nil), "meridian.oracle.v1.MsgSetEmergencyPriceResponse")
	proto.RegisterType((*MsgClearEmergencyPrice)(nil), "meridian.oracle.v1.MsgClearEmergencyPrice")
	proto.RegisterType((*MsgClearEmergencyPriceResponse)(nil), "meridian.oracle.v1.MsgClearEmergencyPriceResponse")
	proto.RegisterType((*MsgActivateCircuitBreaker)(nil), "meridian.oracle.v1.MsgActivateCircuitBreaker")
	proto.RegisterType((*MsgActivateCircuitBreakerResponse)(nil), "meridian.oracle.v1.MsgActivateCircuitBreakerResponse")
	proto.RegisterType((*MsgResetCircuitBreaker)(nil), "meridian.oracle.v1.MsgResetCircuitBreaker")
	proto.RegisterType((*MsgResetCircuitBreakerResponse)(nil), "meridian.oracle.v1.MsgResetCircuitBreakerResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "meridian.oracle.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "meridian.oracle.v1.MsgUpdateParamsResponse")
}
