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

func (m *MsgUpdateOraclePrice) Reset()         { *m = MsgUpdateOraclePrice{} }
func (m *MsgUpdateOraclePrice) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateOraclePrice) ProtoMessage()    {}

func (m *MsgUpdateOraclePriceResponse) Reset()         { *m = MsgUpdateOraclePriceResponse{} }
func (m *MsgUpdateOraclePriceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateOraclePriceResponse) ProtoMessage()    {}

func (m *MsgUpdatePriceDirectly) Reset()         { *m = MsgUpdatePriceDirectly{} }
func (m *MsgUpdatePriceDirectly) String() string { return proto.CompactTextString(m) }
func (*MsgUpdatePriceDirectly) ProtoMessage()    {}

func (m *MsgUpdatePriceDirectlyResponse) Reset()         { *m = MsgUpdatePriceDirectlyResponse{} }
func (m *MsgUpdatePriceDirectlyResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdatePriceDirectlyResponse) ProtoMessage()    {}

func (m *MsgExecuteMint) Reset()         { *m = MsgExecuteMint{} }
func (m *MsgExecuteMint) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteMint) ProtoMessage()    {}

func (m *MsgExecuteMintResponse) Reset()         { *m = MsgExecuteMintResponse{} }
func (m *MsgExecuteMintResponse) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteMintResponse) ProtoMessage()    {}

func (m *MsgExecuteBurn) Reset()         { *m = MsgExecuteBurn{} }
func (m *MsgExecuteBurn) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteBurn) ProtoMessage()    {}

func (m *MsgExecuteBurnResponse) Reset()         { *m = MsgExecuteBurnResponse{} }
func (m *MsgExecuteBurnResponse) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteBurnResponse) ProtoMessage()    {}

func (m *MsgRecoverState) Reset()         { *m = MsgRecoverState{} }
func (m *MsgRecoverState) String() string { return proto.CompactTextString(m) }
func (*MsgRecoverState) ProtoMessage()    {}

func (m *MsgRecoverStateResponse) Reset()         { *m = MsgRecoverStateResponse{} }
func (m *MsgRecoverStateResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRecoverStateResponse) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MsgInitializeController)(nil), "meridian.supply.v1.MsgInitializeController")
	proto.RegisterType((*MsgInitializeControllerResponse)(nil), "meridian.supply.v1.MsgInitializeControllerResponse")
	proto.RegisterType((*MsgUpdateOraclePrice)(nil), "meridian.supply.v1.MsgUpdateOraclePrice")
	proto.RegisterType((*MsgUpdateOraclePriceResponse)(nil), "meridian.supply.v1.MsgUpdateOraclePriceResponse")
	proto.RegisterType((*MsgUpdatePriceDirectly)(nil), "meridian.supply.v1.MsgUpdatePriceDirectly")
	proto.RegisterType((*MsgUpdatePriceDirectlyResponse)(nil), "meridian.supply.v1.MsgUpdatePriceDirectlyResponse")
	proto.RegisterType((*MsgExecuteMint)(nil), "meridian.supply.v1.MsgExecuteMint")
	proto.RegisterType((*MsgExecuteMintResponse)(nil), "meridian.supply.v1.MsgExecuteMintResponse")
	proto.RegisterType((*MsgExecuteBurn)(nil), "meridian.supply.v1.MsgExecuteBurn")
	proto.RegisterType((*MsgExecuteBurnResponse)(nil), "meridian.supply.v1.MsgExecuteBurnResponse")
	proto.RegisterType((*MsgRecoverState)(nil), "meridian.supply.v1.MsgRecoverState")
	proto.RegisterType((*MsgRecoverStateResponse)(nil), "meridian.supply.v1.MsgRecoverStateResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "meridian.supply.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "meridian.supply.v1.MsgUpdateParamsResponse")
}
