package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global igp module codec. Module state, genesis,
	// legacy queries and amino sign bytes are encoded with amino.
	ModuleCdc = amino
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}

// RegisterLegacyAminoCodec registers the concrete igp types on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitPaymaster{}, "igp/MsgInitPaymaster", nil)
	cdc.RegisterConcrete(&MsgInitOverheadPaymaster{}, "igp/MsgInitOverheadPaymaster", nil)
	cdc.RegisterConcrete(&MsgPayForGas{}, "igp/MsgPayForGas", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "igp/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgSetGasOracleConfigs{}, "igp/MsgSetGasOracleConfigs", nil)
	cdc.RegisterConcrete(&MsgSetDestinationGasOverheads{}, "igp/MsgSetDestinationGasOverheads", nil)
	cdc.RegisterConcrete(&MsgTransferPaymasterOwnership{}, "igp/MsgTransferPaymasterOwnership", nil)
	cdc.RegisterConcrete(&MsgTransferOverheadPaymasterOwnership{}, "igp/MsgTransferOverheadPaymasterOwnership", nil)
	cdc.RegisterConcrete(&MsgSetBeneficiary{}, "igp/MsgSetBeneficiary", nil)
}

// RegisterInterfaces registers the igp msgs as sdk.Msg implementations so that they
// can be packed into transactions.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgInitPaymaster{},
		&MsgInitOverheadPaymaster{},
		&MsgPayForGas{},
		&MsgClaim{},
		&MsgSetGasOracleConfigs{},
		&MsgSetDestinationGasOverheads{},
		&MsgTransferPaymasterOwnership{},
		&MsgTransferOverheadPaymasterOwnership{},
		&MsgSetBeneficiary{},
	)
}
