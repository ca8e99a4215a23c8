package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
)

var (
	_ legacytx.LegacyMsg = &MsgInitPaymaster{}
	_ legacytx.LegacyMsg = &MsgInitOverheadPaymaster{}
	_ legacytx.LegacyMsg = &MsgPayForGas{}
	_ legacytx.LegacyMsg = &MsgClaim{}
	_ legacytx.LegacyMsg = &MsgSetGasOracleConfigs{}
	_ legacytx.LegacyMsg = &MsgSetDestinationGasOverheads{}
	_ legacytx.LegacyMsg = &MsgTransferPaymasterOwnership{}
	_ legacytx.LegacyMsg = &MsgTransferOverheadPaymasterOwnership{}
	_ legacytx.LegacyMsg = &MsgSetBeneficiary{}
)

// msg types
const (
	TypeMsgInitPaymaster                      = "initPaymaster"
	TypeMsgInitOverheadPaymaster              = "initOverheadPaymaster"
	TypeMsgPayForGas                          = "payForGas"
	TypeMsgClaim                              = "claim"
	TypeMsgSetGasOracleConfigs                = "setGasOracleConfigs"
	TypeMsgSetDestinationGasOverheads         = "setDestinationGasOverheads"
	TypeMsgTransferPaymasterOwnership         = "transferPaymasterOwnership"
	TypeMsgTransferOverheadPaymasterOwnership = "transferOverheadPaymasterOwnership"
	TypeMsgSetBeneficiary                     = "setBeneficiary"
)

// MsgInitPaymaster creates a new interchain gas paymaster. An empty Owner creates a
// paymaster whose configuration can never be changed.
type MsgInitPaymaster struct {
	Sender      string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Salt        string `protobuf:"bytes,2,opt,name=salt,proto3" json:"salt" yaml:"salt"`
	Owner       string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty" yaml:"owner,omitempty"`
	Beneficiary string `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary" yaml:"beneficiary"`
}

// MsgInitPaymasterResponse returns the address of the created paymaster
type MsgInitPaymasterResponse struct {
	Address string `json:"address" yaml:"address"`
}

// NewMsgInitPaymaster creates a new instance of MsgInitPaymaster
func NewMsgInitPaymaster(sender, salt, owner, beneficiary string) *MsgInitPaymaster {
	return &MsgInitPaymaster{
		Sender:      sender,
		Salt:        salt,
		Owner:       owner,
		Beneficiary: beneficiary,
	}
}

// ValidateBasic performs a basic check of the MsgInitPaymaster fields
func (msg MsgInitPaymaster) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := ParseSalt(msg.Salt); err != nil {
		return err
	}

	if err := validateOptionalAddress(msg.Owner); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Owner into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Beneficiary); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Beneficiary into sdk.AccAddress")
	}

	return nil
}

// GetSigners returns the sender as the only signer
func (msg MsgInitPaymaster) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgInitPaymaster) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgInitPaymaster) Type() string {
	return TypeMsgInitPaymaster
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgInitPaymaster) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgInitOverheadPaymaster creates a new overhead interchain gas paymaster wrapping Inner.
type MsgInitOverheadPaymaster struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Salt   string `protobuf:"bytes,2,opt,name=salt,proto3" json:"salt" yaml:"salt"`
	Owner  string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty" yaml:"owner,omitempty"`
	Inner  string `protobuf:"bytes,4,opt,name=inner,proto3" json:"inner" yaml:"inner"`
}

// MsgInitOverheadPaymasterResponse returns the address of the created overhead paymaster
type MsgInitOverheadPaymasterResponse struct {
	Address string `json:"address" yaml:"address"`
}

// NewMsgInitOverheadPaymaster creates a new instance of MsgInitOverheadPaymaster
func NewMsgInitOverheadPaymaster(sender, salt, owner, inner string) *MsgInitOverheadPaymaster {
	return &MsgInitOverheadPaymaster{
		Sender: sender,
		Salt:   salt,
		Owner:  owner,
		Inner:  inner,
	}
}

// ValidateBasic performs a basic check of the MsgInitOverheadPaymaster fields
func (msg MsgInitOverheadPaymaster) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := ParseSalt(msg.Salt); err != nil {
		return err
	}

	if err := validateOptionalAddress(msg.Owner); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Owner into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Inner); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Inner into sdk.AccAddress")
	}

	return nil
}

// GetSigners returns the sender as the only signer
func (msg MsgInitOverheadPaymaster) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgInitOverheadPaymaster) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgInitOverheadPaymaster) Type() string {
	return TypeMsgInitOverheadPaymaster
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgInitOverheadPaymaster) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgPayForGas pays for gas to deliver a message on a destination domain. Paymaster may
// be the address of a paymaster or of an overhead paymaster.
type MsgPayForGas struct {
	Sender            string  `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster         string  `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
	MessageId         string  `protobuf:"bytes,3,opt,name=message_id,json=messageId,proto3" json:"message_id" yaml:"message_id"`
	DestinationDomain uint32  `protobuf:"varint,4,opt,name=destination_domain,json=destinationDomain,proto3" json:"destination_domain" yaml:"destination_domain"`
	GasAmount         uint64  `protobuf:"varint,5,opt,name=gas_amount,json=gasAmount,proto3" json:"gas_amount" yaml:"gas_amount"`
	Payment           sdk.Int `protobuf:"bytes,6,opt,name=payment,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Int" json:"payment" yaml:"payment"`
}

// MsgPayForGasResponse returns the sequence assigned to the payment
type MsgPayForGasResponse struct {
	Sequence uint64 `json:"sequence" yaml:"sequence"`
}

// NewMsgPayForGas creates a new instance of MsgPayForGas
func NewMsgPayForGas(sender, paymaster, messageID string, destinationDomain uint32, gasAmount uint64, payment sdk.Int) *MsgPayForGas {
	return &MsgPayForGas{
		Sender:            sender,
		Paymaster:         paymaster,
		MessageId:         messageID,
		DestinationDomain: destinationDomain,
		GasAmount:         gasAmount,
		Payment:           payment,
	}
}

// ValidateBasic performs a basic check of the MsgPayForGas fields
func (msg MsgPayForGas) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Paymaster); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Paymaster into sdk.AccAddress")
	}

	if _, err := ParseMessageID(msg.MessageId); err != nil {
		return err
	}

	if msg.Payment.IsNil() || msg.Payment.IsNegative() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "payment must be non-negative, got %v", msg.Payment)
	}

	return nil
}

// GetSigners returns the sender as the only signer
func (msg MsgPayForGas) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgPayForGas) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgPayForGas) Type() string {
	return TypeMsgPayForGas
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgPayForGas) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgClaim sends the accumulated balance of a paymaster to its beneficiary.
type MsgClaim struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster string `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
}

// MsgClaimResponse returns the claimed amount
type MsgClaimResponse struct {
	Amount sdk.Coin `json:"amount" yaml:"amount"`
}

// NewMsgClaim creates a new instance of MsgClaim
func NewMsgClaim(sender, paymaster string) *MsgClaim {
	return &MsgClaim{Sender: sender, Paymaster: paymaster}
}

// ValidateBasic performs a basic check of the MsgClaim fields
func (msg MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Paymaster); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Paymaster into sdk.AccAddress")
	}

	return nil
}

// GetSigners returns the sender as the only signer
func (msg MsgClaim) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgClaim) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgClaim) Type() string {
	return TypeMsgClaim
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgClaim) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgSetGasOracleConfigs sets or removes the remote gas data of a paymaster for a batch of domains.
type MsgSetGasOracleConfigs struct {
	Sender    string            `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster string            `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
	Configs   []GasOracleConfig `protobuf:"bytes,3,rep,name=configs" json:"configs" yaml:"configs"`
}

// MsgSetGasOracleConfigsResponse defines the MsgSetGasOracleConfigs response type
type MsgSetGasOracleConfigsResponse struct{}

// NewMsgSetGasOracleConfigs creates a new instance of MsgSetGasOracleConfigs
func NewMsgSetGasOracleConfigs(sender, paymaster string, configs []GasOracleConfig) *MsgSetGasOracleConfigs {
	return &MsgSetGasOracleConfigs{Sender: sender, Paymaster: paymaster, Configs: configs}
}

// ValidateBasic performs a basic check of the MsgSetGasOracleConfigs fields
func (msg MsgSetGasOracleConfigs) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Paymaster); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Paymaster into sdk.AccAddress")
	}

	return ValidateGasOracleConfigs(msg.Configs)
}

// GetSigners returns the sender as the only signer
func (msg MsgSetGasOracleConfigs) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgSetGasOracleConfigs) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgSetGasOracleConfigs) Type() string {
	return TypeMsgSetGasOracleConfigs
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgSetGasOracleConfigs) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgSetDestinationGasOverheads sets or clears the gas overheads of a paymaster or an
// overhead paymaster for a batch of domains.
type MsgSetDestinationGasOverheads struct {
	Sender    string              `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster string              `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
	Configs   []GasOverheadConfig `protobuf:"bytes,3,rep,name=configs" json:"configs" yaml:"configs"`
}

// MsgSetDestinationGasOverheadsResponse defines the MsgSetDestinationGasOverheads response type
type MsgSetDestinationGasOverheadsResponse struct{}

// NewMsgSetDestinationGasOverheads creates a new instance of MsgSetDestinationGasOverheads
func NewMsgSetDestinationGasOverheads(sender, paymaster string, configs []GasOverheadConfig) *MsgSetDestinationGasOverheads {
	return &MsgSetDestinationGasOverheads{Sender: sender, Paymaster: paymaster, Configs: configs}
}

// ValidateBasic performs a basic check of the MsgSetDestinationGasOverheads fields
func (msg MsgSetDestinationGasOverheads) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Paymaster); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Paymaster into sdk.AccAddress")
	}

	return ValidateGasOverheadConfigs(msg.Configs)
}

// GetSigners returns the sender as the only signer
func (msg MsgSetDestinationGasOverheads) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgSetDestinationGasOverheads) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgSetDestinationGasOverheads) Type() string {
	return TypeMsgSetDestinationGasOverheads
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgSetDestinationGasOverheads) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgTransferPaymasterOwnership replaces the owner of a paymaster. An empty NewOwner
// renounces ownership permanently: no owner-gated operation can succeed afterwards.
type MsgTransferPaymasterOwnership struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster string `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
	NewOwner  string `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty" yaml:"new_owner,omitempty"`
}

// MsgTransferPaymasterOwnershipResponse defines the MsgTransferPaymasterOwnership response type
type MsgTransferPaymasterOwnershipResponse struct{}

// NewMsgTransferPaymasterOwnership creates a new instance of MsgTransferPaymasterOwnership
func NewMsgTransferPaymasterOwnership(sender, paymaster, newOwner string) *MsgTransferPaymasterOwnership {
	return &MsgTransferPaymasterOwnership{Sender: sender, Paymaster: paymaster, NewOwner: newOwner}
}

// ValidateBasic performs a basic check of the MsgTransferPaymasterOwnership fields
func (msg MsgTransferPaymasterOwnership) ValidateBasic() error {
	return validateOwnershipTransfer(msg.Sender, msg.Paymaster, msg.NewOwner)
}

// GetSigners returns the sender as the only signer
func (msg MsgTransferPaymasterOwnership) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgTransferPaymasterOwnership) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgTransferPaymasterOwnership) Type() string {
	return TypeMsgTransferPaymasterOwnership
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgTransferPaymasterOwnership) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgTransferOverheadPaymasterOwnership replaces the owner of an overhead paymaster.
// An empty NewOwner renounces ownership permanently.
type MsgTransferOverheadPaymasterOwnership struct {
	Sender            string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	OverheadPaymaster string `protobuf:"bytes,2,opt,name=overhead_paymaster,json=overheadPaymaster,proto3" json:"overhead_paymaster" yaml:"overhead_paymaster"`
	NewOwner          string `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty" yaml:"new_owner,omitempty"`
}

// MsgTransferOverheadPaymasterOwnershipResponse defines the MsgTransferOverheadPaymasterOwnership response type
type MsgTransferOverheadPaymasterOwnershipResponse struct{}

// NewMsgTransferOverheadPaymasterOwnership creates a new instance of MsgTransferOverheadPaymasterOwnership
func NewMsgTransferOverheadPaymasterOwnership(sender, overheadPaymaster, newOwner string) *MsgTransferOverheadPaymasterOwnership {
	return &MsgTransferOverheadPaymasterOwnership{Sender: sender, OverheadPaymaster: overheadPaymaster, NewOwner: newOwner}
}

// ValidateBasic performs a basic check of the MsgTransferOverheadPaymasterOwnership fields
func (msg MsgTransferOverheadPaymasterOwnership) ValidateBasic() error {
	return validateOwnershipTransfer(msg.Sender, msg.OverheadPaymaster, msg.NewOwner)
}

// GetSigners returns the sender as the only signer
func (msg MsgTransferOverheadPaymasterOwnership) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgTransferOverheadPaymasterOwnership) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgTransferOverheadPaymasterOwnership) Type() string {
	return TypeMsgTransferOverheadPaymasterOwnership
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgTransferOverheadPaymasterOwnership) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// MsgSetBeneficiary replaces the beneficiary of a paymaster.
type MsgSetBeneficiary struct {
	Sender      string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender" yaml:"sender"`
	Paymaster   string `protobuf:"bytes,2,opt,name=paymaster,proto3" json:"paymaster" yaml:"paymaster"`
	Beneficiary string `protobuf:"bytes,3,opt,name=beneficiary,proto3" json:"beneficiary" yaml:"beneficiary"`
}

// MsgSetBeneficiaryResponse defines the MsgSetBeneficiary response type
type MsgSetBeneficiaryResponse struct{}

// NewMsgSetBeneficiary creates a new instance of MsgSetBeneficiary
func NewMsgSetBeneficiary(sender, paymaster, beneficiary string) *MsgSetBeneficiary {
	return &MsgSetBeneficiary{Sender: sender, Paymaster: paymaster, Beneficiary: beneficiary}
}

// ValidateBasic performs a basic check of the MsgSetBeneficiary fields
func (msg MsgSetBeneficiary) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Paymaster); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Paymaster into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(msg.Beneficiary); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Beneficiary into sdk.AccAddress")
	}

	return nil
}

// GetSigners returns the sender as the only signer
func (msg MsgSetBeneficiary) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddressFromBech32(msg.Sender)}
}

// Route implements legacytx.LegacyMsg
func (msg MsgSetBeneficiary) Route() string {
	return RouterKey
}

// Type implements legacytx.LegacyMsg
func (msg MsgSetBeneficiary) Type() string {
	return TypeMsgSetBeneficiary
}

// GetSignBytes implements legacytx.LegacyMsg
func (msg MsgSetBeneficiary) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func validateOwnershipTransfer(sender, instance, newOwner string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.Sender into sdk.AccAddress")
	}

	if _, err := sdk.AccAddressFromBech32(instance); err != nil {
		return sdkerrors.Wrap(err, "failed to convert paymaster address into sdk.AccAddress")
	}

	if err := validateOptionalAddress(newOwner); err != nil {
		return sdkerrors.Wrap(err, "failed to convert msg.NewOwner into sdk.AccAddress")
	}

	return nil
}

// MsgServer is the server API for the igp Msg service
type MsgServer interface {
	InitPaymaster(context.Context, *MsgInitPaymaster) (*MsgInitPaymasterResponse, error)
	InitOverheadPaymaster(context.Context, *MsgInitOverheadPaymaster) (*MsgInitOverheadPaymasterResponse, error)
	PayForGas(context.Context, *MsgPayForGas) (*MsgPayForGasResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	SetGasOracleConfigs(context.Context, *MsgSetGasOracleConfigs) (*MsgSetGasOracleConfigsResponse, error)
	SetDestinationGasOverheads(context.Context, *MsgSetDestinationGasOverheads) (*MsgSetDestinationGasOverheadsResponse, error)
	TransferPaymasterOwnership(context.Context, *MsgTransferPaymasterOwnership) (*MsgTransferPaymasterOwnershipResponse, error)
	TransferOverheadPaymasterOwnership(context.Context, *MsgTransferOverheadPaymasterOwnership) (*MsgTransferOverheadPaymasterOwnershipResponse, error)
	SetBeneficiary(context.Context, *MsgSetBeneficiary) (*MsgSetBeneficiaryResponse, error)
}
