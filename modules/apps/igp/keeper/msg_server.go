package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/internal/telemetry"
	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

var _ types.MsgServer = Keeper{}

// InitPaymaster defines a rpc handler method for MsgInitPaymaster.
func (k Keeper) InitPaymaster(goCtx context.Context, msg *types.MsgInitPaymaster) (*types.MsgInitPaymasterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	salt, err := types.ParseSalt(msg.Salt)
	if err != nil {
		return nil, err
	}

	owner, err := optionalAddress(msg.Owner)
	if err != nil {
		return nil, err
	}

	beneficiary, err := sdk.AccAddressFromBech32(msg.Beneficiary)
	if err != nil {
		return nil, err
	}

	addr, err := k.CreatePaymaster(ctx, salt, owner, beneficiary)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitPaymasterResponse{Address: addr.String()}, nil
}

// InitOverheadPaymaster defines a rpc handler method for MsgInitOverheadPaymaster.
func (k Keeper) InitOverheadPaymaster(goCtx context.Context, msg *types.MsgInitOverheadPaymaster) (*types.MsgInitOverheadPaymasterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	salt, err := types.ParseSalt(msg.Salt)
	if err != nil {
		return nil, err
	}

	owner, err := optionalAddress(msg.Owner)
	if err != nil {
		return nil, err
	}

	inner, err := sdk.AccAddressFromBech32(msg.Inner)
	if err != nil {
		return nil, err
	}

	addr, err := k.CreateOverheadPaymaster(ctx, salt, owner, inner)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitOverheadPaymasterResponse{Address: addr.String()}, nil
}

// PayForGas defines a rpc handler method for MsgPayForGas. The paymaster address may
// refer to a paymaster or to an overhead paymaster.
func (k Keeper) PayForGas(goCtx context.Context, msg *types.MsgPayForGas) (*types.MsgPayForGasResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	addr, err := sdk.AccAddressFromBech32(msg.Paymaster)
	if err != nil {
		return nil, err
	}

	messageID, err := types.ParseMessageID(msg.MessageId)
	if err != nil {
		return nil, err
	}

	gasPaymaster, err := k.GasPaymaster(ctx, addr)
	if err != nil {
		return nil, err
	}

	sequence, err := gasPaymaster.PayForGas(ctx, sender, messageID, msg.DestinationDomain, msg.GasAmount, msg.Payment)
	if err != nil {
		return nil, err
	}

	defer telemetry.ReportPayForGas(msg.Paymaster, msg.DestinationDomain, msg.GasAmount, sdk.NewCoin(gasPaymaster.Denom(ctx), msg.Payment))

	return &types.MsgPayForGasResponse{Sequence: sequence}, nil
}

// Claim defines a rpc handler method for MsgClaim.
func (k Keeper) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	addr, err := sdk.AccAddressFromBech32(msg.Paymaster)
	if err != nil {
		return nil, err
	}

	claimed, err := k.ClaimBalance(ctx, sender, addr)
	if err != nil {
		return nil, err
	}

	if claimed.IsPositive() {
		defer telemetry.ReportClaim(msg.Paymaster, claimed)
	}

	return &types.MsgClaimResponse{Amount: claimed}, nil
}

// SetGasOracleConfigs defines a rpc handler method for MsgSetGasOracleConfigs.
func (k Keeper) SetGasOracleConfigs(goCtx context.Context, msg *types.MsgSetGasOracleConfigs) (*types.MsgSetGasOracleConfigsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, addr, err := senderAndInstance(msg.Sender, msg.Paymaster)
	if err != nil {
		return nil, err
	}

	if err := k.ApplyGasOracleConfigs(ctx, sender, addr, msg.Configs); err != nil {
		return nil, err
	}

	return &types.MsgSetGasOracleConfigsResponse{}, nil
}

// SetDestinationGasOverheads defines a rpc handler method for MsgSetDestinationGasOverheads.
func (k Keeper) SetDestinationGasOverheads(goCtx context.Context, msg *types.MsgSetDestinationGasOverheads) (*types.MsgSetDestinationGasOverheadsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, addr, err := senderAndInstance(msg.Sender, msg.Paymaster)
	if err != nil {
		return nil, err
	}

	if err := k.ApplyGasOverheadConfigs(ctx, sender, addr, msg.Configs); err != nil {
		return nil, err
	}

	return &types.MsgSetDestinationGasOverheadsResponse{}, nil
}

// TransferPaymasterOwnership defines a rpc handler method for MsgTransferPaymasterOwnership.
func (k Keeper) TransferPaymasterOwnership(goCtx context.Context, msg *types.MsgTransferPaymasterOwnership) (*types.MsgTransferPaymasterOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, addr, err := senderAndInstance(msg.Sender, msg.Paymaster)
	if err != nil {
		return nil, err
	}

	newOwner, err := optionalAddress(msg.NewOwner)
	if err != nil {
		return nil, err
	}

	if err := k.SetPaymasterOwner(ctx, sender, addr, newOwner); err != nil {
		return nil, err
	}

	return &types.MsgTransferPaymasterOwnershipResponse{}, nil
}

// TransferOverheadPaymasterOwnership defines a rpc handler method for MsgTransferOverheadPaymasterOwnership.
func (k Keeper) TransferOverheadPaymasterOwnership(goCtx context.Context, msg *types.MsgTransferOverheadPaymasterOwnership) (*types.MsgTransferOverheadPaymasterOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, addr, err := senderAndInstance(msg.Sender, msg.OverheadPaymaster)
	if err != nil {
		return nil, err
	}

	newOwner, err := optionalAddress(msg.NewOwner)
	if err != nil {
		return nil, err
	}

	if err := k.SetOverheadPaymasterOwner(ctx, sender, addr, newOwner); err != nil {
		return nil, err
	}

	return &types.MsgTransferOverheadPaymasterOwnershipResponse{}, nil
}

// SetBeneficiary defines a rpc handler method for MsgSetBeneficiary.
func (k Keeper) SetBeneficiary(goCtx context.Context, msg *types.MsgSetBeneficiary) (*types.MsgSetBeneficiaryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, addr, err := senderAndInstance(msg.Sender, msg.Paymaster)
	if err != nil {
		return nil, err
	}

	beneficiary, err := sdk.AccAddressFromBech32(msg.Beneficiary)
	if err != nil {
		return nil, err
	}

	if err := k.SetPaymasterBeneficiary(ctx, sender, addr, beneficiary); err != nil {
		return nil, err
	}

	return &types.MsgSetBeneficiaryResponse{}, nil
}

func senderAndInstance(sender, instance string) (sdk.AccAddress, sdk.AccAddress, error) {
	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return nil, nil, sdkerrors.Wrap(err, "failed to convert sender into sdk.AccAddress")
	}

	instanceAddr, err := sdk.AccAddressFromBech32(instance)
	if err != nil {
		return nil, nil, sdkerrors.Wrap(err, "failed to convert instance into sdk.AccAddress")
	}

	return senderAddr, instanceAddr, nil
}

// optionalAddress returns a nil address for an empty string.
func optionalAddress(s string) (sdk.AccAddress, error) {
	if s == "" {
		return nil, nil
	}

	return sdk.AccAddressFromBech32(s)
}
