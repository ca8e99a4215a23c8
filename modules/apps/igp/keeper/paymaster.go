package keeper

import (
	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// CreatePaymaster creates a paymaster with an empty balance at the address derived from
// salt. The balance is denominated in the current fee denom. An empty owner creates a
// paymaster whose configuration is immutable.
func (k Keeper) CreatePaymaster(ctx sdk.Context, salt common.Hash, owner, beneficiary sdk.AccAddress) (sdk.AccAddress, error) {
	if beneficiary.Empty() {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "beneficiary cannot be empty")
	}

	if k.bankKeeper.BlockedAddr(beneficiary) {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "%s is not allowed to receive funds", beneficiary)
	}

	paymaster := types.NewPaymaster(salt, owner, beneficiary, k.GetFeeDenom(ctx))
	addr := paymaster.GetAddress()
	if k.HasPaymaster(ctx, addr) {
		return nil, sdkerrors.Wrapf(types.ErrPaymasterExists, "paymaster %s with salt %s", addr, salt.Hex())
	}

	k.SetPaymaster(ctx, paymaster)

	EmitInitPaymaster(ctx, paymaster)
	k.Logger(ctx).Info("initialized interchain gas paymaster", "paymaster", paymaster.Address, "owner", paymaster.Owner, "beneficiary", paymaster.Beneficiary)

	return addr, nil
}

// SetPaymasterOwner replaces the owner of a paymaster. Passing an empty
// newOwner renounces ownership: this cannot be undone and permanently disables every
// owner-gated operation on the paymaster, including oracle, overhead and beneficiary
// updates.
func (k Keeper) SetPaymasterOwner(ctx sdk.Context, caller, addr, newOwner sdk.AccAddress) error {
	paymaster, err := k.authorizePaymasterOwner(ctx, caller, addr)
	if err != nil {
		return err
	}

	previousOwner := paymaster.Owner
	paymaster.Owner = ""
	if !newOwner.Empty() {
		paymaster.Owner = newOwner.String()
	}

	k.SetPaymaster(ctx, paymaster)

	EmitTransferOwnership(ctx, addr, previousOwner, paymaster.Owner)
	k.Logger(ctx).Info("transferred interchain gas paymaster ownership", "paymaster", paymaster.Address, "previous-owner", previousOwner, "owner", paymaster.Owner)

	return nil
}

// SetPaymasterBeneficiary replaces the account entitled to the claimed balance of a paymaster.
func (k Keeper) SetPaymasterBeneficiary(ctx sdk.Context, caller, addr, beneficiary sdk.AccAddress) error {
	paymaster, err := k.authorizePaymasterOwner(ctx, caller, addr)
	if err != nil {
		return err
	}

	if beneficiary.Empty() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "beneficiary cannot be empty")
	}

	if k.bankKeeper.BlockedAddr(beneficiary) {
		return sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "%s is not allowed to receive funds", beneficiary)
	}

	paymaster.Beneficiary = beneficiary.String()
	k.SetPaymaster(ctx, paymaster)

	EmitSetBeneficiary(ctx, addr, beneficiary)
	k.Logger(ctx).Info("set interchain gas paymaster beneficiary", "paymaster", paymaster.Address, "beneficiary", paymaster.Beneficiary)

	return nil
}

// authorizePaymasterOwner returns the paymaster at addr if caller is its owner.
func (k Keeper) authorizePaymasterOwner(ctx sdk.Context, caller, addr sdk.AccAddress) (types.Paymaster, error) {
	paymaster, found := k.GetPaymaster(ctx, addr)
	if !found {
		return types.Paymaster{}, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", addr)
	}

	if !paymaster.IsOwner(caller) {
		return types.Paymaster{}, sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the owner of paymaster %s", caller, addr)
	}

	return paymaster, nil
}
