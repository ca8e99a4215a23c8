package keeper

import (
	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// CreateOverheadPaymaster creates an overhead paymaster wrapping the existing paymaster
// inner. Its owner and overhead registry are independent of the inner paymaster's.
func (k Keeper) CreateOverheadPaymaster(ctx sdk.Context, salt common.Hash, owner, inner sdk.AccAddress) (sdk.AccAddress, error) {
	if !k.HasPaymaster(ctx, inner) {
		return nil, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "inner paymaster %s", inner)
	}

	overheadPaymaster := types.NewOverheadPaymaster(salt, owner, inner)
	addr := overheadPaymaster.GetAddress()
	if k.HasOverheadPaymaster(ctx, addr) {
		return nil, sdkerrors.Wrapf(types.ErrPaymasterExists, "overhead paymaster %s with salt %s", addr, salt.Hex())
	}

	k.SetOverheadPaymaster(ctx, overheadPaymaster)

	EmitInitOverheadPaymaster(ctx, overheadPaymaster)
	k.Logger(ctx).Info("initialized overhead interchain gas paymaster", "overhead-paymaster", overheadPaymaster.Address, "owner", overheadPaymaster.Owner, "inner", overheadPaymaster.Inner)

	return addr, nil
}

// SetOverheadPaymasterOwner replaces the owner of an overhead paymaster.
// Passing an empty newOwner renounces ownership permanently: the overhead registry of
// the overhead paymaster can never be changed again.
func (k Keeper) SetOverheadPaymasterOwner(ctx sdk.Context, caller, addr, newOwner sdk.AccAddress) error {
	overheadPaymaster, found := k.GetOverheadPaymaster(ctx, addr)
	if !found {
		return sdkerrors.Wrapf(types.ErrOverheadPaymasterNotFound, "address %s", addr)
	}

	if !overheadPaymaster.IsOwner(caller) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the owner of overhead paymaster %s", caller, addr)
	}

	previousOwner := overheadPaymaster.Owner
	overheadPaymaster.Owner = ""
	if !newOwner.Empty() {
		overheadPaymaster.Owner = newOwner.String()
	}

	k.SetOverheadPaymaster(ctx, overheadPaymaster)

	EmitTransferOwnership(ctx, addr, previousOwner, overheadPaymaster.Owner)
	k.Logger(ctx).Info("transferred overhead interchain gas paymaster ownership", "overhead-paymaster", overheadPaymaster.Address, "previous-owner", previousOwner, "owner", overheadPaymaster.Owner)

	return nil
}

// QuoteGasPaymentWithOverhead quotes a payment through an overhead paymaster: its own
// overhead for the domain is added to gasAmount before the inner paymaster quotes it.
func (k Keeper) QuoteGasPaymentWithOverhead(ctx sdk.Context, addr sdk.AccAddress, domain uint32, gasAmount uint64) (sdk.Int, error) {
	overheadPaymaster, adjustedGas, err := k.applyGasOverhead(ctx, addr, domain, gasAmount)
	if err != nil {
		return sdk.Int{}, err
	}

	return k.QuoteGasPaymentWithPaymaster(ctx, overheadPaymaster.GetInner(), domain, adjustedGas)
}

// PayForGasWithOverhead pays through an overhead paymaster: the overhead adjusted gas
// amount and the unchanged payment are forwarded to the inner paymaster, which records
// the payment and keeps the funds.
func (k Keeper) PayForGasWithOverhead(
	ctx sdk.Context, payer, addr sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Int,
) (uint64, error) {
	overheadPaymaster, adjustedGas, err := k.applyGasOverhead(ctx, addr, domain, gasAmount)
	if err != nil {
		return 0, err
	}

	return k.PayForGasWithPaymaster(ctx, payer, overheadPaymaster.GetInner(), messageID, domain, adjustedGas, payment)
}

func (k Keeper) applyGasOverhead(ctx sdk.Context, addr sdk.AccAddress, domain uint32, gasAmount uint64) (types.OverheadPaymaster, uint64, error) {
	overheadPaymaster, found := k.GetOverheadPaymaster(ctx, addr)
	if !found {
		return types.OverheadPaymaster{}, 0, sdkerrors.Wrapf(types.ErrOverheadPaymasterNotFound, "address %s", addr)
	}

	overhead, _ := k.GetGasOverhead(ctx, addr, domain)
	adjustedGas, err := types.AddGasOverhead(gasAmount, overhead)
	if err != nil {
		return types.OverheadPaymaster{}, 0, err
	}

	return overheadPaymaster, adjustedGas, nil
}
