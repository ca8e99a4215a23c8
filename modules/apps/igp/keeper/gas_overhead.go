package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// ApplyGasOverheadConfigs applies a batch of gas overhead updates to the overhead
// registry of a paymaster or an overhead paymaster, whichever lives at addr. A nil
// overhead clears the domain, which then quotes with zero overhead. The batch is
// rejected as a whole if the caller is not the instance owner or a domain is repeated.
func (k Keeper) ApplyGasOverheadConfigs(ctx sdk.Context, caller, addr sdk.AccAddress, configs []types.GasOverheadConfig) error {
	if err := k.authorizeInstanceOwner(ctx, caller, addr); err != nil {
		return err
	}

	if err := types.ValidateGasOverheadConfigs(configs); err != nil {
		return err
	}

	for _, config := range configs {
		if config.IsRemoval() {
			k.DeleteGasOverhead(ctx, addr, config.Domain)
		} else {
			k.SetGasOverhead(ctx, addr, config.Domain, *config.GasOverhead)
		}

		EmitSetGasOverhead(ctx, addr, config)
	}

	k.Logger(ctx).Info("set destination gas overheads", "paymaster", addr.String(), "configs", len(configs))

	return nil
}

// authorizeInstanceOwner checks that caller owns the paymaster or overhead paymaster at addr.
func (k Keeper) authorizeInstanceOwner(ctx sdk.Context, caller, addr sdk.AccAddress) error {
	if paymaster, found := k.GetPaymaster(ctx, addr); found {
		if !paymaster.IsOwner(caller) {
			return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the owner of paymaster %s", caller, addr)
		}

		return nil
	}

	if overheadPaymaster, found := k.GetOverheadPaymaster(ctx, addr); found {
		if !overheadPaymaster.IsOwner(caller) {
			return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not the owner of overhead paymaster %s", caller, addr)
		}

		return nil
	}

	return sdkerrors.Wrapf(types.ErrPaymasterNotFound, "no paymaster or overhead paymaster at %s", addr)
}
