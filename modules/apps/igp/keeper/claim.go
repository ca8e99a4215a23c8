package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// ClaimBalance sends the whole balance of a paymaster to its beneficiary and returns the
// claimed amount. Who may claim is set by the OpenClaim param: anyone when it is true,
// only the paymaster owner otherwise. The funds always go to the beneficiary. Claiming
// an empty balance succeeds with a zero amount and changes nothing.
func (k Keeper) ClaimBalance(ctx sdk.Context, caller, addr sdk.AccAddress) (sdk.Coin, error) {
	paymaster, found := k.GetPaymaster(ctx, addr)
	if !found {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", addr)
	}

	if !k.IsOpenClaim(ctx) && !paymaster.IsOwner(caller) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrUnauthorized, "claims are restricted to the owner of paymaster %s", addr)
	}

	claimed := paymaster.Balance
	if claimed.IsZero() {
		return claimed, nil
	}

	beneficiary := paymaster.GetBeneficiary()
	cacheCtx, writeFn := ctx.CacheContext()

	paymaster.Balance = sdk.NewCoin(claimed.Denom, sdk.ZeroInt())
	k.SetPaymaster(cacheCtx, paymaster)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, beneficiary, sdk.NewCoins(claimed)); err != nil {
		return sdk.Coin{}, err
	}

	writeFn()

	EmitClaim(ctx, addr, beneficiary, claimed)
	k.Logger(ctx).Info("claimed interchain gas payments", "paymaster", paymaster.Address, "beneficiary", paymaster.Beneficiary, "amount", claimed.String())

	return claimed, nil
}
