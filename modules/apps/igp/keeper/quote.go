package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// QuoteGasPaymentWithPaymaster returns the payment a paymaster requires for
// gasAmount units of gas on the destination domain. It reads state only.
func (k Keeper) QuoteGasPaymentWithPaymaster(ctx sdk.Context, addr sdk.AccAddress, domain uint32, gasAmount uint64) (sdk.Int, error) {
	if !k.HasPaymaster(ctx, addr) {
		return sdk.Int{}, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", addr)
	}

	data, found := k.GetGasOracle(ctx, addr, domain)
	if !found {
		return sdk.Int{}, sdkerrors.Wrapf(types.ErrUnsupportedDomain, "domain %d on paymaster %s", domain, addr)
	}

	overhead, _ := k.GetGasOverhead(ctx, addr, domain)

	return types.QuoteGasPayment(data, overhead, gasAmount)
}
