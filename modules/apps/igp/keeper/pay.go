package keeper

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// PayForGasWithPaymaster pays a paymaster for gasAmount units of gas to deliver messageID on the
// destination domain. The payment must cover the current quote; any excess is kept,
// not refunded. The paymaster balance, the cumulative gas payment record and the
// payment sequence are written before the payment is moved from payer into the module
// account, and nothing is committed unless every step succeeds. It returns the
// sequence assigned to the payment.
func (k Keeper) PayForGasWithPaymaster(
	ctx sdk.Context, payer, addr sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Int,
) (uint64, error) {
	if payment.IsNil() || payment.IsNegative() {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "payment must be non-negative, got %v", payment)
	}

	paymaster, found := k.GetPaymaster(ctx, addr)
	if !found {
		return 0, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", addr)
	}

	required, err := k.QuoteGasPaymentWithPaymaster(ctx, addr, domain, gasAmount)
	if err != nil {
		return 0, err
	}

	if payment.LT(required) {
		return 0, sdkerrors.Wrapf(types.ErrInsufficientPayment, "payment %s is lower than quote %s for %d gas on domain %d", payment, required, gasAmount, domain)
	}

	paid, _ := k.GetGasPayment(ctx, addr, messageID, domain)
	if gasAmount > math.MaxUint64-paid {
		return 0, sdkerrors.Wrapf(types.ErrOverflow, "cumulative gas payment %d plus %d for message %s", paid, gasAmount, messageID.Hex())
	}

	balance, balanceOverflow := uint256.FromBig(paymaster.Balance.Amount.BigInt())
	amount, amountOverflow := uint256.FromBig(payment.BigInt())
	if balanceOverflow || amountOverflow {
		return 0, sdkerrors.Wrapf(types.ErrOverflow, "paymaster %s balance %s or payment %s exceeds 256 bits", addr, paymaster.Balance, payment)
	}

	if _, overflow := new(uint256.Int).AddOverflow(balance, amount); overflow {
		return 0, sdkerrors.Wrapf(types.ErrOverflow, "paymaster %s balance %s plus payment %s", addr, paymaster.Balance, payment)
	}

	coin := sdk.NewCoin(paymaster.Balance.Denom, payment)
	cacheCtx, writeFn := ctx.CacheContext()

	paymaster.Balance = paymaster.Balance.Add(coin)
	k.SetPaymaster(cacheCtx, paymaster)
	k.SetGasPayment(cacheCtx, addr, messageID, domain, paid+gasAmount)

	sequence := k.GetNextPaymentSequence(cacheCtx)
	k.SetNextPaymentSequence(cacheCtx, sequence+1)

	if coin.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, payer, types.ModuleName, sdk.NewCoins(coin)); err != nil {
			return 0, err
		}
	}

	writeFn()

	EmitPayForGas(ctx, addr, messageID, domain, gasAmount, coin, sequence)
	k.Logger(ctx).Info(
		"paid for gas", "paymaster", paymaster.Address, "message-id", messageID.Hex(),
		"destination-domain", domain, "gas-amount", gasAmount, "payment", coin.String(), "sequence", sequence,
	)

	return sequence, nil
}
