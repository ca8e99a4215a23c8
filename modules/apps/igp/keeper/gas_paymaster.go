package keeper

import (
	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// GasPaymaster quotes and accepts gas payments on behalf of a single instance. Both
// paymasters and overhead paymasters are exposed through it so callers do not need to
// know which kind of instance an address refers to.
type GasPaymaster interface {
	Address() sdk.AccAddress
	// Denom returns the denomination payments are quoted and accepted in.
	Denom(ctx sdk.Context) string
	QuoteGasPayment(ctx sdk.Context, domain uint32, gasAmount uint64) (sdk.Int, error)
	PayForGas(ctx sdk.Context, payer sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Int) (uint64, error)
}

var (
	_ GasPaymaster = paymasterHandle{}
	_ GasPaymaster = overheadPaymasterHandle{}
)

// GasPaymaster returns a handle on the paymaster or overhead paymaster at addr.
func (k Keeper) GasPaymaster(ctx sdk.Context, addr sdk.AccAddress) (GasPaymaster, error) {
	if k.HasPaymaster(ctx, addr) {
		return paymasterHandle{keeper: k, addr: addr}, nil
	}

	if k.HasOverheadPaymaster(ctx, addr) {
		return overheadPaymasterHandle{keeper: k, addr: addr}, nil
	}

	return nil, sdkerrors.Wrapf(types.ErrPaymasterNotFound, "no paymaster or overhead paymaster at %s", addr)
}

type paymasterHandle struct {
	keeper Keeper
	addr   sdk.AccAddress
}

func (h paymasterHandle) Address() sdk.AccAddress {
	return h.addr
}

func (h paymasterHandle) Denom(ctx sdk.Context) string {
	paymaster, _ := h.keeper.GetPaymaster(ctx, h.addr)
	return paymaster.Balance.Denom
}

func (h paymasterHandle) QuoteGasPayment(ctx sdk.Context, domain uint32, gasAmount uint64) (sdk.Int, error) {
	return h.keeper.QuoteGasPaymentWithPaymaster(ctx, h.addr, domain, gasAmount)
}

func (h paymasterHandle) PayForGas(ctx sdk.Context, payer sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Int) (uint64, error) {
	return h.keeper.PayForGasWithPaymaster(ctx, payer, h.addr, messageID, domain, gasAmount, payment)
}

// overheadPaymasterHandle adds the overhead of the instance at addr and delegates to
// its inner paymaster.
type overheadPaymasterHandle struct {
	keeper Keeper
	addr   sdk.AccAddress
}

func (h overheadPaymasterHandle) Address() sdk.AccAddress {
	return h.addr
}

func (h overheadPaymasterHandle) Denom(ctx sdk.Context) string {
	overheadPaymaster, _ := h.keeper.GetOverheadPaymaster(ctx, h.addr)
	return paymasterHandle{keeper: h.keeper, addr: overheadPaymaster.GetInner()}.Denom(ctx)
}

func (h overheadPaymasterHandle) QuoteGasPayment(ctx sdk.Context, domain uint32, gasAmount uint64) (sdk.Int, error) {
	return h.keeper.QuoteGasPaymentWithOverhead(ctx, h.addr, domain, gasAmount)
}

func (h overheadPaymasterHandle) PayForGas(ctx sdk.Context, payer sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Int) (uint64, error) {
	return h.keeper.PayForGasWithOverhead(ctx, payer, h.addr, messageID, domain, gasAmount, payment)
}
