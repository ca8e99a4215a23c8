package types

import (
	"math"

	"github.com/holiman/uint256"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// maxIntBitLen is the largest bit length an sdk.Int may hold.
const maxIntBitLen = 255

// TokenExchangeRateScale is the denominator of RemoteGasData.TokenExchangeRate (10^19).
var TokenExchangeRateScale = uint256.NewInt(10_000_000_000_000_000_000)

// AddGasOverhead adds a gas overhead to a gas amount, failing on uint64 overflow.
func AddGasOverhead(gasAmount, overhead uint64) (uint64, error) {
	if gasAmount > math.MaxUint64-overhead {
		return 0, sdkerrors.Wrapf(ErrOverflow, "gas amount %d plus overhead %d", gasAmount, overhead)
	}

	return gasAmount + overhead, nil
}

// QuoteGasPayment returns the amount of local tokens required to pay for gasAmount
// units of destination gas plus overhead, priced by the given remote gas data.
//
// The destination cost is computed in 256 bits and the exchange rate conversion uses a
// 512-bit intermediate product. The final division truncates toward zero, so a payer
// may be under-quoted by at most one unit.
func QuoteGasPayment(data RemoteGasData, overhead, gasAmount uint64) (sdk.Int, error) {
	effectiveGas, err := AddGasOverhead(gasAmount, overhead)
	if err != nil {
		return sdk.Int{}, err
	}

	gasPrice, overflow := uint256.FromBig(data.GasPrice.BigInt())
	if overflow {
		return sdk.Int{}, sdkerrors.Wrapf(ErrOverflow, "gas price %s", data.GasPrice)
	}

	exchangeRate, overflow := uint256.FromBig(data.TokenExchangeRate.BigInt())
	if overflow {
		return sdk.Int{}, sdkerrors.Wrapf(ErrOverflow, "token exchange rate %s", data.TokenExchangeRate)
	}

	destinationCost, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(effectiveGas), gasPrice)
	if overflow {
		return sdk.Int{}, sdkerrors.Wrapf(ErrOverflow, "destination gas cost of %d gas at price %s", effectiveGas, data.GasPrice)
	}

	payment, overflow := new(uint256.Int).MulDivOverflow(destinationCost, exchangeRate, TokenExchangeRateScale)
	if overflow || payment.BitLen() > maxIntBitLen {
		return sdk.Int{}, sdkerrors.Wrapf(ErrOverflow, "payment for destination cost %d at exchange rate %s", destinationCost, data.TokenExchangeRate)
	}

	return sdk.NewIntFromBigInt(payment.ToBig()), nil
}
