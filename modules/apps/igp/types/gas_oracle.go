package types

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxOracleValue is the largest exchange rate or gas price a gas oracle may hold (2^128 - 1).
var MaxOracleValue = sdk.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// RemoteGasData is the price data configured for a destination domain. The token
// exchange rate converts destination gas token value into local token value and is
// scaled by TokenExchangeRateScale.
type RemoteGasData struct {
	TokenExchangeRate sdk.Uint `protobuf:"bytes,1,opt,name=token_exchange_rate,json=tokenExchangeRate,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Uint" json:"token_exchange_rate" yaml:"token_exchange_rate"`
	GasPrice          sdk.Uint `protobuf:"bytes,2,opt,name=gas_price,json=gasPrice,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Uint" json:"gas_price" yaml:"gas_price"`
}

// NewRemoteGasData creates a new RemoteGasData instance
func NewRemoteGasData(tokenExchangeRate, gasPrice sdk.Uint) RemoteGasData {
	return RemoteGasData{
		TokenExchangeRate: tokenExchangeRate,
		GasPrice:          gasPrice,
	}
}

// Validate checks that both values are set and fit in 128 bits.
func (d RemoteGasData) Validate() error {
	if d.TokenExchangeRate == (sdk.Uint{}) || d.GasPrice == (sdk.Uint{}) {
		return sdkerrors.Wrap(ErrInvalidConfiguration, "token exchange rate and gas price must be set")
	}

	if d.TokenExchangeRate.GT(MaxOracleValue) {
		return sdkerrors.Wrapf(ErrInvalidConfiguration, "token exchange rate %s exceeds 128 bits", d.TokenExchangeRate)
	}

	if d.GasPrice.GT(MaxOracleValue) {
		return sdkerrors.Wrapf(ErrInvalidConfiguration, "gas price %s exceeds 128 bits", d.GasPrice)
	}

	return nil
}
