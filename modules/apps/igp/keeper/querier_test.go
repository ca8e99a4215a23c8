package keeper_test

import (
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/keeper"
	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

func (suite *KeeperTestSuite) TestLegacyQuerier() {
	querier := keeper.NewQuerier(suite.keeper(), types.ModuleCdc)

	req := abci.RequestQuery{
		Data: types.ModuleCdc.MustMarshalJSON(&types.QueryQuoteGasPaymentRequest{
			Paymaster:         suite.paymaster.String(),
			DestinationDomain: defaultDomain,
			GasAmount:         90_000,
		}),
	}

	bz, err := querier(suite.ctx, []string{types.QueryQuoteGasPayment}, req)
	suite.Require().NoError(err)

	var quote types.QueryQuoteGasPaymentResponse
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &quote))
	suite.Require().Equal(sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(100_000)).String(), quote.Payment.String())

	bz, err = querier(suite.ctx, []string{types.QueryParams}, abci.RequestQuery{})
	suite.Require().NoError(err)

	var params types.QueryParamsResponse
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &params))
	suite.Require().Equal(types.DefaultParams(), params.Params)

	req.Data = types.ModuleCdc.MustMarshalJSON(&types.QueryPaymasterRequest{Address: suite.paymaster.String()})
	bz, err = querier(suite.ctx, []string{types.QueryPaymaster}, req)
	suite.Require().NoError(err)

	var paymaster types.QueryPaymasterResponse
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &paymaster))
	suite.Require().Equal(suite.beneficiary.String(), paymaster.Paymaster.Beneficiary)

	_, err = querier(suite.ctx, []string{types.QueryPaymaster}, abci.RequestQuery{Data: []byte("{")})
	suite.Require().ErrorIs(err, sdkerrors.ErrJSONUnmarshal)

	_, err = querier(suite.ctx, []string{"unknown"}, req)
	suite.Require().ErrorIs(err, sdkerrors.ErrUnknownRequest)

	_, err = querier(suite.ctx, []string{}, req)
	suite.Require().ErrorIs(err, sdkerrors.ErrUnknownRequest)
}
