package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// NewQuerier creates a querier serving the igp queries over the legacy ABCI query path.
// Requests and responses are amino JSON encoded query service types.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty igp query path")
		}

		goCtx := sdk.WrapSDKContext(ctx)

		var (
			res interface{}
			err error
		)

		switch path[0] {
		case types.QueryPaymaster:
			var params types.QueryPaymasterRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.Paymaster(goCtx, &params)

		case types.QueryOverheadPaymaster:
			var params types.QueryOverheadPaymasterRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.OverheadPaymaster(goCtx, &params)

		case types.QueryGasOracle:
			var params types.QueryGasOracleRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.GasOracle(goCtx, &params)

		case types.QueryGasOverhead:
			var params types.QueryGasOverheadRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.GasOverhead(goCtx, &params)

		case types.QueryGasPayment:
			var params types.QueryGasPaymentRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.GasPayment(goCtx, &params)

		case types.QueryQuoteGasPayment:
			var params types.QueryQuoteGasPaymentRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.QuoteGasPayment(goCtx, &params)

		case types.QueryParams:
			res, err = k.Params(goCtx, &types.QueryParamsRequest{})

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown igp query endpoint: %s", path[0])
		}

		if err != nil {
			return nil, err
		}

		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, res)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}

		return bz, nil
	}
}
