package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

var _ types.QueryServer = Keeper{}

// Paymaster implements the Query/Paymaster gRPC method
func (k Keeper) Paymaster(c context.Context, req *types.QueryPaymasterRequest) (*types.QueryPaymasterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	paymaster, found := k.GetPaymaster(ctx, addr)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", req.Address).Error(),
		)
	}

	return &types.QueryPaymasterResponse{Paymaster: paymaster}, nil
}

// OverheadPaymaster implements the Query/OverheadPaymaster gRPC method
func (k Keeper) OverheadPaymaster(c context.Context, req *types.QueryOverheadPaymasterRequest) (*types.QueryOverheadPaymasterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	overheadPaymaster, found := k.GetOverheadPaymaster(ctx, addr)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrOverheadPaymasterNotFound, "address %s", req.Address).Error(),
		)
	}

	return &types.QueryOverheadPaymasterResponse{OverheadPaymaster: overheadPaymaster}, nil
}

// GasOracle implements the Query/GasOracle gRPC method
func (k Keeper) GasOracle(c context.Context, req *types.QueryGasOracleRequest) (*types.QueryGasOracleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Paymaster)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	data, found := k.GetGasOracle(ctx, addr, req.Domain)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrUnsupportedDomain, "domain %d on paymaster %s", req.Domain, req.Paymaster).Error(),
		)
	}

	return &types.QueryGasOracleResponse{GasOracle: data}, nil
}

// GasOverhead implements the Query/GasOverhead gRPC method. Domains without a
// configured overhead report zero.
func (k Keeper) GasOverhead(c context.Context, req *types.QueryGasOverheadRequest) (*types.QueryGasOverheadResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Paymaster)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	if !k.HasPaymaster(ctx, addr) && !k.HasOverheadPaymaster(ctx, addr) {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", req.Paymaster).Error(),
		)
	}

	overhead, _ := k.GetGasOverhead(ctx, addr, req.Domain)

	return &types.QueryGasOverheadResponse{GasOverhead: overhead}, nil
}

// GasPayment implements the Query/GasPayment gRPC method. Messages never paid for
// report zero gas.
func (k Keeper) GasPayment(c context.Context, req *types.QueryGasPaymentRequest) (*types.QueryGasPaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Paymaster)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	messageID, err := types.ParseMessageID(req.MessageId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	if !k.HasPaymaster(ctx, addr) {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrPaymasterNotFound, "address %s", req.Paymaster).Error(),
		)
	}

	gasAmount, _ := k.GetGasPayment(ctx, addr, messageID, req.DestinationDomain)

	return &types.QueryGasPaymentResponse{GasAmount: gasAmount}, nil
}

// QuoteGasPayment implements the Query/QuoteGasPayment gRPC method. The paymaster
// address may refer to a paymaster or to an overhead paymaster.
func (k Keeper) QuoteGasPayment(c context.Context, req *types.QueryQuoteGasPaymentRequest) (*types.QueryQuoteGasPaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Paymaster)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	gasPaymaster, err := k.GasPaymaster(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	payment, err := gasPaymaster.QuoteGasPayment(ctx, req.DestinationDomain, req.GasAmount)
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	return &types.QueryQuoteGasPaymentResponse{
		Payment: sdk.NewCoin(gasPaymaster.Denom(ctx), payment),
	}, nil
}

// Params implements the Query/Params gRPC method
func (k Keeper) Params(c context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	params := k.GetParams(ctx)

	return &types.QueryParamsResponse{
		Params: params,
	}, nil
}
