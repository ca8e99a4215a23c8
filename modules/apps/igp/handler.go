package igp

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/keeper"
	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// NewHandler returns the legacy router handler for the igp msgs. Each msg is served
// by the keeper's MsgServer method and the amino JSON encoded response is returned as
// the result data.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		goCtx := sdk.WrapSDKContext(ctx)

		switch msg := msg.(type) {
		case *types.MsgInitPaymaster:
			res, err := k.InitPaymaster(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgInitOverheadPaymaster:
			res, err := k.InitOverheadPaymaster(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgPayForGas:
			res, err := k.PayForGas(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgClaim:
			res, err := k.Claim(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgSetGasOracleConfigs:
			res, err := k.SetGasOracleConfigs(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgSetDestinationGasOverheads:
			res, err := k.SetDestinationGasOverheads(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgTransferPaymasterOwnership:
			res, err := k.TransferPaymasterOwnership(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgTransferOverheadPaymasterOwnership:
			res, err := k.TransferOverheadPaymasterOwnership(goCtx, msg)
			return newResult(ctx, res, err)

		case *types.MsgSetBeneficiary:
			res, err := k.SetBeneficiary(goCtx, msg)
			return newResult(ctx, res, err)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

func newResult(ctx sdk.Context, res interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}

	data, err := types.ModuleCdc.MarshalJSON(res)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	return &sdk.Result{Data: data, Events: ctx.EventManager().ABCIEvents()}, nil
}
