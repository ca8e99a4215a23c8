package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// GetFeeDenom retrieves the denomination gas payments are made in from the paramstore.
func (k Keeper) GetFeeDenom(ctx sdk.Context) string {
	var res string
	k.paramSpace.Get(ctx, types.KeyFeeDenom, &res)
	return res
}

// IsOpenClaim retrieves the claim policy from the paramstore.
func (k Keeper) IsOpenClaim(ctx sdk.Context) bool {
	var res bool
	k.paramSpace.Get(ctx, types.KeyOpenClaim, &res)
	return res
}

// GetParams returns the total set of igp parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	return types.NewParams(k.GetFeeDenom(ctx), k.IsOpenClaim(ctx))
}

// SetParams sets the total set of igp parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}
