package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// ApplyGasOracleConfigs applies a batch of remote gas data updates to a paymaster. Each
// config either sets the domain's data or, when its GasOracle is nil, removes the
// domain so that quotes for it fail with ErrUnsupportedDomain. The batch is rejected
// as a whole if the caller is not the owner, a domain is repeated or any data is out
// of range.
func (k Keeper) ApplyGasOracleConfigs(ctx sdk.Context, caller, addr sdk.AccAddress, configs []types.GasOracleConfig) error {
	if _, err := k.authorizePaymasterOwner(ctx, caller, addr); err != nil {
		return err
	}

	if err := types.ValidateGasOracleConfigs(configs); err != nil {
		return err
	}

	for _, config := range configs {
		if config.IsRemoval() {
			k.DeleteGasOracle(ctx, addr, config.Domain)
		} else {
			k.SetGasOracle(ctx, addr, config.Domain, *config.GasOracle)
		}

		EmitSetGasOracle(ctx, addr, config)
	}

	k.Logger(ctx).Info("set gas oracle configs", "paymaster", addr.String(), "configs", len(configs))

	return nil
}
