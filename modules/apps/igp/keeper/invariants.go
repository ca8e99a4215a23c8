package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// RegisterInvariants registers all igp invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "paymaster-balances",
		PaymasterBalancesInvariant(k))
}

// AllInvariants runs all invariants of the igp module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return PaymasterBalancesInvariant(k)(ctx)
	}
}

// PaymasterBalancesInvariant checks that the module account holds at least the sum of
// the unclaimed balances of every paymaster, per denom.
func PaymasterBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expectedTotal := sdk.NewCoins()
		for _, paymaster := range k.GetAllPaymasters(ctx) {
			expectedTotal = expectedTotal.Add(paymaster.Balance)
		}

		moduleAddr := k.GetModuleAddress()
		actualTotal := sdk.NewCoins()
		for _, coin := range expectedTotal {
			actualTotal = actualTotal.Add(k.bankKeeper.GetBalance(ctx, moduleAddr, coin.Denom))
		}

		// the module account must hold at least the expected amount for all denominations
		if !actualTotal.IsAllGTE(expectedTotal) {
			return sdk.FormatInvariant(
				types.ModuleName,
				"paymaster balances invariance",
				fmt.Sprintf("module account holds less than the unclaimed paymaster balances:\nactual: %s\nexpected: %s", actualTotal, expectedTotal)), true
		}

		return "", false
	}
}
