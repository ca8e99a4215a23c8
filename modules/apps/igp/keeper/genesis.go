package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// InitGenesis initializes the igp module state from a validated genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)
	k.SetNextPaymentSequence(ctx, state.NextPaymentSequence)

	for _, identified := range state.Paymasters {
		paymaster := identified.Paymaster
		k.SetPaymaster(ctx, paymaster)

		addr := paymaster.GetAddress()
		for _, oracle := range identified.GasOracles {
			k.SetGasOracle(ctx, addr, oracle.Domain, oracle.GasOracle)
		}

		for _, overhead := range identified.GasOverheads {
			k.SetGasOverhead(ctx, addr, overhead.Domain, overhead.GasOverhead)
		}
	}

	for _, identified := range state.OverheadPaymasters {
		overheadPaymaster := identified.OverheadPaymaster
		k.SetOverheadPaymaster(ctx, overheadPaymaster)

		addr := overheadPaymaster.GetAddress()
		for _, overhead := range identified.GasOverheads {
			k.SetGasOverhead(ctx, addr, overhead.Domain, overhead.GasOverhead)
		}
	}

	for _, payment := range state.GasPayments {
		paymaster, err := sdk.AccAddressFromBech32(payment.Paymaster)
		if err != nil {
			panic(fmt.Errorf("invalid gas payment paymaster %s: %w", payment.Paymaster, err))
		}

		messageID, err := types.ParseMessageID(payment.MessageId)
		if err != nil {
			panic(fmt.Errorf("invalid gas payment message id %s: %w", payment.MessageId, err))
		}

		k.SetGasPayment(ctx, paymaster, messageID, payment.DestinationDomain, payment.GasAmount)
	}
}

// ExportGenesis returns the igp module exported genesis.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	paymasters := []types.IdentifiedPaymaster{}
	gasPayments := []types.GasPayment{}
	for _, paymaster := range k.GetAllPaymasters(ctx) {
		addr := paymaster.GetAddress()
		paymasters = append(paymasters, types.IdentifiedPaymaster{
			Paymaster:    paymaster,
			GasOracles:   k.GetAllGasOracles(ctx, addr),
			GasOverheads: k.GetAllGasOverheads(ctx, addr),
		})

		gasPayments = append(gasPayments, k.GetAllGasPayments(ctx, addr)...)
	}

	overheadPaymasters := []types.IdentifiedOverheadPaymaster{}
	for _, overheadPaymaster := range k.GetAllOverheadPaymasters(ctx) {
		overheadPaymasters = append(overheadPaymasters, types.IdentifiedOverheadPaymaster{
			OverheadPaymaster: overheadPaymaster,
			GasOverheads:      k.GetAllGasOverheads(ctx, overheadPaymaster.GetAddress()),
		})
	}

	return types.NewGenesisState(
		k.GetParams(ctx),
		k.GetNextPaymentSequence(ctx),
		paymasters,
		overheadPaymasters,
		gasPayments,
	)
}
