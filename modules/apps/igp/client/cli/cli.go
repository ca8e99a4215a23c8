package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
)

// GetQueryCmd returns the query commands for the interchain gas paymaster
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "igp",
		Short:                      "Querying commands for the interchain gas paymaster module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdPaymaster(),
		GetCmdOverheadPaymaster(),
		GetCmdGasOracle(),
		GetCmdGasOverhead(),
		GetCmdGasPayment(),
		GetCmdQuoteGasPayment(),
		GetCmdParams(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for the interchain gas paymaster
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "igp",
		Short:                      "Transaction commands for the interchain gas paymaster module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		NewInitPaymasterCmd(),
		NewInitOverheadPaymasterCmd(),
		NewPayForGasCmd(),
		NewClaimCmd(),
		NewSetGasOraclesCmd(),
		NewSetGasOverheadsCmd(),
		NewTransferOwnershipCmd(),
		NewTransferOverheadOwnershipCmd(),
		NewSetBeneficiaryCmd(),
	)

	return txCmd
}
