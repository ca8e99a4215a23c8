package cli

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/cosmos/igp-go/modules/apps/igp/client/utils"
	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// GetCmdPaymaster returns the command to query a paymaster
func GetCmdPaymaster() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paymaster [address]",
		Short:   "Query a paymaster",
		Long:    "Query the owner, beneficiary and unclaimed balance of a paymaster.",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query igp paymaster cosmos1...", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return errors.Wrapf(err, "invalid paymaster address %s", args[0])
			}

			return runQuery(cmd, types.QueryPaymaster, &types.QueryPaymasterRequest{Address: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdOverheadPaymaster returns the command to query an overhead paymaster
func GetCmdOverheadPaymaster() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "overhead-paymaster [address]",
		Short:   "Query an overhead paymaster",
		Long:    "Query the owner and inner paymaster of an overhead paymaster.",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query igp overhead-paymaster cosmos1...", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return errors.Wrapf(err, "invalid overhead paymaster address %s", args[0])
			}

			return runQuery(cmd, types.QueryOverheadPaymaster, &types.QueryOverheadPaymasterRequest{Address: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdGasOracle returns the command to query the remote gas data of a paymaster for a domain
func GetCmdGasOracle() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gas-oracle [paymaster] [domain]",
		Short:   "Query the remote gas data of a paymaster for a destination domain",
		Args:    cobra.ExactArgs(2),
		Example: fmt.Sprintf("%s query igp gas-oracle cosmos1... 42", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := parseDomain(args[1])
			if err != nil {
				return err
			}

			return runQuery(cmd, types.QueryGasOracle, &types.QueryGasOracleRequest{Paymaster: args[0], Domain: domain})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdGasOverhead returns the command to query the gas overhead of an instance for a domain
func GetCmdGasOverhead() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gas-overhead [paymaster] [domain]",
		Short:   "Query the gas overhead of a paymaster or overhead paymaster for a destination domain",
		Args:    cobra.ExactArgs(2),
		Example: fmt.Sprintf("%s query igp gas-overhead cosmos1... 42", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := parseDomain(args[1])
			if err != nil {
				return err
			}

			return runQuery(cmd, types.QueryGasOverhead, &types.QueryGasOverheadRequest{Paymaster: args[0], Domain: domain})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdGasPayment returns the command to query the gas paid for a message
func GetCmdGasPayment() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gas-payment [paymaster] [message-id] [destination-domain]",
		Short:   "Query the cumulative gas paid to a paymaster for a message",
		Args:    cobra.ExactArgs(3),
		Example: fmt.Sprintf("%s query igp gas-payment cosmos1... 0x6d3c... 42", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := types.ParseMessageID(args[1]); err != nil {
				return err
			}

			domain, err := parseDomain(args[2])
			if err != nil {
				return err
			}

			req := &types.QueryGasPaymentRequest{
				Paymaster:         args[0],
				MessageId:         args[1],
				DestinationDomain: domain,
			}

			return runQuery(cmd, types.QueryGasPayment, req)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdQuoteGasPayment returns the command to quote a gas payment
func GetCmdQuoteGasPayment() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quote [paymaster] [destination-domain] [gas-amount]",
		Short:   "Quote the payment required for an amount of gas on a destination domain",
		Long:    "Quote the payment required for an amount of gas on a destination domain. The paymaster may be a paymaster or an overhead paymaster.",
		Args:    cobra.ExactArgs(3),
		Example: fmt.Sprintf("%s query igp quote cosmos1... 42 90000", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := parseDomain(args[1])
			if err != nil {
				return err
			}

			gasAmount, err := cast.ToUint64E(args[2])
			if err != nil {
				return errors.Wrapf(err, "invalid gas amount %s", args[2])
			}

			req := &types.QueryQuoteGasPaymentRequest{
				Paymaster:         args[0],
				DestinationDomain: domain,
				GasAmount:         gasAmount,
			}

			return runQuery(cmd, types.QueryQuoteGasPayment, req)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdParams returns the command handler for igp parameter querying.
func GetCmdParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Query the current igp parameters",
		Long:    "Query the current igp parameters",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query igp params", version.AppName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, types.QueryParams, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func runQuery(cmd *cobra.Command, endpoint string, req interface{}) error {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return err
	}

	res, _, err := utils.QueryIGP(clientCtx, endpoint, req)
	if err != nil {
		return err
	}

	return clientCtx.PrintBytes(res)
}

func parseDomain(arg string) (uint32, error) {
	domain, err := cast.ToUint64E(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid domain %s", arg)
	}

	if domain > math.MaxUint32 {
		return 0, errors.Errorf("domain %s does not fit in 32 bits", arg)
	}

	return uint32(domain), nil
}
