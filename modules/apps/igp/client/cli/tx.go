package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

const (
	flagOwner     = "owner"
	flagImmutable = "immutable"
)

// NewInitPaymasterCmd returns the command to create a MsgInitPaymaster
func NewInitPaymasterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-paymaster [salt] [beneficiary]",
		Short: "Create an interchain gas paymaster",
		Long: strings.TrimSpace(`Create an interchain gas paymaster at the address derived from salt.
The sender owns the paymaster unless --owner is set. With --immutable the paymaster has no owner
and its gas oracles, overheads and beneficiary can never be changed.`),
		Example: fmt.Sprintf("%s tx igp init-paymaster 0x6c6f... cosmos1...", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			owner, err := ownerFromFlags(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgInitPaymaster(clientCtx.GetFromAddress().String(), args[0], owner, args[1])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addOwnerFlags(cmd)
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewInitOverheadPaymasterCmd returns the command to create a MsgInitOverheadPaymaster
func NewInitOverheadPaymasterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init-overhead-paymaster [salt] [inner-paymaster]",
		Short:   "Create an overhead paymaster wrapping an existing paymaster",
		Long:    "Create an overhead paymaster that adds its own per domain gas overhead to the quotes of the inner paymaster.",
		Example: fmt.Sprintf("%s tx igp init-overhead-paymaster 0x6c6f... cosmos1...", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			owner, err := ownerFromFlags(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgInitOverheadPaymaster(clientCtx.GetFromAddress().String(), args[0], owner, args[1])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addOwnerFlags(cmd)
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewPayForGasCmd returns the command to create a MsgPayForGas
func NewPayForGasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pay-for-gas [paymaster] [message-id] [destination-domain] [gas-amount] [payment]",
		Short:   "Pay for the delivery of a message on a destination domain",
		Long:    "Pay a paymaster or overhead paymaster for gas-amount units of destination gas. The payment is in the fee denom and must cover the current quote.",
		Example: fmt.Sprintf("%s tx igp pay-for-gas cosmos1... 0x7a1f... 42 90000 100000", version.AppName),
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			domain, err := parseDomain(args[2])
			if err != nil {
				return err
			}

			gasAmount, err := cast.ToUint64E(args[3])
			if err != nil {
				return errors.Wrapf(err, "invalid gas amount %s", args[3])
			}

			payment, ok := sdk.NewIntFromString(args[4])
			if !ok {
				return errors.Errorf("invalid payment %s", args[4])
			}

			msg := types.NewMsgPayForGas(clientCtx.GetFromAddress().String(), args[0], args[1], domain, gasAmount, payment)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewClaimCmd returns the command to create a MsgClaim
func NewClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "claim [paymaster]",
		Short:   "Send the balance of a paymaster to its beneficiary",
		Example: fmt.Sprintf("%s tx igp claim cosmos1...", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgClaim(clientCtx.GetFromAddress().String(), args[0])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewSetGasOraclesCmd returns the command to create a MsgSetGasOracleConfigs
func NewSetGasOraclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-gas-oracles [paymaster] [domain]:[token-exchange-rate]:[gas-price]...",
		Short: "Set or remove the remote gas data of a paymaster",
		Long: strings.TrimSpace(`Set the remote gas data of a paymaster for one or more destination domains.
A config given as a bare domain removes the gas data of that domain.`),
		Example: fmt.Sprintf("%s tx igp set-gas-oracles cosmos1... 42:10000000000000000000:1 43", version.AppName),
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			configs, err := parseGasOracleConfigs(args[1:])
			if err != nil {
				return err
			}

			msg := types.NewMsgSetGasOracleConfigs(clientCtx.GetFromAddress().String(), args[0], configs)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewSetGasOverheadsCmd returns the command to create a MsgSetDestinationGasOverheads
func NewSetGasOverheadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-gas-overheads [paymaster] [domain]:[gas-overhead]...",
		Short: "Set or clear the destination gas overheads of a paymaster or overhead paymaster",
		Long: strings.TrimSpace(`Set the destination gas overhead of a paymaster or overhead paymaster for one or
more domains. A config given as a bare domain clears the overhead of that domain.`),
		Example: fmt.Sprintf("%s tx igp set-gas-overheads cosmos1... 42:10000 43", version.AppName),
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			configs, err := parseGasOverheadConfigs(args[1:])
			if err != nil {
				return err
			}

			msg := types.NewMsgSetDestinationGasOverheads(clientCtx.GetFromAddress().String(), args[0], configs)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewTransferOwnershipCmd returns the command to create a MsgTransferPaymasterOwnership
func NewTransferOwnershipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer-ownership [paymaster] [new-owner]",
		Short:   "Transfer the ownership of a paymaster",
		Long:    "Transfer the ownership of a paymaster. With --immutable and no new owner the ownership is renounced permanently.",
		Example: fmt.Sprintf("%s tx igp transfer-ownership cosmos1... cosmos1...", version.AppName),
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			newOwner, err := newOwnerFromArgs(cmd, args)
			if err != nil {
				return err
			}

			msg := types.NewMsgTransferPaymasterOwnership(clientCtx.GetFromAddress().String(), args[0], newOwner)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagImmutable, false, "renounce the ownership when no new owner is given")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewTransferOverheadOwnershipCmd returns the command to create a MsgTransferOverheadPaymasterOwnership
func NewTransferOverheadOwnershipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer-overhead-ownership [overhead-paymaster] [new-owner]",
		Short:   "Transfer the ownership of an overhead paymaster",
		Long:    "Transfer the ownership of an overhead paymaster. With --immutable and no new owner the ownership is renounced permanently.",
		Example: fmt.Sprintf("%s tx igp transfer-overhead-ownership cosmos1... cosmos1...", version.AppName),
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			newOwner, err := newOwnerFromArgs(cmd, args)
			if err != nil {
				return err
			}

			msg := types.NewMsgTransferOverheadPaymasterOwnership(clientCtx.GetFromAddress().String(), args[0], newOwner)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagImmutable, false, "renounce the ownership when no new owner is given")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewSetBeneficiaryCmd returns the command to create a MsgSetBeneficiary
func NewSetBeneficiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set-beneficiary [paymaster] [beneficiary]",
		Short:   "Set the beneficiary of a paymaster",
		Example: fmt.Sprintf("%s tx igp set-beneficiary cosmos1... cosmos1...", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetBeneficiary(clientCtx.GetFromAddress().String(), args[0], args[1])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func addOwnerFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagOwner, "", "owner of the paymaster, defaults to the sender")
	cmd.Flags().Bool(flagImmutable, false, "create the paymaster without an owner")
}

// ownerFromFlags returns the owner to create an instance with: the --owner flag, the
// sender, or no owner at all with --immutable.
func ownerFromFlags(cmd *cobra.Command, clientCtx client.Context) (string, error) {
	owner, err := cmd.Flags().GetString(flagOwner)
	if err != nil {
		return "", err
	}

	immutable, err := cmd.Flags().GetBool(flagImmutable)
	if err != nil {
		return "", err
	}

	switch {
	case immutable && owner != "":
		return "", errors.Errorf("--%s and --%s are mutually exclusive", flagOwner, flagImmutable)
	case immutable:
		return "", nil
	case owner != "":
		return owner, nil
	default:
		return clientCtx.GetFromAddress().String(), nil
	}
}

func newOwnerFromArgs(cmd *cobra.Command, args []string) (string, error) {
	immutable, err := cmd.Flags().GetBool(flagImmutable)
	if err != nil {
		return "", err
	}

	if len(args) == 2 {
		if immutable {
			return "", errors.Errorf("a new owner cannot be combined with --%s", flagImmutable)
		}

		return args[1], nil
	}

	if !immutable {
		return "", errors.Errorf("a new owner is required unless --%s is set", flagImmutable)
	}

	return "", nil
}

// parseGasOracleConfigs parses configs of the form domain:token-exchange-rate:gas-price.
// A bare domain removes the gas data of the domain.
func parseGasOracleConfigs(args []string) ([]types.GasOracleConfig, error) {
	configs := make([]types.GasOracleConfig, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")

		domain, err := parseDomain(parts[0])
		if err != nil {
			return nil, err
		}

		switch len(parts) {
		case 1:
			configs = append(configs, types.NewGasOracleRemoval(domain))
		case 3:
			exchangeRate, err := sdk.ParseUint(parts[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid token exchange rate in %s", arg)
			}

			gasPrice, err := sdk.ParseUint(parts[2])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid gas price in %s", arg)
			}

			configs = append(configs, types.NewGasOracleConfig(domain, types.NewRemoteGasData(exchangeRate, gasPrice)))
		default:
			return nil, errors.Errorf("invalid gas oracle config %s, expected domain:token-exchange-rate:gas-price", arg)
		}
	}

	return configs, nil
}

// parseGasOverheadConfigs parses configs of the form domain:gas-overhead. A bare
// domain clears the overhead of the domain.
func parseGasOverheadConfigs(args []string) ([]types.GasOverheadConfig, error) {
	configs := make([]types.GasOverheadConfig, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")

		domain, err := parseDomain(parts[0])
		if err != nil {
			return nil, err
		}

		switch len(parts) {
		case 1:
			configs = append(configs, types.NewGasOverheadRemoval(domain))
		case 2:
			overhead, err := cast.ToUint64E(parts[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid gas overhead in %s", arg)
			}

			configs = append(configs, types.NewGasOverheadConfig(domain, overhead))
		default:
			return nil, errors.Errorf("invalid gas overhead config %s, expected domain:gas-overhead", arg)
		}
	}

	return configs, nil
}
