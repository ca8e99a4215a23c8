package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// DomainGasOracle is the remote gas data of a single domain
type DomainGasOracle struct {
	Domain    uint32        `json:"domain" yaml:"domain"`
	GasOracle RemoteGasData `json:"gas_oracle" yaml:"gas_oracle"`
}

// DomainGasOverhead is the gas overhead of a single domain
type DomainGasOverhead struct {
	Domain      uint32 `json:"domain" yaml:"domain"`
	GasOverhead uint64 `json:"gas_overhead" yaml:"gas_overhead"`
}

// IdentifiedPaymaster is a paymaster together with its registries
type IdentifiedPaymaster struct {
	Paymaster    Paymaster           `json:"paymaster" yaml:"paymaster"`
	GasOracles   []DomainGasOracle   `json:"gas_oracles" yaml:"gas_oracles"`
	GasOverheads []DomainGasOverhead `json:"gas_overheads" yaml:"gas_overheads"`
}

// IdentifiedOverheadPaymaster is an overhead paymaster together with its overhead registry
type IdentifiedOverheadPaymaster struct {
	OverheadPaymaster OverheadPaymaster   `json:"overhead_paymaster" yaml:"overhead_paymaster"`
	GasOverheads      []DomainGasOverhead `json:"gas_overheads" yaml:"gas_overheads"`
}

// GasPayment is the cumulative gas paid for a message on a destination domain
type GasPayment struct {
	Paymaster         string `json:"paymaster" yaml:"paymaster"`
	MessageId         string `json:"message_id" yaml:"message_id"`
	DestinationDomain uint32 `json:"destination_domain" yaml:"destination_domain"`
	GasAmount         uint64 `json:"gas_amount" yaml:"gas_amount"`
}

// NewGasPayment creates a new GasPayment instance
func NewGasPayment(paymaster, messageID string, destinationDomain uint32, gasAmount uint64) GasPayment {
	return GasPayment{
		Paymaster:         paymaster,
		MessageId:         messageID,
		DestinationDomain: destinationDomain,
		GasAmount:         gasAmount,
	}
}

// GenesisState defines the igp genesis state
type GenesisState struct {
	Params              Params                        `json:"params" yaml:"params"`
	NextPaymentSequence uint64                        `json:"next_payment_sequence" yaml:"next_payment_sequence"`
	Paymasters          []IdentifiedPaymaster         `json:"paymasters" yaml:"paymasters"`
	OverheadPaymasters  []IdentifiedOverheadPaymaster `json:"overhead_paymasters" yaml:"overhead_paymasters"`
	GasPayments         []GasPayment                  `json:"gas_payments" yaml:"gas_payments"`
}

// NewGenesisState creates an igp GenesisState instance.
func NewGenesisState(
	params Params, nextPaymentSequence uint64, paymasters []IdentifiedPaymaster,
	overheadPaymasters []IdentifiedOverheadPaymaster, gasPayments []GasPayment,
) *GenesisState {
	return &GenesisState{
		Params:              params,
		NextPaymentSequence: nextPaymentSequence,
		Paymasters:          paymasters,
		OverheadPaymasters:  overheadPaymasters,
		GasPayments:         gasPayments,
	}
}

// DefaultGenesisState returns a default instance of the igp GenesisState.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:              DefaultParams(),
		NextPaymentSequence: 1,
		Paymasters:          []IdentifiedPaymaster{},
		OverheadPaymasters:  []IdentifiedOverheadPaymaster{},
		GasPayments:         []GasPayment{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextPaymentSequence == 0 {
		return sdkerrors.Wrap(ErrInvalidConfiguration, "next payment sequence must be positive")
	}

	paymasters := make(map[string]struct{}, len(gs.Paymasters))
	for _, identified := range gs.Paymasters {
		if err := identified.Paymaster.Validate(); err != nil {
			return err
		}

		if _, ok := paymasters[identified.Paymaster.Address]; ok {
			return sdkerrors.Wrapf(ErrPaymasterExists, "duplicate paymaster %s", identified.Paymaster.Address)
		}
		paymasters[identified.Paymaster.Address] = struct{}{}

		if err := validateDomainGasOracles(identified.GasOracles); err != nil {
			return sdkerrors.Wrapf(err, "paymaster %s", identified.Paymaster.Address)
		}

		if err := validateDomainGasOverheads(identified.GasOverheads); err != nil {
			return sdkerrors.Wrapf(err, "paymaster %s", identified.Paymaster.Address)
		}
	}

	overheadPaymasters := make(map[string]struct{}, len(gs.OverheadPaymasters))
	for _, identified := range gs.OverheadPaymasters {
		overheadPaymaster := identified.OverheadPaymaster
		if err := overheadPaymaster.Validate(); err != nil {
			return err
		}

		if _, ok := overheadPaymasters[overheadPaymaster.Address]; ok {
			return sdkerrors.Wrapf(ErrPaymasterExists, "duplicate overhead paymaster %s", overheadPaymaster.Address)
		}
		overheadPaymasters[overheadPaymaster.Address] = struct{}{}

		if _, ok := paymasters[overheadPaymaster.Inner]; !ok {
			return sdkerrors.Wrapf(ErrPaymasterNotFound, "inner paymaster %s of overhead paymaster %s", overheadPaymaster.Inner, overheadPaymaster.Address)
		}

		if err := validateDomainGasOverheads(identified.GasOverheads); err != nil {
			return sdkerrors.Wrapf(err, "overhead paymaster %s", overheadPaymaster.Address)
		}
	}

	payments := make(map[string]struct{}, len(gs.GasPayments))
	for _, payment := range gs.GasPayments {
		if _, ok := paymasters[payment.Paymaster]; !ok {
			return sdkerrors.Wrapf(ErrPaymasterNotFound, "gas payment references paymaster %s", payment.Paymaster)
		}

		messageID, err := ParseMessageID(payment.MessageId)
		if err != nil {
			return err
		}

		key := fmt.Sprintf("%s/%s/%d", payment.Paymaster, messageID.Hex(), payment.DestinationDomain)
		if _, ok := payments[key]; ok {
			return sdkerrors.Wrapf(ErrInvalidConfiguration, "duplicate gas payment for message %s on domain %d", payment.MessageId, payment.DestinationDomain)
		}
		payments[key] = struct{}{}
	}

	return nil
}

func validateDomainGasOracles(oracles []DomainGasOracle) error {
	configs := make([]GasOracleConfig, len(oracles))
	for i, oracle := range oracles {
		configs[i] = NewGasOracleConfig(oracle.Domain, oracle.GasOracle)
	}

	if len(configs) == 0 {
		return nil
	}

	return ValidateGasOracleConfigs(configs)
}

func validateDomainGasOverheads(overheads []DomainGasOverhead) error {
	configs := make([]GasOverheadConfig, len(overheads))
	for i, overhead := range overheads {
		configs[i] = NewGasOverheadConfig(overhead.Domain, overhead.GasOverhead)
	}

	if len(configs) == 0 {
		return nil
	}

	return ValidateGasOverheadConfigs(configs)
}
