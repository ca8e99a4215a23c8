package telemetry

import (
	"fmt"

	metrics "github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

const (
	labelDenom             = "denom"
	labelDestinationDomain = "destination_domain"
	labelPaymaster         = "paymaster"
)

// ReportPayForGas records a gas payment of payment for gasAmount units of gas on domain.
func ReportPayForGas(paymaster string, domain uint32, gasAmount uint64, payment sdk.Coin) {
	labels := []metrics.Label{
		telemetry.NewLabel(labelPaymaster, paymaster),
		telemetry.NewLabel(labelDestinationDomain, fmt.Sprintf("%d", domain)),
	}

	if payment.Amount.IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", types.ModuleName, "payment"},
			float32(payment.Amount.Int64()),
			[]metrics.Label{telemetry.NewLabel(labelDenom, payment.Denom)},
		)
	}

	telemetry.SetGaugeWithLabels(
		[]string{"tx", "msg", types.ModuleName, "gas_amount"},
		float32(gasAmount),
		labels,
	)

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "pay_for_gas"},
		1,
		labels,
	)
}

// ReportClaim records a claim of amount from paymaster.
func ReportClaim(paymaster string, amount sdk.Coin) {
	if amount.Amount.IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", types.ModuleName, "claim"},
			float32(amount.Amount.Int64()),
			[]metrics.Label{telemetry.NewLabel(labelDenom, amount.Denom)},
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "claim"},
		1,
		[]metrics.Label{telemetry.NewLabel(labelPaymaster, paymaster)},
	)
}
