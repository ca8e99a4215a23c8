package keeper

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// EmitPayForGas emits an event so that relayers know a message has been paid for
func EmitPayForGas(ctx sdk.Context, paymaster sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64, payment sdk.Coin, sequence uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePayForGas,
			sdk.NewAttribute(types.AttributeKeyPaymaster, paymaster.String()),
			sdk.NewAttribute(types.AttributeKeyMessageID, messageID.Hex()),
			sdk.NewAttribute(types.AttributeKeyDestinationDomain, fmt.Sprint(domain)),
			sdk.NewAttribute(types.AttributeKeyGasAmount, strconv.FormatUint(gasAmount, 10)),
			sdk.NewAttribute(types.AttributeKeyPayment, payment.String()),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// EmitClaim emits an event for a claim of the accumulated paymaster balance
func EmitClaim(ctx sdk.Context, paymaster, beneficiary sdk.AccAddress, amount sdk.Coin) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyPaymaster, paymaster.String()),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// EmitInitPaymaster emits an event for a newly created paymaster
func EmitInitPaymaster(ctx sdk.Context, paymaster types.Paymaster) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInitPaymaster,
			sdk.NewAttribute(types.AttributeKeyPaymaster, paymaster.Address),
			sdk.NewAttribute(types.AttributeKeyOwner, paymaster.Owner),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, paymaster.Beneficiary),
		),
	)
}

// EmitInitOverheadPaymaster emits an event for a newly created overhead paymaster
func EmitInitOverheadPaymaster(ctx sdk.Context, overheadPaymaster types.OverheadPaymaster) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInitOverheadPaymaster,
			sdk.NewAttribute(types.AttributeKeyPaymaster, overheadPaymaster.Address),
			sdk.NewAttribute(types.AttributeKeyOwner, overheadPaymaster.Owner),
			sdk.NewAttribute(types.AttributeKeyInner, overheadPaymaster.Inner),
		),
	)
}

// EmitSetGasOracle emits an event for every domain of an applied gas oracle batch
func EmitSetGasOracle(ctx sdk.Context, paymaster sdk.AccAddress, config types.GasOracleConfig) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyPaymaster, paymaster.String()),
		sdk.NewAttribute(types.AttributeKeyDestinationDomain, fmt.Sprint(config.Domain)),
		sdk.NewAttribute(types.AttributeKeyRemoved, strconv.FormatBool(config.IsRemoval())),
	}

	if !config.IsRemoval() {
		attributes = append(attributes,
			sdk.NewAttribute(types.AttributeKeyTokenExchangeRate, config.GasOracle.TokenExchangeRate.String()),
			sdk.NewAttribute(types.AttributeKeyGasPrice, config.GasOracle.GasPrice.String()),
		)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSetGasOracle, attributes...))
}

// EmitSetGasOverhead emits an event for every domain of an applied gas overhead batch
func EmitSetGasOverhead(ctx sdk.Context, instance sdk.AccAddress, config types.GasOverheadConfig) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyPaymaster, instance.String()),
		sdk.NewAttribute(types.AttributeKeyDestinationDomain, fmt.Sprint(config.Domain)),
		sdk.NewAttribute(types.AttributeKeyRemoved, strconv.FormatBool(config.IsRemoval())),
	}

	if !config.IsRemoval() {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyGasOverhead, strconv.FormatUint(*config.GasOverhead, 10)))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSetGasOverhead, attributes...))
}

// EmitTransferOwnership emits an event for an ownership change of a paymaster or overhead paymaster
func EmitTransferOwnership(ctx sdk.Context, instance sdk.AccAddress, previousOwner, newOwner string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferOwnership,
			sdk.NewAttribute(types.AttributeKeyPaymaster, instance.String()),
			sdk.NewAttribute(types.AttributeKeyPreviousOwner, previousOwner),
			sdk.NewAttribute(types.AttributeKeyOwner, newOwner),
		),
	)
}

// EmitSetBeneficiary emits an event for a beneficiary change
func EmitSetBeneficiary(ctx sdk.Context, paymaster, beneficiary sdk.AccAddress) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetBeneficiary,
			sdk.NewAttribute(types.AttributeKeyPaymaster, paymaster.String()),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
		),
	)
}
