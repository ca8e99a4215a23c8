package types

// igp events
const (
	EventTypeInitPaymaster         = "init_paymaster"
	EventTypeInitOverheadPaymaster = "init_overhead_paymaster"
	EventTypePayForGas             = "pay_for_gas"
	EventTypeClaim                 = "claim"
	EventTypeSetGasOracle          = "set_gas_oracle"
	EventTypeSetGasOverhead        = "set_gas_overhead"
	EventTypeTransferOwnership     = "transfer_ownership"
	EventTypeSetBeneficiary        = "set_beneficiary"

	AttributeKeyPaymaster         = "paymaster"
	AttributeKeyInner             = "inner"
	AttributeKeyOwner             = "owner"
	AttributeKeyPreviousOwner     = "previous_owner"
	AttributeKeyBeneficiary       = "beneficiary"
	AttributeKeyMessageID         = "message_id"
	AttributeKeyDestinationDomain = "destination_domain"
	AttributeKeyGasAmount         = "gas_amount"
	AttributeKeyPayment           = "payment"
	AttributeKeySequence          = "sequence"
	AttributeKeyTokenExchangeRate = "token_exchange_rate"
	AttributeKeyGasPrice          = "gas_price"
	AttributeKeyGasOverhead       = "gas_overhead"
	AttributeKeyRemoved           = "removed"
	AttributeKeyAmount            = "amount"

	AttributeValueCategory = ModuleName
)
