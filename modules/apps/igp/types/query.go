package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// legacy querier paths
const (
	QueryPaymaster         = "paymaster"
	QueryOverheadPaymaster = "overhead-paymaster"
	QueryGasOracle         = "gas-oracle"
	QueryGasOverhead       = "gas-overhead"
	QueryGasPayment        = "gas-payment"
	QueryQuoteGasPayment   = "quote-gas-payment"
	QueryParams            = "params"
)

// QueryServer defines the igp query service
type QueryServer interface {
	Paymaster(context.Context, *QueryPaymasterRequest) (*QueryPaymasterResponse, error)
	OverheadPaymaster(context.Context, *QueryOverheadPaymasterRequest) (*QueryOverheadPaymasterResponse, error)
	GasOracle(context.Context, *QueryGasOracleRequest) (*QueryGasOracleResponse, error)
	GasOverhead(context.Context, *QueryGasOverheadRequest) (*QueryGasOverheadResponse, error)
	GasPayment(context.Context, *QueryGasPaymentRequest) (*QueryGasPaymentResponse, error)
	QuoteGasPayment(context.Context, *QueryQuoteGasPaymentRequest) (*QueryQuoteGasPaymentResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}

// QueryPaymasterRequest is the request type for the Query/Paymaster method
type QueryPaymasterRequest struct {
	Address string `json:"address" yaml:"address"`
}

// QueryPaymasterResponse is the response type for the Query/Paymaster method
type QueryPaymasterResponse struct {
	Paymaster Paymaster `json:"paymaster" yaml:"paymaster"`
}

// QueryOverheadPaymasterRequest is the request type for the Query/OverheadPaymaster method
type QueryOverheadPaymasterRequest struct {
	Address string `json:"address" yaml:"address"`
}

// QueryOverheadPaymasterResponse is the response type for the Query/OverheadPaymaster method
type QueryOverheadPaymasterResponse struct {
	OverheadPaymaster OverheadPaymaster `json:"overhead_paymaster" yaml:"overhead_paymaster"`
}

// QueryGasOracleRequest is the request type for the Query/GasOracle method
type QueryGasOracleRequest struct {
	Paymaster string `json:"paymaster" yaml:"paymaster"`
	Domain    uint32 `json:"domain" yaml:"domain"`
}

// QueryGasOracleResponse is the response type for the Query/GasOracle method
type QueryGasOracleResponse struct {
	GasOracle RemoteGasData `json:"gas_oracle" yaml:"gas_oracle"`
}

// QueryGasOverheadRequest is the request type for the Query/GasOverhead method.
// Paymaster may address a paymaster or an overhead paymaster.
type QueryGasOverheadRequest struct {
	Paymaster string `json:"paymaster" yaml:"paymaster"`
	Domain    uint32 `json:"domain" yaml:"domain"`
}

// QueryGasOverheadResponse is the response type for the Query/GasOverhead method
type QueryGasOverheadResponse struct {
	GasOverhead uint64 `json:"gas_overhead" yaml:"gas_overhead"`
}

// QueryGasPaymentRequest is the request type for the Query/GasPayment method
type QueryGasPaymentRequest struct {
	Paymaster         string `json:"paymaster" yaml:"paymaster"`
	MessageId         string `json:"message_id" yaml:"message_id"`
	DestinationDomain uint32 `json:"destination_domain" yaml:"destination_domain"`
}

// QueryGasPaymentResponse is the response type for the Query/GasPayment method
type QueryGasPaymentResponse struct {
	GasAmount uint64 `json:"gas_amount" yaml:"gas_amount"`
}

// QueryQuoteGasPaymentRequest is the request type for the Query/QuoteGasPayment method.
// Paymaster may address a paymaster or an overhead paymaster.
type QueryQuoteGasPaymentRequest struct {
	Paymaster         string `json:"paymaster" yaml:"paymaster"`
	DestinationDomain uint32 `json:"destination_domain" yaml:"destination_domain"`
	GasAmount         uint64 `json:"gas_amount" yaml:"gas_amount"`
}

// QueryQuoteGasPaymentResponse is the response type for the Query/QuoteGasPayment method
type QueryQuoteGasPaymentResponse struct {
	Payment sdk.Coin `json:"payment" yaml:"payment"`
}

// QueryParamsRequest is the request type for the Query/Params method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method
type QueryParamsResponse struct {
	Params Params `json:"params" yaml:"params"`
}
