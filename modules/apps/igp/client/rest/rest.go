package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/spf13/cast"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/rest"

	"github.com/cosmos/igp-go/modules/apps/igp/client/utils"
	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

const (
	restAddress   = "address"
	restDomain    = "domain"
	restGasAmount = "gas_amount"
	restMessageID = "message_id"
)

// RegisterRoutes registers the igp REST query routes.
func RegisterRoutes(clientCtx client.Context, rtr *mux.Router) {
	rtr.HandleFunc("/igp/params", paramsHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/paymasters/{address}", paymasterHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/overhead_paymasters/{address}", overheadPaymasterHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/paymasters/{address}/gas_oracles/{domain}", gasOracleHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/paymasters/{address}/gas_overheads/{domain}", gasOverheadHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/paymasters/{address}/gas_payments/{message_id}/{domain}", gasPaymentHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/igp/paymasters/{address}/quote/{domain}/{gas_amount}", quoteGasPaymentHandlerFn(clientCtx)).Methods("GET")
}

// RegisterGatewayRoutes registers the read only igp routes on the gRPC gateway mux.
// They are served from the same legacy querier as the REST routes.
func RegisterGatewayRoutes(clientCtx client.Context, gwmux *runtime.ServeMux) {
	gwmux.Handle("GET", patternParams, gatewayHandler(clientCtx, func(map[string]string) (string, interface{}, error) {
		return types.QueryParams, nil, nil
	}))

	gwmux.Handle("GET", patternQuoteGasPayment, gatewayHandler(clientCtx, func(vars map[string]string) (string, interface{}, error) {
		req, err := quoteRequest(vars)
		return types.QueryQuoteGasPayment, req, err
	}))
}

var (
	patternParams = runtime.MustPattern(runtime.NewPattern(1, []int{2, 0, 2, 1, 2, 2}, []string{"igp", "v1", "params"}, "", runtime.AssumeColonVerbOpt(true)))

	patternQuoteGasPayment = runtime.MustPattern(runtime.NewPattern(1, []int{2, 0, 2, 1, 2, 2, 1, 0, 4, 1, 5, 3, 2, 4, 1, 0, 4, 1, 5, 5, 1, 0, 4, 1, 5, 6}, []string{"igp", "v1", "paymasters", restAddress, "quote", restDomain, restGasAmount}, "", runtime.AssumeColonVerbOpt(true)))
)

func gatewayHandler(clientCtx client.Context, build func(map[string]string) (string, interface{}, error)) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		endpoint, req, err := build(pathParams)
		if rest.CheckBadRequestError(w, err) {
			return
		}

		serveQuery(w, r, clientCtx, endpoint, req)
	}
}

func paramsHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, clientCtx, types.QueryParams, nil)
	}
}

func paymasterHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &types.QueryPaymasterRequest{Address: mux.Vars(r)[restAddress]}
		serveQuery(w, r, clientCtx, types.QueryPaymaster, req)
	}
}

func overheadPaymasterHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &types.QueryOverheadPaymasterRequest{Address: mux.Vars(r)[restAddress]}
		serveQuery(w, r, clientCtx, types.QueryOverheadPaymaster, req)
	}
}

func gasOracleHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		domain, err := cast.ToUint32E(vars[restDomain])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		req := &types.QueryGasOracleRequest{Paymaster: vars[restAddress], Domain: domain}
		serveQuery(w, r, clientCtx, types.QueryGasOracle, req)
	}
}

func gasOverheadHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		domain, err := cast.ToUint32E(vars[restDomain])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		req := &types.QueryGasOverheadRequest{Paymaster: vars[restAddress], Domain: domain}
		serveQuery(w, r, clientCtx, types.QueryGasOverhead, req)
	}
}

func gasPaymentHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		domain, err := cast.ToUint32E(vars[restDomain])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		req := &types.QueryGasPaymentRequest{
			Paymaster:         vars[restAddress],
			MessageId:         vars[restMessageID],
			DestinationDomain: domain,
		}
		serveQuery(w, r, clientCtx, types.QueryGasPayment, req)
	}
}

func quoteGasPaymentHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := quoteRequest(mux.Vars(r))
		if rest.CheckBadRequestError(w, err) {
			return
		}

		serveQuery(w, r, clientCtx, types.QueryQuoteGasPayment, req)
	}
}

func quoteRequest(vars map[string]string) (*types.QueryQuoteGasPaymentRequest, error) {
	domain, err := cast.ToUint32E(vars[restDomain])
	if err != nil {
		return nil, err
	}

	gasAmount, err := cast.ToUint64E(vars[restGasAmount])
	if err != nil {
		return nil, err
	}

	return &types.QueryQuoteGasPaymentRequest{
		Paymaster:         vars[restAddress],
		DestinationDomain: domain,
		GasAmount:         gasAmount,
	}, nil
}

func serveQuery(w http.ResponseWriter, r *http.Request, clientCtx client.Context, endpoint string, req interface{}) {
	clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
	if !ok {
		return
	}

	res, height, err := utils.QueryIGP(clientCtx, endpoint, req)
	if rest.CheckInternalServerError(w, err) {
		return
	}

	clientCtx = clientCtx.WithHeight(height)
	rest.PostProcessResponse(w, clientCtx, res)
}
