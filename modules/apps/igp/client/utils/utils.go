package utils

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// QueryIGP sends req to the igp legacy querier at endpoint and returns the amino JSON
// response along with the height it was served at.
func QueryIGP(clientCtx client.Context, endpoint string, req interface{}) ([]byte, int64, error) {
	var (
		bz  []byte
		err error
	)

	if req != nil {
		bz, err = types.ModuleCdc.MarshalJSON(req)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to encode %s query", endpoint)
		}
	}

	route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint)
	res, height, err := clientCtx.QueryWithData(route, bz)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to query %s", endpoint)
	}

	return res, height, nil
}
