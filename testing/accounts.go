package igptesting

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewAddress returns the address of a freshly generated secp256k1 key.
func NewAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// NewHash returns the keccak256 hash of label, for use as a message id or salt.
func NewHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}
