package types

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the interchain gas paymaster module name
	ModuleName = "igp"

	// StoreKey is the store key string for the interchain gas paymaster module
	StoreKey = ModuleName

	// RouterKey is the message route for the interchain gas paymaster module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the interchain gas paymaster module
	QuerierRoute = ModuleName

	// PdaSeedPrefix is prepended to every seed used to derive paymaster addresses
	PdaSeedPrefix = "hyperlane_igp"

	// PaymasterSeed is the seed used to derive paymaster addresses
	PaymasterSeed = "igp"

	// OverheadPaymasterSeed is the seed used to derive overhead paymaster addresses
	OverheadPaymasterSeed = "overhead_igp"
)

var (
	// PaymasterKeyPrefix is the key prefix for paymaster instances
	PaymasterKeyPrefix = []byte{0x01}

	// OverheadPaymasterKeyPrefix is the key prefix for overhead paymaster instances
	OverheadPaymasterKeyPrefix = []byte{0x02}

	// GasOracleKeyPrefix is the key prefix for per domain remote gas data
	GasOracleKeyPrefix = []byte{0x03}

	// GasOverheadKeyPrefix is the key prefix for per domain gas overheads
	GasOverheadKeyPrefix = []byte{0x04}

	// GasPaymentKeyPrefix is the key prefix for cumulative gas payment records
	GasPaymentKeyPrefix = []byte{0x05}

	// NextPaymentSequenceKey stores the sequence assigned to the next gas payment
	NextPaymentSequenceKey = []byte{0x06}
)

// PaymasterKey returns the store key of the paymaster at the given address.
func PaymasterKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, PaymasterKeyPrefix...), addr.Bytes()...)
}

// OverheadPaymasterKey returns the store key of the overhead paymaster at the given address.
func OverheadPaymasterKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, OverheadPaymasterKeyPrefix...), addr.Bytes()...)
}

// GasOracleInstancePrefix returns the prefix under which all remote gas data of a paymaster is stored.
func GasOracleInstancePrefix(paymaster sdk.AccAddress) []byte {
	return append(append([]byte{}, GasOracleKeyPrefix...), lengthPrefixed(paymaster)...)
}

// GasOracleKey returns the key for the remote gas data of a paymaster on the given domain.
func GasOracleKey(paymaster sdk.AccAddress, domain uint32) []byte {
	return append(GasOracleInstancePrefix(paymaster), DomainBytes(domain)...)
}

// GasOverheadInstancePrefix returns the prefix under which all gas overheads of an
// instance (paymaster or overhead paymaster) are stored.
func GasOverheadInstancePrefix(instance sdk.AccAddress) []byte {
	return append(append([]byte{}, GasOverheadKeyPrefix...), lengthPrefixed(instance)...)
}

// GasOverheadKey returns the key for the gas overhead of an instance on the given domain.
func GasOverheadKey(instance sdk.AccAddress, domain uint32) []byte {
	return append(GasOverheadInstancePrefix(instance), DomainBytes(domain)...)
}

// GasPaymentInstancePrefix returns the prefix under which all gas payment records of a paymaster are stored.
func GasPaymentInstancePrefix(paymaster sdk.AccAddress) []byte {
	return append(append([]byte{}, GasPaymentKeyPrefix...), lengthPrefixed(paymaster)...)
}

// GasPaymentKey returns the key for the cumulative gas payment record of a message on a domain.
// <prefix>/<paymaster>/<message-id>/<domain> -> gas amount
func GasPaymentKey(paymaster sdk.AccAddress, messageID common.Hash, domain uint32) []byte {
	key := append(GasPaymentInstancePrefix(paymaster), messageID.Bytes()...)
	return append(key, DomainBytes(domain)...)
}

// ParseGasPaymentKey splits a gas payment key with its instance prefix removed.
func ParseGasPaymentKey(key []byte) (common.Hash, uint32, bool) {
	if len(key) != common.HashLength+4 {
		return common.Hash{}, 0, false
	}

	return common.BytesToHash(key[:common.HashLength]), binary.BigEndian.Uint32(key[common.HashLength:]), true
}

// DomainBytes returns the big endian encoding of a domain identifier.
func DomainBytes(domain uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, domain)
	return bz
}

// ParseDomain decodes a big endian domain identifier.
func ParseDomain(bz []byte) (uint32, bool) {
	if len(bz) != 4 {
		return 0, false
	}

	return binary.BigEndian.Uint32(bz), true
}

func lengthPrefixed(addr sdk.AccAddress) []byte {
	bz := addr.Bytes()
	return append([]byte{byte(len(bz))}, bz...)
}
