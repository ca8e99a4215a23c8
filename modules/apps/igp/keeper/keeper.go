package keeper

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
)

// Keeper defines the interchain gas paymaster keeper. It holds the state of every
// paymaster and overhead paymaster instance; each operation addresses the instance it
// acts on explicitly.
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramSpace paramtypes.Subspace

	authKeeper types.AccountKeeper
	bankKeeper types.BankKeeper
}

// NewKeeper creates a new interchain gas paymaster Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace,
	authKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
) Keeper {
	// ensure the module account is set
	if addr := authKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic(fmt.Sprintf("the %s module account has not been set", types.ModuleName))
	}

	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:        cdc,
		storeKey:   key,
		paramSpace: paramSpace,
		authKeeper: authKeeper,
		bankKeeper: bankKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the address of the module account holding all unclaimed gas payments.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.authKeeper.GetModuleAddress(types.ModuleName)
}

// GetPaymaster returns the paymaster stored at the given address.
func (k Keeper) GetPaymaster(ctx sdk.Context, addr sdk.AccAddress) (types.Paymaster, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PaymasterKey(addr))
	if bz == nil {
		return types.Paymaster{}, false
	}

	var paymaster types.Paymaster
	k.cdc.MustUnmarshal(bz, &paymaster)
	return paymaster, true
}

// SetPaymaster stores a paymaster under its address.
func (k Keeper) SetPaymaster(ctx sdk.Context, paymaster types.Paymaster) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.PaymasterKey(paymaster.GetAddress()), k.cdc.MustMarshal(&paymaster))
}

// HasPaymaster returns true if a paymaster exists at the given address.
func (k Keeper) HasPaymaster(ctx sdk.Context, addr sdk.AccAddress) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.PaymasterKey(addr))
}

// GetAllPaymasters returns every paymaster in state.
func (k Keeper) GetAllPaymasters(ctx sdk.Context) []types.Paymaster {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.PaymasterKeyPrefix)
	defer iterator.Close()

	var paymasters []types.Paymaster
	for ; iterator.Valid(); iterator.Next() {
		var paymaster types.Paymaster
		k.cdc.MustUnmarshal(iterator.Value(), &paymaster)
		paymasters = append(paymasters, paymaster)
	}

	return paymasters
}

// GetOverheadPaymaster returns the overhead paymaster stored at the given address.
func (k Keeper) GetOverheadPaymaster(ctx sdk.Context, addr sdk.AccAddress) (types.OverheadPaymaster, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OverheadPaymasterKey(addr))
	if bz == nil {
		return types.OverheadPaymaster{}, false
	}

	var overheadPaymaster types.OverheadPaymaster
	k.cdc.MustUnmarshal(bz, &overheadPaymaster)
	return overheadPaymaster, true
}

// SetOverheadPaymaster stores an overhead paymaster under its address.
func (k Keeper) SetOverheadPaymaster(ctx sdk.Context, overheadPaymaster types.OverheadPaymaster) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.OverheadPaymasterKey(overheadPaymaster.GetAddress()), k.cdc.MustMarshal(&overheadPaymaster))
}

// HasOverheadPaymaster returns true if an overhead paymaster exists at the given address.
func (k Keeper) HasOverheadPaymaster(ctx sdk.Context, addr sdk.AccAddress) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.OverheadPaymasterKey(addr))
}

// GetAllOverheadPaymasters returns every overhead paymaster in state.
func (k Keeper) GetAllOverheadPaymasters(ctx sdk.Context) []types.OverheadPaymaster {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.OverheadPaymasterKeyPrefix)
	defer iterator.Close()

	var overheadPaymasters []types.OverheadPaymaster
	for ; iterator.Valid(); iterator.Next() {
		var overheadPaymaster types.OverheadPaymaster
		k.cdc.MustUnmarshal(iterator.Value(), &overheadPaymaster)
		overheadPaymasters = append(overheadPaymasters, overheadPaymaster)
	}

	return overheadPaymasters
}

// GetGasOracle returns the remote gas data of a paymaster for a domain.
func (k Keeper) GetGasOracle(ctx sdk.Context, paymaster sdk.AccAddress, domain uint32) (types.RemoteGasData, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GasOracleKey(paymaster, domain))
	if bz == nil {
		return types.RemoteGasData{}, false
	}

	var data types.RemoteGasData
	k.cdc.MustUnmarshal(bz, &data)
	return data, true
}

// SetGasOracle stores the remote gas data of a paymaster for a domain.
func (k Keeper) SetGasOracle(ctx sdk.Context, paymaster sdk.AccAddress, domain uint32, data types.RemoteGasData) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GasOracleKey(paymaster, domain), k.cdc.MustMarshal(&data))
}

// DeleteGasOracle removes the remote gas data of a paymaster for a domain.
func (k Keeper) DeleteGasOracle(ctx sdk.Context, paymaster sdk.AccAddress, domain uint32) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GasOracleKey(paymaster, domain))
}

// GetAllGasOracles returns the remote gas data of every domain configured on a paymaster.
func (k Keeper) GetAllGasOracles(ctx sdk.Context, paymaster sdk.AccAddress) []types.DomainGasOracle {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.GasOracleInstancePrefix(paymaster))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var oracles []types.DomainGasOracle
	for ; iterator.Valid(); iterator.Next() {
		domain, ok := types.ParseDomain(iterator.Key())
		if !ok {
			panic(fmt.Errorf("malformed gas oracle key %X", iterator.Key()))
		}

		var data types.RemoteGasData
		k.cdc.MustUnmarshal(iterator.Value(), &data)
		oracles = append(oracles, types.DomainGasOracle{Domain: domain, GasOracle: data})
	}

	return oracles
}

// GetGasOverhead returns the gas overhead of an instance for a domain.
func (k Keeper) GetGasOverhead(ctx sdk.Context, instance sdk.AccAddress, domain uint32) (uint64, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GasOverheadKey(instance, domain))
	if bz == nil {
		return 0, false
	}

	return sdk.BigEndianToUint64(bz), true
}

// SetGasOverhead stores the gas overhead of an instance for a domain.
func (k Keeper) SetGasOverhead(ctx sdk.Context, instance sdk.AccAddress, domain uint32, overhead uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GasOverheadKey(instance, domain), sdk.Uint64ToBigEndian(overhead))
}

// DeleteGasOverhead removes the gas overhead of an instance for a domain.
func (k Keeper) DeleteGasOverhead(ctx sdk.Context, instance sdk.AccAddress, domain uint32) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GasOverheadKey(instance, domain))
}

// GetAllGasOverheads returns the gas overhead of every domain configured on an instance.
func (k Keeper) GetAllGasOverheads(ctx sdk.Context, instance sdk.AccAddress) []types.DomainGasOverhead {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.GasOverheadInstancePrefix(instance))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var overheads []types.DomainGasOverhead
	for ; iterator.Valid(); iterator.Next() {
		domain, ok := types.ParseDomain(iterator.Key())
		if !ok {
			panic(fmt.Errorf("malformed gas overhead key %X", iterator.Key()))
		}

		overheads = append(overheads, types.DomainGasOverhead{Domain: domain, GasOverhead: sdk.BigEndianToUint64(iterator.Value())})
	}

	return overheads
}

// GetGasPayment returns the cumulative gas paid to a paymaster for a message on a domain.
func (k Keeper) GetGasPayment(ctx sdk.Context, paymaster sdk.AccAddress, messageID common.Hash, domain uint32) (uint64, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GasPaymentKey(paymaster, messageID, domain))
	if bz == nil {
		return 0, false
	}

	return sdk.BigEndianToUint64(bz), true
}

// SetGasPayment stores the cumulative gas paid to a paymaster for a message on a domain.
func (k Keeper) SetGasPayment(ctx sdk.Context, paymaster sdk.AccAddress, messageID common.Hash, domain uint32, gasAmount uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GasPaymentKey(paymaster, messageID, domain), sdk.Uint64ToBigEndian(gasAmount))
}

// GetAllGasPayments returns every gas payment record of a paymaster.
func (k Keeper) GetAllGasPayments(ctx sdk.Context, paymaster sdk.AccAddress) []types.GasPayment {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.GasPaymentInstancePrefix(paymaster))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var payments []types.GasPayment
	for ; iterator.Valid(); iterator.Next() {
		messageID, domain, ok := types.ParseGasPaymentKey(iterator.Key())
		if !ok {
			panic(fmt.Errorf("malformed gas payment key %X", iterator.Key()))
		}

		payments = append(payments, types.NewGasPayment(paymaster.String(), messageID.Hex(), domain, sdk.BigEndianToUint64(iterator.Value())))
	}

	return payments
}

// GetNextPaymentSequence returns the sequence that will be assigned to the next gas payment.
func (k Keeper) GetNextPaymentSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextPaymentSequenceKey)
	if bz == nil {
		return 1
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextPaymentSequence sets the sequence that will be assigned to the next gas payment.
func (k Keeper) SetNextPaymentSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.NextPaymentSequenceKey, sdk.Uint64ToBigEndian(sequence))
}
