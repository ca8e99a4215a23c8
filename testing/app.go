package igptesting

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"

	igpkeeper "github.com/cosmos/igp-go/modules/apps/igp/keeper"
	igptypes "github.com/cosmos/igp-go/modules/apps/igp/types"
)

// module account permissions of the testing app
var maccPerms = map[string][]string{
	minttypes.ModuleName: {authtypes.Minter},
	igptypes.ModuleName:  nil,
}

// TestingApp wires the igp keeper to real auth, bank and params keepers backed by an
// in-memory multistore.
type TestingApp struct {
	LegacyAmino       *codec.LegacyAmino
	AppCodec          codec.Codec
	InterfaceRegistry codectypes.InterfaceRegistry
	TxConfig          client.TxConfig

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	ParamsKeeper  paramskeeper.Keeper
	IGPKeeper     igpkeeper.Keeper

	cms store.CommitMultiStore
}

// SetupTestingApp creates a TestingApp and initializes the default params of every
// keeper. It panics if the multistore cannot be loaded.
func SetupTestingApp() *TestingApp {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	igptypes.RegisterInterfaces(interfaceRegistry)

	appCodec := codec.NewProtoCodec(interfaceRegistry)
	legacyAmino := codec.NewLegacyAmino()
	std.RegisterLegacyAminoCodec(legacyAmino)
	igptypes.RegisterLegacyAminoCodec(legacyAmino)

	keys := sdk.NewKVStoreKeys(authtypes.StoreKey, banktypes.StoreKey, paramstypes.StoreKey, igptypes.StoreKey)
	tkeys := sdk.NewTransientStoreKeys(paramstypes.TStoreKey)

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db)
	for _, key := range keys {
		cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	}
	for _, tkey := range tkeys {
		cms.MountStoreWithDB(tkey, sdk.StoreTypeTransient, db)
	}

	if err := cms.LoadLatestVersion(); err != nil {
		panic(err)
	}

	app := &TestingApp{
		LegacyAmino:       legacyAmino,
		AppCodec:          appCodec,
		InterfaceRegistry: interfaceRegistry,
		TxConfig:          authtx.NewTxConfig(appCodec, authtx.DefaultSignModes),
		cms:               cms,
	}

	app.ParamsKeeper = paramskeeper.NewKeeper(appCodec, legacyAmino, keys[paramstypes.StoreKey], tkeys[paramstypes.TStoreKey])
	app.AccountKeeper = authkeeper.NewAccountKeeper(
		appCodec, keys[authtypes.StoreKey], app.ParamsKeeper.Subspace(authtypes.ModuleName), authtypes.ProtoBaseAccount, maccPerms,
	)
	app.BankKeeper = bankkeeper.NewBaseKeeper(
		appCodec, keys[banktypes.StoreKey], app.AccountKeeper, app.ParamsKeeper.Subspace(banktypes.ModuleName), BlockedAddrs(),
	)
	app.IGPKeeper = igpkeeper.NewKeeper(
		legacyAmino, keys[igptypes.StoreKey], app.ParamsKeeper.Subspace(igptypes.ModuleName), app.AccountKeeper, app.BankKeeper,
	)

	ctx := app.NewContext()
	app.AccountKeeper.SetParams(ctx, authtypes.DefaultParams())
	app.BankKeeper.SetParams(ctx, banktypes.DefaultParams())
	app.IGPKeeper.SetParams(ctx, igptypes.DefaultParams())

	// create the module accounts
	for name := range maccPerms {
		app.AccountKeeper.GetModuleAccount(ctx, name)
	}

	return app
}

// NewContext returns a delivering context over the latest state of the testing app.
func (app *TestingApp) NewContext() sdk.Context {
	header := tmproto.Header{
		ChainID: "testchain",
		Height:  1,
		Time:    time.Unix(1_700_000_000, 0).UTC(),
	}

	return sdk.NewContext(app.cms, header, false, log.NewNopLogger())
}

// FundAccount mints amounts and sends them to addr.
func (app *TestingApp) FundAccount(ctx sdk.Context, addr sdk.AccAddress, amounts sdk.Coins) error {
	if err := app.BankKeeper.MintCoins(ctx, minttypes.ModuleName, amounts); err != nil {
		return err
	}

	return app.BankKeeper.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, addr, amounts)
}

// BlockedAddrs returns the module accounts that are not allowed to receive funds.
func BlockedAddrs() map[string]bool {
	blockedAddrs := make(map[string]bool)
	for name := range maccPerms {
		blockedAddrs[authtypes.NewModuleAddress(name).String()] = true
	}

	return blockedAddrs
}
