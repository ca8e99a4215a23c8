package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestGenesis() {
	overheadPaymaster := suite.createOverheadPaymaster(20_000)
	other := suite.createPaymaster("other")

	_, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, igptesting.NewHash("m1"), defaultDomain, 90_000, sdk.NewInt(100_000))
	suite.Require().NoError(err)
	_, err = suite.keeper().PayForGasWithOverhead(suite.ctx, suite.payer, overheadPaymaster, igptesting.NewHash("m2"), defaultDomain, 90_000, sdk.NewInt(120_000))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.keeper().SetPaymasterOwner(suite.ctx, suite.owner, other, nil))

	genesis := suite.keeper().ExportGenesis(suite.ctx)
	suite.Require().NoError(genesis.Validate())

	suite.Require().Equal(uint64(3), genesis.NextPaymentSequence)
	suite.Require().Len(genesis.Paymasters, 2)
	suite.Require().Len(genesis.OverheadPaymasters, 1)
	suite.Require().Len(genesis.GasPayments, 2)

	app := igptesting.SetupTestingApp()
	ctx := app.NewContext()
	app.IGPKeeper.InitGenesis(ctx, *genesis)

	paymaster, found := app.IGPKeeper.GetPaymaster(ctx, suite.paymaster)
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(220_000).String(), paymaster.Balance.Amount.String())

	renounced, found := app.IGPKeeper.GetPaymaster(ctx, other)
	suite.Require().True(found)
	suite.Require().Empty(renounced.Owner)

	quote, err := app.IGPKeeper.QuoteGasPaymentWithOverhead(ctx, overheadPaymaster, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(120_000).String(), quote.String())

	paid, found := app.IGPKeeper.GetGasPayment(ctx, suite.paymaster, igptesting.NewHash("m2"), defaultDomain)
	suite.Require().True(found)
	suite.Require().Equal(uint64(110_000), paid)
	suite.Require().Equal(uint64(3), app.IGPKeeper.GetNextPaymentSequence(ctx))

	exported := app.IGPKeeper.ExportGenesis(ctx)
	suite.Require().Equal(types.ModuleCdc.MustMarshalJSON(genesis), types.ModuleCdc.MustMarshalJSON(exported))
}

func (suite *KeeperTestSuite) TestDefaultGenesis() {
	app := igptesting.SetupTestingApp()
	ctx := app.NewContext()
	app.IGPKeeper.InitGenesis(ctx, *types.DefaultGenesisState())

	exported := app.IGPKeeper.ExportGenesis(ctx)
	suite.Require().Equal(types.ModuleCdc.MustMarshalJSON(types.DefaultGenesisState()), types.ModuleCdc.MustMarshalJSON(exported))
}
