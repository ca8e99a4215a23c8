package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) createOverheadPaymaster(overhead uint64) sdk.AccAddress {
	addr, err := suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.owner, suite.paymaster)
	suite.Require().NoError(err)

	err = suite.keeper().ApplyGasOverheadConfigs(suite.ctx, suite.owner, addr, []types.GasOverheadConfig{types.NewGasOverheadConfig(defaultDomain, overhead)})
	suite.Require().NoError(err)

	return addr
}

func (suite *KeeperTestSuite) TestCreateOverheadPaymaster() {
	addr, err := suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), nil, suite.paymaster)
	suite.Require().NoError(err)
	suite.Require().Equal(types.OverheadPaymasterAddress(igptesting.NewHash("overhead")), addr)

	overheadPaymaster, found := suite.keeper().GetOverheadPaymaster(suite.ctx, addr)
	suite.Require().True(found)
	suite.Require().Empty(overheadPaymaster.Owner)
	suite.Require().Equal(suite.paymaster, overheadPaymaster.GetInner())

	_, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.owner, suite.paymaster)
	suite.Require().ErrorIs(err, types.ErrPaymasterExists)

	_, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("other"), suite.owner, igptesting.NewAddress())
	suite.Require().ErrorIs(err, types.ErrPaymasterNotFound)

	// an overhead paymaster cannot wrap another overhead paymaster
	_, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("other"), suite.owner, addr)
	suite.Require().ErrorIs(err, types.ErrPaymasterNotFound)

	// the same salt is free for a paymaster
	_, err = suite.keeper().CreatePaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.owner, suite.beneficiary)
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestQuoteGasPaymentWithOverhead() {
	addr := suite.createOverheadPaymaster(20_000)

	quote, err := suite.keeper().QuoteGasPaymentWithOverhead(suite.ctx, addr, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(120_000).String(), quote.String())

	// the inner paymaster quote is unaffected
	quote, err = suite.keeper().QuoteGasPaymentWithPaymaster(suite.ctx, suite.paymaster, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(100_000).String(), quote.String())

	// domains without a wrapper overhead pass the gas amount through
	err = suite.keeper().ApplyGasOracleConfigs(suite.ctx, suite.owner, suite.paymaster, []types.GasOracleConfig{types.NewGasOracleConfig(43, defaultGasData)})
	suite.Require().NoError(err)

	quote, err = suite.keeper().QuoteGasPaymentWithOverhead(suite.ctx, addr, 43, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(90_000).String(), quote.String())

	_, err = suite.keeper().QuoteGasPaymentWithOverhead(suite.ctx, addr, 44, 90_000)
	suite.Require().ErrorIs(err, types.ErrUnsupportedDomain)

	_, err = suite.keeper().QuoteGasPaymentWithOverhead(suite.ctx, suite.paymaster, defaultDomain, 90_000)
	suite.Require().ErrorIs(err, types.ErrOverheadPaymasterNotFound)
}

func (suite *KeeperTestSuite) TestPayForGasWithOverhead() {
	addr := suite.createOverheadPaymaster(20_000)
	messageID := igptesting.NewHash("m1")

	_, err := suite.keeper().PayForGasWithOverhead(suite.ctx, suite.payer, addr, messageID, defaultDomain, 90_000, sdk.NewInt(119_999))
	suite.Require().ErrorIs(err, types.ErrInsufficientPayment)

	sequence, err := suite.keeper().PayForGasWithOverhead(suite.ctx, suite.payer, addr, messageID, defaultDomain, 90_000, sdk.NewInt(120_000))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), sequence)

	// the record and the funds belong to the inner paymaster with the wrapper overhead included
	suite.Require().Equal(uint64(110_000), suite.gasPayment(suite.paymaster, messageID, defaultDomain))
	suite.Require().Zero(suite.gasPayment(addr, messageID, defaultDomain))

	paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
	suite.Require().Equal(sdk.NewInt(120_000).String(), paymaster.Balance.Amount.String())
}

func (suite *KeeperTestSuite) TestSetOverheadPaymasterOwner() {
	addr := suite.createOverheadPaymaster(20_000)
	newOwner := igptesting.NewAddress()

	err := suite.keeper().SetOverheadPaymasterOwner(suite.ctx, newOwner, addr, newOwner)
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	err = suite.keeper().SetOverheadPaymasterOwner(suite.ctx, suite.owner, suite.paymaster, newOwner)
	suite.Require().ErrorIs(err, types.ErrOverheadPaymasterNotFound)

	err = suite.keeper().SetOverheadPaymasterOwner(suite.ctx, suite.owner, addr, newOwner)
	suite.Require().NoError(err)

	err = suite.keeper().ApplyGasOverheadConfigs(suite.ctx, newOwner, addr, []types.GasOverheadConfig{types.NewGasOverheadConfig(defaultDomain, 1)})
	suite.Require().NoError(err)

	// the inner paymaster still belongs to its own owner
	err = suite.keeper().ApplyGasOverheadConfigs(suite.ctx, newOwner, suite.paymaster, []types.GasOverheadConfig{types.NewGasOverheadConfig(defaultDomain, 1)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	err = suite.keeper().SetOverheadPaymasterOwner(suite.ctx, newOwner, addr, nil)
	suite.Require().NoError(err)

	err = suite.keeper().ApplyGasOverheadConfigs(suite.ctx, newOwner, addr, []types.GasOverheadConfig{types.NewGasOverheadConfig(defaultDomain, 2)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestGasPaymaster() {
	addr := suite.createOverheadPaymaster(20_000)

	gasPaymaster, err := suite.keeper().GasPaymaster(suite.ctx, suite.paymaster)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.paymaster, gasPaymaster.Address())
	suite.Require().Equal(sdk.DefaultBondDenom, gasPaymaster.Denom(suite.ctx))

	quote, err := gasPaymaster.QuoteGasPayment(suite.ctx, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(100_000).String(), quote.String())

	wrapper, err := suite.keeper().GasPaymaster(suite.ctx, addr)
	suite.Require().NoError(err)
	suite.Require().Equal(addr, wrapper.Address())
	suite.Require().Equal(sdk.DefaultBondDenom, wrapper.Denom(suite.ctx))

	quote, err = wrapper.QuoteGasPayment(suite.ctx, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(120_000).String(), quote.String())

	_, err = wrapper.PayForGas(suite.ctx, suite.payer, igptesting.NewHash("m1"), defaultDomain, 90_000, quote)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(110_000), suite.gasPayment(suite.paymaster, igptesting.NewHash("m1"), defaultDomain))

	_, err = suite.keeper().GasPaymaster(suite.ctx, igptesting.NewAddress())
	suite.Require().ErrorIs(err, types.ErrPaymasterNotFound)
}
