package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestQuoteGasPaymentWithPaymaster() {
	var (
		addr      sdk.AccAddress
		domain    uint32
		gasAmount uint64
	)

	testCases := []struct {
		name       string
		malleate   func()
		expPayment sdk.Int
		expErr     error
	}{
		{
			"success: overhead is added to the gas amount",
			func() {},
			sdk.NewInt(100_000),
			nil,
		},
		{
			"success: zero gas amount quotes the overhead",
			func() {
				gasAmount = 0
			},
			sdk.NewInt(10_000),
			nil,
		},
		{
			"success: exchange rate and gas price are applied",
			func() {
				data := types.NewRemoteGasData(sdk.NewUint(2_500_000_000_000_000_000), sdk.NewUint(40))
				suite.Require().NoError(suite.keeper().ApplyGasOracleConfigs(suite.ctx, suite.owner, addr, []types.GasOracleConfig{types.NewGasOracleConfig(domain, data)}))
			},
			sdk.NewInt(1_000_000),
			nil,
		},
		{
			"unsupported domain",
			func() {
				domain = 43
			},
			sdk.Int{},
			types.ErrUnsupportedDomain,
		},
		{
			"paymaster not found",
			func() {
				addr = igptesting.NewAddress()
			},
			sdk.Int{},
			types.ErrPaymasterNotFound,
		},
		{
			"overhead paymaster addressed directly",
			func() {
				var err error
				addr, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.owner, suite.paymaster)
				suite.Require().NoError(err)
			},
			sdk.Int{},
			types.ErrPaymasterNotFound,
		},
		{
			"gas amount plus overhead overflows",
			func() {
				gasAmount = ^uint64(0)
			},
			sdk.Int{},
			types.ErrOverflow,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			addr = suite.paymaster
			domain = defaultDomain
			gasAmount = 90_000

			tc.malleate()

			payment, err := suite.keeper().QuoteGasPaymentWithPaymaster(suite.ctx, addr, domain, gasAmount)
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal(tc.expPayment.String(), payment.String())
		})
	}
}

func (suite *KeeperTestSuite) TestQuoteGasPaymentDoesNotWriteState() {
	ctx, _ := suite.ctx.CacheContext()

	first, err := suite.keeper().QuoteGasPaymentWithPaymaster(ctx, suite.paymaster, defaultDomain, 123_456)
	suite.Require().NoError(err)

	second, err := suite.keeper().QuoteGasPaymentWithPaymaster(ctx, suite.paymaster, defaultDomain, 123_456)
	suite.Require().NoError(err)
	suite.Require().Equal(first.String(), second.String())

	suite.Require().Equal(uint64(1), suite.keeper().GetNextPaymentSequence(ctx))
	suite.Require().Equal(first.String(), sdk.NewInt(133_456).String())
}
