package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/keeper"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestPaymasterBalancesInvariant() {
	testCases := []struct {
		name      string
		malleate  func()
		expBroken bool
	}{
		{
			"no payments",
			func() {},
			false,
		},
		{
			"payments held by the module account",
			func() {
				_, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, igptesting.NewHash("m1"), defaultDomain, 90_000, sdk.NewInt(100_000))
				suite.Require().NoError(err)
			},
			false,
		},
		{
			"after claim",
			func() {
				_, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, igptesting.NewHash("m1"), defaultDomain, 90_000, sdk.NewInt(100_000))
				suite.Require().NoError(err)
				_, err = suite.keeper().ClaimBalance(suite.ctx, suite.owner, suite.paymaster)
				suite.Require().NoError(err)
			},
			false,
		},
		{
			"balance not backed by the module account",
			func() {
				paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
				paymaster.Balance = sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(1))
				suite.keeper().SetPaymaster(suite.ctx, paymaster)
			},
			true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			msg, broken := keeper.AllInvariants(suite.keeper())(suite.ctx)
			suite.Require().Equal(tc.expBroken, broken, msg)
		})
	}
}
