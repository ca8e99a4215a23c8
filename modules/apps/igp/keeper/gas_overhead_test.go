package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestApplyGasOverheadConfigs() {
	var (
		caller  sdk.AccAddress
		addr    sdk.AccAddress
		configs []types.GasOverheadConfig
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: paymaster",
			func() {},
			nil,
		},
		{
			"success: clear overhead",
			func() {
				configs = []types.GasOverheadConfig{types.NewGasOverheadRemoval(defaultDomain)}
			},
			nil,
		},
		{
			"success: overhead paymaster",
			func() {
				var err error
				addr, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.owner, suite.paymaster)
				suite.Require().NoError(err)
			},
			nil,
		},
		{
			"overhead paymaster with a different owner",
			func() {
				var err error
				addr, err = suite.keeper().CreateOverheadPaymaster(suite.ctx, igptesting.NewHash("overhead"), suite.beneficiary, suite.paymaster)
				suite.Require().NoError(err)
			},
			types.ErrUnauthorized,
		},
		{
			"caller is not the owner",
			func() {
				caller = suite.payer
			},
			types.ErrUnauthorized,
		},
		{
			"instance not found",
			func() {
				addr = igptesting.NewAddress()
			},
			types.ErrPaymasterNotFound,
		},
		{
			"caller is not the owner of a duplicate batch",
			func() {
				caller = suite.payer
				configs = append(configs, types.NewGasOverheadRemoval(defaultDomain))
			},
			types.ErrUnauthorized,
		},
		{
			"caller is not the owner of an empty batch",
			func() {
				caller = suite.payer
				configs = nil
			},
			types.ErrUnauthorized,
		},
		{
			"duplicate domain",
			func() {
				configs = append(configs, types.NewGasOverheadRemoval(defaultDomain))
			},
			types.ErrInvalidConfiguration,
		},
		{
			"empty batch",
			func() {
				configs = nil
			},
			types.ErrInvalidConfiguration,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			caller = suite.owner
			addr = suite.paymaster
			configs = []types.GasOverheadConfig{
				types.NewGasOverheadConfig(defaultDomain, 50_000),
				types.NewGasOverheadConfig(43, 1),
			}

			tc.malleate()

			err := suite.keeper().ApplyGasOverheadConfigs(suite.ctx, caller, addr, configs)
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)

				overhead, _ := suite.keeper().GetGasOverhead(suite.ctx, suite.paymaster, defaultDomain)
				suite.Require().Equal(defaultOverhead, overhead)
				return
			}

			suite.Require().NoError(err)

			for _, config := range configs {
				overhead, found := suite.keeper().GetGasOverhead(suite.ctx, addr, config.Domain)
				if config.IsRemoval() {
					suite.Require().False(found)
					suite.Require().Zero(overhead)
					continue
				}

				suite.Require().True(found)
				suite.Require().Equal(*config.GasOverhead, overhead)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestClearedOverheadQuotesWithoutOverhead() {
	err := suite.keeper().ApplyGasOverheadConfigs(suite.ctx, suite.owner, suite.paymaster, []types.GasOverheadConfig{types.NewGasOverheadRemoval(defaultDomain)})
	suite.Require().NoError(err)

	quote, err := suite.keeper().QuoteGasPaymentWithPaymaster(suite.ctx, suite.paymaster, defaultDomain, 90_000)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewInt(90_000).String(), quote.String())
}
