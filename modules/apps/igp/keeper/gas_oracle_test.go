package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestApplyGasOracleConfigs() {
	var (
		caller  sdk.AccAddress
		addr    sdk.AccAddress
		configs []types.GasOracleConfig
	)

	updated := types.NewRemoteGasData(sdk.NewUint(2_000_000_000_000_000_000), sdk.NewUint(25))

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: update and add",
			func() {
				configs = []types.GasOracleConfig{
					types.NewGasOracleConfig(defaultDomain, updated),
					types.NewGasOracleConfig(43, updated),
				}
			},
			nil,
		},
		{
			"success: removal",
			func() {
				configs = []types.GasOracleConfig{types.NewGasOracleRemoval(defaultDomain)}
			},
			nil,
		},
		{
			"success: removal of an unconfigured domain",
			func() {
				configs = []types.GasOracleConfig{types.NewGasOracleRemoval(7)}
			},
			nil,
		},
		{
			"caller is not the owner",
			func() {
				caller = suite.beneficiary
			},
			types.ErrUnauthorized,
		},
		{
			"paymaster not found",
			func() {
				addr = igptesting.NewAddress()
			},
			types.ErrPaymasterNotFound,
		},
		{
			"caller is not the owner of a duplicate batch",
			func() {
				caller = suite.beneficiary
				configs = []types.GasOracleConfig{
					types.NewGasOracleConfig(43, updated),
					types.NewGasOracleRemoval(43),
				}
			},
			types.ErrUnauthorized,
		},
		{
			"caller is not the owner of an empty batch",
			func() {
				caller = suite.beneficiary
				configs = nil
			},
			types.ErrUnauthorized,
		},
		{
			"duplicate domain rejects the whole batch",
			func() {
				configs = []types.GasOracleConfig{
					types.NewGasOracleConfig(43, updated),
					types.NewGasOracleConfig(defaultDomain, updated),
					types.NewGasOracleRemoval(43),
				}
			},
			types.ErrInvalidConfiguration,
		},
		{
			"value exceeds 128 bits",
			func() {
				configs = []types.GasOracleConfig{
					types.NewGasOracleConfig(defaultDomain, types.NewRemoteGasData(types.MaxOracleValue.Add(sdk.OneUint()), sdk.OneUint())),
				}
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
			configs = []types.GasOracleConfig{types.NewGasOracleConfig(defaultDomain, updated)}

			tc.malleate()

			err := suite.keeper().ApplyGasOracleConfigs(suite.ctx, caller, addr, configs)
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)

				// nothing was applied
				data, found := suite.keeper().GetGasOracle(suite.ctx, suite.paymaster, defaultDomain)
				suite.Require().True(found)
				suite.Require().Equal(defaultGasData.GasPrice.String(), data.GasPrice.String())
				_, found = suite.keeper().GetGasOracle(suite.ctx, suite.paymaster, 43)
				suite.Require().False(found)
				return
			}

			suite.Require().NoError(err)

			for _, config := range configs {
				data, found := suite.keeper().GetGasOracle(suite.ctx, addr, config.Domain)
				if config.IsRemoval() {
					suite.Require().False(found)
					continue
				}

				suite.Require().True(found)
				suite.Require().Equal(config.GasOracle.TokenExchangeRate.String(), data.TokenExchangeRate.String())
				suite.Require().Equal(config.GasOracle.GasPrice.String(), data.GasPrice.String())
			}

			events := suite.ctx.EventManager().Events()
			suite.Require().NotEmpty(events)
			suite.Require().Equal(types.EventTypeSetGasOracle, events[len(events)-1].Type)
		})
	}
}

func (suite *KeeperTestSuite) TestRemovedGasOracleIsUnsupported() {
	err := suite.keeper().ApplyGasOracleConfigs(suite.ctx, suite.owner, suite.paymaster, []types.GasOracleConfig{types.NewGasOracleRemoval(defaultDomain)})
	suite.Require().NoError(err)

	_, err = suite.keeper().QuoteGasPaymentWithPaymaster(suite.ctx, suite.paymaster, defaultDomain, 90_000)
	suite.Require().ErrorIs(err, types.ErrUnsupportedDomain)

	_, err = suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, igptesting.NewHash("m1"), defaultDomain, 90_000, sdk.NewInt(1_000_000))
	suite.Require().ErrorIs(err, types.ErrUnsupportedDomain)
}

func (suite *KeeperTestSuite) TestGetAllGasOracles() {
	data := types.NewRemoteGasData(sdk.OneUint(), sdk.NewUint(9))
	err := suite.keeper().ApplyGasOracleConfigs(suite.ctx, suite.owner, suite.paymaster, []types.GasOracleConfig{
		types.NewGasOracleConfig(1, data),
		types.NewGasOracleConfig(1_000_000, data),
	})
	suite.Require().NoError(err)

	oracles := suite.keeper().GetAllGasOracles(suite.ctx, suite.paymaster)
	suite.Require().Len(oracles, 3)

	// ordered by domain
	suite.Require().Equal(uint32(1), oracles[0].Domain)
	suite.Require().Equal(defaultDomain, oracles[1].Domain)
	suite.Require().Equal(uint32(1_000_000), oracles[2].Domain)

	suite.Require().Empty(suite.keeper().GetAllGasOracles(suite.ctx, suite.createPaymaster("empty")))
}
