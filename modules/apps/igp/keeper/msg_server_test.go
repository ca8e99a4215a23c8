package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestMsgInitPaymaster() {
	var msg *types.MsgInitPaymaster

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"success: no owner",
			func() {
				msg.Owner = ""
			},
			true,
		},
		{
			"salt already used",
			func() {
				msg.Salt = igptesting.NewHash("paymaster").Hex()
			},
			false,
		},
		{
			"invalid salt",
			func() {
				msg.Salt = "0x1234"
			},
			false,
		},
		{
			"blocked beneficiary",
			func() {
				msg.Beneficiary = suite.keeper().GetModuleAddress().String()
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgInitPaymaster(suite.payer.String(), igptesting.NewHash("new").Hex(), suite.owner.String(), suite.beneficiary.String())

			tc.malleate()

			res, err := suite.keeper().InitPaymaster(sdk.WrapSDKContext(suite.ctx), msg)
			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().Equal(types.PaymasterAddress(igptesting.NewHash("new")).String(), res.Address)

				paymaster, found := suite.keeper().GetPaymaster(suite.ctx, types.PaymasterAddress(igptesting.NewHash("new")))
				suite.Require().True(found)
				suite.Require().Equal(msg.Owner, paymaster.Owner)
				suite.Require().Equal(msg.Beneficiary, paymaster.Beneficiary)
			} else {
				suite.Require().Error(err)
				suite.Require().Nil(res)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestMsgInitOverheadPaymaster() {
	salt := igptesting.NewHash("overhead").Hex()

	res, err := suite.keeper().InitOverheadPaymaster(sdk.WrapSDKContext(suite.ctx), types.NewMsgInitOverheadPaymaster(suite.payer.String(), salt, suite.owner.String(), suite.paymaster.String()))
	suite.Require().NoError(err)
	suite.Require().Equal(types.OverheadPaymasterAddress(igptesting.NewHash("overhead")).String(), res.Address)

	_, err = suite.keeper().InitOverheadPaymaster(sdk.WrapSDKContext(suite.ctx), types.NewMsgInitOverheadPaymaster(suite.payer.String(), salt, suite.owner.String(), suite.paymaster.String()))
	suite.Require().ErrorIs(err, types.ErrPaymasterExists)

	_, err = suite.keeper().InitOverheadPaymaster(sdk.WrapSDKContext(suite.ctx), types.NewMsgInitOverheadPaymaster(suite.payer.String(), igptesting.NewHash("other").Hex(), suite.owner.String(), suite.payer.String()))
	suite.Require().ErrorIs(err, types.ErrPaymasterNotFound)
}

func (suite *KeeperTestSuite) TestMsgPayForGas() {
	var msg *types.MsgPayForGas

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"success: overhead paymaster",
			func() {
				addr := suite.createOverheadPaymaster(20_000)
				msg.Paymaster = addr.String()
				msg.Payment = sdk.NewInt(120_000)
			},
			true,
		},
		{
			"insufficient payment",
			func() {
				msg.Payment = sdk.NewInt(99_999)
			},
			false,
		},
		{
			"unknown paymaster",
			func() {
				msg.Paymaster = igptesting.NewAddress().String()
			},
			false,
		},
		{
			"invalid message id",
			func() {
				msg.MessageId = "message"
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgPayForGas(suite.payer.String(), suite.paymaster.String(), igptesting.NewHash("m1").Hex(), defaultDomain, 90_000, sdk.NewInt(100_000))

			tc.malleate()

			res, err := suite.keeper().PayForGas(sdk.WrapSDKContext(suite.ctx), msg)
			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().Equal(uint64(1), res.Sequence)
				suite.Require().Equal(defaultFunds.AmountOf(sdk.DefaultBondDenom).Sub(msg.Payment).String(), suite.balance(suite.payer).String())
			} else {
				suite.Require().Error(err)
				suite.Require().Nil(res)
				suite.Require().Equal(defaultFunds.AmountOf(sdk.DefaultBondDenom).String(), suite.balance(suite.payer).String())
			}
		})
	}
}

func (suite *KeeperTestSuite) TestMsgClaim() {
	_, err := suite.keeper().PayForGas(sdk.WrapSDKContext(suite.ctx), types.NewMsgPayForGas(suite.payer.String(), suite.paymaster.String(), igptesting.NewHash("m1").Hex(), defaultDomain, 90_000, sdk.NewInt(100_000)))
	suite.Require().NoError(err)

	res, err := suite.keeper().Claim(sdk.WrapSDKContext(suite.ctx), types.NewMsgClaim(suite.payer.String(), suite.paymaster.String()))
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(100_000)).String(), res.Amount.String())
	suite.Require().Equal(sdk.NewInt(100_000).String(), suite.balance(suite.beneficiary).String())

	res, err = suite.keeper().Claim(sdk.WrapSDKContext(suite.ctx), types.NewMsgClaim(suite.payer.String(), suite.paymaster.String()))
	suite.Require().NoError(err)
	suite.Require().True(res.Amount.IsZero())
}

func (suite *KeeperTestSuite) TestMsgSetGasOracleConfigs() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	data := types.NewRemoteGasData(defaultExchangeRate, sdk.NewUint(3))

	_, err := suite.keeper().SetGasOracleConfigs(goCtx, types.NewMsgSetGasOracleConfigs(suite.payer.String(), suite.paymaster.String(), []types.GasOracleConfig{types.NewGasOracleConfig(43, data)}))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.keeper().SetGasOracleConfigs(goCtx, types.NewMsgSetGasOracleConfigs(suite.owner.String(), suite.paymaster.String(), []types.GasOracleConfig{}))
	suite.Require().ErrorIs(err, types.ErrInvalidConfiguration)

	_, err = suite.keeper().SetGasOracleConfigs(goCtx, types.NewMsgSetGasOracleConfigs(suite.owner.String(), suite.paymaster.String(), []types.GasOracleConfig{
		types.NewGasOracleConfig(43, data),
		types.NewGasOracleRemoval(defaultDomain),
	}))
	suite.Require().NoError(err)

	stored, found := suite.keeper().GetGasOracle(suite.ctx, suite.paymaster, 43)
	suite.Require().True(found)
	suite.Require().Equal(data.GasPrice.String(), stored.GasPrice.String())

	_, found = suite.keeper().GetGasOracle(suite.ctx, suite.paymaster, defaultDomain)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestMsgSetDestinationGasOverheads() {
	goCtx := sdk.WrapSDKContext(suite.ctx)

	_, err := suite.keeper().SetDestinationGasOverheads(goCtx, types.NewMsgSetDestinationGasOverheads(suite.payer.String(), suite.paymaster.String(), []types.GasOverheadConfig{types.NewGasOverheadConfig(defaultDomain, 1)}))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.keeper().SetDestinationGasOverheads(goCtx, types.NewMsgSetDestinationGasOverheads(suite.owner.String(), suite.paymaster.String(), []types.GasOverheadConfig{types.NewGasOverheadRemoval(defaultDomain)}))
	suite.Require().NoError(err)

	_, found := suite.keeper().GetGasOverhead(suite.ctx, suite.paymaster, defaultDomain)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestMsgTransferOwnership() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	newOwner := igptesting.NewAddress()
	overheadPaymaster := suite.createOverheadPaymaster(20_000)

	_, err := suite.keeper().TransferPaymasterOwnership(goCtx, types.NewMsgTransferPaymasterOwnership(suite.owner.String(), suite.paymaster.String(), newOwner.String()))
	suite.Require().NoError(err)

	paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
	suite.Require().Equal(newOwner.String(), paymaster.Owner)

	_, err = suite.keeper().TransferPaymasterOwnership(goCtx, types.NewMsgTransferPaymasterOwnership(suite.owner.String(), suite.paymaster.String(), suite.owner.String()))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.keeper().TransferOverheadPaymasterOwnership(goCtx, types.NewMsgTransferOverheadPaymasterOwnership(suite.owner.String(), overheadPaymaster.String(), ""))
	suite.Require().NoError(err)

	overhead, _ := suite.keeper().GetOverheadPaymaster(suite.ctx, overheadPaymaster)
	suite.Require().Empty(overhead.Owner)
}

func (suite *KeeperTestSuite) TestMsgSetBeneficiary() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	beneficiary := igptesting.NewAddress()

	_, err := suite.keeper().SetBeneficiary(goCtx, types.NewMsgSetBeneficiary(suite.payer.String(), suite.paymaster.String(), beneficiary.String()))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.keeper().SetBeneficiary(goCtx, types.NewMsgSetBeneficiary(suite.owner.String(), suite.paymaster.String(), beneficiary.String()))
	suite.Require().NoError(err)

	paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
	suite.Require().Equal(beneficiary.String(), paymaster.Beneficiary)
}
