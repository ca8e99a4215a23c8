package keeper_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/igp-go/modules/apps/igp/types"
	igptesting "github.com/cosmos/igp-go/testing"
)

func (suite *KeeperTestSuite) TestPayForGasWithPaymaster() {
	var (
		payer     sdk.AccAddress
		addr      sdk.AccAddress
		messageID common.Hash
		gasAmount uint64
		payment   sdk.Int
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: exact payment",
			func() {},
			nil,
		},
		{
			"success: overpayment is kept",
			func() {
				payment = sdk.NewInt(150_000)
			},
			nil,
		},
		{
			"success: zero quote with zero payment",
			func() {
				data := types.NewRemoteGasData(defaultExchangeRate, sdk.ZeroUint())
				suite.Require().NoError(suite.keeper().ApplyGasOracleConfigs(suite.ctx, suite.owner, addr, []types.GasOracleConfig{types.NewGasOracleConfig(defaultDomain, data)}))
				payment = sdk.ZeroInt()
			},
			nil,
		},
		{
			"insufficient payment",
			func() {
				payment = sdk.NewInt(99_999)
			},
			types.ErrInsufficientPayment,
		},
		{
			"negative payment",
			func() {
				payment = sdk.NewInt(-1)
			},
			sdkerrors.ErrInvalidCoins,
		},
		{
			"paymaster not found",
			func() {
				addr = igptesting.NewAddress()
			},
			types.ErrPaymasterNotFound,
		},
		{
			"payer cannot cover the payment",
			func() {
				payer = igptesting.NewAddress()
			},
			sdkerrors.ErrInsufficientFunds,
		},
		{
			"cumulative gas overflows",
			func() {
				suite.keeper().SetGasPayment(suite.ctx, addr, messageID, defaultDomain, ^uint64(0)-gasAmount+1)
			},
			types.ErrOverflow,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			payer = suite.payer
			addr = suite.paymaster
			messageID = igptesting.NewHash("m1")
			gasAmount = 90_000
			payment = sdk.NewInt(100_000)

			tc.malleate()

			payerBalance := suite.balance(payer)
			moduleBalance := suite.balance(suite.keeper().GetModuleAddress())
			recorded := suite.gasPayment(suite.paymaster, messageID, defaultDomain)

			sequence, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, payer, addr, messageID, defaultDomain, gasAmount, payment)
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)

				// state is left untouched
				paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
				suite.Require().True(paymaster.Balance.IsZero())
				suite.Require().Equal(recorded, suite.gasPayment(suite.paymaster, messageID, defaultDomain))
				suite.Require().Equal(uint64(1), suite.keeper().GetNextPaymentSequence(suite.ctx))
				suite.Require().Equal(payerBalance.String(), suite.balance(payer).String())
				suite.Require().Equal(moduleBalance.String(), suite.balance(suite.keeper().GetModuleAddress()).String())
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal(uint64(1), sequence)
			suite.Require().Equal(uint64(2), suite.keeper().GetNextPaymentSequence(suite.ctx))
			suite.Require().Equal(gasAmount, suite.gasPayment(addr, messageID, defaultDomain))

			paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, addr)
			suite.Require().Equal(payment.String(), paymaster.Balance.Amount.String())
			suite.Require().Equal(payerBalance.Sub(payment).String(), suite.balance(payer).String())
			suite.Require().Equal(moduleBalance.Add(payment).String(), suite.balance(suite.keeper().GetModuleAddress()).String())

			var found bool
			for _, event := range suite.ctx.EventManager().Events() {
				if event.Type == types.EventTypePayForGas {
					found = true
				}
			}
			suite.Require().True(found)
		})
	}
}

func (suite *KeeperTestSuite) TestPayForGasAccumulates() {
	messageID := igptesting.NewHash("m1")

	sequence, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, messageID, defaultDomain, 90_000, sdk.NewInt(100_000))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), sequence)

	// a top up of 5_000 gas requires 5_000 + overhead
	sequence, err = suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, messageID, defaultDomain, 5_000, sdk.NewInt(15_000))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), sequence)

	suite.Require().Equal(uint64(95_000), suite.gasPayment(suite.paymaster, messageID, defaultDomain))

	paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
	suite.Require().Equal(sdk.NewInt(115_000).String(), paymaster.Balance.Amount.String())

	// records are kept per message and destination
	suite.Require().Zero(suite.gasPayment(suite.paymaster, messageID, 43))
	suite.Require().Zero(suite.gasPayment(suite.paymaster, igptesting.NewHash("m2"), defaultDomain))

	payments := suite.keeper().GetAllGasPayments(suite.ctx, suite.paymaster)
	suite.Require().Len(payments, 1)
	suite.Require().Equal(types.NewGasPayment(suite.paymaster.String(), messageID.Hex(), defaultDomain, 95_000), payments[0])
}

func (suite *KeeperTestSuite) TestPayForGasBalanceOverflow() {
	_, err := suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, igptesting.NewHash("m1"), defaultDomain, 90_000, sdk.NewInt(100_000))
	suite.Require().NoError(err)

	payerBalance := suite.balance(suite.payer)
	maxPayment := sdk.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	messageID := igptesting.NewHash("m2")

	_, err = suite.keeper().PayForGasWithPaymaster(suite.ctx, suite.payer, suite.paymaster, messageID, defaultDomain, 1, maxPayment)
	suite.Require().ErrorIs(err, types.ErrOverflow)

	paymaster, _ := suite.keeper().GetPaymaster(suite.ctx, suite.paymaster)
	suite.Require().Equal(sdk.NewInt(100_000).String(), paymaster.Balance.Amount.String())
	suite.Require().Zero(suite.gasPayment(suite.paymaster, messageID, defaultDomain))
	suite.Require().Equal(uint64(2), suite.keeper().GetNextPaymentSequence(suite.ctx))
	suite.Require().Equal(payerBalance.String(), suite.balance(suite.payer).String())
}
