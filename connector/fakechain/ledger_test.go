// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fakechain_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/connector/fakechain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

var (
	custody = common.HexToAddress("0x00000000000000000000000000000000000000c0")
	weth    = common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	usdc    = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	bridge  = common.HexToAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a")
)

type LedgerTestSuite struct {
	suite.Suite
	ledger *fakechain.Ledger
}

func TestRunLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = fakechain.NewLedger(custody)
}

func (s *LedgerTestSuite) Test_WETH_WithdrawAndDeposit() {
	w := s.ledger.WETH(weth)
	w.Mint(custody, big.NewInt(300))

	_, err := w.Withdraw(big.NewInt(100), transactor.TransactOptions{})
	s.Nil(err)
	s.Equal(big.NewInt(200), s.ledger.TokenBalance(weth, custody))
	s.Equal(big.NewInt(100), s.ledger.NativeBalance(custody))

	_, err = w.Deposit(big.NewInt(100), transactor.TransactOptions{Value: big.NewInt(100)})
	s.Nil(err)
	s.Equal(big.NewInt(300), s.ledger.TokenBalance(weth, custody))
	s.Equal(big.NewInt(0), s.ledger.NativeBalance(custody))
}

func (s *LedgerTestSuite) Test_HopBridge_TokenRequiresAllowance() {
	s.ledger.Mint(usdc, custody, big.NewInt(300))
	b := s.ledger.HopBridge(bridge, usdc)

	_, err := b.SendToL2(big.NewInt(10), custody, big.NewInt(300), big.NewInt(0), big.NewInt(0), common.Address{}, big.NewInt(0), transactor.TransactOptions{})

	s.True(errors.Is(err, fakechain.ErrInsufficientAllowance))
	s.Equal(big.NewInt(300), s.ledger.TokenBalance(usdc, custody))
	s.Len(b.Calls, 0)
}

func (s *LedgerTestSuite) Test_HopBridge_TokenPullsApprovedAmount() {
	s.ledger.Mint(usdc, custody, big.NewInt(300))
	_, _ = s.ledger.Token(usdc).Approve(bridge, big.NewInt(300), transactor.TransactOptions{})
	b := s.ledger.HopBridge(bridge, usdc)

	_, err := b.SendToL2(big.NewInt(10), custody, big.NewInt(300), big.NewInt(0), big.NewInt(0), common.Address{}, big.NewInt(0), transactor.TransactOptions{})

	s.Nil(err)
	s.Equal(big.NewInt(0), s.ledger.TokenBalance(usdc, custody))
	s.Equal(big.NewInt(300), s.ledger.TokenBalance(usdc, bridge))
	s.Equal(big.NewInt(0), s.ledger.Allowance(usdc, custody, bridge))
	s.Len(b.Calls, 1)
}

func (s *LedgerTestSuite) Test_HopBridge_NativeValueMismatch() {
	s.ledger.SetNativeBalance(custody, big.NewInt(300))
	b := s.ledger.HopBridge(bridge, common.Address{})

	_, err := b.SendToL2(big.NewInt(10), custody, big.NewInt(300), big.NewInt(0), big.NewInt(0), common.Address{}, big.NewInt(0), transactor.TransactOptions{Value: big.NewInt(1)})

	s.Equal(fakechain.ErrValueMismatch, err)
	s.Equal(big.NewInt(300), s.ledger.NativeBalance(custody))
}

func (s *LedgerTestSuite) Test_Connext_PullsAmountAndFee() {
	s.ledger.Mint(usdc, custody, big.NewInt(300))
	_, _ = s.ledger.Token(usdc).Approve(bridge, big.NewInt(300), transactor.TransactOptions{})
	c := s.ledger.Connext(bridge)

	_, err := c.Xcall(1869640809, custody, usdc, custody, big.NewInt(290), big.NewInt(0), []byte{}, big.NewInt(10), transactor.TransactOptions{})

	s.Nil(err)
	s.Equal(big.NewInt(300), s.ledger.TokenBalance(usdc, bridge))
}
