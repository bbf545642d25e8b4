// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transactor_test

import (
	"math/big"
	"testing"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type MergeOptionsTestSuite struct {
	suite.Suite
}

func TestRunMergeOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(MergeOptionsTestSuite))
}

func (s *MergeOptionsTestSuite) Test_EmptyOptions_TakeDefaults() {
	opts := transactor.TransactOptions{}

	err := transactor.MergeTransactionOptions(&opts, &transactor.DefaultTransactionOptions)

	s.Nil(err)
	s.Equal(uint64(2000000), opts.GasLimit)
	s.Equal(big.NewInt(0), opts.Value)
	s.Equal(uint8(1), opts.Priority)
}

func (s *MergeOptionsTestSuite) Test_SetValue_IsKept() {
	opts := transactor.TransactOptions{Value: big.NewInt(300), GasLimit: 100000}

	err := transactor.MergeTransactionOptions(&opts, &transactor.DefaultTransactionOptions)

	s.Nil(err)
	s.Equal(big.NewInt(300), opts.Value)
	s.Equal(uint64(100000), opts.GasLimit)
}

type recordingTransactor struct {
	opts transactor.TransactOptions
}

func (t *recordingTransactor) Transact(to *common.Address, data []byte, opts transactor.TransactOptions) (*common.Hash, error) {
	t.opts = opts
	return &common.Hash{}, nil
}

type WithDefaultsTestSuite struct {
	suite.Suite
}

func TestRunWithDefaultsTestSuite(t *testing.T) {
	suite.Run(t, new(WithDefaultsTestSuite))
}

func (s *WithDefaultsTestSuite) Test_FillsUnsetOptions() {
	inner := &recordingTransactor{}
	t := transactor.WithDefaults(inner, transactor.TransactOptions{GasLimit: 500000})

	_, err := t.Transact(&common.Address{}, []byte{}, transactor.TransactOptions{Value: big.NewInt(10)})

	s.Nil(err)
	s.Equal(uint64(500000), inner.opts.GasLimit)
	s.Equal(big.NewInt(10), inner.opts.Value)
}

func (s *WithDefaultsTestSuite) Test_KeepsExplicitGasLimit() {
	inner := &recordingTransactor{}
	t := transactor.WithDefaults(inner, transactor.TransactOptions{GasLimit: 500000})

	_, err := t.Transact(&common.Address{}, []byte{}, transactor.TransactOptions{GasLimit: 21000})

	s.Nil(err)
	s.Equal(uint64(21000), inner.opts.GasLimit)
}
