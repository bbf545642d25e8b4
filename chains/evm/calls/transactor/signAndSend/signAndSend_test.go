// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package signAndSend_test

import (
	"errors"
	"math/big"
	"testing"

	mock_calls "github.com/ChainSafe/bridge-connector/chains/evm/calls/mock"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/evmtransaction"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor/signAndSend"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SignAndSendTestSuite struct {
	suite.Suite
	client     *mock_calls.MockClientDispatcher
	gasPricer  *mock_calls.MockGasPricer
	transactor transactor.Transactor
	to         common.Address
}

func TestRunSignAndSendTestSuite(t *testing.T) {
	suite.Run(t, new(SignAndSendTestSuite))
}

func (s *SignAndSendTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.client = mock_calls.NewMockClientDispatcher(ctrl)
	s.gasPricer = mock_calls.NewMockGasPricer(ctrl)
	s.transactor = signAndSend.NewSignAndSendTransactor(evmtransaction.NewTransaction, s.gasPricer, s.client)
	s.to = common.HexToAddress("0xb8901acB165ed027E32754E0FFe830802919727f")
}

func (s *SignAndSendTestSuite) Test_Transact_Success() {
	hash := common.HexToHash("0x1234")
	s.client.EXPECT().LockNonce()
	s.client.EXPECT().UnlockNonce()
	s.client.EXPECT().UnsafeNonce().Return(big.NewInt(7), nil)
	s.gasPricer.EXPECT().GasPrice(gomock.Any()).Return([]*big.Int{big.NewInt(10)}, nil)
	s.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.client.EXPECT().SignAndSendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, tx *types.Transaction) (common.Hash, error) {
			s.Equal(uint64(7), tx.Nonce())
			s.Equal(big.NewInt(300), tx.Value())
			return hash, nil
		})
	s.client.EXPECT().UnsafeIncreaseNonce().Return(nil)
	s.client.EXPECT().WaitAndReturnTxReceipt(hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	h, err := s.transactor.Transact(&s.to, []byte{}, transactor.TransactOptions{Value: big.NewInt(300)})

	s.Nil(err)
	s.Equal(hash, *h)
}

func (s *SignAndSendTestSuite) Test_Transact_ExplicitGasPrice_SkipsPricer() {
	hash := common.HexToHash("0x1234")
	s.client.EXPECT().LockNonce()
	s.client.EXPECT().UnlockNonce()
	s.client.EXPECT().UnsafeNonce().Return(big.NewInt(0), nil)
	s.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.client.EXPECT().SignAndSendTransaction(gomock.Any(), gomock.Any()).Return(hash, nil)
	s.client.EXPECT().UnsafeIncreaseNonce().Return(nil)
	s.client.EXPECT().WaitAndReturnTxReceipt(hash).Return(&types.Receipt{}, nil)

	_, err := s.transactor.Transact(&s.to, []byte{}, transactor.TransactOptions{GasPrice: big.NewInt(5)})

	s.Nil(err)
}

func (s *SignAndSendTestSuite) Test_Transact_RevertedReceipt_ReturnsError() {
	hash := common.HexToHash("0x1234")
	reverted := errors.New("transaction reverted")
	s.client.EXPECT().LockNonce()
	s.client.EXPECT().UnlockNonce()
	s.client.EXPECT().UnsafeNonce().Return(big.NewInt(0), nil)
	s.gasPricer.EXPECT().GasPrice(gomock.Any()).Return([]*big.Int{big.NewInt(10), big.NewInt(1)}, nil)
	s.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.client.EXPECT().SignAndSendTransaction(gomock.Any(), gomock.Any()).Return(hash, nil)
	s.client.EXPECT().UnsafeIncreaseNonce().Return(nil)
	s.client.EXPECT().WaitAndReturnTxReceipt(hash).Return(nil, reverted)

	_, err := s.transactor.Transact(&s.to, []byte{}, transactor.TransactOptions{})

	s.Equal(reverted, err)
}

func (s *SignAndSendTestSuite) Test_Transact_SendFails_NonceNotIncreased() {
	s.client.EXPECT().LockNonce()
	s.client.EXPECT().UnlockNonce()
	s.client.EXPECT().UnsafeNonce().Return(big.NewInt(0), nil)
	s.gasPricer.EXPECT().GasPrice(gomock.Any()).Return([]*big.Int{big.NewInt(10)}, nil)
	s.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.client.EXPECT().SignAndSendTransaction(gomock.Any(), gomock.Any()).Return(common.Hash{}, errors.New("nonce too low"))

	_, err := s.transactor.Transact(&s.to, []byte{}, transactor.TransactOptions{})

	s.NotNil(err)
}
