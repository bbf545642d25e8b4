// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package asset_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/connector/asset"
	mock_asset "github.com/ChainSafe/bridge-connector/connector/asset/mock"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var (
	wethAddress = common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	usdcAddress = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

type AssetTestSuite struct {
	suite.Suite
	weth     *mock_asset.MockWrappedNative
	token    *mock_asset.MockERC20
	resolver *asset.Resolver
	created  []common.Address
}

func TestRunAssetTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTestSuite))
}

func (s *AssetTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.weth = mock_asset.NewMockWrappedNative(ctrl)
	s.token = mock_asset.NewMockERC20(ctrl)
	s.created = nil
	s.resolver = asset.NewResolver(wethAddress, s.weth, func(address common.Address) asset.ERC20 {
		s.created = append(s.created, address)
		return s.token
	})
}

func (s *AssetTestSuite) Test_Kind_WrappedNativeIsNative() {
	s.Equal(types.NativeAsset, s.resolver.Kind(wethAddress))
	s.Equal(types.TokenAsset, s.resolver.Kind(usdcAddress))
}

func (s *AssetTestSuite) Test_Resolve_Token_UsesFactory() {
	a := s.resolver.Resolve(usdcAddress)

	s.Equal(types.TokenAsset, a.Kind())
	s.Equal(usdcAddress, a.Address())
	s.Equal([]common.Address{usdcAddress}, s.created)
}

func (s *AssetTestSuite) Test_Resolve_Native_DoesNotUseFactory() {
	a := s.resolver.Resolve(wethAddress)

	s.Equal(types.NativeAsset, a.Kind())
	s.Equal(wethAddress, a.Address())
	s.Len(s.created, 0)
}

func (s *AssetTestSuite) Test_Token_WrapUnwrapAreNoops() {
	a := s.resolver.Resolve(usdcAddress)

	s.Nil(a.UnwrapIfNeeded(big.NewInt(300)))
	s.Nil(a.WrapIfNeeded(big.NewInt(300)))
}

func (s *AssetTestSuite) Test_Token_Approve() {
	spender := common.HexToAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a")
	s.token.EXPECT().Approve(spender, big.NewInt(300), transactor.TransactOptions{}).Return(&common.Hash{}, nil)

	_, err := s.resolver.Resolve(usdcAddress).Approve(spender, big.NewInt(300))

	s.Nil(err)
}

func (s *AssetTestSuite) Test_Native_Unwrap_Withdraws() {
	s.weth.EXPECT().Withdraw(big.NewInt(300), transactor.TransactOptions{}).Return(&common.Hash{}, nil)

	err := s.resolver.Resolve(wethAddress).UnwrapIfNeeded(big.NewInt(300))

	s.Nil(err)
}

func (s *AssetTestSuite) Test_Native_Wrap_DepositsWithValue() {
	s.weth.EXPECT().Deposit(big.NewInt(300), transactor.TransactOptions{Value: big.NewInt(300)}).Return(&common.Hash{}, nil)

	err := s.resolver.Resolve(wethAddress).WrapIfNeeded(big.NewInt(300))

	s.Nil(err)
}

func (s *AssetTestSuite) Test_Native_BalanceOf_ReadsWrappedBalance() {
	custody := common.HexToAddress("0x1")
	s.weth.EXPECT().BalanceOf(custody).Return(big.NewInt(42), nil)

	balance, err := s.resolver.Resolve(wethAddress).BalanceOf(custody)

	s.Nil(err)
	s.Equal(big.NewInt(42), balance)
}

func (s *AssetTestSuite) Test_Native_UnwrapFails_ReturnsError() {
	s.weth.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient balance"))

	err := s.resolver.Resolve(wethAddress).UnwrapIfNeeded(big.NewInt(300))

	s.NotNil(err)
}
