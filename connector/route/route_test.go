// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package route_test

import (
	"errors"
	"testing"

	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *route.Validator
	bridge    common.Address
}

func TestRunValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.bridge = common.HexToAddress("0xb8901acB165ed027E32754E0FFe830802919727f")
	s.validator = route.NewValidator(types.MainnetChainID)
	s.validator.Register(types.Hop, types.NativeAsset, route.SupportedChainSet{
		types.OptimismChainID: s.bridge,
		types.PolygonChainID:  s.bridge,
		types.GnosisChainID:   s.bridge,
		types.ArbitrumChainID: s.bridge,
	})
}

func (s *ValidatorTestSuite) Test_CheckSameChain() {
	err := s.validator.CheckSameChain(types.MainnetChainID)

	s.True(errors.Is(err, types.ErrSameChainOperation))
	s.Equal("BRIDGE_CONNECTOR_SAME_CHAIN_OP", err.Error())
	s.Nil(s.validator.CheckSameChain(types.OptimismChainID))
}

func (s *ValidatorTestSuite) Test_Validate_SameChainBeforeRouteCheck() {
	_, err := s.validator.Validate(types.Connext, types.TokenAsset, types.MainnetChainID)

	s.Equal("BRIDGE_CONNECTOR_SAME_CHAIN_OP", err.Error())
}

func (s *ValidatorTestSuite) Test_Validate_SupportedDestinations() {
	for _, chainID := range []uint64{10, 137, 100, 42161} {
		contract, err := s.validator.Validate(types.Hop, types.NativeAsset, chainID)

		s.Nil(err)
		s.Equal(s.bridge, contract)
	}
}

func (s *ValidatorTestSuite) Test_Validate_UnsupportedDestination() {
	_, err := s.validator.Validate(types.Hop, types.NativeAsset, types.GoerliChainID)

	s.True(errors.Is(err, types.ErrUnsupportedRoute))
	s.Equal("HOP_BRIDGE_OP_NOT_SUPPORTED", err.Error())
}

func (s *ValidatorTestSuite) Test_Validate_UnregisteredKind() {
	_, err := s.validator.Validate(types.Hop, types.TokenAsset, types.OptimismChainID)

	s.Equal("HOP_BRIDGE_OP_NOT_SUPPORTED", err.Error())
}

func (s *ValidatorTestSuite) Test_Register_SkipsLocalChain() {
	s.validator.Register(types.Connext, types.TokenAsset, route.SupportedChainSet{
		types.MainnetChainID:  common.Address{},
		types.OptimismChainID: common.Address{},
	})

	routes := s.validator.Routes()

	for _, r := range routes {
		s.NotEqual(types.MainnetChainID, r.DestinationChainID)
	}
}

func (s *ValidatorTestSuite) Test_Routes_Ordered() {
	routes := s.validator.Routes()

	s.Len(routes, 4)
	s.Equal(uint64(10), routes[0].DestinationChainID)
	s.Equal(uint64(100), routes[1].DestinationChainID)
	s.Equal(uint64(137), routes[2].DestinationChainID)
	s.Equal(uint64(42161), routes[3].DestinationChainID)
}
