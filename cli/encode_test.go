// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ChainSafe/bridge-connector/connector/protocol/connext"
	"github.com/ChainSafe/bridge-connector/connector/protocol/hop"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type EncodePayloadTestSuite struct {
	suite.Suite
}

func TestRunEncodePayloadTestSuite(t *testing.T) {
	suite.Run(t, new(EncodePayloadTestSuite))
}

func (s *EncodePayloadTestSuite) Test_HopL1ToL2() {
	payload, err := encodePayload(hop.L1ToL2Params{
		Kind:       types.TokenAsset,
		Bridge:     common.HexToAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a"),
		Deadline:   big.NewInt(1),
		RelayerFee: big.NewInt(2),
	})

	s.Nil(err)
	// 0x + four words
	s.Len(payload, 2+4*64)
	s.True(strings.HasPrefix(payload, "0x0000000000000000000000003666f603cc164936c1b87e207f36beba4ac5f18a"))
	s.True(strings.HasSuffix(payload, "0000000000000000000000000000000000000000000000000000000000000002"))
}

func (s *EncodePayloadTestSuite) Test_HopL2ToL1() {
	payload, err := encodePayload(hop.L2ToL1Params{Kind: types.NativeAsset})

	s.Nil(err)
	s.Len(payload, 2+2*64)
}

func (s *EncodePayloadTestSuite) Test_Connext() {
	payload, err := encodePayload(connext.Params{Kind: types.TokenAsset, RelayerFee: big.NewInt(255)})

	s.Nil(err)
	s.Equal("0x00000000000000000000000000000000000000000000000000000000000000ff", payload)
}

func (s *EncodePayloadTestSuite) Test_ParseAddress() {
	_, err := parseAddress("0x1234")
	s.NotNil(err)

	a, err := parseAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a")
	s.Nil(err)
	s.Equal(common.HexToAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a"), a)
}

func (s *EncodePayloadTestSuite) Test_BridgeRequest() {
	protocolName = "connext"
	destination = 10
	assetAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	amountIn = "300000000"
	minAmountOut = "291000000"
	recipient = "0xf584f8728b874a6a5c7a8d4d387c9aae9172d621"
	data = "0x00ff"

	req, err := bridgeRequest()

	s.Nil(err)
	s.Equal(types.Connext, req.Protocol)
	s.Equal(uint64(10), req.DestinationChainID)
	s.Equal("300000000", req.AmountIn.String())
	s.Equal("291000000", req.MinAmountOut.String())
	s.Equal([]byte{0x00, 0xff}, req.Data)
}

func (s *EncodePayloadTestSuite) Test_BridgeRequest_InvalidAmount() {
	protocolName = "hop"
	assetAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	recipient = "0xf584f8728b874a6a5c7a8d4d387c9aae9172d621"
	amountIn = "three hundred"
	data = "0x"

	_, err := bridgeRequest()

	s.NotNil(err)
}
