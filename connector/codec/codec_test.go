// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package codec_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

var testKey = codec.Key{Protocol: types.Hop, AssetKind: types.TokenAsset, Leg: codec.L2ToL1}

type testParams struct {
	Contract common.Address
	Fee      *big.Int
}

func (p testParams) Key() codec.Key {
	return testKey
}

func testSchema() *codec.Schema {
	return codec.MustNewSchema(
		testKey,
		"HOP_INVALID_L2_L1_DATA_LENGTH",
		[]string{"address", "uint256"},
		func(values []interface{}) (codec.Params, error) {
			return testParams{
				Contract: values[0].(common.Address),
				Fee:      values[1].(*big.Int),
			}, nil
		},
		func(params codec.Params) ([]interface{}, error) {
			p := params.(testParams)
			return []interface{}{p.Contract, p.Fee}, nil
		},
	)
}

type CodecTestSuite struct {
	suite.Suite
	codec *codec.Codec
}

func TestRunCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	s.codec = codec.NewCodec()
	s.Nil(s.codec.Register(testSchema()))
}

func (s *CodecTestSuite) Test_NewSchema_DynamicType_Rejected() {
	_, err := codec.NewSchema(testKey, "CODE", []string{"address", "bytes"}, nil, nil)

	s.NotNil(err)
}

func (s *CodecTestSuite) Test_NewSchema_Size() {
	s.Equal(64, testSchema().Size())
}

func (s *CodecTestSuite) Test_Register_Duplicate() {
	err := s.codec.Register(testSchema())

	s.NotNil(err)
}

func (s *CodecTestSuite) Test_Decode_EmptyPayload() {
	_, err := s.codec.Decode(testKey, []byte{})

	s.True(errors.Is(err, types.ErrInvalidPayload))
	s.Equal("HOP_INVALID_L2_L1_DATA_LENGTH", err.Error())
}

func (s *CodecTestSuite) Test_Decode_TrailingBytes() {
	payload, _ := s.codec.Encode(testParams{Contract: common.HexToAddress("0x1"), Fee: big.NewInt(1)})

	_, err := s.codec.Decode(testKey, append(payload, 0x0))

	s.Equal("HOP_INVALID_L2_L1_DATA_LENGTH", err.Error())
}

func (s *CodecTestSuite) Test_Decode_ValidPayload() {
	expected := testParams{
		Contract: common.HexToAddress("0x33ceb27b39d2Bb7D2e61F7564d3Df29344020417"),
		Fee:      big.NewInt(5000),
	}
	payload, err := s.codec.Encode(expected)
	s.Nil(err)
	s.Len(payload, 64)

	params, err := s.codec.Decode(testKey, payload)

	s.Nil(err)
	s.Equal(expected, params)
}

func (s *CodecTestSuite) Test_Decode_DirtyAddressPadding() {
	payload, _ := s.codec.Encode(testParams{Contract: common.HexToAddress("0x1"), Fee: big.NewInt(1)})
	for i := 0; i < 32; i++ {
		payload[i] = 0xff
	}

	_, err := s.codec.Decode(testKey, payload)

	s.True(errors.Is(err, types.ErrInvalidPayload))
	s.Equal("HOP_INVALID_L2_L1_DATA_LENGTH", err.Error())
}

func (s *CodecTestSuite) Test_Decode_NonZeroPaddingByte() {
	payload, _ := s.codec.Encode(testParams{Contract: common.HexToAddress("0x1"), Fee: big.NewInt(1)})
	payload[0] = 0x01

	_, err := s.codec.Decode(testKey, payload)

	s.True(errors.Is(err, types.ErrInvalidPayload))
}

func (s *CodecTestSuite) Test_Decode_UnknownKey() {
	key := codec.Key{Protocol: types.Connext, AssetKind: types.TokenAsset, Leg: codec.AnyLeg}

	_, err := s.codec.Decode(key, make([]byte, 32))

	s.True(errors.Is(err, types.ErrInvalidPayload))
}
