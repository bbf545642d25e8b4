// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package hop

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	InvalidL1L2DataLengthCode = "HOP_INVALID_L1_L2_DATA_LENGTH"
	InvalidL2L1DataLengthCode = "HOP_INVALID_L2_L1_DATA_LENGTH"
	InvalidL2L2DataLengthCode = "HOP_INVALID_L2_L2_DATA_LENGTH"
)

// L1ToL2Params is the payload of a transfer from mainnet to an L2
type L1ToL2Params struct {
	Kind       types.AssetKind
	Bridge     common.Address
	Deadline   *big.Int
	Relayer    common.Address
	RelayerFee *big.Int
}

func (p L1ToL2Params) Key() codec.Key {
	return codec.Key{Protocol: types.Hop, AssetKind: p.Kind, Leg: codec.L1ToL2}
}

// L2ToL1Params is the payload of a transfer from an L2 back to mainnet
type L2ToL1Params struct {
	Kind      types.AssetKind
	AMM       common.Address
	BonderFee *big.Int
}

func (p L2ToL1Params) Key() codec.Key {
	return codec.Key{Protocol: types.Hop, AssetKind: p.Kind, Leg: codec.L2ToL1}
}

// L2ToL2Params is the payload of a transfer between two L2s
type L2ToL2Params struct {
	Kind      types.AssetKind
	AMM       common.Address
	BonderFee *big.Int
	Deadline  *big.Int
}

func (p L2ToL2Params) Key() codec.Key {
	return codec.Key{Protocol: types.Hop, AssetKind: p.Kind, Leg: codec.L2ToL2}
}

// Schemas returns the payload layouts of every Hop leg for both asset kinds
func Schemas() []*codec.Schema {
	schemas := make([]*codec.Schema, 0, 6)
	for _, kind := range []types.AssetKind{types.NativeAsset, types.TokenAsset} {
		kind := kind
		schemas = append(schemas,
			codec.MustNewSchema(
				L1ToL2Params{Kind: kind}.Key(),
				InvalidL1L2DataLengthCode,
				[]string{"address", "uint256", "address", "uint256"},
				func(values []interface{}) (codec.Params, error) {
					return L1ToL2Params{
						Kind:       kind,
						Bridge:     values[0].(common.Address),
						Deadline:   values[1].(*big.Int),
						Relayer:    values[2].(common.Address),
						RelayerFee: values[3].(*big.Int),
					}, nil
				},
				func(params codec.Params) ([]interface{}, error) {
					p, ok := params.(L1ToL2Params)
					if !ok {
						return nil, fmt.Errorf("unexpected params %T", params)
					}
					return []interface{}{p.Bridge, orZero(p.Deadline), p.Relayer, orZero(p.RelayerFee)}, nil
				},
			),
			codec.MustNewSchema(
				L2ToL1Params{Kind: kind}.Key(),
				InvalidL2L1DataLengthCode,
				[]string{"address", "uint256"},
				func(values []interface{}) (codec.Params, error) {
					return L2ToL1Params{
						Kind:      kind,
						AMM:       values[0].(common.Address),
						BonderFee: values[1].(*big.Int),
					}, nil
				},
				func(params codec.Params) ([]interface{}, error) {
					p, ok := params.(L2ToL1Params)
					if !ok {
						return nil, fmt.Errorf("unexpected params %T", params)
					}
					return []interface{}{p.AMM, orZero(p.BonderFee)}, nil
				},
			),
			codec.MustNewSchema(
				L2ToL2Params{Kind: kind}.Key(),
				InvalidL2L2DataLengthCode,
				[]string{"address", "uint256", "uint256"},
				func(values []interface{}) (codec.Params, error) {
					return L2ToL2Params{
						Kind:      kind,
						AMM:       values[0].(common.Address),
						BonderFee: values[1].(*big.Int),
						Deadline:  values[2].(*big.Int),
					}, nil
				},
				func(params codec.Params) ([]interface{}, error) {
					p, ok := params.(L2ToL2Params)
					if !ok {
						return nil, fmt.Errorf("unexpected params %T", params)
					}
					return []interface{}{p.AMM, orZero(p.BonderFee), orZero(p.Deadline)}, nil
				},
			),
		)
	}
	return schemas
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
