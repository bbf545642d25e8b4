// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connext

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/connector/asset"
	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/connector/protocol"
	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const (
	InvalidDataLengthCode    = "CONNEXT_INVALID_DATA_LENGTH"
	RelayerFeeGtAmountInCode = "CONNEXT_RELAYER_FEE_GT_AMOUNT_IN"
	MinAmountOutTooBigCode   = "CONNEXT_MIN_AMOUNT_OUT_TOO_BIG"
	MissingContractCode      = "CONNEXT_CONTRACT_NOT_SET"
)

const bpsDenominator = 10000

// DefaultDomains maps chain ids to Connext domain ids
var DefaultDomains = map[uint64]uint32{
	types.MainnetChainID:  6648936,
	types.OptimismChainID: 1869640809,
	types.BSCChainID:      6450786,
	types.GnosisChainID:   6778479,
	types.PolygonChainID:  1886350457,
	types.ArbitrumChainID: 1634886255,
}

type Connext interface {
	Xcall(
		destination uint32,
		to common.Address,
		asset common.Address,
		delegate common.Address,
		amount *big.Int,
		slippage *big.Int,
		callData []byte,
		relayerFee *big.Int,
		opts transactor.TransactOptions,
	) (*common.Hash, error)
}

type ConnextFactory func(address common.Address) Connext

// Params is the Connext payload, identical for native and token transfers
type Params struct {
	Kind       types.AssetKind
	RelayerFee *big.Int
}

func (p Params) Key() codec.Key {
	return codec.Key{Protocol: types.Connext, AssetKind: p.Kind, Leg: codec.AnyLeg}
}

type Config struct {
	LocalChainID uint64
	Contract     common.Address
	// Domains overrides DefaultDomains when not empty
	Domains map[uint64]uint32
}

type Plugin struct {
	cfg     Config
	connext ConnextFactory
}

func NewPlugin(cfg Config, connext ConnextFactory) *Plugin {
	if len(cfg.Domains) == 0 {
		cfg.Domains = DefaultDomains
	}
	return &Plugin{cfg: cfg, connext: connext}
}

func (p *Plugin) Protocol() types.Protocol {
	return types.Connext
}

func (p *Plugin) Routes() map[types.AssetKind]route.SupportedChainSet {
	set := make(route.SupportedChainSet)
	for chainID := range p.cfg.Domains {
		if chainID == p.cfg.LocalChainID {
			continue
		}
		set[chainID] = p.cfg.Contract
	}
	return map[types.AssetKind]route.SupportedChainSet{
		types.NativeAsset: set,
		types.TokenAsset:  set,
	}
}

func (p *Plugin) Schemas() []*codec.Schema {
	return Schemas()
}

// Schemas returns the Connext payload layout for both asset kinds
func Schemas() []*codec.Schema {
	schemas := make([]*codec.Schema, 0, 2)
	for _, kind := range []types.AssetKind{types.NativeAsset, types.TokenAsset} {
		kind := kind
		schemas = append(schemas, codec.MustNewSchema(
			Params{Kind: kind}.Key(),
			InvalidDataLengthCode,
			[]string{"uint256"},
			func(values []interface{}) (codec.Params, error) {
				return Params{Kind: kind, RelayerFee: values[0].(*big.Int)}, nil
			},
			func(params codec.Params) ([]interface{}, error) {
				prm, ok := params.(Params)
				if !ok {
					return nil, fmt.Errorf("unexpected params %T", params)
				}
				if prm.RelayerFee == nil {
					return []interface{}{big.NewInt(0)}, nil
				}
				return []interface{}{prm.RelayerFee}, nil
			},
		))
	}
	return schemas
}

func (p *Plugin) Leg(destinationChainID uint64) codec.Leg {
	return codec.AnyLeg
}

// Send approves amountIn to Connext and calls xcall. The wrapped native
// asset is bridged as a token.
func (p *Plugin) Send(a asset.Asset, req *types.BridgeRequest, routeContract common.Address, params codec.Params) (*common.Hash, error) {
	prm, ok := params.(Params)
	if !ok {
		return nil, fmt.Errorf("unexpected connext params %T", params)
	}

	contract := routeContract
	if contract == (common.Address{}) {
		contract = p.cfg.Contract
	}
	if contract == (common.Address{}) {
		return nil, types.InvalidRequest(MissingContractCode)
	}

	domain, ok := p.cfg.Domains[req.DestinationChainID]
	if !ok {
		return nil, types.UnsupportedRoute(types.Connext)
	}

	amount, slippage, err := Slippage(req.AmountIn, req.MinAmountOut, prm.RelayerFee)
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint64("destination", req.DestinationChainID).
		Uint32("domain", domain).
		Str("connext", contract.Hex()).
		Msgf("Sending %s of %s through Connext", amount, a.Address().Hex())
	return protocol.ApproveAndCall(a, contract, req.AmountIn, func(value *big.Int) (*common.Hash, error) {
		return p.connext(contract).Xcall(
			domain,
			req.Recipient,
			a.Address(),
			req.Recipient,
			amount,
			slippage,
			[]byte{},
			relayerFee(prm.RelayerFee),
			transactor.TransactOptions{Value: value},
		)
	})
}

// Slippage returns the amount bridged after the relayer fee and the maximum
// slippage in basis points that still satisfies minAmountOut
func Slippage(amountIn *big.Int, minAmountOut *big.Int, fee *big.Int) (*big.Int, *big.Int, error) {
	fee = relayerFee(fee)
	if fee.Cmp(amountIn) > 0 {
		return nil, nil, types.InvalidRequest(RelayerFeeGtAmountInCode)
	}
	amount := new(big.Int).Sub(amountIn, fee)

	if minAmountOut == nil {
		minAmountOut = big.NewInt(0)
	}
	if minAmountOut.Cmp(amount) > 0 {
		return nil, nil, types.InvalidRequest(MinAmountOutTooBigCode)
	}
	if amount.Sign() == 0 {
		return amount, big.NewInt(0), nil
	}

	slippage := new(big.Int).Sub(amount, minAmountOut)
	slippage.Mul(slippage, big.NewInt(bpsDenominator))
	slippage.Div(slippage, amount)
	return amount, slippage, nil
}

func relayerFee(fee *big.Int) *big.Int {
	if fee == nil {
		return big.NewInt(0)
	}
	return fee
}
