// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package hop

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/connector/asset"
	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/connector/protocol"
	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const DefaultSwapDeadline = time.Hour

// DefaultL2Chains are the rollups and sidechains Hop connects to mainnet
var DefaultL2Chains = []uint64{
	types.OptimismChainID,
	types.GnosisChainID,
	types.PolygonChainID,
	types.ArbitrumChainID,
}

type L1Bridge interface {
	SendToL2(
		chainID *big.Int,
		recipient common.Address,
		amount *big.Int,
		amountOutMin *big.Int,
		deadline *big.Int,
		relayer common.Address,
		relayerFee *big.Int,
		opts transactor.TransactOptions,
	) (*common.Hash, error)
}

type L2AMM interface {
	SwapAndSend(
		chainID *big.Int,
		recipient common.Address,
		amount *big.Int,
		bonderFee *big.Int,
		amountOutMin *big.Int,
		deadline *big.Int,
		destinationAmountOutMin *big.Int,
		destinationDeadline *big.Int,
		opts transactor.TransactOptions,
	) (*common.Hash, error)
}

type L1BridgeFactory func(address common.Address) L1Bridge
type L2AMMFactory func(address common.Address) L2AMM

type Config struct {
	LocalChainID uint64
	// Bridges maps a local asset to its Hop bridge (on mainnet) or AMM wrapper (on an L2)
	Bridges map[common.Address]common.Address
	// Chains overrides the supported destinations when not empty
	Chains       []uint64
	SwapDeadline time.Duration
	Now          func() time.Time
}

type Plugin struct {
	cfg      Config
	l1Bridge L1BridgeFactory
	l2AMM    L2AMMFactory
}

func NewPlugin(cfg Config, l1Bridge L1BridgeFactory, l2AMM L2AMMFactory) *Plugin {
	if cfg.SwapDeadline == 0 {
		cfg.SwapDeadline = DefaultSwapDeadline
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Bridges == nil {
		cfg.Bridges = make(map[common.Address]common.Address)
	}
	return &Plugin{
		cfg:      cfg,
		l1Bridge: l1Bridge,
		l2AMM:    l2AMM,
	}
}

func (p *Plugin) Protocol() types.Protocol {
	return types.Hop
}

// Routes returns the destinations reachable from the local chain. From
// mainnet those are the L2s, from an L2 mainnet and every other L2. Chains
// Hop is not deployed on have no default routes.
func (p *Plugin) Routes() map[types.AssetKind]route.SupportedChainSet {
	destinations := p.cfg.Chains
	if len(destinations) == 0 {
		switch {
		case p.cfg.LocalChainID == types.MainnetChainID:
			destinations = DefaultL2Chains
		case isDefaultL2(p.cfg.LocalChainID):
			destinations = append([]uint64{types.MainnetChainID}, DefaultL2Chains...)
		}
	}

	set := make(route.SupportedChainSet)
	for _, chainID := range destinations {
		if chainID == p.cfg.LocalChainID {
			continue
		}
		set[chainID] = common.Address{}
	}
	return map[types.AssetKind]route.SupportedChainSet{
		types.NativeAsset: set,
		types.TokenAsset:  set,
	}
}

func isDefaultL2(chainID uint64) bool {
	for _, l2 := range DefaultL2Chains {
		if l2 == chainID {
			return true
		}
	}
	return false
}

func (p *Plugin) Schemas() []*codec.Schema {
	return Schemas()
}

func (p *Plugin) Leg(destinationChainID uint64) codec.Leg {
	switch {
	case p.cfg.LocalChainID == types.MainnetChainID:
		return codec.L1ToL2
	case destinationChainID == types.MainnetChainID:
		return codec.L2ToL1
	default:
		return codec.L2ToL2
	}
}

func (p *Plugin) Send(a asset.Asset, req *types.BridgeRequest, routeContract common.Address, params codec.Params) (*common.Hash, error) {
	chainID := new(big.Int).SetUint64(req.DestinationChainID)

	switch prm := params.(type) {
	case L1ToL2Params:
		bridge, err := p.contract(prm.Bridge, routeContract, a.Address(), InvalidL1L2DataLengthCode)
		if err != nil {
			return nil, err
		}
		log.Info().
			Uint64("destination", req.DestinationChainID).
			Str("bridge", bridge.Hex()).
			Msgf("Sending %s of %s to L2 through Hop", req.AmountIn, a.Address().Hex())
		return protocol.UnwrapAndCall(a, bridge, req.AmountIn, func(value *big.Int) (*common.Hash, error) {
			return p.l1Bridge(bridge).SendToL2(
				chainID,
				req.Recipient,
				req.AmountIn,
				req.MinAmountOut,
				orZero(prm.Deadline),
				prm.Relayer,
				orZero(prm.RelayerFee),
				transactor.TransactOptions{Value: value},
			)
		})
	case L2ToL1Params:
		amm, err := p.contract(prm.AMM, routeContract, a.Address(), InvalidL2L1DataLengthCode)
		if err != nil {
			return nil, err
		}
		log.Info().
			Uint64("destination", req.DestinationChainID).
			Str("amm", amm.Hex()).
			Msgf("Sending %s of %s to mainnet through Hop", req.AmountIn, a.Address().Hex())
		return protocol.UnwrapAndCall(a, amm, req.AmountIn, func(value *big.Int) (*common.Hash, error) {
			return p.l2AMM(amm).SwapAndSend(
				chainID,
				req.Recipient,
				req.AmountIn,
				orZero(prm.BonderFee),
				req.MinAmountOut,
				p.swapDeadline(),
				big.NewInt(0),
				big.NewInt(0),
				transactor.TransactOptions{Value: value},
			)
		})
	case L2ToL2Params:
		amm, err := p.contract(prm.AMM, routeContract, a.Address(), InvalidL2L2DataLengthCode)
		if err != nil {
			return nil, err
		}
		log.Info().
			Uint64("destination", req.DestinationChainID).
			Str("amm", amm.Hex()).
			Msgf("Sending %s of %s to L2 through Hop", req.AmountIn, a.Address().Hex())
		return protocol.UnwrapAndCall(a, amm, req.AmountIn, func(value *big.Int) (*common.Hash, error) {
			return p.l2AMM(amm).SwapAndSend(
				chainID,
				req.Recipient,
				req.AmountIn,
				orZero(prm.BonderFee),
				req.MinAmountOut,
				p.swapDeadline(),
				req.MinAmountOut,
				orZero(prm.Deadline),
				transactor.TransactOptions{Value: value},
			)
		})
	default:
		return nil, fmt.Errorf("unexpected hop params %T", params)
	}
}

// contract resolves the Hop contract from the payload, the route default or
// the configured per asset bridge, in that order
func (p *Plugin) contract(fromPayload common.Address, routeContract common.Address, assetAddress common.Address, code string) (common.Address, error) {
	if fromPayload != (common.Address{}) {
		return fromPayload, nil
	}
	if routeContract != (common.Address{}) {
		return routeContract, nil
	}
	if bridge, ok := p.cfg.Bridges[assetAddress]; ok && bridge != (common.Address{}) {
		return bridge, nil
	}
	return common.Address{}, types.InvalidPayload(code)
}

func (p *Plugin) swapDeadline() *big.Int {
	return big.NewInt(p.cfg.Now().Add(p.cfg.SwapDeadline).Unix())
}
