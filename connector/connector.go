// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connector

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ChainSafe/bridge-connector/connector/asset"
	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// Plugin adapts one external bridge protocol to the connector
type Plugin interface {
	Protocol() types.Protocol
	// Routes returns the destinations supported per asset kind
	Routes() map[types.AssetKind]route.SupportedChainSet
	// Schemas returns the payload layouts the plugin accepts
	Schemas() []*codec.Schema
	// Leg returns the payload variant used for destinationChainID
	Leg(destinationChainID uint64) codec.Leg
	Send(a asset.Asset, req *types.BridgeRequest, routeContract common.Address, params codec.Params) (*common.Hash, error)
}

type AssetResolver interface {
	Kind(address common.Address) types.AssetKind
	Resolve(address common.Address) asset.Asset
}

type Metrics interface {
	TrackBridgeRequest(protocol types.Protocol, destinationChainID uint64)
	TrackBridgeSuccess(protocol types.Protocol, destinationChainID uint64, amount *big.Int)
	TrackBridgeFailure(protocol types.Protocol, destinationChainID uint64, code string)
}

// BridgeConnector dispatches bridge requests from a single custody account
// to the plugin registered for the requested protocol
type BridgeConnector struct {
	custody   common.Address
	validator *route.Validator
	codec     *codec.Codec
	assets    AssetResolver
	metrics   Metrics
	plugins   map[types.Protocol]Plugin
	lock      sync.Mutex
}

func NewBridgeConnector(localChainID uint64, custody common.Address, assets AssetResolver, metrics Metrics) *BridgeConnector {
	return &BridgeConnector{
		custody:   custody,
		validator: route.NewValidator(localChainID),
		codec:     codec.NewCodec(),
		assets:    assets,
		metrics:   metrics,
		plugins:   make(map[types.Protocol]Plugin),
	}
}

// RegisterPlugin registers plugin together with its routes and payload schemas
func (c *BridgeConnector) RegisterPlugin(plugin Plugin) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.plugins[plugin.Protocol()]; ok {
		return fmt.Errorf("plugin for %s already registered", plugin.Protocol())
	}
	for _, schema := range plugin.Schemas() {
		if err := c.codec.Register(schema); err != nil {
			return err
		}
	}
	for kind, set := range plugin.Routes() {
		c.validator.Register(plugin.Protocol(), kind, set)
	}
	c.plugins[plugin.Protocol()] = plugin

	log.Info().Msgf("Registered %s bridge plugin", plugin.Protocol())
	return nil
}

func (c *BridgeConnector) LocalChainID() uint64 {
	return c.validator.LocalChainID()
}

func (c *BridgeConnector) Routes() []route.Route {
	return c.validator.Routes()
}

// Encode packs params into the payload expected by Bridge
func (c *BridgeConnector) Encode(params codec.Params) ([]byte, error) {
	return c.codec.Encode(params)
}

// Bridge validates req and sends AmountIn of Asset to the destination chain
// through the requested protocol. Every check runs before the first
// transaction is sent. Errors of the external bridge call are returned unchanged.
func (c *BridgeConnector) Bridge(req *types.BridgeRequest) (*common.Hash, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.metrics.TrackBridgeRequest(req.Protocol, req.DestinationChainID)
	h, err := c.bridge(req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("protocol", req.Protocol.String()).
			Uint64("destination", req.DestinationChainID).
			Msg("Bridge request failed")
		c.metrics.TrackBridgeFailure(req.Protocol, req.DestinationChainID, types.ErrorCode(err))
		return nil, err
	}

	log.Info().
		Str("protocol", req.Protocol.String()).
		Uint64("destination", req.DestinationChainID).
		Str("txHash", h.Hex()).
		Msgf("Bridged %s of %s", req.AmountIn, req.Asset.Hex())
	c.metrics.TrackBridgeSuccess(req.Protocol, req.DestinationChainID, req.AmountIn)
	return h, nil
}

func (c *BridgeConnector) bridge(req *types.BridgeRequest) (*common.Hash, error) {
	if err := c.validator.CheckSameChain(req.DestinationChainID); err != nil {
		return nil, err
	}

	plugin, ok := c.plugins[req.Protocol]
	if !ok {
		return nil, types.UnknownProtocol()
	}

	kind := c.assets.Kind(req.Asset)
	routeContract, err := c.validator.Validate(req.Protocol, kind, req.DestinationChainID)
	if err != nil {
		return nil, err
	}

	if req.AmountIn == nil || req.AmountIn.Sign() <= 0 {
		return nil, types.InvalidRequest(types.AmountInZeroCode)
	}
	if req.Recipient == (common.Address{}) {
		return nil, types.InvalidRequest(types.RecipientZeroCode)
	}
	if req.MinAmountOut == nil {
		normalized := *req
		normalized.MinAmountOut = big.NewInt(0)
		req = &normalized
	}

	key := codec.Key{Protocol: req.Protocol, AssetKind: kind, Leg: plugin.Leg(req.DestinationChainID)}
	params, err := c.codec.Decode(key, req.Data)
	if err != nil {
		return nil, err
	}

	a := c.assets.Resolve(req.Asset)
	balance, err := a.BalanceOf(c.custody)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(req.AmountIn) < 0 {
		return nil, types.InsufficientCustody()
	}

	log.Debug().
		Str("protocol", req.Protocol.String()).
		Str("leg", key.Leg.String()).
		Str("asset", req.Asset.Hex()).
		Msgf("Dispatching %s to chain %d", req.AmountIn, req.DestinationChainID)
	return plugin.Send(a, req, routeContract, params)
}
