// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package route

import (
	"sort"
	"sync"

	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// SupportedChainSet maps a destination chain to the default external bridge
// contract for it. A zero address means the caller supplies the contract.
type SupportedChainSet map[uint64]common.Address

func (s SupportedChainSet) ChainIDs() []uint64 {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type routeKey struct {
	protocol types.Protocol
	kind     types.AssetKind
}

// Route is a single supported (protocol, asset kind, destination) triple
type Route struct {
	Protocol           types.Protocol  `json:"protocol"`
	AssetKind          types.AssetKind `json:"assetKind"`
	DestinationChainID uint64          `json:"destinationChainId"`
	Contract           common.Address  `json:"contract"`
}

type Validator struct {
	localChainID uint64
	routes       map[routeKey]SupportedChainSet
	lock         sync.RWMutex
}

func NewValidator(localChainID uint64) *Validator {
	return &Validator{
		localChainID: localChainID,
		routes:       make(map[routeKey]SupportedChainSet),
	}
}

func (v *Validator) LocalChainID() uint64 {
	return v.localChainID
}

// Register adds set to the destinations supported for protocol and kind. The
// local chain is never registered as a destination.
func (v *Validator) Register(protocol types.Protocol, kind types.AssetKind, set SupportedChainSet) {
	v.lock.Lock()
	defer v.lock.Unlock()

	key := routeKey{protocol: protocol, kind: kind}
	existing, ok := v.routes[key]
	if !ok {
		existing = make(SupportedChainSet)
		v.routes[key] = existing
	}
	for chainID, contract := range set {
		if chainID == v.localChainID {
			log.Warn().Uint64("chainID", chainID).Msgf("Skipping local chain as %s destination", protocol)
			continue
		}
		existing[chainID] = contract
	}
}

// CheckSameChain rejects operations whose destination is the local chain
func (v *Validator) CheckSameChain(destinationChainID uint64) error {
	if destinationChainID == v.localChainID {
		return types.SameChainOperation()
	}
	return nil
}

// Validate checks that destinationChainID is a supported route for protocol
// and kind and returns the default contract registered for it
func (v *Validator) Validate(protocol types.Protocol, kind types.AssetKind, destinationChainID uint64) (common.Address, error) {
	if err := v.CheckSameChain(destinationChainID); err != nil {
		return common.Address{}, err
	}

	v.lock.RLock()
	defer v.lock.RUnlock()

	set, ok := v.routes[routeKey{protocol: protocol, kind: kind}]
	if !ok {
		return common.Address{}, types.UnsupportedRoute(protocol)
	}
	contract, ok := set[destinationChainID]
	if !ok {
		return common.Address{}, types.UnsupportedRoute(protocol)
	}
	return contract, nil
}

// Routes lists every registered route ordered by protocol, kind and destination
func (v *Validator) Routes() []Route {
	v.lock.RLock()
	defer v.lock.RUnlock()

	routes := make([]Route, 0)
	for key, set := range v.routes {
		for _, chainID := range set.ChainIDs() {
			routes = append(routes, Route{
				Protocol:           key.protocol,
				AssetKind:          key.kind,
				DestinationChainID: chainID,
				Contract:           set[chainID],
			})
		}
	}
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Protocol != routes[j].Protocol {
			return routes[i].Protocol < routes[j].Protocol
		}
		if routes[i].AssetKind != routes[j].AssetKind {
			return routes[i].AssetKind < routes[j].AssetKind
		}
		return routes[i].DestinationChainID < routes[j].DestinationChainID
	})
	return routes
}
