// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import (
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
)

type TokenFactory func(address common.Address) ERC20

// Resolver picks the asset implementation by kind. The configured wrapped
// native address is the only native asset, everything else is a token.
type Resolver struct {
	wrappedNative common.Address
	native        WrappedNative
	tokenFactory  TokenFactory
}

func NewResolver(wrappedNative common.Address, native WrappedNative, tokenFactory TokenFactory) *Resolver {
	return &Resolver{
		wrappedNative: wrappedNative,
		native:        native,
		tokenFactory:  tokenFactory,
	}
}

func (r *Resolver) Kind(address common.Address) types.AssetKind {
	if address == r.wrappedNative {
		return types.NativeAsset
	}
	return types.TokenAsset
}

func (r *Resolver) Resolve(address common.Address) Asset {
	if r.Kind(address) == types.NativeAsset {
		return NewNative(address, r.native)
	}
	return NewToken(address, r.tokenFactory(address))
}
