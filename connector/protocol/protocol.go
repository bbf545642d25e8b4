// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package protocol

import (
	"math/big"

	"github.com/ChainSafe/bridge-connector/connector/asset"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// BridgeCall submits the external bridge transaction with value attached
type BridgeCall func(value *big.Int) (*common.Hash, error)

// UnwrapAndCall unwraps amount of the native asset and forwards it as call
// value. Tokens are approved to spender instead and sent without value.
// When the bridge call fails the preparation step is reverted and the bridge
// error is returned unchanged.
func UnwrapAndCall(a asset.Asset, spender common.Address, amount *big.Int, call BridgeCall) (*common.Hash, error) {
	if a.Kind() != types.NativeAsset {
		return ApproveAndCall(a, spender, amount, call)
	}

	if err := a.UnwrapIfNeeded(amount); err != nil {
		return nil, err
	}

	h, err := call(amount)
	if err != nil {
		if wrapErr := a.WrapIfNeeded(amount); wrapErr != nil {
			log.Error().Err(wrapErr).Str("asset", a.Address().Hex()).Msgf("Failed re-wrapping %s native after failed bridge call", amount)
		}
		return nil, err
	}
	return h, nil
}

// ApproveAndCall approves amount of a to spender and submits the bridge call
// without value. The allowance is reset when the bridge call fails.
func ApproveAndCall(a asset.Asset, spender common.Address, amount *big.Int, call BridgeCall) (*common.Hash, error) {
	if _, err := a.Approve(spender, amount); err != nil {
		return nil, err
	}

	h, err := call(big.NewInt(0))
	if err != nil {
		if _, resetErr := a.Approve(spender, big.NewInt(0)); resetErr != nil {
			log.Error().Err(resetErr).Str("asset", a.Address().Hex()).Msgf("Failed resetting allowance of %s", spender.Hex())
		}
		return nil, err
	}
	return h, nil
}
