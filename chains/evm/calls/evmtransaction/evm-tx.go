// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmtransaction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// NewTransaction builds a legacy transaction for a single gas price and a
// dynamic fee transaction for a (fee cap, tip cap) pair
func NewTransaction(chainID *big.Int, nonce uint64, to *common.Address, amount *big.Int, gasLimit uint64, gasPrices []*big.Int, data []byte) (*types.Transaction, error) {
	switch len(gasPrices) {
	case 1:
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			To:       to,
			Value:    amount,
			Gas:      gasLimit,
			GasPrice: gasPrices[0],
			Data:     data,
		}), nil
	case 2:
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			To:        to,
			Value:     amount,
			Gas:       gasLimit,
			GasFeeCap: gasPrices[0],
			GasTipCap: gasPrices[1],
			Data:      data,
		}), nil
	default:
		return nil, errors.Errorf("unsupported number of gas prices %d", len(gasPrices))
	}
}
