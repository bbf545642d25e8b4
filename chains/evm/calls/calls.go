// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package calls

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ContractChecker interface {
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
}

type ContractCaller interface {
	CallContract(ctx context.Context, callArgs ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ContractCallerDispatcher interface {
	ContractCaller
	ContractChecker
	From() common.Address
}

type GasPricer interface {
	GasPrice(priority *uint8) ([]*big.Int, error)
}

type ClientDispatcher interface {
	WaitAndReturnTxReceipt(h common.Hash) (*types.Receipt, error)
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error)
	UnsafeNonce() (*big.Int, error)
	LockNonce()
	UnlockNonce()
	UnsafeIncreaseNonce() error
	ChainID(ctx context.Context) (*big.Int, error)
	From() common.Address
}

// TxFabric builds an unsigned transaction. One gas price builds a legacy
// transaction, two (fee cap, tip cap) build a dynamic fee transaction.
type TxFabric func(chainID *big.Int, nonce uint64, to *common.Address, amount *big.Int, gasLimit uint64, gasPrices []*big.Int, data []byte) (*types.Transaction, error)
