// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transactor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
)

var DefaultTransactionOptions = TransactOptions{
	GasLimit: 2000000,
	GasPrice: big.NewInt(0),
	Value:    big.NewInt(0),
	Priority: 1, // slow
}

var TxPriorities = map[string]uint8{
	"none":   0,
	"slow":   1,
	"medium": 2,
	"fast":   3,
}

type TransactOptions struct {
	GasLimit uint64
	GasPrice *big.Int
	Value    *big.Int
	Nonce    *big.Int
	Priority uint8
}

type Transactor interface {
	Transact(to *common.Address, data []byte, opts TransactOptions) (*common.Hash, error)
}

// MergeTransactionOptions fills unset fields of primary with values from additional
func MergeTransactionOptions(primary *TransactOptions, additional *TransactOptions) error {
	if err := mergo.Merge(primary, additional); err != nil {
		return err
	}

	return nil
}

type defaultsTransactor struct {
	Transactor
	defaults TransactOptions
}

// WithDefaults returns a transactor that fills unset options of every
// transaction with defaults before passing it to t
func WithDefaults(t Transactor, defaults TransactOptions) Transactor {
	return &defaultsTransactor{
		Transactor: t,
		defaults:   defaults,
	}
}

func (t *defaultsTransactor) Transact(to *common.Address, data []byte, opts TransactOptions) (*common.Hash, error) {
	if err := MergeTransactionOptions(&opts, &t.defaults); err != nil {
		return nil, err
	}
	return t.Transactor.Transact(to, data, opts)
}
