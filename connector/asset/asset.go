// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import (
	"math/big"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

type ERC20 interface {
	Transfer(to common.Address, amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error)
	Approve(spender common.Address, amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error)
	BalanceOf(account common.Address) (*big.Int, error)
}

type WrappedNative interface {
	ERC20
	Deposit(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error)
	Withdraw(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error)
}

// Asset is the set of operations bridge plugins need from the asset being bridged
type Asset interface {
	Kind() types.AssetKind
	Address() common.Address
	BalanceOf(account common.Address) (*big.Int, error)
	Transfer(to common.Address, amount *big.Int) (*common.Hash, error)
	Approve(spender common.Address, amount *big.Int) (*common.Hash, error)
	// WrapIfNeeded converts amount of native currency back into the wrapped token
	WrapIfNeeded(amount *big.Int) error
	// UnwrapIfNeeded converts amount of the wrapped token into native currency
	UnwrapIfNeeded(amount *big.Int) error
}

type Token struct {
	address  common.Address
	contract ERC20
}

func NewToken(address common.Address, contract ERC20) *Token {
	return &Token{address: address, contract: contract}
}

func (t *Token) Kind() types.AssetKind {
	return types.TokenAsset
}

func (t *Token) Address() common.Address {
	return t.address
}

func (t *Token) BalanceOf(account common.Address) (*big.Int, error) {
	return t.contract.BalanceOf(account)
}

func (t *Token) Transfer(to common.Address, amount *big.Int) (*common.Hash, error) {
	return t.contract.Transfer(to, amount, transactor.TransactOptions{})
}

func (t *Token) Approve(spender common.Address, amount *big.Int) (*common.Hash, error) {
	return t.contract.Approve(spender, amount, transactor.TransactOptions{})
}

func (t *Token) WrapIfNeeded(amount *big.Int) error {
	return nil
}

func (t *Token) UnwrapIfNeeded(amount *big.Int) error {
	return nil
}

type Native struct {
	Token
	weth WrappedNative
}

func NewNative(address common.Address, contract WrappedNative) *Native {
	return &Native{
		Token: Token{address: address, contract: contract},
		weth:  contract,
	}
}

func (n *Native) Kind() types.AssetKind {
	return types.NativeAsset
}

func (n *Native) WrapIfNeeded(amount *big.Int) error {
	log.Debug().Str("asset", n.address.Hex()).Msgf("Wrapping %s native", amount)
	_, err := n.weth.Deposit(amount, transactor.TransactOptions{Value: amount})
	return err
}

func (n *Native) UnwrapIfNeeded(amount *big.Int) error {
	log.Debug().Str("asset", n.address.Hex()).Msgf("Unwrapping %s native", amount)
	_, err := n.weth.Withdraw(amount, transactor.TransactOptions{})
	return err
}
