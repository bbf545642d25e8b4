// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fakechain

import (
	"math/big"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ethereum/go-ethereum/common"
)

type Token struct {
	ledger  *Ledger
	address common.Address
}

func (l *Ledger) Token(address common.Address) *Token {
	return &Token{ledger: l, address: address}
}

func (t *Token) Transfer(to common.Address, amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	t.ledger.lock.Lock()
	defer t.ledger.lock.Unlock()

	if err := t.ledger.moveToken(t.address, t.ledger.sender, to, amount); err != nil {
		return nil, err
	}
	return t.ledger.nextHash(), nil
}

func (t *Token) Approve(spender common.Address, amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	t.ledger.lock.Lock()
	defer t.ledger.lock.Unlock()

	t.ledger.allowanceOf(t.address, t.ledger.sender, spender).Set(amount)
	return t.ledger.nextHash(), nil
}

func (t *Token) BalanceOf(account common.Address) (*big.Int, error) {
	return t.ledger.TokenBalance(t.address, account), nil
}

// WETH is a Token that converts between native currency and itself
type WETH struct {
	Token
}

func (l *Ledger) WETH(address common.Address) *WETH {
	return &WETH{Token: Token{ledger: l, address: address}}
}

func (w *WETH) Deposit(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	w.ledger.lock.Lock()
	defer w.ledger.lock.Unlock()

	if err := w.ledger.moveNative(w.ledger.sender, w.address, amount); err != nil {
		return nil, err
	}
	balance := w.ledger.tokenOf(w.address, w.ledger.sender)
	balance.Add(balance, amount)
	return w.ledger.nextHash(), nil
}

func (w *WETH) Withdraw(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	w.ledger.lock.Lock()
	defer w.ledger.lock.Unlock()

	balance := w.ledger.tokenOf(w.address, w.ledger.sender)
	if balance.Cmp(amount) < 0 {
		return nil, ErrInsufficientBalance
	}
	if err := w.ledger.moveNative(w.address, w.ledger.sender, amount); err != nil {
		return nil, err
	}
	balance.Sub(balance, amount)
	return w.ledger.nextHash(), nil
}

// Mint credits holder with amount of wrapped native backed by native currency held by the contract
func (w *WETH) Mint(holder common.Address, amount *big.Int) {
	w.ledger.lock.Lock()
	defer w.ledger.lock.Unlock()

	backing := w.ledger.nativeOf(w.address)
	backing.Add(backing, amount)
	balance := w.ledger.tokenOf(w.address, holder)
	balance.Add(balance, amount)
}
