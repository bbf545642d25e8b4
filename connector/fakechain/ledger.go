// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package fakechain is an in-memory ledger that stands in for the token,
// wrapped native and bridge contracts of a single EVM chain
package fakechain

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrValueMismatch         = errors.New("value does not match amount")
)

type allowanceKey struct {
	owner   common.Address
	spender common.Address
}

// Ledger keeps native and token balances. Every state changing call is
// executed on behalf of sender and either fully applies or fails.
type Ledger struct {
	sender     common.Address
	native     map[common.Address]*big.Int
	tokens     map[common.Address]map[common.Address]*big.Int
	allowances map[common.Address]map[allowanceKey]*big.Int
	txCount    int64
	lock       sync.Mutex
}

func NewLedger(sender common.Address) *Ledger {
	return &Ledger{
		sender:     sender,
		native:     make(map[common.Address]*big.Int),
		tokens:     make(map[common.Address]map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[allowanceKey]*big.Int),
	}
}

func (l *Ledger) Sender() common.Address {
	return l.sender
}

func (l *Ledger) SetNativeBalance(holder common.Address, amount *big.Int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.native[holder] = new(big.Int).Set(amount)
}

func (l *Ledger) NativeBalance(holder common.Address) *big.Int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return new(big.Int).Set(l.nativeOf(holder))
}

func (l *Ledger) Mint(token common.Address, holder common.Address, amount *big.Int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	balance := l.tokenOf(token, holder)
	balance.Add(balance, amount)
}

func (l *Ledger) TokenBalance(token common.Address, holder common.Address) *big.Int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return new(big.Int).Set(l.tokenOf(token, holder))
}

func (l *Ledger) Allowance(token common.Address, owner common.Address, spender common.Address) *big.Int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return new(big.Int).Set(l.allowanceOf(token, owner, spender))
}

func (l *Ledger) nativeOf(holder common.Address) *big.Int {
	b, ok := l.native[holder]
	if !ok {
		b = big.NewInt(0)
		l.native[holder] = b
	}
	return b
}

func (l *Ledger) tokenOf(token common.Address, holder common.Address) *big.Int {
	balances, ok := l.tokens[token]
	if !ok {
		balances = make(map[common.Address]*big.Int)
		l.tokens[token] = balances
	}
	b, ok := balances[holder]
	if !ok {
		b = big.NewInt(0)
		balances[holder] = b
	}
	return b
}

func (l *Ledger) allowanceOf(token common.Address, owner common.Address, spender common.Address) *big.Int {
	allowances, ok := l.allowances[token]
	if !ok {
		allowances = make(map[allowanceKey]*big.Int)
		l.allowances[token] = allowances
	}
	key := allowanceKey{owner: owner, spender: spender}
	a, ok := allowances[key]
	if !ok {
		a = big.NewInt(0)
		allowances[key] = a
	}
	return a
}

func (l *Ledger) moveNative(from common.Address, to common.Address, amount *big.Int) error {
	fromBalance := l.nativeOf(from)
	if fromBalance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "native of %s", from.Hex())
	}
	fromBalance.Sub(fromBalance, amount)
	toBalance := l.nativeOf(to)
	toBalance.Add(toBalance, amount)
	return nil
}

func (l *Ledger) moveToken(token common.Address, from common.Address, to common.Address, amount *big.Int) error {
	fromBalance := l.tokenOf(token, from)
	if fromBalance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "token %s of %s", token.Hex(), from.Hex())
	}
	fromBalance.Sub(fromBalance, amount)
	toBalance := l.tokenOf(token, to)
	toBalance.Add(toBalance, amount)
	return nil
}

// pull moves amount of token from owner to spender consuming the allowance
func (l *Ledger) pull(token common.Address, owner common.Address, spender common.Address, amount *big.Int) error {
	allowance := l.allowanceOf(token, owner, spender)
	if allowance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientAllowance, "token %s for %s", token.Hex(), spender.Hex())
	}
	if err := l.moveToken(token, owner, spender, amount); err != nil {
		return err
	}
	allowance.Sub(allowance, amount)
	return nil
}

func (l *Ledger) nextHash() *common.Hash {
	l.txCount++
	h := common.BigToHash(big.NewInt(l.txCount))
	return &h
}

func valueOf(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
