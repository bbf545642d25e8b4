// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fakechain

import (
	"math/big"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ethereum/go-ethereum/common"
)

// HopCall records the arguments of a Hop bridge or AMM call
type HopCall struct {
	ChainID                 *big.Int
	Recipient               common.Address
	Amount                  *big.Int
	AmountOutMin            *big.Int
	Deadline                *big.Int
	Relayer                 common.Address
	RelayerFee              *big.Int
	BonderFee               *big.Int
	DestinationAmountOutMin *big.Int
	DestinationDeadline     *big.Int
	Value                   *big.Int
}

// HopBridge locks native currency sent as value or pulls the approved token.
// A zero token address makes it a native bridge.
type HopBridge struct {
	ledger  *Ledger
	address common.Address
	token   common.Address
	Calls   []HopCall
	// Err makes every call revert when set
	Err error
}

func (l *Ledger) HopBridge(address common.Address, token common.Address) *HopBridge {
	return &HopBridge{ledger: l, address: address, token: token}
}

func (b *HopBridge) Address() common.Address {
	return b.address
}

func (b *HopBridge) SendToL2(
	chainID *big.Int,
	recipient common.Address,
	amount *big.Int,
	amountOutMin *big.Int,
	deadline *big.Int,
	relayer common.Address,
	relayerFee *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return b.lock(HopCall{
		ChainID:      chainID,
		Recipient:    recipient,
		Amount:       amount,
		AmountOutMin: amountOutMin,
		Deadline:     deadline,
		Relayer:      relayer,
		RelayerFee:   relayerFee,
		Value:        valueOf(opts.Value),
	})
}

func (b *HopBridge) SwapAndSend(
	chainID *big.Int,
	recipient common.Address,
	amount *big.Int,
	bonderFee *big.Int,
	amountOutMin *big.Int,
	deadline *big.Int,
	destinationAmountOutMin *big.Int,
	destinationDeadline *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return b.lock(HopCall{
		ChainID:                 chainID,
		Recipient:               recipient,
		Amount:                  amount,
		AmountOutMin:            amountOutMin,
		Deadline:                deadline,
		BonderFee:               bonderFee,
		DestinationAmountOutMin: destinationAmountOutMin,
		DestinationDeadline:     destinationDeadline,
		Value:                   valueOf(opts.Value),
	})
}

func (b *HopBridge) lock(call HopCall) (*common.Hash, error) {
	b.ledger.lock.Lock()
	defer b.ledger.lock.Unlock()

	if b.Err != nil {
		return nil, b.Err
	}

	if b.token == (common.Address{}) {
		if call.Value.Cmp(call.Amount) != 0 {
			return nil, ErrValueMismatch
		}
		if err := b.ledger.moveNative(b.ledger.sender, b.address, call.Value); err != nil {
			return nil, err
		}
	} else {
		if call.Value.Sign() != 0 {
			return nil, ErrValueMismatch
		}
		if err := b.ledger.pull(b.token, b.ledger.sender, b.address, call.Amount); err != nil {
			return nil, err
		}
	}

	b.Calls = append(b.Calls, call)
	return b.ledger.nextHash(), nil
}

// XcallCall records the arguments of a Connext xcall
type XcallCall struct {
	Destination uint32
	To          common.Address
	Asset       common.Address
	Delegate    common.Address
	Amount      *big.Int
	Slippage    *big.Int
	CallData    []byte
	RelayerFee  *big.Int
}

// Connext pulls amount plus relayer fee of the approved asset
type Connext struct {
	ledger  *Ledger
	address common.Address
	Calls   []XcallCall
	Err     error
}

func (l *Ledger) Connext(address common.Address) *Connext {
	return &Connext{ledger: l, address: address}
}

func (c *Connext) Xcall(
	destination uint32,
	to common.Address,
	asset common.Address,
	delegate common.Address,
	amount *big.Int,
	slippage *big.Int,
	callData []byte,
	relayerFee *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	c.ledger.lock.Lock()
	defer c.ledger.lock.Unlock()

	if c.Err != nil {
		return nil, c.Err
	}
	if valueOf(opts.Value).Sign() != 0 {
		return nil, ErrValueMismatch
	}

	total := new(big.Int).Add(amount, relayerFee)
	if err := c.ledger.pull(asset, c.ledger.sender, c.address, total); err != nil {
		return nil, err
	}

	c.Calls = append(c.Calls, XcallCall{
		Destination: destination,
		To:          to,
		Asset:       asset,
		Delegate:    delegate,
		Amount:      amount,
		Slippage:    slippage,
		CallData:    callData,
		RelayerFee:  relayerFee,
	})
	return c.ledger.nextHash(), nil
}
