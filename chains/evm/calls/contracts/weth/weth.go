// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package weth

import (
	"math/big"
	"strings"

	"github.com/ChainSafe/bridge-connector/chains/evm/calls"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/consts"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/contracts"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// WETHContract wraps the canonical wrapped native token contract
type WETHContract struct {
	contracts.Contract
}

func NewWETHContract(
	client calls.ContractCallerDispatcher,
	wethContractAddress common.Address,
	transactor transactor.Transactor,
) *WETHContract {
	a, _ := abi.JSON(strings.NewReader(consts.WETHABI))
	return &WETHContract{contracts.NewContract(wethContractAddress, a, client, transactor)}
}

func (c *WETHContract) Transfer(
	to common.Address,
	amount *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Transferring %s wrapped native to %s", amount.String(), to.String())
	return c.ExecuteTransaction("transfer", opts, to, amount)
}

func (c *WETHContract) Approve(
	spender common.Address,
	amount *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Approving %s wrapped native for %s", amount.String(), spender.String())
	return c.ExecuteTransaction("approve", opts, spender, amount)
}

func (c *WETHContract) BalanceOf(account common.Address) (*big.Int, error) {
	res, err := c.CallContract("balanceOf", account)
	if err != nil {
		return nil, err
	}
	b := abi.ConvertType(res[0], new(big.Int)).(*big.Int)
	return b, nil
}

// Deposit wraps amount of native currency. The value of opts is overridden with amount.
func (c *WETHContract) Deposit(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	log.Debug().Msgf("Wrapping %s native", amount.String())
	opts.Value = amount
	return c.ExecuteTransaction("deposit", opts)
}

func (c *WETHContract) Withdraw(amount *big.Int, opts transactor.TransactOptions) (*common.Hash, error) {
	log.Debug().Msgf("Unwrapping %s native", amount.String())
	return c.ExecuteTransaction("withdraw", opts, amount)
}
