// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc20

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

type ERC20Contract struct {
	contracts.Contract
}

func NewERC20Contract(
	client calls.ContractCallerDispatcher,
	erc20ContractAddress common.Address,
	transactor transactor.Transactor,
) *ERC20Contract {
	a, _ := abi.JSON(strings.NewReader(consts.ERC20ABI))
	return &ERC20Contract{contracts.NewContract(erc20ContractAddress, a, client, transactor)}
}

func (c *ERC20Contract) Transfer(
	to common.Address,
	amount *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Transferring %s tokens to %s", amount.String(), to.String())
	return c.ExecuteTransaction("transfer", opts, to, amount)
}

func (c *ERC20Contract) Approve(
	spender common.Address,
	amount *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Approving %s tokens for %s", amount.String(), spender.String())
	return c.ExecuteTransaction("approve", opts, spender, amount)
}

func (c *ERC20Contract) BalanceOf(account common.Address) (*big.Int, error) {
	log.Debug().Msgf("Getting balance for %s", account.String())
	res, err := c.CallContract("balanceOf", account)
	if err != nil {
		return nil, err
	}
	b := abi.ConvertType(res[0], new(big.Int)).(*big.Int)
	return b, nil
}

func (c *ERC20Contract) Allowance(owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract("allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	a := abi.ConvertType(res[0], new(big.Int)).(*big.Int)
	return a, nil
}
