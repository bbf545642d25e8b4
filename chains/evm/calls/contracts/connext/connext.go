// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connext

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

type ConnextContract struct {
	contracts.Contract
}

func NewConnextContract(
	client calls.ContractCallerDispatcher,
	connextAddress common.Address,
	transactor transactor.Transactor,
) *ConnextContract {
	a, _ := abi.JSON(strings.NewReader(consts.ConnextABI))
	return &ConnextContract{contracts.NewContract(connextAddress, a, client, transactor)}
}

func (c *ConnextContract) Xcall(
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
	log.Debug().
		Uint32("destination", destination).
		Str("asset", asset.String()).
		Msgf("Calling xcall with amount %s and slippage %s bps", amount.String(), slippage.String())
	return c.ExecuteTransaction(
		"xcall",
		opts,
		destination, to, asset, delegate, amount, slippage, callData, relayerFee,
	)
}
