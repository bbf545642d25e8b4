// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package hop

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

type L1BridgeContract struct {
	contracts.Contract
}

func NewL1BridgeContract(
	client calls.ContractCallerDispatcher,
	bridgeAddress common.Address,
	transactor transactor.Transactor,
) *L1BridgeContract {
	a, _ := abi.JSON(strings.NewReader(consts.HopL1BridgeABI))
	return &L1BridgeContract{contracts.NewContract(bridgeAddress, a, client, transactor)}
}

func (c *L1BridgeContract) SendToL2(
	chainID *big.Int,
	recipient common.Address,
	amount *big.Int,
	amountOutMin *big.Int,
	deadline *big.Int,
	relayer common.Address,
	relayerFee *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().
		Str("bridge", c.ContractAddress().String()).
		Str("chainID", chainID.String()).
		Msgf("Sending %s to L2 recipient %s", amount.String(), recipient.String())
	return c.ExecuteTransaction(
		"sendToL2",
		opts,
		chainID, recipient, amount, amountOutMin, deadline, relayer, relayerFee,
	)
}

type L2AMMContract struct {
	contracts.Contract
}

func NewL2AMMContract(
	client calls.ContractCallerDispatcher,
	ammAddress common.Address,
	transactor transactor.Transactor,
) *L2AMMContract {
	a, _ := abi.JSON(strings.NewReader(consts.HopL2AMMABI))
	return &L2AMMContract{contracts.NewContract(ammAddress, a, client, transactor)}
}

func (c *L2AMMContract) SwapAndSend(
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
	log.Debug().
		Str("amm", c.ContractAddress().String()).
		Str("chainID", chainID.String()).
		Msgf("Swapping and sending %s to %s", amount.String(), recipient.String())
	return c.ExecuteTransaction(
		"swapAndSend",
		opts,
		chainID, recipient, amount, bonderFee, amountOutMin, deadline, destinationAmountOutMin, destinationDeadline,
	)
}
