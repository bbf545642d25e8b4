// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"

	"github.com/ChainSafe/bridge-connector/chains/evm"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls"
	connextContracts "github.com/ChainSafe/bridge-connector/chains/evm/calls/contracts/connext"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/contracts/erc20"
	hopContracts "github.com/ChainSafe/bridge-connector/chains/evm/calls/contracts/hop"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/contracts/weth"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/evmgaspricer"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/evmtransaction"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/transactor/signAndSend"
	"github.com/ChainSafe/bridge-connector/connector"
	"github.com/ChainSafe/bridge-connector/connector/asset"
	"github.com/ChainSafe/bridge-connector/connector/protocol/connext"
	"github.com/ChainSafe/bridge-connector/connector/protocol/hop"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// ChainClient is the client of the local chain the connector sends transactions with
type ChainClient interface {
	calls.ContractCallerDispatcher
	calls.ClientDispatcher
	evmgaspricer.GasPriceClient
}

// NewConnector builds the bridge connector of the configured chain with a plugin
// for every configured protocol. The client key is the custody account.
func NewConnector(ctx context.Context, config *evm.EVMConfig, client ChainClient, metrics connector.Metrics) (*connector.BridgeConnector, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	if chainID.Uint64() != config.Id {
		return nil, fmt.Errorf("endpoint of chain %s serves chain %s instead of %d", config.Name, chainID, config.Id)
	}

	gasPricer := evmgaspricer.NewLondonGasPriceClient(client, &evmgaspricer.GasPricerOpts{
		UpperLimitFeePerGas: config.MaxGasPrice,
		GasPriceFactor:      config.GasMultiplier,
	})
	t := transactor.WithDefaults(
		signAndSend.NewSignAndSendTransactor(evmtransaction.NewTransaction, gasPricer, client),
		transactor.TransactOptions{GasLimit: config.GasLimit.Uint64()},
	)

	resolver := asset.NewResolver(
		config.WrappedNative,
		weth.NewWETHContract(client, config.WrappedNative, t),
		func(address common.Address) asset.ERC20 {
			return erc20.NewERC20Contract(client, address, t)
		},
	)

	c := connector.NewBridgeConnector(config.Id, client.From(), resolver, metrics)
	for _, protocolConfig := range config.Protocols {
		plugin, err := newPlugin(config.Id, protocolConfig, client, t)
		if err != nil {
			return nil, err
		}
		err = c.RegisterPlugin(plugin)
		if err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("chain", config.Name).
		Str("custody", client.From().Hex()).
		Msgf("Created bridge connector for chain %d", config.Id)
	return c, nil
}

func newPlugin(chainID uint64, config evm.ProtocolConfig, client calls.ContractCallerDispatcher, t transactor.Transactor) (connector.Plugin, error) {
	switch config.Protocol {
	case types.Hop:
		return hop.NewPlugin(
			hop.Config{
				LocalChainID: chainID,
				Bridges:      config.Bridges,
				Chains:       config.Chains,
				SwapDeadline: config.SwapDeadline,
			},
			func(address common.Address) hop.L1Bridge {
				return hopContracts.NewL1BridgeContract(client, address, t)
			},
			func(address common.Address) hop.L2AMM {
				return hopContracts.NewL2AMMContract(client, address, t)
			},
		), nil
	case types.Connext:
		return connext.NewPlugin(
			connext.Config{
				LocalChainID: chainID,
				Contract:     config.Contract,
				Domains:      config.Domains,
			},
			func(address common.Address) connext.Connext {
				return connextContracts.NewConnextContract(client, address, t)
			},
		), nil
	default:
		return nil, fmt.Errorf("protocol %s not supported", config.Protocol)
	}
}
