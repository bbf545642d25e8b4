// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/ChainSafe/bridge-connector/app"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
)

var (
	bridgeCMD = &cobra.Command{
		Use:   "bridge",
		Short: "Bridge funds of the custody account",
		Long:  "Dispatch a single bridge request from the custody account of the configured chain",
		RunE:  bridge,
	}
)

var (
	protocolName string
	destination  uint64
	assetAddress string
	amountIn     string
	minAmountOut string
	recipient    string
	data         string
)

func init() {
	bridgeCMD.Flags().StringVar(&protocolName, "protocol", "", "bridge protocol name or id")
	_ = bridgeCMD.MarkFlagRequired("protocol")
	bridgeCMD.Flags().Uint64Var(&destination, "destination", 0, "destination chain id")
	_ = bridgeCMD.MarkFlagRequired("destination")
	bridgeCMD.Flags().StringVar(&assetAddress, "asset", "", "address of the bridged token or the wrapped native token")
	_ = bridgeCMD.MarkFlagRequired("asset")
	bridgeCMD.Flags().StringVar(&amountIn, "amount", "", "amount to bridge in the smallest unit")
	_ = bridgeCMD.MarkFlagRequired("amount")
	bridgeCMD.Flags().StringVar(&minAmountOut, "min-amount-out", "0", "minimum amount received on the destination chain")
	bridgeCMD.Flags().StringVar(&recipient, "recipient", "", "recipient on the destination chain")
	_ = bridgeCMD.MarkFlagRequired("recipient")
	bridgeCMD.Flags().StringVar(&data, "data", "0x", "hex encoded protocol payload, see encode command")
}

func bridge(cmd *cobra.Command, args []string) error {
	req, err := bridgeRequest()
	if err != nil {
		return err
	}

	h, err := app.Bridge(req)
	if err != nil {
		return err
	}

	fmt.Printf("Bridge transaction: %s\n", h.Hex())
	return nil
}

func bridgeRequest() (*types.BridgeRequest, error) {
	protocol, err := types.ParseProtocol(protocolName)
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(assetAddress) {
		return nil, fmt.Errorf("invalid asset address %s", assetAddress)
	}
	if !common.IsHexAddress(recipient) {
		return nil, fmt.Errorf("invalid recipient address %s", recipient)
	}
	amount, ok := math.ParseBig256(amountIn)
	if !ok {
		return nil, fmt.Errorf("invalid amount %s", amountIn)
	}
	minAmount, ok := math.ParseBig256(minAmountOut)
	if !ok {
		return nil, fmt.Errorf("invalid min amount out %s", minAmountOut)
	}
	payload, err := hexutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid data %s: %w", data, err)
	}

	return &types.BridgeRequest{
		Protocol:           protocol,
		DestinationChainID: destination,
		Asset:              common.HexToAddress(assetAddress),
		AmountIn:           amount,
		MinAmountOut:       minAmount,
		Recipient:          common.HexToAddress(recipient),
		Data:               payload,
	}, nil
}
