// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/bridge-connector/connector/codec"
	"github.com/ChainSafe/bridge-connector/connector/protocol/connext"
	"github.com/ChainSafe/bridge-connector/connector/protocol/hop"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
)

var (
	encodeCMD = &cobra.Command{
		Use:   "encode",
		Short: "Encode protocol payloads",
		Long:  "Encode the data field of bridge requests",
	}
	hopL1CMD = &cobra.Command{
		Use:   "hop-l1",
		Short: "Encode Hop payload for transfers from mainnet to an L2",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPayload(func() (codec.Params, error) {
				deadline, relayerFee, err := parseAmounts(deadlineFlag, relayerFeeFlag)
				if err != nil {
					return nil, err
				}
				bridge, err := parseAddress(contractFlag)
				if err != nil {
					return nil, err
				}
				relayer, err := parseAddress(relayerFlag)
				if err != nil {
					return nil, err
				}
				return hop.L1ToL2Params{
					Kind:       assetKind(),
					Bridge:     bridge,
					Deadline:   deadline,
					Relayer:    relayer,
					RelayerFee: relayerFee,
				}, nil
			})
		},
	}
	hopL2L1CMD = &cobra.Command{
		Use:   "hop-l2-l1",
		Short: "Encode Hop payload for transfers from an L2 to mainnet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPayload(func() (codec.Params, error) {
				bonderFee, err := parseAmount(bonderFeeFlag)
				if err != nil {
					return nil, err
				}
				amm, err := parseAddress(contractFlag)
				if err != nil {
					return nil, err
				}
				return hop.L2ToL1Params{
					Kind:      assetKind(),
					AMM:       amm,
					BonderFee: bonderFee,
				}, nil
			})
		},
	}
	hopL2L2CMD = &cobra.Command{
		Use:   "hop-l2-l2",
		Short: "Encode Hop payload for transfers between L2s",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPayload(func() (codec.Params, error) {
				bonderFee, deadline, err := parseAmounts(bonderFeeFlag, deadlineFlag)
				if err != nil {
					return nil, err
				}
				amm, err := parseAddress(contractFlag)
				if err != nil {
					return nil, err
				}
				return hop.L2ToL2Params{
					Kind:      assetKind(),
					AMM:       amm,
					BonderFee: bonderFee,
					Deadline:  deadline,
				}, nil
			})
		},
	}
	connextCMD = &cobra.Command{
		Use:   "connext",
		Short: "Encode Connext payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPayload(func() (codec.Params, error) {
				relayerFee, err := parseAmount(relayerFeeFlag)
				if err != nil {
					return nil, err
				}
				return connext.Params{
					Kind:       assetKind(),
					RelayerFee: relayerFee,
				}, nil
			})
		},
	}
)

var (
	nativeFlag     bool
	contractFlag   string
	deadlineFlag   string
	relayerFlag    string
	relayerFeeFlag string
	bonderFeeFlag  string
)

func init() {
	encodeCMD.PersistentFlags().BoolVar(&nativeFlag, "native", false, "encode the payload of the wrapped native token")

	for _, cmd := range []*cobra.Command{hopL1CMD, hopL2L1CMD, hopL2L2CMD} {
		cmd.Flags().StringVar(&contractFlag, "contract", common.Address{}.Hex(), "Hop bridge or AMM wrapper, zero for the configured one")
	}
	hopL1CMD.Flags().StringVar(&deadlineFlag, "deadline", "0", "destination swap deadline")
	hopL1CMD.Flags().StringVar(&relayerFlag, "relayer", common.Address{}.Hex(), "relayer address")
	hopL1CMD.Flags().StringVar(&relayerFeeFlag, "relayer-fee", "0", "relayer fee")
	hopL2L1CMD.Flags().StringVar(&bonderFeeFlag, "bonder-fee", "0", "bonder fee")
	hopL2L2CMD.Flags().StringVar(&bonderFeeFlag, "bonder-fee", "0", "bonder fee")
	hopL2L2CMD.Flags().StringVar(&deadlineFlag, "deadline", "0", "destination swap deadline")
	connextCMD.Flags().StringVar(&relayerFeeFlag, "relayer-fee", "0", "relayer fee paid in the bridged asset")

	encodeCMD.AddCommand(hopL1CMD, hopL2L1CMD, hopL2L2CMD, connextCMD)
}

func printPayload(build func() (codec.Params, error)) error {
	params, err := build()
	if err != nil {
		return err
	}
	payload, err := encodePayload(params)
	if err != nil {
		return err
	}
	fmt.Println(payload)
	return nil
}

// encodePayload encodes params into the hex payload of a bridge request
func encodePayload(params codec.Params) (string, error) {
	c := codec.NewCodec()
	schemas := append(hop.Schemas(), connext.Schemas()...)
	for _, schema := range schemas {
		if err := c.Register(schema); err != nil {
			return "", err
		}
	}

	payload, err := c.Encode(params)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(payload), nil
}

func assetKind() types.AssetKind {
	if nativeFlag {
		return types.NativeAsset
	}
	return types.TokenAsset
}

func parseAddress(v string) (common.Address, error) {
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("invalid address %s", v)
	}
	return common.HexToAddress(v), nil
}

func parseAmount(v string) (*big.Int, error) {
	amount, ok := math.ParseBig256(v)
	if !ok {
		return nil, fmt.Errorf("invalid amount %s", v)
	}
	return amount, nil
}

func parseAmounts(first string, second string) (*big.Int, *big.Int, error) {
	a, err := parseAmount(first)
	if err != nil {
		return nil, nil, err
	}
	b, err := parseAmount(second)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
