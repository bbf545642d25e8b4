// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/bridge-connector/types"
)

// ProtocolConfig configures a single bridge protocol plugin
type ProtocolConfig struct {
	Protocol types.Protocol
	// Contract is the default protocol contract for every route
	Contract common.Address
	// Bridges maps local assets to their protocol contract
	Bridges      map[common.Address]common.Address
	Chains       []uint64
	Domains      map[uint64]uint32
	SwapDeadline time.Duration
}

type EVMConfig struct {
	Id            uint64
	Name          string
	Endpoint      string
	Key           string
	WrappedNative common.Address
	MaxGasPrice   *big.Int
	GasMultiplier *big.Float
	GasLimit      *big.Int
	Protocols     []ProtocolConfig
}

type RawProtocolConfig struct {
	Type         string            `mapstructure:"type"`
	Address      string            `mapstructure:"address"`
	Bridges      map[string]string `mapstructure:"bridges"`
	Chains       []uint64          `mapstructure:"chains"`
	Domains      map[string]uint32 `mapstructure:"domains"`
	SwapDeadline uint64            `mapstructure:"swapDeadline"`
}

type RawEVMConfig struct {
	Id            *uint64             `mapstructure:"id"`
	Name          string              `mapstructure:"name"`
	Type          string              `mapstructure:"type"`
	Endpoint      string              `mapstructure:"endpoint"`
	Key           string              `mapstructure:"key"`
	WrappedNative string              `mapstructure:"wrappedNative"`
	MaxGasPrice   int64               `mapstructure:"maxGasPrice" default:"500000000000"`
	GasMultiplier float64             `mapstructure:"gasMultiplier" default:"1"`
	GasLimit      int64               `mapstructure:"gasLimit" default:"2000000"`
	Protocols     []RawProtocolConfig `mapstructure:"protocols"`
}

func (c *RawEVMConfig) Validate() error {
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	if !common.IsHexAddress(c.WrappedNative) {
		return fmt.Errorf("invalid chain.WrappedNative %s for chain %v", c.WrappedNative, *c.Id)
	}
	if len(c.Protocols) == 0 {
		return fmt.Errorf("no protocols configured for chain %v", *c.Id)
	}
	for _, p := range c.Protocols {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *RawProtocolConfig) Validate() error {
	protocol, err := types.ParseProtocol(c.Type)
	if err != nil {
		return err
	}
	if protocol == types.Hop && c.Address != "" {
		return fmt.Errorf("hop contracts are configured per asset with bridges, address %s not allowed", c.Address)
	}
	if c.Address != "" && !common.IsHexAddress(c.Address) {
		return fmt.Errorf("invalid %s address %s", c.Type, c.Address)
	}
	for a, b := range c.Bridges {
		if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
			return fmt.Errorf("invalid %s bridge mapping %s:%s", c.Type, a, b)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &c,
	})
	if err != nil {
		return nil, err
	}
	err = decoder.Decode(chainConfig)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	protocols := make([]ProtocolConfig, len(c.Protocols))
	for i, p := range c.Protocols {
		protocols[i], err = newProtocolConfig(p)
		if err != nil {
			return nil, err
		}
	}

	config := &EVMConfig{
		Id:            *c.Id,
		Name:          c.Name,
		Endpoint:      c.Endpoint,
		Key:           c.Key,
		WrappedNative: common.HexToAddress(c.WrappedNative),
		GasLimit:      big.NewInt(c.GasLimit),
		MaxGasPrice:   big.NewInt(c.MaxGasPrice),
		GasMultiplier: big.NewFloat(c.GasMultiplier),
		Protocols:     protocols,
	}

	return config, nil
}

func newProtocolConfig(raw RawProtocolConfig) (ProtocolConfig, error) {
	protocol, err := types.ParseProtocol(raw.Type)
	if err != nil {
		return ProtocolConfig{}, err
	}

	bridges := make(map[common.Address]common.Address)
	for a, b := range raw.Bridges {
		bridges[common.HexToAddress(a)] = common.HexToAddress(b)
	}

	var domains map[uint64]uint32
	if len(raw.Domains) > 0 {
		domains = make(map[uint64]uint32)
		for chain, domain := range raw.Domains {
			chainID, err := strconv.ParseUint(chain, 10, 64)
			if err != nil {
				return ProtocolConfig{}, fmt.Errorf("invalid domain chain id %s: %w", chain, err)
			}
			domains[chainID] = domain
		}
	}

	return ProtocolConfig{
		Protocol:     protocol,
		Contract:     common.HexToAddress(raw.Address),
		Bridges:      bridges,
		Chains:       raw.Chains,
		Domains:      domains,
		SwapDeadline: time.Duration(raw.SwapDeadline) * time.Second,
	}, nil
}
