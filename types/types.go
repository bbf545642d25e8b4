// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	MainnetChainID  uint64 = 1
	GoerliChainID   uint64 = 5
	OptimismChainID uint64 = 10
	BSCChainID      uint64 = 56
	GnosisChainID   uint64 = 100
	PolygonChainID  uint64 = 137
	ArbitrumChainID uint64 = 42161
)

// Protocol identifies a bridge protocol family handled by the connector
type Protocol uint8

const (
	Hop Protocol = iota
	Connext
)

var protocolNames = map[Protocol]string{
	Hop:     "HOP",
	Connext: "CONNEXT",
}

func (p Protocol) String() string {
	name, ok := protocolNames[p]
	if !ok {
		return fmt.Sprintf("PROTOCOL_%d", uint8(p))
	}
	return name
}

func (p Protocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseProtocol parses protocol name (case insensitive) or its numeric identifier
func ParseProtocol(s string) (Protocol, error) {
	for p, name := range protocolNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}

	if id, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Protocol(id), nil
	}
	return 0, fmt.Errorf("unknown protocol %s", s)
}

type AssetKind uint8

const (
	TokenAsset AssetKind = iota
	NativeAsset
)

func (k AssetKind) String() string {
	if k == NativeAsset {
		return "native"
	}
	return "token"
}

func (k AssetKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// BridgeRequest is a single request to move AmountIn of Asset from the local chain
// to DestinationChainID. Data is the protocol specific payload.
type BridgeRequest struct {
	Protocol           Protocol
	DestinationChainID uint64
	Asset              common.Address
	AmountIn           *big.Int
	MinAmountOut       *big.Int
	Recipient          common.Address
	Data               []byte
}
