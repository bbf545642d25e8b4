// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rs/zerolog/log"
)

const wordSize = 32

// Leg is the direction of a bridge operation relative to the protocol's hub chain
type Leg uint8

const (
	AnyLeg Leg = iota
	L1ToL2
	L2ToL1
	L2ToL2
)

func (l Leg) String() string {
	switch l {
	case L1ToL2:
		return "L1_L2"
	case L2ToL1:
		return "L2_L1"
	case L2ToL2:
		return "L2_L2"
	default:
		return "ANY"
	}
}

// Key selects the payload layout expected for a request
type Key struct {
	Protocol  types.Protocol
	AssetKind types.AssetKind
	Leg       Leg
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Protocol, k.AssetKind, k.Leg)
}

// Params is a decoded payload variant
type Params interface {
	Key() Key
}

type BuildFn func(values []interface{}) (Params, error)
type FlattenFn func(params Params) ([]interface{}, error)

// Schema describes one payload variant as an ABI tuple of static types
type Schema struct {
	Key  Key
	Code string

	arguments abi.Arguments
	build     BuildFn
	flatten   FlattenFn
}

func NewSchema(key Key, code string, typeNames []string, build BuildFn, flatten FlattenFn) (*Schema, error) {
	arguments := make(abi.Arguments, len(typeNames))
	for i, name := range typeNames {
		t, err := abi.NewType(name, "", nil)
		if err != nil {
			return nil, fmt.Errorf("invalid schema type %s: %w", name, err)
		}
		if !isStatic(t) {
			return nil, fmt.Errorf("schema type %s is not a fixed width elementary type", name)
		}
		arguments[i] = abi.Argument{Type: t}
	}

	return &Schema{
		Key:       key,
		Code:      code,
		arguments: arguments,
		build:     build,
		flatten:   flatten,
	}, nil
}

// MustNewSchema is NewSchema that panics on an invalid type list
func MustNewSchema(key Key, code string, typeNames []string, build BuildFn, flatten FlattenFn) *Schema {
	s, err := NewSchema(key, code, typeNames, build, flatten)
	if err != nil {
		panic(err)
	}
	return s
}

// Size is the exact payload length in bytes
func (s *Schema) Size() int {
	return wordSize * len(s.arguments)
}

func isStatic(t abi.Type) bool {
	switch t.T {
	case abi.AddressTy, abi.UintTy, abi.IntTy, abi.BoolTy, abi.FixedBytesTy:
		return true
	default:
		return false
	}
}

// Codec holds every registered payload schema
type Codec struct {
	schemas map[Key]*Schema
	lock    sync.RWMutex
}

func NewCodec() *Codec {
	return &Codec{
		schemas: make(map[Key]*Schema),
	}
}

func (c *Codec) Register(schema *Schema) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.schemas[schema.Key]; ok {
		return fmt.Errorf("schema for %s already registered", schema.Key)
	}
	c.schemas[schema.Key] = schema
	return nil
}

func (c *Codec) schema(key Key) (*Schema, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	s, ok := c.schemas[key]
	return s, ok
}

// Decode parses payload into the variant registered for key. The payload
// must be exactly as long as the schema tuple and canonically encoded.
func (c *Codec) Decode(key Key, payload []byte) (Params, error) {
	schema, ok := c.schema(key)
	if !ok {
		return nil, types.InvalidPayload(fmt.Sprintf("%s_UNKNOWN_PAYLOAD", key.Protocol))
	}

	if len(payload) != schema.Size() {
		log.Debug().
			Str("key", key.String()).
			Msgf("Payload length %d does not match expected %d", len(payload), schema.Size())
		return nil, types.InvalidPayload(schema.Code)
	}

	values, err := schema.arguments.UnpackValues(payload)
	if err != nil {
		log.Debug().Err(err).Str("key", key.String()).Msg("Failed unpacking payload")
		return nil, types.InvalidPayload(schema.Code)
	}
	// unpacking drops non zero padding of narrow types
	packed, err := schema.arguments.Pack(values...)
	if err != nil || !bytes.Equal(packed, payload) {
		log.Debug().Str("key", key.String()).Msg("Payload is not canonically encoded")
		return nil, types.InvalidPayload(schema.Code)
	}

	params, err := schema.build(values)
	if err != nil {
		log.Debug().Err(err).Str("key", key.String()).Msg("Failed building payload")
		return nil, types.InvalidPayload(schema.Code)
	}
	return params, nil
}

func (c *Codec) Encode(params Params) ([]byte, error) {
	schema, ok := c.schema(params.Key())
	if !ok {
		return nil, fmt.Errorf("no schema registered for %s", params.Key())
	}

	values, err := schema.flatten(params)
	if err != nil {
		return nil, err
	}
	return schema.arguments.Pack(values...)
}
