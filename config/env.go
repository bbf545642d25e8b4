// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"bcn"`
}

const EnvPrefix = "BCN"

var chainEnv = fmt.Sprintf("%s_CHAIN", EnvPrefix)

func loadFromEnv() (RawConfig, error) {
	// load connector config
	jsonConnectorConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonConnectorConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load chain config
	rawChainConfig := os.Getenv(chainEnv)
	if rawChainConfig != "" {
		var cc map[string]interface{}
		err = json.Unmarshal([]byte(rawChainConfig), &cc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.ChainConfig = cc
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, EnvPrefix+"_") || strings.HasPrefix(e, chainEnv+"=") {
			continue
		}
		pair := strings.SplitN(e, "=", 2)
		indexes := strings.Split(pair[0], "_")
		mountMap(structure, indexes, pair[1])
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
