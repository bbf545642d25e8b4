// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"

	"github.com/ChainSafe/bridge-connector/config/connector"
	"github.com/spf13/viper"
)

type Config struct {
	ConnectorConfig connector.ConnectorConfig
	ChainConfig     map[string]interface{}
}

type RawConfig struct {
	ConnectorConfig connector.RawConnectorConfig `mapstructure:"connector" json:"connector"`
	ChainConfig     map[string]interface{}       `mapstructure:"chain" json:"chain"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of ConnectorConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with BCN.
//
// For example, if you want to set Config.ConnectorConfig.ApiPort this would
// translate to Env variable named BCN_CONNECTOR_APIPORT. The chain configuration
// is passed as JSON in BCN_CHAIN.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetChainConfigFromNetwork fetches the chain configuration from URL and
// replaces the chain configuration of config with it.
func GetChainConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return config, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return config, fmt.Errorf("unexpected status %d fetching chain config", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return config, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return config, err
	}

	if rawConfig.ChainConfig["type"] == "" || rawConfig.ChainConfig["type"] == nil {
		return config, fmt.Errorf("chain 'type' must be provided")
	}

	config.ChainConfig = rawConfig.ChainConfig
	return config, nil
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	connectorConfig, err := connector.NewConnectorConfig(rawConfig.ConnectorConfig)
	if err != nil {
		return config, err
	}

	chain := rawConfig.ChainConfig
	if chain == nil {
		chain = map[string]interface{}{}
	}
	if config.ChainConfig != nil {
		err := mergo.Merge(&chain, config.ChainConfig)
		if err != nil {
			return config, err
		}
	}

	if chain["type"] == "" || chain["type"] == nil {
		return config, fmt.Errorf("chain 'type' must be provided")
	}

	config.ChainConfig = chain
	config.ConnectorConfig = connectorConfig
	return config, nil
}
