// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package connector

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type ConnectorConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	StorePath                 string
	HealthPort                uint16
	ApiPort                   uint16
}

type RawConnectorConfig struct {
	OpenTelemetryCollectorURL string `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string `mapstructure:"Env" json:"env"`
	StorePath                 string `mapstructure:"StorePath" json:"storePath" default:"./lvldbdata"`
	HealthPort                string `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	ApiPort                   string `mapstructure:"ApiPort" json:"apiPort" default:"8080"`
}

func (c *RawConnectorConfig) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("connector.StorePath must be provided")
	}
	return nil
}

// NewConnectorConfig parses RawConnectorConfig into ConnectorConfig
func NewConnectorConfig(rawConfig RawConnectorConfig) (ConnectorConfig, error) {
	config := ConnectorConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	apiPort, err := strconv.ParseUint(rawConfig.ApiPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse api port: %w", err)
	}

	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env
	config.StorePath = rawConfig.StorePath
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.HealthPort = uint16(healthPort)
	config.ApiPort = uint16(apiPort)
	return config, nil
}
