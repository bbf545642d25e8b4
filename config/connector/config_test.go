// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connector_test

import (
	"testing"

	"github.com/ChainSafe/bridge-connector/config/connector"
	"github.com/creasty/defaults"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type NewConnectorConfigTestSuite struct {
	suite.Suite
}

func TestRunNewConnectorConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewConnectorConfigTestSuite))
}

func (s *NewConnectorConfigTestSuite) defaultRaw() connector.RawConnectorConfig {
	raw := connector.RawConnectorConfig{}
	s.Nil(defaults.Set(&raw))
	return raw
}

func (s *NewConnectorConfigTestSuite) Test_Defaults() {
	config, err := connector.NewConnectorConfig(s.defaultRaw())

	s.Nil(err)
	s.Equal(connector.ConnectorConfig{
		LogLevel:   zerolog.InfoLevel,
		LogFile:    "out.log",
		StorePath:  "./lvldbdata",
		HealthPort: 9001,
		ApiPort:    8080,
	}, config)
}

func (s *NewConnectorConfigTestSuite) Test_InvalidLogLevel() {
	raw := s.defaultRaw()
	raw.LogLevel = "loud"

	_, err := connector.NewConnectorConfig(raw)

	s.NotNil(err)
	s.Equal("unknown log level: loud", err.Error())
}

func (s *NewConnectorConfigTestSuite) Test_InvalidPort() {
	raw := s.defaultRaw()
	raw.ApiPort = "70000"

	_, err := connector.NewConnectorConfig(raw)

	s.NotNil(err)
}

func (s *NewConnectorConfigTestSuite) Test_MissingStorePath() {
	raw := s.defaultRaw()
	raw.StorePath = ""

	_, err := connector.NewConnectorConfig(raw)

	s.NotNil(err)
}
