// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/bridge-connector/config"
	"github.com/ChainSafe/bridge-connector/config/connector"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

const chainJSON = `{
   "id":1,
   "name":"mainnet",
   "type":"evm",
   "endpoint":"ws://evm1-1:8546",
   "wrappedNative":"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
   "maxGasPrice":20000000000
}`

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	path := filepath.Join(s.T().TempDir(), "config.json")
	content := fmt.Sprintf(`{"connector": {"LogLevel": "warn", "ApiPort": 8081}, "chain": %s}`, chainJSON)
	s.Nil(os.WriteFile(path, []byte(content), 0600))

	cnf, err := config.GetConfigFromFile(path, &config.Config{})

	s.Nil(err)
	s.Equal(zerolog.WarnLevel, cnf.ConnectorConfig.LogLevel)
	s.Equal(uint16(8081), cnf.ConnectorConfig.ApiPort)
	s.Equal(uint16(9001), cnf.ConnectorConfig.HealthPort)
	s.Equal("evm", cnf.ChainConfig["type"])
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("BCN_CHAIN", chainJSON)
	_ = os.Setenv("BCN_CONNECTOR_ENV", "TEST")
	_ = os.Setenv("BCN_CONNECTOR_STOREPATH", "/cfg/lvldb")

	// load from Env
	cnf, err := config.GetConfigFromENV(&config.Config{ChainConfig: map[string]interface{}{
		"id":       5,
		"gasLimit": 500,
	}})

	s.Nil(err)
	s.Equal(config.Config{
		ConnectorConfig: connector.ConnectorConfig{
			LogLevel:   zerolog.InfoLevel,
			LogFile:    "out.log",
			Env:        "TEST",
			StorePath:  "/cfg/lvldb",
			HealthPort: 9001,
			ApiPort:    8080,
		},
		ChainConfig: map[string]interface{}{
			"id":            float64(1),
			"name":          "mainnet",
			"type":          "evm",
			"endpoint":      "ws://evm1-1:8546",
			"wrappedNative": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
			"maxGasPrice":   2e+10,
			"gasLimit":      500,
		},
	}, *cnf)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV_MissingChainType() {
	_ = os.Setenv("BCN_CHAIN", `{"id": 1, "name": "mainnet"}`)

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV_InvalidLogLevel() {
	_ = os.Setenv("BCN_CHAIN", chainJSON)
	_ = os.Setenv("BCN_CONNECTOR_LOGLEVEL", "loud")

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetChainConfigFromNetwork() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"chain": %s}`, chainJSON)
	}))
	defer server.Close()

	cnf, err := config.GetChainConfigFromNetwork(server.URL, &config.Config{})

	s.Nil(err)
	s.Equal("mainnet", cnf.ChainConfig["name"])
}

func (s *GetConfigTestSuite) Test_GetChainConfigFromNetwork_ErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := config.GetChainConfigFromNetwork(server.URL, &config.Config{})

	s.NotNil(err)
}
