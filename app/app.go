// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ChainSafe/bridge-connector/api"
	"github.com/ChainSafe/bridge-connector/chains/evm"
	"github.com/ChainSafe/bridge-connector/chains/evm/calls/evmclient"
	"github.com/ChainSafe/bridge-connector/config"
	"github.com/ChainSafe/bridge-connector/flags"
	"github.com/ChainSafe/bridge-connector/health"
	"github.com/ChainSafe/bridge-connector/logger"
	"github.com/ChainSafe/bridge-connector/lvldb"
	"github.com/ChainSafe/bridge-connector/metrics"
	"github.com/ChainSafe/bridge-connector/store"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	otelMetric "go.opentelemetry.io/otel/metric"
)

// LoadConfig loads configuration from the source selected by the config flags
func LoadConfig() (*config.Config, error) {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetChainConfigFromNetwork(configURL, configuration)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(configuration)
	}
	return config.GetConfigFromFile(configFlag, configuration)
}

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	logger.ConfigureLogger(configuration.ConnectorConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	if configuration.ChainConfig["type"] != "evm" {
		return fmt.Errorf("type '%s' not recognized", configuration.ChainConfig["type"])
	}
	chainConfig, err := evm.NewEVMConfig(configuration.ChainConfig)
	panicOnError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := evmclient.NewEVMClient(chainConfig.Endpoint, chainConfig.Key)
	panicOnError(err)
	defer client.Close()

	meter, shutdown, err := newMeter(ctx, configuration.ConnectorConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer shutdown()

	connectorMetrics, err := metrics.NewConnectorMetrics(meter, configuration.ConnectorConfig.Env, client.From().Hex())
	panicOnError(err)

	bridgeConnector, err := NewConnector(ctx, chainConfig, client, connectorMetrics)
	panicOnError(err)

	// this is temporary solution related to specifics of aws deployment
	// effectively it waits until old instance is killed
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(configuration.ConnectorConfig.StorePath)
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to operation store file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to operation store file")
			break
		}
	}
	defer db.Close()
	operationStore := store.NewOperationStore(db)

	go health.StartHealthEndpoint(configuration.ConnectorConfig.HealthPort)

	errChn := make(chan error, 1)
	handler := api.NewHandler(bridgeConnector, operationStore)
	go func() {
		errChn <- api.Serve(ctx, configuration.ConnectorConfig.ApiPort, handler.Router())
	}()

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started bridge connector for chain %d with custody %s", chainConfig.Id, client.From().Hex())

	select {
	case err := <-errChn:
		log.Error().Err(err).Msg("failed to listen and serve")
		return err
	case sig := <-sysErr:
		log.Info().Msgf("terminating got [%v] signal", sig)
		return nil
	}
}

// Bridge dispatches a single request with the connector of the configured chain
func Bridge(req *types.BridgeRequest) (*common.Hash, error) {
	configuration, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger.ConfigureLogger(configuration.ConnectorConfig.LogLevel, os.Stdout)

	chainConfig, err := evm.NewEVMConfig(configuration.ChainConfig)
	if err != nil {
		return nil, err
	}

	client, err := evmclient.NewEVMClient(chainConfig.Endpoint, chainConfig.Key)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx := context.Background()
	meter, shutdown, err := newMeter(ctx, configuration.ConnectorConfig.OpenTelemetryCollectorURL)
	if err != nil {
		return nil, err
	}
	defer shutdown()

	connectorMetrics, err := metrics.NewConnectorMetrics(meter, configuration.ConnectorConfig.Env, client.From().Hex())
	if err != nil {
		return nil, err
	}

	bridgeConnector, err := NewConnector(ctx, chainConfig, client, connectorMetrics)
	if err != nil {
		return nil, err
	}
	return bridgeConnector.Bridge(req)
}

// newMeter returns the meter of the OTLP exporter at collectorURL or
// the global noop meter when no collector is configured
func newMeter(ctx context.Context, collectorURL string) (otelMetric.Meter, func(), error) {
	if collectorURL == "" {
		return otel.GetMeterProvider().Meter("bridge-connector"), func() {}, nil
	}

	provider, err := metrics.InitMetricProvider(ctx, collectorURL)
	if err != nil {
		return nil, nil, err
	}
	shutdown := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed shutting down meter provider")
		}
	}
	return provider.Meter("bridge-connector"), shutdown, nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
