// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ChainSafe/bridge-connector/metrics"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type ConnectorMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	metrics *metrics.ConnectorMetrics
}

func TestRunConnectorMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectorMetricsTestSuite))
}

func (s *ConnectorMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))

	m, err := metrics.NewConnectorMetrics(provider.Meter("connector"), "test", "0x00")
	s.Nil(err)
	s.metrics = m
}

func (s *ConnectorMetricsTestSuite) counter(name string) int64 {
	rm := metricdata.ResourceMetrics{}
	s.Nil(s.reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			s.True(ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func (s *ConnectorMetricsTestSuite) Test_TrackBridgeRequest() {
	s.metrics.TrackBridgeRequest(types.Hop, types.OptimismChainID)
	s.metrics.TrackBridgeRequest(types.Connext, types.PolygonChainID)

	s.Equal(int64(2), s.counter("connector.BridgeRequests"))
}

func (s *ConnectorMetricsTestSuite) Test_TrackOutcomes() {
	s.metrics.TrackBridgeSuccess(types.Hop, types.OptimismChainID, big.NewInt(300))
	s.metrics.TrackBridgeFailure(types.Hop, types.GoerliChainID, "HOP_BRIDGE_OP_NOT_SUPPORTED")
	s.metrics.TrackBridgeFailure(types.Hop, types.OptimismChainID, "")

	s.Equal(int64(1), s.counter("connector.BridgeSuccesses"))
	s.Equal(int64(2), s.counter("connector.BridgeFailures"))
}
