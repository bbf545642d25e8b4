// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"math/big"

	"github.com/ChainSafe/bridge-connector/types"
	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type ConnectorMetrics struct {
	*HostMetrics

	Opts api.MeasurementOption

	BridgeRequests  api.Int64Counter
	BridgeSuccesses api.Int64Counter
	BridgeFailures  api.Int64Counter
	BridgedAmount   api.Float64Counter
}

// NewConnectorMetrics creates an instance of metrics for the custody account
func NewConnectorMetrics(meter api.Meter, env string, custody string) (*ConnectorMetrics, error) {
	opts := api.WithAttributes(attribute.String("env", env), attribute.String("custody", custody))

	hostMetrics, err := NewHostMetrics(meter, opts)
	if err != nil {
		return nil, err
	}
	requests, err := meter.Int64Counter(
		"connector.BridgeRequests",
		api.WithDescription("Number of bridge requests received"),
	)
	if err != nil {
		return nil, err
	}
	successes, err := meter.Int64Counter(
		"connector.BridgeSuccesses",
		api.WithDescription("Number of bridge requests dispatched to an external bridge"),
	)
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter(
		"connector.BridgeFailures",
		api.WithDescription("Number of rejected or failed bridge requests"),
	)
	if err != nil {
		return nil, err
	}
	amount, err := meter.Float64Counter(
		"connector.BridgedAmount",
		api.WithDescription("Amount sent to external bridges in base units"),
	)
	if err != nil {
		return nil, err
	}

	return &ConnectorMetrics{
		HostMetrics:     hostMetrics,
		Opts:            opts,
		BridgeRequests:  requests,
		BridgeSuccesses: successes,
		BridgeFailures:  failures,
		BridgedAmount:   amount,
	}, nil
}

func (m *ConnectorMetrics) TrackBridgeRequest(protocol types.Protocol, destinationChainID uint64) {
	m.BridgeRequests.Add(context.Background(), 1, m.Opts, routeAttributes(protocol, destinationChainID))
}

func (m *ConnectorMetrics) TrackBridgeSuccess(protocol types.Protocol, destinationChainID uint64, amount *big.Int) {
	m.BridgeSuccesses.Add(context.Background(), 1, m.Opts, routeAttributes(protocol, destinationChainID))
	if amount != nil {
		f, _ := new(big.Float).SetInt(amount).Float64()
		m.BridgedAmount.Add(context.Background(), f, m.Opts, routeAttributes(protocol, destinationChainID))
	}
}

func (m *ConnectorMetrics) TrackBridgeFailure(protocol types.Protocol, destinationChainID uint64, code string) {
	if code == "" {
		code = "EXTERNAL"
	}
	m.BridgeFailures.Add(
		context.Background(),
		1,
		m.Opts,
		routeAttributes(protocol, destinationChainID),
		api.WithAttributes(attribute.String("code", code)),
	)
}

func routeAttributes(protocol types.Protocol, destinationChainID uint64) api.MeasurementOption {
	return api.WithAttributes(
		attribute.String("protocol", protocol.String()),
		attribute.Int64("destination", int64(destinationChainID)),
	)
}
