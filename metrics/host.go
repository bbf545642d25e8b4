// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	api "go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTimeGauge api.Int64ObservableGauge
}

// NewHostMetrics initializes metrics related to the connector host
func NewHostMetrics(meter api.Meter, opts api.MeasurementOption) (*HostMetrics, error) {
	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"connector.StartTimeSeconds",
		api.WithDescription("Start time of the connector"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &HostMetrics{
		startTimeGauge: startTimeGauge,
	}, nil
}
