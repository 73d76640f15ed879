// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/absmach/errcheck/bringup"
)

var _ bringup.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     bringup.Service
}

// MetricsMiddleware instruments the bring-up service by tracking
// request count and latency.
func MetricsMiddleware(svc bringup.Service, counter metrics.Counter, latency metrics.Histogram) bringup.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) PowerOn(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "power_on").Add(1)
		ms.latency.With("method", "power_on").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.PowerOn(ctx)
}

func (ms *metricsMiddleware) BusInit(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "bus_init").Add(1)
		ms.latency.With("method", "bus_init").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.BusInit(ctx)
}

func (ms *metricsMiddleware) SelfTest(ctx context.Context, mode string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "self_test").Add(1)
		ms.latency.With("method", "self_test").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.SelfTest(ctx, mode)
}

func (ms *metricsMiddleware) Run(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "run").Add(1)
		ms.latency.With("method", "run").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Run(ctx)
}
