// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/absmach/errcheck/faults"
)

var _ faults.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     faults.Service
}

// MetricsMiddleware instruments the fault-injection service by tracking
// request count and latency.
func MetricsMiddleware(svc faults.Service, counter metrics.Counter, latency metrics.Histogram) faults.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) Status(ctx context.Context) (faults.Status, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "status").Add(1)
		ms.latency.With("method", "status").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Status(ctx)
}

func (ms *metricsMiddleware) Arm(ctx context.Context, code string) (faults.Status, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "arm").Add(1)
		ms.latency.With("method", "arm").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Arm(ctx, code)
}

func (ms *metricsMiddleware) Disarm(ctx context.Context) (faults.Status, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "disarm").Add(1)
		ms.latency.With("method", "disarm").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Disarm(ctx)
}

func (ms *metricsMiddleware) Codes(ctx context.Context) ([]faults.CodeInfo, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_codes").Add(1)
		ms.latency.With("method", "list_codes").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Codes(ctx)
}

func (ms *metricsMiddleware) Reset(ctx context.Context) (faults.Status, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "reset").Add(1)
		ms.latency.With("method", "reset").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Reset(ctx)
}
