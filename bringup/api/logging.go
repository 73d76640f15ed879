// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/absmach/errcheck/bringup"
	"github.com/absmach/errcheck/logger"
)

var _ bringup.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger logger.Logger
	svc    bringup.Service
}

// LoggingMiddleware adds logging facilities to the bring-up service.
func LoggingMiddleware(svc bringup.Service, logger logger.Logger) bringup.Service {
	return &loggingMiddleware{logger, svc}
}

// PowerOn logs the power_on phase and the time it took to complete.
// If the phase fails, it logs the error.
func (lm *loggingMiddleware) PowerOn(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method power_on took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.PowerOn(ctx)
}

// BusInit logs the bus_init phase and the time it took to complete.
// If the phase fails, it logs the error.
func (lm *loggingMiddleware) BusInit(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method bus_init took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.BusInit(ctx)
}

// SelfTest logs the self_test phase with its mode and the time it took
// to complete. If the phase fails, it logs the error.
func (lm *loggingMiddleware) SelfTest(ctx context.Context, mode string) (err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method self_test in mode %s took %s to complete", mode, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.SelfTest(ctx, mode)
}

// Run logs the full bring-up sequence and the time it took to complete.
// If any phase fails, it logs the error.
func (lm *loggingMiddleware) Run(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method run took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Run(ctx)
}
