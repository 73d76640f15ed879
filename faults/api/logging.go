// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/absmach/errcheck/faults"
	"github.com/absmach/errcheck/logger"
)

var _ faults.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger logger.Logger
	svc    faults.Service
}

// LoggingMiddleware adds logging facilities to the fault-injection service.
func LoggingMiddleware(svc faults.Service, logger logger.Logger) faults.Service {
	return &loggingMiddleware{logger, svc}
}

// Status logs the status request and the time it took to complete.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Status(ctx context.Context) (status faults.Status, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method status took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Status(ctx)
}

// Arm logs the arm request with its code and the time it took to
// complete. If the request fails, it logs the error.
func (lm *loggingMiddleware) Arm(ctx context.Context, code string) (status faults.Status, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method arm for code %s took %s to complete", code, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Arm(ctx, code)
}

// Disarm logs the disarm request and the time it took to complete.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Disarm(ctx context.Context) (status faults.Status, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method disarm took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Disarm(ctx)
}

// Codes logs the list_codes request and the time it took to complete.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Codes(ctx context.Context) (infos []faults.CodeInfo, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method list_codes took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Codes(ctx)
}

// Reset logs the reset request and the time it took to complete.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Reset(ctx context.Context) (status faults.Status, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method reset took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())
	return lm.svc.Reset(ctx)
}
