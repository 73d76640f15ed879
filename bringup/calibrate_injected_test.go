// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build injectsensor

package bringup_test

import (
	"context"
	"testing"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/bringup"
	"github.com/absmach/errcheck/bringup/drivers"
	"github.com/stretchr/testify/assert"
)

func TestPowerOnInjectsSensorFailure(t *testing.T) {
	bench := drivers.NewBench()
	state := errcheck.New()
	svc := bringup.New(bench, state)

	err := svc.PowerOn(context.Background())
	assert.Equal(t, errcheck.ErrFailed, err)
	assert.Equal(t, bringup.CodeSensor, state.LastError())
	assert.Zero(t, bench.SensorCalibrate.Calls(), "injected builds must never invoke the calibration probe")
	assert.Zero(t, bench.RadioStart.Calls(), "radio must not start after the injected failure")
}

func TestSelfTestInjectsSensorFailure(t *testing.T) {
	bench := drivers.NewBench()
	state := errcheck.New()
	svc := bringup.New(bench, state)

	err := svc.SelfTest(context.Background(), bringup.ModeFast)
	assert.Equal(t, errcheck.ErrFailed, err)
	assert.Equal(t, bringup.CodeSensor, state.LastError())
	assert.Zero(t, bench.SensorCalibrate.Calls())
}
