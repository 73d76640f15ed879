// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build faultinject

package faults_test

import (
	"context"
	"testing"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/faults"
	"github.com/stretchr/testify/assert"
)

func TestArmSchedulesOneShotFault(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	status, err := svc.Arm(context.Background(), "flash")
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x31, Name: "flash"}, status.Armed)
	assert.True(t, status.InjectionBuild)

	err = state.Do(func() {
		state.Check(true, codeEeprom)
		state.Check(true, codeFlash)
	})
	assert.Equal(t, errcheck.ErrFailed, err)
	assert.Equal(t, codeFlash, state.LastError())

	err = state.Do(func() {
		state.Check(true, codeFlash)
	})
	assert.NoError(t, err, "the scheduled fault must fire only once")
}

func TestArmAcceptsNumericCode(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	status, err := svc.Arm(context.Background(), "0x32")
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x32, Name: "eeprom"}, status.Armed)
}

func TestDisarmClearsScheduledFault(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	_, err := svc.Arm(context.Background(), "flash")
	assert.NoError(t, err)

	status, err := svc.Disarm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.Armed)

	err = state.Do(func() {
		state.Check(true, codeFlash)
	})
	assert.NoError(t, err)
}
