// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package faults_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/codes"
	"github.com/absmach/errcheck/faults"
	"github.com/absmach/errcheck/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const instance = "errcheck-test"

var (
	codeFlash  = codes.MustRegister(0x31, "flash")
	codeEeprom = codes.MustRegister(0x32, "eeprom")
)

func TestStatus(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	status, err := svc.Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, instance, status.Instance)
	assert.Equal(t, errcheck.InjectionEnabled(), status.InjectionBuild)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.Armed)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.LastError)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.Group)
}

func TestStatusReflectsLastError(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	err := state.Do(func() {
		state.Check(false, codeFlash)
	})
	assert.Equal(t, errcheck.ErrFailed, err)

	status, err := svc.Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x31, Name: "flash"}, status.LastError)
}

func TestArmValidation(t *testing.T) {
	cases := []struct {
		desc string
		code string
		err  error
	}{
		{
			desc: "unknown name",
			code: "warp-drive",
			err:  faults.ErrUnknownCode,
		},
		{
			desc: "unregistered numeric code",
			code: "0x6E",
			err:  faults.ErrUnknownCode,
		},
		{
			desc: "empty code",
			code: "",
			err:  faults.ErrUnknownCode,
		},
		{
			desc: "reserved success code",
			code: "0x00",
			err:  faults.ErrReservedCode,
		},
		{
			desc: "reserved unspecified code",
			code: "0xFF",
			err:  faults.ErrReservedCode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			state := errcheck.New()
			svc := faults.New(state, instance)

			_, err := svc.Arm(context.Background(), tc.code)
			assert.True(t, errors.Contains(err, faults.ErrArmFailed), fmt.Sprintf("%s: expected arm failure, got %v", tc.desc, err))
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %v, got %v", tc.desc, tc.err, err))
		})
	}
}

func TestCodes(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	infos, err := svc.Codes(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []faults.CodeInfo{
		{Code: 0x31, Name: "flash"},
		{Code: 0x32, Name: "eeprom"},
	}, infos)
}

func TestReset(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	err := state.Do(func() {
		state.Check(false, codeEeprom)
	})
	assert.Equal(t, errcheck.ErrFailed, err)

	status, err := svc.Reset(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.LastError)
	assert.Equal(t, codes.None, state.LastError())
}

func TestDisarmIdle(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	status, err := svc.Disarm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, faults.CodeInfo{Code: 0x00, Name: "none"}, status.Armed)
}
