// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !faultinject

package faults_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/faults"
	"github.com/absmach/errcheck/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestArmRejectedInDisabledBuild(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	_, err := svc.Arm(context.Background(), "flash")
	assert.True(t, errors.Contains(err, faults.ErrArmFailed), fmt.Sprintf("expected arm failure, got %v", err))
	assert.True(t, errors.Contains(err, errcheck.ErrInjectionDisabled), fmt.Sprintf("expected disabled-build error, got %v", err))
}

func TestStatusReportsDisabledBuild(t *testing.T) {
	state := errcheck.New()
	svc := faults.New(state, instance)

	status, err := svc.Status(context.Background())
	assert.NoError(t, err)
	assert.False(t, status.InjectionBuild)
}
