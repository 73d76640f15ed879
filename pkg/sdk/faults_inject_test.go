// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build faultinject

package sdk_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/errcheck/codes"
	"github.com/absmach/errcheck/pkg/sdk"
	"github.com/stretchr/testify/assert"
)

func TestArmAndDisarm(t *testing.T) {
	ts, state := setupFaults()
	defer ts.Close()

	ecsdk := sdk.NewSDK(sdk.Config{FaultsURL: ts.URL})

	status, err := ecsdk.Arm(context.Background(), "camera")
	assert.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, sdk.CodeInfo{Code: 0x51, Name: "camera"}, status.Armed)
	assert.True(t, status.InjectionBuild)
	assert.Equal(t, codeCamera, state.Armed())

	status, err = ecsdk.Disarm(context.Background())
	assert.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, sdk.CodeInfo{Code: 0x00, Name: "none"}, status.Armed)
	assert.Equal(t, codes.None, state.Armed())
}
