// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !faultinject

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/faults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmEndpointDisabledBuild(t *testing.T) {
	state := errcheck.New()
	ts := newFaultsServer(state)
	defer ts.Close()

	res, err := testRequest{
		client:      ts.Client(),
		method:      http.MethodPost,
		url:         fmt.Sprintf("%s/faults/arm", ts.URL),
		contentType: contentType,
		body:        strings.NewReader(toJSON(map[string]string{"code": "modem"})),
	}.make()
	require.Nil(t, err, fmt.Sprintf("unexpected request error %s", err))
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestStatusEndpointDisabledBuild(t *testing.T) {
	state := errcheck.New()
	ts := newFaultsServer(state)
	defer ts.Close()

	res, err := testRequest{
		client: ts.Client(),
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/faults", ts.URL),
	}.make()
	require.Nil(t, err, fmt.Sprintf("unexpected request error %s", err))
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var status faults.Status
	err = json.NewDecoder(res.Body).Decode(&status)
	require.Nil(t, err, fmt.Sprintf("unexpected decode error %s", err))
	assert.False(t, status.InjectionBuild)
}
