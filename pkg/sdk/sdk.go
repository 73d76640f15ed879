// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the fault-injection HTTP API.
package sdk

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"

	"github.com/absmach/errcheck/pkg/errors"
)

// ContentType represents all possible content types.
type ContentType string

// CTJSON represents JSON content type.
const CTJSON ContentType = "application/json"

const (
	faultsEndpoint = "faults"
	healthEndpoint = "health"
)

// Status is a snapshot of the diagnostic state of an instance.
type Status struct {
	Instance       string   `json:"instance"`
	InjectionBuild bool     `json:"injection_build"`
	Armed          CodeInfo `json:"armed"`
	LastError      CodeInfo `json:"last_error"`
	Group          CodeInfo `json:"group"`
	Uptime         string   `json:"uptime"`
}

// CodeInfo describes a single diagnostic code.
type CodeInfo struct {
	Code uint8  `json:"code"`
	Name string `json:"name"`
}

// HealthInfo contains service health check details.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
	BuildTime   string `json:"build_time"`
	InstanceID  string `json:"instance_id"`
}

// SDK contains fault-injection API commands.
type SDK interface {
	// Status returns the diagnostic status of the instance.
	Status(ctx context.Context) (Status, errors.SDKError)

	// Arm schedules a one-shot fault for the given code. The code is
	// either a registered name or a numeric literal.
	Arm(ctx context.Context, code string) (Status, errors.SDKError)

	// Disarm discards any scheduled fault.
	Disarm(ctx context.Context) (Status, errors.SDKError)

	// Codes lists the registered diagnostic codes.
	Codes(ctx context.Context) ([]CodeInfo, errors.SDKError)

	// Reset returns all diagnostic slots to neutral.
	Reset(ctx context.Context) (Status, errors.SDKError)

	// Health returns the service health check.
	Health(ctx context.Context) (HealthInfo, errors.SDKError)
}

type ecSDK struct {
	faultsURL      string
	msgContentType ContentType
	client         *http.Client
}

// Config contains the SDK configuration.
type Config struct {
	FaultsURL string

	MsgContentType  ContentType
	TLSVerification bool
}

// NewSDK returns a new fault-injection SDK instance.
func NewSDK(conf Config) SDK {
	if conf.MsgContentType == "" {
		conf.MsgContentType = CTJSON
	}

	return &ecSDK{
		faultsURL:      conf.FaultsURL,
		msgContentType: conf.MsgContentType,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

// processRequest sends a request to the service, checks the response
// status code against the expected ones and returns the response
// headers and body.
func (sdk ecSDK) processRequest(ctx context.Context, method, reqURL string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(sdk.msgContentType))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}
