// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/absmach/errcheck/pkg/errors"
)

func (sdk ecSDK) Status(ctx context.Context) (Status, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.faultsURL, faultsEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Status{}, sdkerr
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return Status{}, errors.NewSDKError(err)
	}

	return status, nil
}

func (sdk ecSDK) Arm(ctx context.Context, code string) (Status, errors.SDKError) {
	data, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return Status{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/arm", sdk.faultsURL, faultsEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodPost, url, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Status{}, sdkerr
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return Status{}, errors.NewSDKError(err)
	}

	return status, nil
}

func (sdk ecSDK) Disarm(ctx context.Context) (Status, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/disarm", sdk.faultsURL, faultsEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodPost, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Status{}, sdkerr
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return Status{}, errors.NewSDKError(err)
	}

	return status, nil
}

func (sdk ecSDK) Codes(ctx context.Context) ([]CodeInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/codes", sdk.faultsURL, faultsEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res struct {
		Codes []CodeInfo `json:"codes"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.Codes, nil
}

func (sdk ecSDK) Reset(ctx context.Context) (Status, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/reset", sdk.faultsURL, faultsEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodPost, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Status{}, sdkerr
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return Status{}, errors.NewSDKError(err)
	}

	return status, nil
}

func (sdk ecSDK) Health(ctx context.Context) (HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.faultsURL, healthEndpoint)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var info HealthInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return info, nil
}
