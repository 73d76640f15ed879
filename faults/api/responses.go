// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/faults"
)

var (
	_ errcheck.Response = (*statusRes)(nil)
	_ errcheck.Response = (*codesRes)(nil)
)

type statusRes struct {
	faults.Status
}

func (res statusRes) Code() int {
	return http.StatusOK
}

func (res statusRes) Headers() map[string]string {
	return map[string]string{}
}

func (res statusRes) Empty() bool {
	return false
}

type codesRes struct {
	Codes []faults.CodeInfo `json:"codes"`
}

func (res codesRes) Code() int {
	return http.StatusOK
}

func (res codesRes) Headers() map[string]string {
	return map[string]string{}
}

func (res codesRes) Empty() bool {
	return false
}
