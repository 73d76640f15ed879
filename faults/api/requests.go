// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/absmach/errcheck/internal/apiutil"

type armReq struct {
	Code string `json:"code"`
}

func (req armReq) validate() error {
	if req.Code == "" {
		return apiutil.ErrMissingCode
	}

	return nil
}
