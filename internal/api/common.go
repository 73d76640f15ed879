// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api contains response encoding shared by API transports.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/absmach/errcheck"
)

// ContentType represents JSON content type.
const ContentType = "application/json"

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(errcheck.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}
