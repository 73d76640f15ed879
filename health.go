// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errcheck

import (
	"encoding/json"
	"net/http"
)

const (
	contentType = "application/health+json"
	svcStatus   = "pass"
	description = " service"
)

// Version of the toolkit.
var Version = "0.1.0"

// BuildTime of the binary, set at link time.
var BuildTime = "1970-01-01_00:00:00"

// HealthInfo contains service health check details.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains current service version.
	Version string `json:"version"`

	// Description contains service description.
	Description string `json:"description"`

	// BuildTime contains service build time.
	BuildTime string `json:"build_time"`

	// InstanceID contains the ID of the running service instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Description: service + description,
			BuildTime:   BuildTime,
			InstanceID:  instanceID,
		}

		rw.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
		}
	}
}
