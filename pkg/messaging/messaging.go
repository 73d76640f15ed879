// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package messaging contains the fault report payload and the publisher
// contract implemented by broker adapters.
package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/absmach/errcheck/codes"
)

// Publisher errors shared by broker adapters.
var (
	// ErrConnect indicates that connection to the broker failed.
	ErrConnect = errors.New("failed to connect to the broker")

	// ErrEmptyTopic indicates an empty topic.
	ErrEmptyTopic = errors.New("empty topic")
)

// Report carries one recorded failure from a device chain.
type Report struct {
	Instance       string `json:"instance"`
	Service        string `json:"service"`
	Code           uint8  `json:"code"`
	Name           string `json:"name"`
	Group          uint8  `json:"group,omitempty"`
	InjectionBuild bool   `json:"injection_build"`
	CreatedAt      int64  `json:"created_at"`
}

// NewReport builds a report from the recorded code and group, naming
// the code from the registry.
func NewReport(instance, service string, code, group codes.Code, injectionBuild bool) Report {
	return Report{
		Instance:       instance,
		Service:        service,
		Code:           uint8(code),
		Name:           code.String(),
		Group:          uint8(group),
		InjectionBuild: injectionBuild,
		CreatedAt:      time.Now().Unix(),
	}
}

// Publisher specifies message publishing API.
type Publisher interface {
	// Publish publishes the report to the given topic.
	Publish(ctx context.Context, topic string, rep Report) error

	// Close gracefully closes the publisher's connection.
	Close() error
}
