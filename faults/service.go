// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package faults exposes the fault-injection control plane of a
// diagnostic state. It reports the current slots, arms and disarms
// one-shot faults and lists the registered diagnostic codes.
package faults

import (
	"context"
	"time"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/codes"
	"github.com/absmach/errcheck/pkg/errors"
)

var (
	// ErrUnknownCode indicates the requested diagnostic code is not registered.
	ErrUnknownCode = errors.New("diagnostic code not registered")

	// ErrReservedCode indicates an attempt to arm a reserved diagnostic code.
	ErrReservedCode = errors.New("cannot arm a reserved diagnostic code")

	// ErrArmFailed indicates a failure to arm fault injection.
	ErrArmFailed = errors.New("failed to arm fault injection")
)

// CodeInfo describes a single diagnostic code.
type CodeInfo struct {
	Code uint8  `json:"code"`
	Name string `json:"name"`
}

// Status is a snapshot of the diagnostic state of an instance.
type Status struct {
	Instance       string   `json:"instance"`
	InjectionBuild bool     `json:"injection_build"`
	Armed          CodeInfo `json:"armed"`
	LastError      CodeInfo `json:"last_error"`
	Group          CodeInfo `json:"group"`
	Uptime         string   `json:"uptime"`
}

// Service manages fault injection for a single diagnostic state.
type Service interface {
	// Status returns a snapshot of the diagnostic state.
	Status(ctx context.Context) (Status, error)

	// Arm schedules a one-shot fault for the given code. The code is
	// either a registered name or a numeric literal.
	Arm(ctx context.Context, code string) (Status, error)

	// Disarm discards any scheduled fault.
	Disarm(ctx context.Context) (Status, error)

	// Codes lists the registered diagnostic codes.
	Codes(ctx context.Context) ([]CodeInfo, error)

	// Reset returns all diagnostic slots to neutral.
	Reset(ctx context.Context) (Status, error)
}

type service struct {
	state     *errcheck.State
	instance  string
	startedAt time.Time
}

// New returns a fault-injection service over the given diagnostic state.
func New(state *errcheck.State, instance string) Service {
	return service{
		state:     state,
		instance:  instance,
		startedAt: time.Now(),
	}
}

func (svc service) Status(ctx context.Context) (Status, error) {
	return svc.status(), nil
}

func (svc service) Arm(ctx context.Context, code string) (Status, error) {
	c, err := codes.Parse(code)
	if err != nil {
		return Status{}, errors.Wrap(ErrArmFailed, ErrUnknownCode)
	}
	if c.IsReserved() {
		return Status{}, errors.Wrap(ErrArmFailed, ErrReservedCode)
	}
	if codes.Name(c) == "" {
		return Status{}, errors.Wrap(ErrArmFailed, ErrUnknownCode)
	}
	if err := svc.state.Arm(c); err != nil {
		return Status{}, errors.Wrap(ErrArmFailed, err)
	}

	return svc.status(), nil
}

func (svc service) Disarm(ctx context.Context) (Status, error) {
	svc.state.Disarm()
	return svc.status(), nil
}

func (svc service) Codes(ctx context.Context) ([]CodeInfo, error) {
	registered := codes.Registered()
	infos := make([]CodeInfo, 0, len(registered))
	for _, c := range registered {
		infos = append(infos, codeInfo(c))
	}

	return infos, nil
}

func (svc service) Reset(ctx context.Context) (Status, error) {
	svc.state.Reset()
	return svc.status(), nil
}

func (svc service) status() Status {
	return Status{
		Instance:       svc.instance,
		InjectionBuild: errcheck.InjectionEnabled(),
		Armed:          codeInfo(svc.state.Armed()),
		LastError:      codeInfo(svc.state.LastError()),
		Group:          codeInfo(svc.state.Group()),
		Uptime:         time.Since(svc.startedAt).Round(time.Second).String(),
	}
}

func codeInfo(c codes.Code) CodeInfo {
	return CodeInfo{
		Code: uint8(c),
		Name: c.String(),
	}
}
