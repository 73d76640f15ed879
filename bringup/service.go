// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package bringup drives a simulated device through its power-on
// sequence. Every phase is a guarded function: driver outcomes are
// checked against the shared diagnostic state and the first failure
// aborts the rest of the phase.
package bringup

import (
	"context"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/bringup/drivers"
	"github.com/absmach/errcheck/codes"
)

// Diagnostic codes reported by the bring-up sequence.
var (
	CodePower  = codes.MustRegister(0x01, "power")
	CodeSensor = codes.MustRegister(0x02, "sensor")
	CodeRadio  = codes.MustRegister(0x03, "radio")
	CodeI2C    = codes.MustRegister(0x04, "i2c")
	CodeSPI    = codes.MustRegister(0x05, "spi")
	CodeUART   = codes.MustRegister(0x06, "uart")
	CodeConfig = codes.MustRegister(0x07, "config")
)

// Self-test modes accepted by SelfTest.
const (
	ModeFast = "fast"
	ModeFull = "full"
)

// Service runs the phases of the device bring-up sequence.
type Service interface {
	// PowerOn enables power and starts the core peripherals.
	PowerOn(ctx context.Context) error

	// BusInit brings up the communication buses.
	BusInit(ctx context.Context) error

	// SelfTest exercises the peripherals in the given mode.
	SelfTest(ctx context.Context, mode string) error

	// Run executes the full sequence: power-on, bus init, self-test.
	Run(ctx context.Context) error
}

type service struct {
	bench *drivers.Bench
	state *errcheck.State
}

// New returns a bring-up service backed by the given bench and
// diagnostic state.
func New(bench *drivers.Bench, state *errcheck.State) Service {
	return &service{
		bench: bench,
		state: state,
	}
}

func (s *service) PowerOn(ctx context.Context) (err error) {
	defer s.state.Recover(&err)

	s.state.Check(s.bench.PowerEnable.Invoke(), CodePower)
	s.state.Check(s.bench.SensorInit.Invoke(), CodeSensor)
	s.calibrate()
	s.state.Check(s.bench.RadioStart.Invoke(), CodeRadio)

	return nil
}

func (s *service) BusInit(ctx context.Context) (err error) {
	defer s.state.Recover(&err)

	s.state.SetGroup(CodeI2C)
	s.state.CheckGroup(s.bench.I2CWrite.Invoke())
	s.state.Check(s.bench.I2CRead.Invoke(), CodeI2C)
	s.state.Check(s.bench.SPIProbe.Invoke(), CodeSPI)
	s.state.Check(s.bench.UARTInit.Invoke(), CodeUART)

	return nil
}

func (s *service) SelfTest(ctx context.Context, mode string) (err error) {
	defer s.state.Recover(&err)

	switch mode {
	case ModeFast:
		s.calibrate()
	case ModeFull:
		s.calibrate()
		s.state.Check(s.bench.RadioStart.Invoke(), CodeRadio)
		s.state.Check(s.bench.UARTInit.Invoke(), CodeUART)
	default:
		s.state.Fail(CodeConfig)
	}

	return nil
}

func (s *service) Run(ctx context.Context) error {
	if err := s.PowerOn(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.BusInit(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.SelfTest(ctx, ModeFull)
}
