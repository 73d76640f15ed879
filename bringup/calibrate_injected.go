// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build injectsensor

package bringup

// calibrate reports a sensor failure without touching the probe. The
// substitution happens at build time, so the production path carries
// no trace of it.
func (s *service) calibrate() {
	s.state.Fail(CodeSensor)
}
