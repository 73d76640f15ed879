// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !injectsensor

package bringup

// calibrate runs the sensor calibration probe and checks its outcome.
func (s *service) calibrate() {
	s.state.Check(s.bench.SensorCalibrate.Invoke(), CodeSensor)
}
