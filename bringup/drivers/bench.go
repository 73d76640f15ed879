// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package drivers

// Bench groups the peripherals exercised during bring-up.
type Bench struct {
	PowerEnable     Op
	SensorInit      Op
	SensorCalibrate Op
	RadioStart      Op
	I2CWrite        Op
	I2CRead         Op
	SPIProbe        Op
	UARTInit        Op
}

// NewBench returns a bench whose operations all succeed.
func NewBench() *Bench {
	return &Bench{}
}
