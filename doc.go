// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package errcheck provides fail-fast check constructs for call chains
// that propagate a single failure sentinel and record a one-byte
// diagnostic code at the point of failure.
//
// A guarded function defers Recover on a named error return and then
// writes each fallible step as a single Check statement:
//
//	func PowerOn() (err error) {
//		defer errcheck.Recover(&err)
//
//		errcheck.Check(power.Enable(), CodePower)
//		errcheck.Check(sensor.Init(), CodeSensor)
//		errcheck.Check(radio.Start(), CodeRadio)
//
//		return nil
//	}
//
// When a predicate is falsy the code is written to the last-error slot
// and the function returns ErrFailed immediately; later statements do
// not run. Callers branch on ErrFailed and read LastError for the code.
// The slot is never cleared automatically, so it stays readable after
// the chain unwinds.
//
// CheckGroup takes its code from the group slot set by SetGroup, which
// keeps runs of checks against the same subsystem down to one code
// mention. Fail records a code and unwinds unconditionally, for guard
// clauses and default branches.
//
// Builds made with the faultinject tag accept Arm(code): the next check
// carrying that code fails as if its predicate were falsy, and the
// armed code is consumed. Without the tag Arm reports
// ErrInjectionDisabled and checks compile to the bare predicate test.
package errcheck
