// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package drivers simulates the peripherals of a device under
// bring-up. Every operation succeeds unless scripted to fail and
// counts its invocations, which keeps failure paths reproducible in
// tests and demos.
package drivers

import "sync"

// Op is a single fallible driver operation.
type Op struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

// Invoke runs the operation and reports its outcome.
func (o *Op) Invoke() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls++
	return !o.fail
}

// Fail scripts the outcome of subsequent invocations.
func (o *Op) Fail(fail bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.fail = fail
}

// Calls returns the number of invocations so far.
func (o *Op) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.calls
}
