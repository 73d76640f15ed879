// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !checkdebug

package errcheck

// LogFunc receives diagnostic lines from the check constructs.
type LogFunc func(format string, args ...interface{})

// SetLogFunc does nothing. Builds made with the checkdebug tag bind the
// sink instead.
func SetLogFunc(fn LogFunc) {}

// Logf does nothing. Builds made with the checkdebug tag write the line
// to the registered sink. Arguments are still evaluated, so call sites
// keep them cheap.
func Logf(format string, args ...interface{}) {}
