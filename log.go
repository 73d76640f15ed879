// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build checkdebug

package errcheck

import (
	"fmt"
	"os"
)

// LogFunc receives diagnostic lines from the check constructs.
type LogFunc func(format string, args ...interface{})

var logf LogFunc = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "errcheck: "+format+"\n", args...)
}

// SetLogFunc redirects diagnostic output, stderr by default. Call it
// during startup, before checks run from other goroutines. A nil fn is
// ignored.
func SetLogFunc(fn LogFunc) {
	if fn != nil {
		logf = fn
	}
}

// Logf writes a diagnostic line. The constructs call it on their
// failure paths and applications may call it directly. In builds made
// without the checkdebug tag it does nothing.
func Logf(format string, args ...interface{}) {
	logf(format, args...)
}
