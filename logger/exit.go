// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

import "os"

// ExitWithError terminates the process with the pointed-to code. Defer
// it right after logger setup so cleanup deferred later still runs
// before the exit:
//
//	var exitCode int
//	defer logger.ExitWithError(&exitCode)
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
