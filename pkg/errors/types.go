// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

// Types of errors and their messages.
var (
	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = New("malformed entity specification")
)
