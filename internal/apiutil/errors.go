// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package apiutil contains shared API validation errors and transport
// helpers.
package apiutil

import "github.com/absmach/errcheck/pkg/errors"

// Errors defined in this package are used across API transports.
var (
	// ErrValidation indicates that an error was returned by the API validation.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrUnsupportedContentType indicates an unacceptable or absent content type.
	ErrUnsupportedContentType = errors.New("invalid content type")

	// ErrMissingCode indicates a request without a diagnostic code.
	ErrMissingCode = errors.New("missing diagnostic code")
)
