// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package errors contains the wrapping error type used by service,
// transport and SDK layers.
//
// Errors compose with Wrap and are inspected with Contains, which
// matches an error against any layer of the chain:
//
//	if err := decode(r); err != nil {
//		return errors.Wrap(apiutil.ErrValidation, err)
//	}
//
//	if errors.Contains(err, apiutil.ErrValidation) { ... }
//
// The one-byte diagnostic codes recorded by check constructs are a
// separate mechanism; see the errcheck package at the module root.
package errors
