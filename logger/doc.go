// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger contains a leveled JSON logger used by services and
// middleware across the toolkit.
package logger
