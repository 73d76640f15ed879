// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package env loads service configuration from the environment.
package env

import (
	"github.com/caarlos0/env/v7"
	"github.com/subosito/gotenv"
)

// Options extends env parsing options.
type Options env.Options

// Parse parses a struct containing `env` tags and loads its values from
// environment variables.
func Parse(v interface{}, opts ...Options) error {
	altOpts := []env.Options{}
	for _, opt := range opts {
		altOpts = append(altOpts, env.Options(opt))
	}

	return env.Parse(v, altOpts...)
}

// LoadFile overlays variables from a dotenv file onto the environment.
// Already-set variables keep their values. An empty path is a no-op.
func LoadFile(path string) error {
	if path == "" {
		return nil
	}

	return gotenv.Load(path)
}
