// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !faultinject

package errcheck

import "github.com/absmach/errcheck/codes"

// InjectionEnabled reports whether this build honors Arm.
func InjectionEnabled() bool {
	return false
}

// Arm reports ErrInjectionDisabled. Builds made with the faultinject
// tag accept the armed code instead.
func (s *State) Arm(code codes.Code) error {
	return ErrInjectionDisabled
}

// Armed returns codes.None. Nothing can be armed in this build.
func (s *State) Armed() codes.Code {
	return codes.None
}

func (s *State) consumeArmed(code codes.Code) bool {
	return false
}
