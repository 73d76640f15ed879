// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build faultinject

package errcheck

import "github.com/absmach/errcheck/codes"

// InjectionEnabled reports whether this build honors Arm.
func InjectionEnabled() bool {
	return true
}

// Arm stores code as the armed injection code. The next check carrying
// the same code takes the failure path and consumes it. Arming
// codes.None disarms.
func (s *State) Arm(code codes.Code) error {
	s.flag.Store(uint32(code))
	return nil
}

// Armed returns the armed injection code, codes.None when disarmed.
func (s *State) Armed() codes.Code {
	return codes.Code(s.flag.Load())
}

// consumeArmed reports whether an armed code matches and clears it in
// the same step, so a match forces exactly one failure.
func (s *State) consumeArmed(code codes.Code) bool {
	if code == codes.None {
		return false
	}
	return s.flag.CompareAndSwap(uint32(code), uint32(codes.None))
}
