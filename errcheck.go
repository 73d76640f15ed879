// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errcheck

import (
	"errors"
	"sync/atomic"

	"github.com/absmach/errcheck/codes"
)

// ErrFailed is the single failure sentinel returned by every guarded
// function. It carries no diagnostic detail itself; the code of the
// failed check is read from LastError.
var ErrFailed = errors.New("check failed")

// ErrInjectionDisabled is returned by Arm in builds made without the
// faultinject tag.
var ErrInjectionDisabled = errors.New("runtime fault injection disabled in this build")

// State holds the last-error slot, the error-group slot and the armed
// injection code. The zero value is ready to use: all slots read
// codes.None.
//
// Slot accesses are atomic, so concurrent reads are safe, but the
// last-error and group slots describe one logical chain of calls at a
// time. Code that runs independent chains concurrently should give each
// its own State from New.
type State struct {
	last  atomic.Uint32
	group atomic.Uint32
	flag  atomic.Uint32
}

// New returns a State with all slots neutral.
func New() *State {
	return &State{}
}

// failure is the unwind payload of a failed check. It never escapes a
// guarded function unless the guard is missing.
type failure struct {
	state *State
	code  codes.Code
}

func (f failure) Error() string {
	return "unguarded check failure: " + f.code.String()
}

func (s *State) fail(code codes.Code) {
	if code == codes.None {
		code = codes.Unspecified
	}
	s.last.Store(uint32(code))
	Logf("check failed: %s", code)
	panic(failure{state: s, code: code})
}

// Check evaluates the result of a single fallible step. A truthy ok
// falls through with no observable effect. A falsy ok records code in
// the last-error slot and unwinds to the enclosing Recover, which
// returns ErrFailed.
//
// In faultinject builds an armed code equal to this check's code forces
// the failure path even when ok is true; the armed code is consumed. A
// falsy ok leaves the armed code in place.
func (s *State) Check(ok bool, code codes.Code) {
	if !ok {
		s.fail(code)
	}
	if s.consumeArmed(code) {
		s.fail(code)
	}
}

// CheckGroup is Check with the code taken from the group slot.
func (s *State) CheckGroup(ok bool) {
	s.Check(ok, s.Group())
}

// Must is Check for error-valued steps: a nil err is truthy.
func (s *State) Must(err error, code codes.Code) {
	s.Check(err == nil, code)
}

// Fail records code and unwinds unconditionally.
func (s *State) Fail(code codes.Code) {
	s.fail(code)
}

// Recover converts a check failure into ErrFailed on the pointed-to
// error. It must be deferred in the function whose signature carries
// the error:
//
//	defer s.Recover(&err)
//
// Panics that did not originate from this State's checks, and failures
// reaching a nil errp, propagate unchanged.
func (s *State) Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(failure)
	if !ok || f.state != s || errp == nil {
		panic(r)
	}
	*errp = ErrFailed
}

// Do runs fn under a guard and returns ErrFailed if any of its checks
// failed.
func (s *State) Do(fn func()) (err error) {
	defer s.Recover(&err)
	fn()
	return nil
}

// LastError returns the code recorded by the most recent failure. It is
// codes.None until the first failure and keeps its value until the next
// failure or Reset.
func (s *State) LastError() codes.Code {
	return codes.Code(s.last.Load())
}

// SetGroup sets the code used by subsequent CheckGroup calls.
func (s *State) SetGroup(code codes.Code) {
	s.group.Store(uint32(code))
}

// Group returns the current group code.
func (s *State) Group() codes.Code {
	return codes.Code(s.group.Load())
}

// Disarm clears the armed injection code.
func (s *State) Disarm() {
	s.flag.Store(uint32(codes.None))
}

// Reset returns all slots to neutral. Applications call it once at
// startup; tests call it between cases.
func (s *State) Reset() {
	s.last.Store(uint32(codes.None))
	s.group.Store(uint32(codes.None))
	s.flag.Store(uint32(codes.None))
}

var def = New()

// Default returns the process-wide State used by the package-level
// functions.
func Default() *State {
	return def
}

// Check calls Default().Check.
func Check(ok bool, code codes.Code) {
	def.Check(ok, code)
}

// CheckGroup calls Default().CheckGroup.
func CheckGroup(ok bool) {
	def.CheckGroup(ok)
}

// Must calls Default().Must.
func Must(err error, code codes.Code) {
	def.Must(err, code)
}

// Fail calls Default().Fail.
func Fail(code codes.Code) {
	def.Fail(code)
}

// Recover calls Default().Recover.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(failure)
	if !ok || f.state != def || errp == nil {
		panic(r)
	}
	*errp = ErrFailed
}

// Do calls Default().Do.
func Do(fn func()) error {
	return def.Do(fn)
}

// LastError calls Default().LastError.
func LastError() codes.Code {
	return def.LastError()
}

// SetGroup calls Default().SetGroup.
func SetGroup(code codes.Code) {
	def.SetGroup(code)
}

// Group calls Default().Group.
func Group() codes.Code {
	return def.Group()
}

// Arm calls Default().Arm.
func Arm(code codes.Code) error {
	return def.Arm(code)
}

// Armed calls Default().Armed.
func Armed() codes.Code {
	return def.Armed()
}

// Disarm calls Default().Disarm.
func Disarm() {
	def.Disarm()
}

// Reset calls Default().Reset.
func Reset() {
	def.Reset()
}
