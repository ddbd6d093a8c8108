// Copyright 2026 The Flow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resolve implements the name-resolution phase: it binds
// every textual reference in a Named Program to the canonical symbol
// of its declaration, rejecting programs with undefined or ambiguous
// references.
package resolve

// Config configures a resolve run. It has no scope-chaining concept —
// unlike the teacher's incremental compile.Config, Flow never
// resolves a program against a partially-evaluated one — so it
// carries only the knobs this phase genuinely needs.
type Config struct {
	// RelaxedHooks, when true, allows a hook reached as the predicate
	// of a Datalog filter to resolve as a Callee with Hook set instead
	// of being rejected with errors.UnexpectedHook. Head atoms and
	// positive/negative body atoms go through table lookup and never
	// reach a hook, so this setting does not affect them. The zero
	// value (false) is the strict, recommended default; the relaxed
	// mode exists only for host embedders migrating programs written
	// against the source's original, unchecked behaviour.
	RelaxedHooks bool

	// Trace, if non-nil, receives a line when the driver starts, a line
	// for each definition it resolves, and a line when it is done.
	// Other declarations are not traced. It is never required for
	// correctness.
	Trace func(format string, args ...any)
}

func (c *Config) trace(format string, args ...any) {
	if c != nil && c.Trace != nil {
		c.Trace(format, args...)
	}
}

// wantsTrace reports whether tracing is enabled, letting a call site
// skip building an expensive dump() argument when it is not.
func (c *Config) wantsTrace() bool {
	return c != nil && c.Trace != nil
}

func (c *Config) strictHooks() bool {
	return c == nil || !c.RelaxedHooks
}
