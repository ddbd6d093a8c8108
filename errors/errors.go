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

// Package errors implements the resolver's accumulating-validation
// error channel. It follows the same append-to-list shape as the
// teacher's cue/errors package: independent sub-resolutions each
// report their own Error, and Append flattens them into one List
// without ever losing an error or duplicating a nested list.
package errors

import (
	"fmt"
	"strings"

	"github.com/flowlang/flowc/ast"
)

// Error is a single resolution error or a List of them.
type Error interface {
	error
	// Position is the location the error should be reported at.
	Position() ast.Pos
	// Code identifies which member of the taxonomy this is.
	Code() Code
}

// ResolutionError is the concrete leaf error produced by the resolver.
// Payload fields beyond Code/Pos/Msg are populated only for the codes
// that need them; see the constructors below.
type ResolutionError struct {
	code Code
	pos  ast.Pos
	msg  string

	QName      ast.QName  // UndefinedRef, AmbiguousRef, UndefinedTable, UndefinedType, UnexpectedHook
	Namespace  ast.NName  // current namespace at the point of failure; unset for UnexpectedHook
	Tag        string     // UndefinedTag, AmbiguousTag
	Candidates []ast.Pos  // AmbiguousTag, sorted in source order
}

func (e *ResolutionError) Error() string    { return e.msg }
func (e *ResolutionError) Position() ast.Pos { return e.pos }
func (e *ResolutionError) Code() Code        { return e.code }

// Newf builds a leaf ResolutionError with a formatted message.
func Newf(pos ast.Pos, code Code, format string, args ...any) *ResolutionError {
	return &ResolutionError{code: code, pos: pos, msg: fmt.Sprintf(format, args...)}
}

// UndefinedRefErr reports a reference that resolved to neither a
// definition nor a hook.
func UndefinedRefErr(ns ast.NName, q ast.QName) *ResolutionError {
	e := Newf(q.Pos(), UndefinedRef, "reference %q not found in namespace %s", q.String(), ns.String())
	e.QName, e.Namespace = q, ns
	return e
}

// AmbiguousRefErr reports a name that is both a user definition and a
// host hook in the same namespace.
func AmbiguousRefErr(ns ast.NName, q ast.QName) *ResolutionError {
	e := Newf(q.Pos(), AmbiguousRef, "reference %q is ambiguous: both a definition and a hook in %s", q.String(), ns.String())
	e.QName, e.Namespace = q, ns
	return e
}

// UndefinedTableErr reports a table reference with no matching table.
func UndefinedTableErr(ns ast.NName, q ast.QName) *ResolutionError {
	e := Newf(q.Pos(), UndefinedTable, "table %q not found in namespace %s", q.String(), ns.String())
	e.QName, e.Namespace = q, ns
	return e
}

// UndefinedTypeErr reports a type reference matching no primitive and
// no enum.
func UndefinedTypeErr(ns ast.NName, q ast.QName) *ResolutionError {
	e := Newf(q.Pos(), UndefinedType, "type %q not found in namespace %s", q.String(), ns.String())
	e.QName, e.Namespace = q, ns
	return e
}

// UndefinedTagErr reports a tag with no matching enum case, or whose
// disambiguation by enum qualifier failed.
func UndefinedTagErr(ns ast.NName, tag ast.Ident) *ResolutionError {
	e := Newf(tag.Pos, UndefinedTag, "tag %q not found", tag.Name)
	e.Namespace, e.Tag = ns, tag.Name
	return e
}

// AmbiguousTagErr reports a tag matching multiple enum cases with no
// qualifier to disambiguate. candidates must already be sorted.
func AmbiguousTagErr(ns ast.NName, tag ast.Ident, candidates []ast.Pos) *ResolutionError {
	e := Newf(tag.Pos, AmbiguousTag, "tag %q is ambiguous in %s: %d candidates", tag.Name, ns.String(), len(candidates))
	e.Namespace, e.Tag, e.Candidates = ns, tag.Name, candidates
	return e
}

// UnexpectedHookErr reports a hook reached as the predicate of a
// Datalog filter.
func UnexpectedHookErr(pos ast.Pos, q ast.QName) *ResolutionError {
	e := Newf(pos, UnexpectedHook, "hook %q cannot be used as a Datalog predicate", q.String())
	e.QName = q
	return e
}

// List is a flattened, ordered multiset of errors. It implements
// Error so that a List can itself be appended to another List without
// special-casing, mirroring the teacher's list type.
type List []Error

func (p List) Error() string {
	var b strings.Builder
	for i, e := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", e.Position(), e.Error())
	}
	return b.String()
}

func (p List) Position() ast.Pos {
	if len(p) == 0 {
		return ast.NoPos
	}
	return p[0].Position()
}

func (p List) Code() Code {
	if len(p) == 0 {
		return -1
	}
	return p[0].Code()
}

// Errs returns the individual errors as stored. A List built by Append
// never contains a nested List; one built by hand is not flattened.
func (p List) Errs() []Error { return p }

// Append combines a and b into a single Error, flattening nested
// Lists. Either argument may be nil. The result is nil iff both are.
func Append(a, b Error) Error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return appendToList(asList(a), b)
}

func asList(e Error) List {
	if l, ok := e.(List); ok {
		return l
	}
	return List{e}
}

func appendToList(a List, b Error) List {
	if l, ok := b.(List); ok {
		for _, e := range l {
			a = appendToList(a, e)
		}
		return a
	}
	return append(a, b)
}

// Errors flattens err (which may be nil, a single Error, or a List)
// into a slice, for iteration by callers and tests.
func Errors(err Error) []Error {
	if err == nil {
		return nil
	}
	if l, ok := err.(List); ok {
		return l
	}
	return []Error{err}
}

