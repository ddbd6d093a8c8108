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

package errors

// Code identifies the member of the resolution error taxonomy.
type Code int

const (
	// UndefinedRef: reference lookup found no definition and no hook,
	// and no root fallback applied (or applied and still missed).
	UndefinedRef Code = iota
	// AmbiguousRef: reference lookup found both a definition and a
	// hook for the same qualified or unqualified name.
	AmbiguousRef
	// UndefinedTable: table lookup found no table in the consulted
	// namespace.
	UndefinedTable
	// UndefinedType: type lookup found no primitive and no enum.
	UndefinedType
	// UndefinedTag: tag lookup found no match, or disambiguation by
	// enum qualifier left no candidate.
	UndefinedTag
	// AmbiguousTag: tag lookup found multiple candidates in scope and
	// no enum qualifier was given to disambiguate.
	AmbiguousTag
	// UnexpectedHook: a hook was reached as the predicate of a Datalog
	// filter, which the language does not allow.
	UnexpectedHook
)

func (c Code) String() string {
	switch c {
	case UndefinedRef:
		return "UndefinedRef"
	case AmbiguousRef:
		return "AmbiguousRef"
	case UndefinedTable:
		return "UndefinedTable"
	case UndefinedType:
		return "UndefinedType"
	case UndefinedTag:
		return "UndefinedTag"
	case AmbiguousTag:
		return "AmbiguousTag"
	case UnexpectedHook:
		return "UnexpectedHook"
	default:
		return "Unknown"
	}
}
