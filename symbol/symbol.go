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

// Package symbol holds the canonical, comparable handles assigned to
// declarations by the naming phase. The resolver only ever reads and
// compares these values; it never constructs a new one that does not
// already appear as the Sym field of some Named declaration.
package symbol

import "strings"

// DefnSym identifies a user-defined function or value.
type DefnSym struct {
	NS   string // canonical namespace key, see ast.NName.Key
	Name string
}

func (s DefnSym) String() string { return qualify(s.NS, s.Name) }

// EnumSym identifies an enumeration declaration.
type EnumSym struct {
	NS   string
	Name string
}

func (s EnumSym) String() string { return qualify(s.NS, s.Name) }

// TableSym identifies a relation or lattice-valued table.
type TableSym struct {
	NS   string
	Name string
}

func (s TableSym) String() string { return qualify(s.NS, s.Name) }

// VarSym identifies a local binding: a formal parameter, a let
// binding, a pattern variable. Unlike the namespace-scoped symbols
// above, variable symbols are disambiguated by an opaque ID minted by
// the naming phase, since the same surface name may be bound by
// several nested scopes.
type VarSym struct {
	ID   uint64
	Name string
}

func (s VarSym) String() string { return s.Name }

func qualify(ns, name string) string {
	if ns == "" {
		return name
	}
	return strings.ReplaceAll(ns, "\x00", "::") + "." + name
}
