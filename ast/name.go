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

package ast

import "strings"

// Ident is a source identifier together with its location.
type Ident struct {
	Name string
	Pos  Pos
}

// NName is a namespace name: an ordered sequence of identifiers. The
// empty sequence denotes the root namespace.
type NName []string

// Root is the distinguished root namespace.
var Root = NName(nil)

// IsRoot reports whether n is the root namespace.
func (n NName) IsRoot() bool { return len(n) == 0 }

// Key returns a canonical string form of n, suitable for use as a map
// key. It is never shown to users; use String for diagnostics.
func (n NName) Key() string { return strings.Join(n, "\x00") }

// String renders the namespace in its surface form, e.g. "a::b".
func (n NName) String() string {
	if n.IsRoot() {
		return "::"
	}
	return strings.Join(n, "::")
}

// Equal reports whether n and o name the same namespace.
func (n NName) Equal(o NName) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if n[i] != o[i] {
			return false
		}
	}
	return true
}

// QName is a possibly-qualified reference to a declaration: a
// namespace path (nil when unqualified) plus a local identifier.
type QName struct {
	NS    NName
	Ident Ident
}

// Qualified reports whether q carries an explicit namespace path.
func (q QName) Qualified() bool { return !q.NS.IsRoot() }

// Pos is the location of the reference.
func (q QName) Pos() Pos { return q.Ident.Pos }

// Name is the local identifier being referenced.
func (q QName) Name() string { return q.Ident.Name }

func (q QName) String() string {
	if !q.Qualified() {
		return q.Ident.Name
	}
	return q.NS.String() + "." + q.Ident.Name
}

// HookKey renders the fully-qualified key under which a host hook for
// (ns, name) is stored in Program.Hooks.
func HookKey(ns NName, name string) string {
	return ns.Key() + "\x00" + name
}
