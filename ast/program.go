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

// Program is the Named Program: the resolver's sole input. It is
// treated as immutable and read-only throughout resolution.
type Program struct {
	// Definitions maps namespace key -> local name -> definition.
	Definitions map[string]map[string]*Definition
	// Enums maps namespace key -> local name -> enum.
	Enums map[string]map[string]*Enum
	// Tables maps namespace key -> local name -> table.
	Tables map[string]map[string]*Table
	// Indexes maps namespace key -> local name -> index.
	Indexes map[string]map[string]*Index

	// Lattices maps a carrier type (by its canonical shape key, see
	// TypeKey) to its bounded-lattice declaration.
	Lattices map[string]*BoundedLattice

	// Constraints maps namespace key -> ordered constraints.
	Constraints map[string][]*Constraint
	// Properties maps namespace key -> ordered properties.
	Properties map[string][]*Property

	// Hooks maps ast.HookKey(ns, name) -> host-provided hook.
	Hooks map[string]Hook

	// Reachable is the set of symbols (by String()) considered entry
	// points; it passes through unchanged.
	Reachable map[string]bool

	// Time is opaque provenance metadata, passed through unchanged.
	Time any
}

// NewProgram returns an empty, ready-to-populate Named Program.
func NewProgram() *Program {
	return &Program{
		Definitions: map[string]map[string]*Definition{},
		Enums:       map[string]map[string]*Enum{},
		Tables:      map[string]map[string]*Table{},
		Indexes:     map[string]map[string]*Index{},
		Lattices:    map[string]*BoundedLattice{},
		Constraints: map[string][]*Constraint{},
		Properties:  map[string][]*Property{},
		Hooks:       map[string]Hook{},
		Reachable:   map[string]bool{},
	}
}

// TypeKey renders a canonical, comparable key for a Named Type, used
// to index Program.Lattices. Two structurally-identical types produce
// the same key.
func TypeKey(t Type) string {
	switch x := t.(type) {
	case nil:
		return ""
	case *TVar:
		return "var:" + x.Name
	case *TUnit:
		return "unit"
	case *TRef:
		return "ref:" + x.QName.String()
	case *TEnum:
		return "enum:" + x.Sym.String()
	case *TTuple:
		s := "tuple("
		for i, e := range x.Elems {
			if i > 0 {
				s += ","
			}
			s += TypeKey(e)
		}
		return s + ")"
	case *TArrow:
		s := "arrow("
		for i, p := range x.Params {
			if i > 0 {
				s += ","
			}
			s += TypeKey(p)
		}
		return s + ")->" + TypeKey(x.Ret)
	case *TApply:
		s := "apply(" + TypeKey(x.Base) + ";"
		for i, a := range x.Args {
			if i > 0 {
				s += ","
			}
			s += TypeKey(a)
		}
		return s + ")"
	default:
		return "?"
	}
}
