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

package resolved

import (
	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/symbol"
)

// Program is the Resolved Program: structurally parallel to
// ast.Program, with the three by-symbol maps materialized alongside
// the per-namespace maps (invariant 3 in the spec: the two views must
// agree).
type Program struct {
	Definitions map[string]map[string]*Definition
	Enums       map[string]map[string]*Enum
	Tables      map[string]map[string]*Table
	Indexes     map[string]map[string]*Index
	Lattices    map[string]*BoundedLattice
	Constraints map[string][]*Constraint
	Properties  map[string][]*Property

	Hooks     map[string]ast.Hook
	Reachable map[string]bool
	Time      any

	DefinitionsBySymbol map[symbol.DefnSym]*Definition
	EnumsBySymbol       map[symbol.EnumSym]*Enum
	TablesBySymbol      map[symbol.TableSym]*Table
}
