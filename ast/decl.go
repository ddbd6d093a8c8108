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

import "github.com/flowlang/flowc/symbol"

// Param is a formal parameter.
type Param struct {
	Sym  symbol.VarSym
	Name string
	Type Type
	At   Pos
}

// TypeParam is a type parameter; it passes through structurally, full
// resolution being deferred to the type/kind-inference phase.
type TypeParam struct {
	Name string
	At   Pos
}

// Definition is a user-defined function or value.
type Definition struct {
	Sym        symbol.DefnSym
	TypeParams []TypeParam
	Params     []Param
	ResultType Type
	Body       Expr
	At         Pos
}

// EnumCase is one case of an enum: a name, its wire tag, and the
// payload type (Unit for nullary cases).
type EnumCase struct {
	Name string
	Tag  string
	Type Type
}

// Enum is an enumeration declaration.
type Enum struct {
	Sym        symbol.EnumSym
	TypeParams []TypeParam
	Cases      map[string]EnumCase // keyed by case name
	Shape      Type                // the enum's own declared type shape
	At         Pos
}

// Index declares a secondary index over a table.
type Index struct {
	Table  QName
	Groups [][]string // attribute groups, opaque to the resolver
	At     Pos
}

// Attribute is one column of a table.
type Attribute struct {
	Name string
	Type Type
}

// TableKind distinguishes a plain relation from a lattice-valued
// table.
type TableKind int

const (
	RelationTable TableKind = iota
	LatticeValuedTable
)

// Table is a Relation or a Lattice-valued table declaration.
type Table struct {
	Sym   symbol.TableSym
	Kind  TableKind
	Attrs []Attribute // RelationTable: every column

	KeyAttrs   []Attribute // LatticeValuedTable: key columns
	ValueAttr  *Attribute  // LatticeValuedTable: the lattice-valued column
	At         Pos
}

// BoundedLattice is a user-declared bounded join-semilattice: a
// carrier type and its five operators.
type BoundedLattice struct {
	Carrier Type
	Bottom  Expr
	Top     Expr
	Leq     Expr
	Lub     Expr
	Glb     Expr
	At      Pos
}

// HeadAtom is the head of a Datalog constraint.
type HeadAtom interface {
	isHeadAtom()
	Pos() Pos
}

// HeadTrue is the trivially-true head.
type HeadTrue struct{ At Pos }

func (HeadTrue) isHeadAtom()   {}
func (h HeadTrue) Pos() Pos    { return h.At }

// HeadFalse is the trivially-false head.
type HeadFalse struct{ At Pos }

func (HeadFalse) isHeadAtom() {}
func (h HeadFalse) Pos() Pos  { return h.At }

// HeadPositive asserts a fact into Table.
type HeadPositive struct {
	Table QName
	Terms []Expr
	At    Pos
}

func (*HeadPositive) isHeadAtom() {}
func (h *HeadPositive) Pos() Pos  { return h.At }

// HeadNegative retracts a fact from Table.
type HeadNegative struct {
	Table QName
	Terms []Expr
	At    Pos
}

func (*HeadNegative) isHeadAtom() {}
func (h *HeadNegative) Pos() Pos  { return h.At }

// BodyAtom is one atom in the body of a Datalog constraint.
type BodyAtom interface {
	isBodyAtom()
	Pos() Pos
}

// BodyPositive matches rows of Table.
type BodyPositive struct {
	Table QName
	Terms []Pattern
	At    Pos
}

func (*BodyPositive) isBodyAtom() {}
func (b *BodyPositive) Pos() Pos  { return b.At }

// BodyNegative matches the absence of rows in Table.
type BodyNegative struct {
	Table QName
	Terms []Pattern
	At    Pos
}

func (*BodyNegative) isBodyAtom() {}
func (b *BodyNegative) Pos() Pos  { return b.At }

// BodyFilter calls a user-defined predicate or a hook.
type BodyFilter struct {
	Pred  QName
	Terms []Expr
	At    Pos
}

func (*BodyFilter) isBodyAtom() {}
func (b *BodyFilter) Pos() Pos  { return b.At }

// BodyLoop iterates Source, binding each element to Pat.
type BodyLoop struct {
	Pat    Pattern
	Source Expr
	At     Pos
}

func (*BodyLoop) isBodyAtom() {}
func (b *BodyLoop) Pos() Pos  { return b.At }

// Constraint is a single Datalog rule (or fact, when Body is empty).
type Constraint struct {
	Head HeadAtom
	Body []BodyAtom
	At   Pos
}

// Property is a standalone assertion (e.g. a lattice law check)
// declared at namespace scope.
type Property struct {
	Expr Expr
	At   Pos
}

// Hook is a host-provided, pre-compiled value. The resolver treats it
// as wholly opaque: it only asks whether a key is present in
// Program.Hooks.
type Hook struct{}
