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

// Definition is a resolved function or value declaration.
type Definition struct {
	Sym        symbol.DefnSym
	TypeParams []TypeParam
	Params     []Param
	ResultType Type
	Body       Expr
}

// EnumCase is one resolved case of an enum.
type EnumCase struct {
	Name string
	Tag  string
	Type Type
}

// Enum is a resolved enumeration declaration. Shape preserves the
// declaration's own written type for diagnostics (see shape.go);
// Cases carry fully-resolved canonical types, since a downstream
// type-checker needs to know their kinds precisely.
type Enum struct {
	Sym        symbol.EnumSym
	TypeParams []TypeParam
	Cases      map[string]EnumCase
	Shape      Shape
}

// Index is a resolved secondary index over a table.
type Index struct {
	Table  symbol.TableSym
	Groups [][]string
}

// Attribute is one resolved column of a table.
type Attribute struct {
	Name string
	Type Type
}

// Table is a resolved Relation or Lattice-valued table.
type Table struct {
	Sym   symbol.TableSym
	Kind  ast.TableKind
	Attrs []Attribute

	KeyAttrs  []Attribute
	ValueAttr *Attribute
}

// BoundedLattice is a resolved bounded join-semilattice.
type BoundedLattice struct {
	Carrier Type
	Bottom  Expr
	Top     Expr
	Leq     Expr
	Lub     Expr
	Glb     Expr
}

// Callee is the target of a reference lookup used in predicate
// positions (Datalog filters): after a successful lookup exactly one
// of Defn or Hook is set; after a failed lookup neither is.
type Callee struct {
	Defn *symbol.DefnSym
	Hook *string
}

// HeadAtom is the resolved head of a Datalog constraint.
type HeadAtom interface{ isHeadAtom() }

type HeadTrue struct{}
type HeadFalse struct{}

func (HeadTrue) isHeadAtom()  {}
func (HeadFalse) isHeadAtom() {}

// HeadPositive asserts a fact into Table.
type HeadPositive struct {
	Table symbol.TableSym
	Terms []Expr
}

func (HeadPositive) isHeadAtom() {}

// HeadNegative retracts a fact from Table.
type HeadNegative struct {
	Table symbol.TableSym
	Terms []Expr
}

func (HeadNegative) isHeadAtom() {}

// BodyAtom is one resolved atom in the body of a Datalog constraint.
type BodyAtom interface{ isBodyAtom() }

// BodyPositive matches rows of Table.
type BodyPositive struct {
	Table symbol.TableSym
	Terms []Pattern
}

func (BodyPositive) isBodyAtom() {}

// BodyNegative matches the absence of rows in Table.
type BodyNegative struct {
	Table symbol.TableSym
	Terms []Pattern
}

func (BodyNegative) isBodyAtom() {}

// BodyFilter calls a user-defined predicate or a hook.
type BodyFilter struct {
	Pred  Callee
	Terms []Expr
}

func (BodyFilter) isBodyAtom() {}

// BodyLoop iterates Source, binding each element to Pat.
type BodyLoop struct {
	Pat    Pattern
	Source Expr
}

func (BodyLoop) isBodyAtom() {}

// Constraint is a single resolved Datalog rule or fact.
type Constraint struct {
	Head HeadAtom
	Body []BodyAtom
}

// Property is a resolved standalone assertion.
type Property struct{ Expr Expr }
