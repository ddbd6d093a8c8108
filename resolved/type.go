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

// Package resolved defines the Resolved Program: the output of name
// resolution, structurally parallel to ast.Program but with every
// QName bound to a symbol and every type reduced to the closed
// canonical set.
package resolved

import "github.com/flowlang/flowc/symbol"

// ShapeKind is the kind assigned to a resolved Enum type. Every
// produced Enum currently carries Star; richer kinds belong to a
// later, separate inference phase.
type ShapeKind int

const Star ShapeKind = 0

// Type is the closed canonical type: Unit, Bool, Char, Float32,
// Float64, Int8, Int16, Int32, Int64, BigInt, Str, Native,
// Enum(sym,kind), Tuple([Type]), Arrow([Type],Type), Apply(Type,[Type]),
// Var(tv).
type Type interface {
	isType()
}

type (
	TUnit    struct{}
	TBool    struct{}
	TChar    struct{}
	TFloat32 struct{}
	TFloat64 struct{}
	TInt8    struct{}
	TInt16   struct{}
	TInt32   struct{}
	TInt64   struct{}
	TBigInt  struct{}
	TStr     struct{}
	TNative  struct{}
)

func (TUnit) isType()    {}
func (TBool) isType()    {}
func (TChar) isType()    {}
func (TFloat32) isType() {}
func (TFloat64) isType() {}
func (TInt8) isType()    {}
func (TInt16) isType()   {}
func (TInt32) isType()   {}
func (TInt64) isType()   {}
func (TBigInt) isType()  {}
func (TStr) isType()     {}
func (TNative) isType()  {}

// TEnum is a reference to a resolved enum declaration.
type TEnum struct {
	Sym  symbol.EnumSym
	Kind ShapeKind
}

func (TEnum) isType() {}

// TTuple is a tuple type.
type TTuple struct{ Elems []Type }

func (TTuple) isType() {}

// TArrow is a function type.
type TArrow struct {
	Params []Type
	Ret    Type
}

func (TArrow) isType() {}

// TApply is a type application.
type TApply struct {
	Base Type
	Args []Type
}

func (TApply) isType() {}

// TVar is an as-yet-unresolved type variable, left for the
// type/kind-inference phase.
type TVar struct{ Name string }

func (TVar) isType() {}

// Primitive is the closed set of primitive type names a type lookup
// matches before falling back to treating a Ref as an enum name. The
// unsized aliases Float and Int map to Float64 and Int32.
var Primitive = map[string]Type{
	"Unit":    TUnit{},
	"Bool":    TBool{},
	"Char":    TChar{},
	"Float":   TFloat64{},
	"Float32": TFloat32{},
	"Float64": TFloat64{},
	"Int":     TInt32{},
	"Int8":    TInt8{},
	"Int16":   TInt16{},
	"Int32":   TInt32{},
	"Int64":   TInt64{},
	"BigInt":  TBigInt{},
	"Str":     TStr{},
	"Native":  TNative{},
}
