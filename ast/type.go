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

// Type is a Named type, as produced by the naming phase. Unlike the
// resolver's canonical Type, a Ref node has not yet been matched
// against the closed set of primitives or bound to an enum symbol.
type Type interface {
	isType()
	Pos() Pos
}

// TVar is a type variable, passed through unresolved.
type TVar struct {
	Name string
	At   Pos
}

func (t *TVar) isType()  {}
func (t *TVar) Pos() Pos { return t.At }

// TUnit is the unit type literal.
type TUnit struct{ At Pos }

func (t *TUnit) isType()  {}
func (t *TUnit) Pos() Pos { return t.At }

// TRef is a textual type reference: a primitive name, or an enum name
// to be looked up in the current or root namespace.
type TRef struct {
	QName QName
}

func (t *TRef) isType()  {}
func (t *TRef) Pos() Pos { return t.QName.Pos() }

// TEnum already carries a resolved enum symbol; this arises for types
// synthesized by earlier phases (e.g. desugaring) rather than written
// directly by the user.
type TEnum struct {
	Sym symbol.EnumSym
	At  Pos
}

func (t *TEnum) isType()  {}
func (t *TEnum) Pos() Pos { return t.At }

// TTuple is a tuple type.
type TTuple struct {
	Elems []Type
	At    Pos
}

func (t *TTuple) isType()  {}
func (t *TTuple) Pos() Pos { return t.At }

// TArrow is a function type.
type TArrow struct {
	Params []Type
	Ret    Type
	At     Pos
}

func (t *TArrow) isType()  {}
func (t *TArrow) Pos() Pos { return t.At }

// TApply is a type application, e.g. List[Int].
type TApply struct {
	Base Type
	Args []Type
	At   Pos
}

func (t *TApply) isType()  {}
func (t *TApply) Pos() Pos { return t.At }
