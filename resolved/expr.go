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

// Expr is a Resolved expression.
type Expr interface{ isExpr() }

// Ref is a resolved reference to a user definition.
type Ref struct{ Sym symbol.DefnSym }

func (Ref) isExpr() {}

// HookRef is a resolved reference to a host hook; it is a distinct
// node from Ref so downstream phases never confuse the two.
type HookRef struct{ Key string }

func (HookRef) isExpr() {}

// Tag constructs an enum case.
type Tag struct {
	Enum  symbol.EnumSym
	Tag   string
	Inner Expr
}

func (Tag) isExpr() {}

// MatchRule is one arm of a Match expression.
type MatchRule struct {
	Pat   Pattern
	Guard Expr // nil if absent
	Body  Expr
}

// Match pattern-matches the scrutinee against a sequence of rules.
type Match struct {
	Scrutinee Expr
	Rules     []MatchRule
}

func (Match) isExpr() {}

// SwitchRule is one (condition, body) arm of a Switch expression.
type SwitchRule struct {
	Cond Expr
	Body Expr
}

// Switch evaluates rules in order, preserving it.
type Switch struct{ Rules []SwitchRule }

func (Switch) isExpr() {}

// Ascribe attaches a resolved type to an expression.
type Ascribe struct {
	Expr Expr
	Type Type
}

func (Ascribe) isExpr() {}

// Param is a resolved formal parameter.
type Param struct {
	Sym  symbol.VarSym
	Name string
	Type Type
}

// TypeParam passes through structurally.
type TypeParam struct{ Name string }

// Existential introduces an existentially-quantified parameter.
type Existential struct {
	Param Param
	Body  Expr
}

func (Existential) isExpr() {}

// Universal introduces a universally-quantified parameter.
type Universal struct {
	Param Param
	Body  Expr
}

func (Universal) isExpr() {}

// NativeConstructor calls a host-native constructor.
type NativeConstructor struct {
	Member string
	Args   []Expr
}

func (NativeConstructor) isExpr() {}

// NativeMethod calls a host-native method.
type NativeMethod struct {
	Member string
	Args   []Expr
}

func (NativeMethod) isExpr() {}

// Literal is threaded through unchanged.
type Literal struct {
	Kind  ast.LitKind
	Value string
}

func (Literal) isExpr() {}

// Wild is the `_` expression.
type Wild struct{}

func (Wild) isExpr() {}

// Var is a reference to a local binding.
type Var struct{ Name string }

func (Var) isExpr() {}

// UserError is an explicit error expression.
type UserError struct{ Message string }

func (UserError) isExpr() {}

// Apply is a function application.
type Apply struct {
	Fun  Expr
	Args []Expr
}

func (Apply) isExpr() {}

// Lambda is an anonymous function.
type Lambda struct {
	Params []Param
	Body   Expr
}

func (Lambda) isExpr() {}

// Unary is a unary operator application.
type Unary struct {
	Op string
	X  Expr
}

func (Unary) isExpr() {}

// Binary is a binary operator application.
type Binary struct {
	Op   string
	X, Y Expr
}

func (Binary) isExpr() {}

// IfThenElse is a conditional expression.
type IfThenElse struct{ Cond, Then, Else Expr }

func (IfThenElse) isExpr() {}

// Let is a non-recursive local binding.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func (Let) isExpr() {}

// Tuple constructs a tuple value.
type Tuple struct{ Elems []Expr }

func (Tuple) isExpr() {}
